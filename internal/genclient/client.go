// Package genclient wraps the two external generation capabilities: caption
// text (structured JSON) and marketing image. Each call is a single outbound
// request with no retry and no caching; identical inputs issued twice
// produce two independent artifacts.
package genclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"brandstudio/internal/logging"
	"brandstudio/internal/types"

	"google.golang.org/genai"
)

// Default model names, overridable through config.
const (
	DefaultCaptionModel = "gemini-3-flash-preview"
	DefaultImageModel   = "gemini-2.5-flash-image"
)

// GenerationError marks a failed external call: network failure, malformed
// response, or a response missing the expected payload. The lifecycle
// manager maps it to a failed post; it never escapes to the user raw.
type GenerationError struct {
	Op  string // "caption" or "image"
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Client calls the Gemini API for both artifact types.
type Client struct {
	client       *genai.Client
	captionModel string
	imageModel   string
}

// Config carries client construction options.
type Config struct {
	APIKey       string
	CaptionModel string
	ImageModel   string
}

// New creates a generation client. The API key is required; model names
// default when empty.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY)")
	}
	if cfg.CaptionModel == "" {
		cfg.CaptionModel = DefaultCaptionModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		client:       client,
		captionModel: cfg.CaptionModel,
		imageModel:   cfg.ImageModel,
	}, nil
}

// captionSchema constrains the caption response to the expected shape.
func captionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"caption": {Type: genai.TypeString},
			"hashtags": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"cta": {Type: genai.TypeString},
		},
		Required: []string{"caption", "hashtags", "cta"},
	}
}

// GenerateCaption requests an Instagram caption, hashtags, and a call to
// action for the given post.
func (c *Client) GenerateCaption(ctx context.Context, schoolName, title, description string, tone types.BrandTone) (*types.CaptionResult, error) {
	prompt := BuildCaptionPrompt(schoolName, title, description, tone)
	logging.Generation("Caption request: model=%s title=%q", c.captionModel, title)

	resp, err := c.client.Models.GenerateContent(ctx,
		c.captionModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   captionSchema(),
		},
	)
	if err != nil {
		logging.GenerationError("Caption call failed: %v", err)
		return nil, &GenerationError{Op: "caption", Err: err}
	}

	result, err := ParseCaptionResponse([]byte(resp.Text()))
	if err != nil {
		logging.GenerationError("Caption response malformed: %v", err)
		return nil, &GenerationError{Op: "caption", Err: err}
	}
	return result, nil
}

// ParseCaptionResponse decodes and validates the structured caption payload.
func ParseCaptionResponse(data []byte) (*types.CaptionResult, error) {
	var result types.CaptionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if result.Caption == "" {
		return nil, fmt.Errorf("response missing caption field")
	}
	return &result, nil
}

// GenerateMarketingImage requests a branded marketing image and returns it
// as a data URI. referenceImage, when non-nil, is passed inline as JPEG
// bytes so the model enhances the uploaded photo instead of inventing one.
func (c *Client) GenerateMarketingImage(ctx context.Context, title, description string, branding *types.BrandingConfig, ratio types.AspectRatio, isEvent bool, referenceImage []byte) (string, error) {
	prompt := BuildImagePrompt(title, description, branding, isEvent, len(referenceImage) > 0)
	logging.Generation("Image request: model=%s ratio=%s event=%v ref=%d bytes",
		c.imageModel, ratio, isEvent, len(referenceImage))

	parts := []*genai.Part{}
	if len(referenceImage) > 0 {
		parts = append(parts, genai.NewPartFromBytes(referenceImage, "image/jpeg"))
	}
	parts = append(parts, genai.NewPartFromText(prompt))
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx,
		c.imageModel,
		contents,
		&genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: string(ratio),
			},
		},
	)
	if err != nil {
		logging.GenerationError("Image call failed: %v", err)
		return "", &GenerationError{Op: "image", Err: err}
	}

	uri, err := extractImageDataURI(resp)
	if err != nil {
		logging.GenerationError("Image response missing payload: %v", err)
		return "", &GenerationError{Op: "image", Err: err}
	}
	return uri, nil
}

// extractImageDataURI finds the first inline image part and encodes it as a
// data URI.
func extractImageDataURI(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("response has no candidates")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)
			return fmt.Sprintf("data:%s;base64,%s", mime, encoded), nil
		}
	}
	return "", fmt.Errorf("no image payload in response")
}

// StripDataURIPrefix returns the bare base64 payload of a data URI, or the
// input unchanged when no prefix is present.
func StripDataURIPrefix(s string) string {
	if i := strings.Index(s, ","); i >= 0 && strings.HasPrefix(s, "data:") {
		return s[i+1:]
	}
	return s
}
