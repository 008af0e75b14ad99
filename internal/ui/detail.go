package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"brandstudio/internal/types"
)

// RenderPostDetail renders a post's metadata and caption as terminal
// markdown. The image itself is a data URI; only its size is shown, the
// `posts show --out` command writes the bytes to a file.
func RenderPostDetail(post *types.Post) (string, error) {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", post.Title)
	fmt.Fprintf(&md, "- **Status**: %s\n", post.Status)
	fmt.Fprintf(&md, "- **Type**: %s · **Ratio**: %s\n", post.PostType, post.AspectRatio)
	fmt.Fprintf(&md, "- **Created**: %s\n", post.CreatedAt.Local().Format("2006-01-02 15:04"))
	if post.GeneratedAt != nil {
		fmt.Fprintf(&md, "- **Generated**: %s\n", post.GeneratedAt.Local().Format("2006-01-02 15:04"))
	}
	md.WriteString("\n")

	fmt.Fprintf(&md, "%s\n\n", post.Description)

	switch post.Status {
	case types.PostStatusGenerated:
		// Defensive: a crash between writes can leave a generated post
		// with missing artifacts. Render what exists.
		if post.Caption != "" {
			fmt.Fprintf(&md, "## Caption\n\n%s\n\n", post.Caption)
		}
		if len(post.Hashtags) > 0 {
			fmt.Fprintf(&md, "%s\n\n", strings.Join(post.Hashtags, " "))
		}
		if post.ImageURL != "" {
			fmt.Fprintf(&md, "Image: %d bytes (use `brandstudio posts show %s --out poster.png`)\n", len(post.ImageURL), post.ID)
		}
	case types.PostStatusFailed:
		md.WriteString("Generation failed. Retry with `brandstudio regenerate " + post.ID + "`.\n")
	case types.PostStatusGenerating:
		md.WriteString("Generation in progress...\n")
	}

	out, err := glamour.Render(md.String(), "auto")
	if err != nil {
		return "", fmt.Errorf("failed to render detail: %w", err)
	}
	return out, nil
}
