// Package main create and regenerate commands.
package main

import (
	"fmt"
	"os"

	"brandstudio/internal/lifecycle"
	"brandstudio/internal/types"

	"github.com/spf13/cobra"
)

var (
	createTitle       string
	createDescription string
	createType        string
	createRatio       string
	createImagePath   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a new marketing post",
	Long: `Generates a poster image and a social caption for a new post.
The post appears immediately in 'generating' state and settles to
'generated' or 'failed'. A successful generation consumes one of the
plan's monthly generations; a failed one does not.

Event posts may include a reference photo that is woven into the image:
  brandstudio create --title "Open Day" --description "Campus tours all day" \
    --type event --ratio 16:9 --image campus.jpg`,
	RunE: runCreate,
}

var regenerateCmd = &cobra.Command{
	Use:   "regenerate <post-id>",
	Short: "Re-run generation for an existing post (does not consume quota)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegenerate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	school, err := env.requireSchool()
	if err != nil {
		return err
	}

	var reference []byte
	if createImagePath != "" {
		reference, err = os.ReadFile(createImagePath)
		if err != nil {
			return fmt.Errorf("failed to read reference image: %w", err)
		}
	}

	ctx := cmd.Context()
	manager, err := env.newManager(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Generating %q (%s, %s)...\n", createTitle, createType, createRatio)
	post, err := manager.Create(ctx, school, lifecycle.CreateParams{
		Title:          createTitle,
		Description:    createDescription,
		PostType:       types.PostType(createType),
		AspectRatio:    types.AspectRatio(createRatio),
		ReferenceImage: reference,
	})
	if err != nil {
		if post != nil && post.Status == types.PostStatusFailed {
			fmt.Printf("Post %s failed. Retry with `brandstudio regenerate %s`.\n", post.ID, post.ID)
		}
		return err
	}

	fmt.Printf("Post %s generated (usage %d/%d).\n", post.ID, school.PostsGeneratedThisMonth, school.PlanLimit)
	fmt.Printf("View it with `brandstudio posts show %s` or `brandstudio gallery`.\n", post.ID)
	return nil
}

func runRegenerate(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	school, err := env.requireSchool()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	manager, err := env.newManager(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Regenerating post %s...\n", args[0])
	post, err := manager.Regenerate(ctx, school, args[0])
	if err != nil {
		if post != nil {
			fmt.Printf("Post %s failed again. The previous artifacts were discarded.\n", post.ID)
		}
		return err
	}

	fmt.Printf("Post %s regenerated. Quota was not consumed.\n", post.ID)
	return nil
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "post title (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "post description (required)")
	createCmd.Flags().StringVar(&createType, "type", "poster", "post type: poster or event")
	createCmd.Flags().StringVar(&createRatio, "ratio", "1:1", "aspect ratio: 1:1, 3:4, or 16:9")
	createCmd.Flags().StringVar(&createImagePath, "image", "", "reference photo for event posts (JPEG)")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("description")
}
