// Package main post inspection commands: list, show, delete.
package main

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"brandstudio/internal/genclient"
	"brandstudio/internal/types"
	"brandstudio/internal/ui"

	"github.com/spf13/cobra"
)

var (
	showOutPath string
	deleteYes   bool
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Inspect and manage generated posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the school's posts, newest first",
	RunE:  runPostsList,
}

var postsShowCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "Show a post's caption and metadata",
	Long: `Shows a post's metadata, caption, and hashtags. With --out the
generated image bytes are decoded from the stored data URI and written
to the given file.`,
	Args: cobra.ExactArgs(1),
	RunE: runPostsShow,
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostsDelete,
}

func runPostsList(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	school, err := env.requireSchool()
	if err != nil {
		return err
	}

	posts, err := env.newOfflineManager().List(school.ID)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Println("No posts yet. Run `brandstudio create` to generate one.")
		return nil
	}

	fmt.Printf("%-36s  %-10s  %-6s  %-5s  %-16s  %s\n", "ID", "STATUS", "TYPE", "RATIO", "CREATED", "TITLE")
	for _, p := range posts {
		fmt.Printf("%-36s  %-10s  %-6s  %-5s  %-16s  %s\n",
			p.ID, p.Status, p.PostType, p.AspectRatio,
			p.CreatedAt.Local().Format("2006-01-02 15:04"), p.Title)
	}
	return nil
}

func runPostsShow(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	post, ok, err := env.newOfflineManager().Get(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no post with id %q", args[0])
	}

	detail, err := ui.RenderPostDetail(post)
	if err != nil {
		return err
	}
	fmt.Print(detail)

	if showOutPath != "" {
		if post.ImageURL == "" {
			return fmt.Errorf("post %s has no image to export", post.ID)
		}
		raw, err := base64.StdEncoding.DecodeString(genclient.StripDataURIPrefix(post.ImageURL))
		if err != nil {
			return fmt.Errorf("stored image is not valid base64: %w", err)
		}
		if err := os.WriteFile(showOutPath, raw, 0644); err != nil {
			return fmt.Errorf("failed to write image: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(raw), showOutPath)
	}
	return nil
}

func runPostsDelete(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	manager := env.newOfflineManager()
	post, ok, err := manager.Get(args[0])
	if err != nil {
		return err
	}
	if !ok {
		// Idempotent: deleting an absent post succeeds quietly.
		fmt.Printf("Post %s not found; nothing to delete.\n", args[0])
		return nil
	}

	if !deleteYes {
		fmt.Printf("Delete %q (%s)? [y/N] ", post.Title, post.ID)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if post.Status == types.PostStatusGenerating {
		fmt.Println("Note: this post is still generating; its result will be discarded.")
	}
	if err := manager.Delete(post.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted post %s.\n", post.ID)
	return nil
}

func init() {
	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsShowCmd)
	postsCmd.AddCommand(postsDeleteCmd)

	postsShowCmd.Flags().StringVar(&showOutPath, "out", "", "write the decoded image bytes to this file")
	postsDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
