// Package main gallery command.
package main

import (
	"brandstudio/internal/config"
	"brandstudio/internal/logging"
	"brandstudio/internal/ui"

	"github.com/spf13/cobra"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Browse posts in an interactive terminal gallery",
	Long: `Opens a full-screen gallery of the school's posts, newest first.
Posts finishing in another invocation show up within a couple of
seconds. Config edits (debug_mode, plan limits) are picked up live.`,
	RunE: runGallery,
}

func runGallery(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	school, err := env.requireSchool()
	if err != nil {
		return err
	}

	watcher, err := config.NewWatcher(env.workspace, func(cfg *config.Config) {
		env.cfg = cfg
	})
	if err == nil {
		if err := watcher.Start(); err == nil {
			defer func() { _ = watcher.Stop() }()
		}
	} else {
		logging.Get(logging.CategoryConfig).Warn("Config watcher unavailable: %v", err)
	}

	return ui.Run(env.newOfflineManager(), school)
}
