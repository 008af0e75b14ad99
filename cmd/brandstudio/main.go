// Package main implements the brandstudio CLI: a single-tenant marketing
// studio for schools that generates branded poster images and social
// captions via the Gemini API and persists everything in a workspace-local
// store.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"brandstudio/internal/config"
	"brandstudio/internal/genclient"
	"brandstudio/internal/lifecycle"
	"brandstudio/internal/logging"
	"brandstudio/internal/store"
	"brandstudio/internal/types"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose   bool
	workspace string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "brandstudio",
	Short: "brandstudio - AI marketing studio for schools",
	Long: `brandstudio generates branded marketing content for a school:
poster images and social captions, produced by the Gemini API and stored
in a local workspace database.

Typical flow:
  brandstudio login --name "Northside Academy" --email admin@northside.edu
  brandstudio branding set --primary "#1a2b3c" --tone friendly
  brandstudio create --title "Science Fair" --description "Annual fair" --type poster --ratio 1:1
  brandstudio gallery`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		ws, err := resolveWorkspace()
		if err != nil {
			return err
		}
		if err := logging.Initialize(ws); err != nil {
			logger.Warn("file logging unavailable", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func resolveWorkspace() (string, error) {
	if workspace != "" {
		return workspace, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace: %w", err)
	}
	return cwd, nil
}

// appEnv bundles everything a command needs: config, store, and the
// session's school record (when one exists).
type appEnv struct {
	workspace string
	cfg       *config.Config
	store     *store.RecordStore
	school    *types.School
}

func (e *appEnv) Close() {
	if e.store != nil {
		_ = e.store.Close()
	}
}

// openEnv loads config and opens the record store for the workspace.
func openEnv() (*appEnv, error) {
	ws, err := resolveWorkspace()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(ws)
	if err != nil {
		return nil, err
	}
	s, err := store.Open(storePath(ws))
	if err != nil {
		return nil, err
	}
	school, _, err := s.LoadSchool()
	if err != nil {
		s.Close()
		return nil, err
	}
	return &appEnv{workspace: ws, cfg: cfg, store: s, school: school}, nil
}

func storePath(ws string) string {
	return filepath.Join(ws, ".brandstudio", "studio.db")
}

// requireSchool returns the session school or a friendly setup hint.
func (e *appEnv) requireSchool() (*types.School, error) {
	if e.school == nil {
		return nil, fmt.Errorf("no school registered in this workspace; run `brandstudio login` first")
	}
	return e.school, nil
}

// newManager wires the lifecycle manager with the real generation client.
func (e *appEnv) newManager(ctx context.Context) (*lifecycle.Manager, error) {
	gen, err := genclient.New(ctx, genclient.Config{
		APIKey:       e.cfg.APIKey,
		CaptionModel: e.cfg.CaptionModel,
		ImageModel:   e.cfg.ImageModel,
	})
	if err != nil {
		return nil, err
	}
	return lifecycle.New(e.store, gen), nil
}

// newOfflineManager wires a manager for read-only commands that never hit
// the network (list, show, delete, gallery).
func (e *appEnv) newOfflineManager() *lifecycle.Manager {
	return lifecycle.New(e.store, nil)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "workspace directory (default: current directory)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(brandingCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(regenerateCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(galleryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
