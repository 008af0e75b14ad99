// Package main session commands: login, logout, status.
package main

import (
	"fmt"

	"brandstudio/internal/config"
	"brandstudio/internal/logging"
	"brandstudio/internal/quota"
	"brandstudio/internal/types"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	loginName  string
	loginEmail string
)

// loginCmd bootstraps the workspace session: a fresh school record on the
// free tier with zero usage. No real authentication happens; this is a
// single-tenant local tool.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Register the school for this workspace",
	Long: `Creates the school record for this workspace with usage 0 on the
free tier, and writes a default config file if none exists.

Example:
  brandstudio login --name "Northside Academy" --email admin@northside.edu`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the school session (posts are kept)",
	RunE:  runLogout,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session, quota, and post counts",
	RunE:  runStatus,
}

func runLogin(cmd *cobra.Command, args []string) error {
	if loginName == "" || loginEmail == "" {
		return fmt.Errorf("both --name and --email are required")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if env.school != nil {
		return fmt.Errorf("school %q is already registered; run `brandstudio logout` first", env.school.Name)
	}

	school := &types.School{
		ID:        uuid.NewString(),
		Name:      loginName,
		Email:     loginEmail,
		PlanType:  types.PlanFree,
		PlanLimit: env.cfg.Limits().ForTier(types.PlanFree),
	}
	if err := env.store.SaveSchool(school); err != nil {
		return err
	}

	if path, err := config.WriteDefault(env.workspace); err == nil && path != "" {
		fmt.Printf("Wrote default config to %s\n", path)
	}

	logging.Boot("Registered school %s (%s)", school.Name, school.ID)
	fmt.Printf("Registered %s on the %s plan (%d posts/month).\n", school.Name, school.PlanType, school.PlanLimit)
	fmt.Println("Next: `brandstudio branding set` to configure your brand identity.")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if env.school == nil {
		fmt.Println("No active session.")
		return nil
	}
	if err := env.store.ClearSession(); err != nil {
		return err
	}
	fmt.Printf("Cleared session for %s. Posts were kept.\n", env.school.Name)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	school, err := env.requireSchool()
	if err != nil {
		return err
	}

	stats, err := env.newOfflineManager().CountByStatus(school.ID)
	if err != nil {
		return err
	}

	fmt.Printf("School:   %s <%s>\n", school.Name, school.Email)
	fmt.Printf("Plan:     %s (%d/%d generations used)\n", school.PlanType, school.PostsGeneratedThisMonth, school.PlanLimit)
	if school.Branding == nil {
		fmt.Println("Branding: not configured (required before creating posts)")
	} else {
		fmt.Printf("Branding: %s / %s, tone %s\n", school.Branding.PrimaryColor, school.Branding.SecondaryColor, school.Branding.Tone)
	}
	fmt.Printf("Posts:    %d total (%d generated, %d generating, %d failed)\n",
		stats.Total, stats.Generated, stats.Generating, stats.Failed)
	if !quota.SchoolCanGenerate(school) {
		fmt.Println("Quota exhausted: new posts will be rejected until the plan is upgraded.")
	}
	return nil
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "name", "", "school display name")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "school contact email")
}
