// Package main branding and plan commands.
package main

import (
	"fmt"
	"os"

	"brandstudio/internal/types"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	brandingFile     string
	brandLogoURL     string
	brandPrimary     string
	brandSecondary   string
	brandTone        string
	brandFooter      string
	brandFont        string
	brandSocial      string
	brandLayoutStyle string
)

var brandingCmd = &cobra.Command{
	Use:   "branding",
	Short: "Manage the school's brand identity",
}

// brandingSetCmd replaces the branding config wholesale - there is no
// per-field update, matching the single save action of the setup page.
var brandingSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save the branding config (replaces any existing one)",
	Long: `Saves the school's branding wholesale, from flags or a YAML file.

Example file (branding.yaml):
  logoUrl: https://example.com/logo.png
  primaryColor: "#1a2b3c"
  secondaryColor: "#d4e5f6"
  tone: friendly
  footerText: Northside Academy - Est. 1974
  fontPreference: serif
  socialHandles: "@northside"
  layoutStyle: minimal`,
	RunE: runBrandingSet,
}

var brandingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current branding config",
	RunE:  runBrandingShow,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the subscription tier",
}

var planSetCmd = &cobra.Command{
	Use:   "set <free|basic|pro>",
	Short: "Change the subscription tier",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanSet,
}

// brandingFromYAML decodes a full branding config from a YAML file.
func brandingFromYAML(path string) (*types.BrandingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read branding file: %w", err)
	}
	var raw struct {
		LogoURL        string `yaml:"logoUrl"`
		PrimaryColor   string `yaml:"primaryColor"`
		SecondaryColor string `yaml:"secondaryColor"`
		Tone           string `yaml:"tone"`
		FooterText     string `yaml:"footerText"`
		FontPreference string `yaml:"fontPreference"`
		SocialHandles  string `yaml:"socialHandles"`
		LayoutStyle    string `yaml:"layoutStyle"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse branding file: %w", err)
	}
	return &types.BrandingConfig{
		LogoURL:        raw.LogoURL,
		PrimaryColor:   raw.PrimaryColor,
		SecondaryColor: raw.SecondaryColor,
		Tone:           types.BrandTone(raw.Tone),
		FooterText:     raw.FooterText,
		FontPreference: raw.FontPreference,
		SocialHandles:  raw.SocialHandles,
		LayoutStyle:    raw.LayoutStyle,
	}, nil
}

func runBrandingSet(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	school, err := env.requireSchool()
	if err != nil {
		return err
	}

	var branding *types.BrandingConfig
	if brandingFile != "" {
		branding, err = brandingFromYAML(brandingFile)
		if err != nil {
			return err
		}
	} else {
		branding = &types.BrandingConfig{
			LogoURL:        brandLogoURL,
			PrimaryColor:   brandPrimary,
			SecondaryColor: brandSecondary,
			Tone:           types.BrandTone(brandTone),
			FooterText:     brandFooter,
			FontPreference: brandFont,
			SocialHandles:  brandSocial,
			LayoutStyle:    brandLayoutStyle,
		}
	}

	if branding.PrimaryColor == "" {
		return fmt.Errorf("primaryColor is required")
	}
	switch branding.Tone {
	case types.ToneFormal, types.ToneFriendly, types.ToneInspirational:
	case "":
		branding.Tone = types.ToneFriendly
	default:
		return fmt.Errorf("unknown tone %q (formal, friendly, inspirational)", branding.Tone)
	}

	school.Branding = branding
	if err := env.store.SaveSchool(school); err != nil {
		return err
	}
	fmt.Printf("Branding saved for %s (tone %s).\n", school.Name, branding.Tone)
	return nil
}

func runBrandingShow(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	school, err := env.requireSchool()
	if err != nil {
		return err
	}
	if school.Branding == nil {
		fmt.Println("No branding configured yet. Run `brandstudio branding set`.")
		return nil
	}
	b := school.Branding
	fmt.Printf("Logo:     %s\n", b.LogoURL)
	fmt.Printf("Colors:   %s / %s\n", b.PrimaryColor, b.SecondaryColor)
	fmt.Printf("Tone:     %s\n", b.Tone)
	fmt.Printf("Footer:   %s\n", b.FooterText)
	fmt.Printf("Font:     %s\n", b.FontPreference)
	fmt.Printf("Social:   %s\n", b.SocialHandles)
	fmt.Printf("Layout:   %s\n", b.LayoutStyle)
	return nil
}

func runPlanSet(cmd *cobra.Command, args []string) error {
	tier := types.PlanTier(args[0])
	if !types.ValidTier(tier) {
		return fmt.Errorf("unknown tier %q (free, basic, pro)", args[0])
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	school, err := env.requireSchool()
	if err != nil {
		return err
	}

	school.PlanType = tier
	school.PlanLimit = env.cfg.Limits().ForTier(tier)
	if err := env.store.SaveSchool(school); err != nil {
		return err
	}
	fmt.Printf("Plan changed to %s (%d posts/month).\n", tier, school.PlanLimit)
	return nil
}

func init() {
	brandingCmd.AddCommand(brandingSetCmd)
	brandingCmd.AddCommand(brandingShowCmd)
	planCmd.AddCommand(planSetCmd)

	brandingSetCmd.Flags().StringVar(&brandingFile, "file", "", "YAML file with the full branding config")
	brandingSetCmd.Flags().StringVar(&brandLogoURL, "logo", "", "logo URL")
	brandingSetCmd.Flags().StringVar(&brandPrimary, "primary", "", "primary color (hex)")
	brandingSetCmd.Flags().StringVar(&brandSecondary, "secondary", "", "secondary color (hex)")
	brandingSetCmd.Flags().StringVar(&brandTone, "tone", "", "brand tone: formal, friendly, inspirational")
	brandingSetCmd.Flags().StringVar(&brandFooter, "footer", "", "footer text")
	brandingSetCmd.Flags().StringVar(&brandFont, "font", "", "font preference")
	brandingSetCmd.Flags().StringVar(&brandSocial, "social", "", "social handles")
	brandingSetCmd.Flags().StringVar(&brandLayoutStyle, "layout", "", "layout style")
}
