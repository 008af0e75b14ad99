// Package ui provides the gallery TUI and post detail rendering for the
// brandstudio interactive views.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"brandstudio/internal/types"
)

// Semantic colors for post status badges.
var (
	successColor = lipgloss.Color("#8BC34A")
	pendingColor = lipgloss.Color("#FFC107")
	failedColor  = lipgloss.Color("#e53935")
	mutedColor   = lipgloss.Color("#6c7a89")
)

// Styles holds the lipgloss styles used by the gallery.
type Styles struct {
	Header   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Footer   lipgloss.Style

	BadgeGenerated  lipgloss.Style
	BadgeGenerating lipgloss.Style
	BadgeFailed     lipgloss.Style
	BadgeDraft      lipgloss.Style
}

// DefaultStyles returns the gallery's default styling.
func DefaultStyles() Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Underline(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(successColor),
		Normal:   lipgloss.NewStyle(),
		Footer:   lipgloss.NewStyle().Foreground(mutedColor),

		BadgeGenerated:  badge.Foreground(successColor),
		BadgeGenerating: badge.Foreground(pendingColor),
		BadgeFailed:     badge.Foreground(failedColor),
		BadgeDraft:      badge.Foreground(mutedColor),
	}
}

// StatusBadge renders the badge text for a post status. Failed posts stay
// visible with a distinct badge rather than disappearing, so the user can
// retry via regenerate.
func (s Styles) StatusBadge(status types.PostStatus) string {
	switch status {
	case types.PostStatusGenerated:
		return s.BadgeGenerated.Render("generated")
	case types.PostStatusGenerating:
		return s.BadgeGenerating.Render("generating")
	case types.PostStatusFailed:
		return s.BadgeFailed.Render("failed")
	default:
		return s.BadgeDraft.Render(string(status))
	}
}
