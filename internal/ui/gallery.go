package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"brandstudio/internal/lifecycle"
	"brandstudio/internal/logging"
	"brandstudio/internal/types"
)

// refreshInterval drives the poll that picks up posts finishing in another
// invocation while the gallery is open.
const refreshInterval = 2 * time.Second

type tickMsg time.Time

// GalleryModel is the bubbletea model for the post gallery: a table of the
// school's posts newest-first with status badges, and a usage footer.
type GalleryModel struct {
	manager *lifecycle.Manager
	school  *types.School
	styles  Styles

	posts    []types.Post
	cursor   int
	spinner  spinner.Model
	loadErr  error
	width    int
	detail   string // non-empty when the detail pane is open
	quitting bool
}

// NewGallery creates a gallery over the given manager and school session.
func NewGallery(manager *lifecycle.Manager, school *types.School) GalleryModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return GalleryModel{
		manager: manager,
		school:  school,
		styles:  DefaultStyles(),
		spinner: sp,
	}
}

// Init loads the first snapshot and starts the refresh tick.
func (m GalleryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh reloads the post list from the store.
func (m *GalleryModel) refresh() {
	posts, err := m.manager.List(m.school.ID)
	if err != nil {
		logging.Get(logging.CategoryUI).Error("Gallery refresh failed: %v", err)
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.posts = posts
	if m.cursor >= len(m.posts) {
		m.cursor = len(m.posts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles key and tick messages.
func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.detail != "" {
				m.detail = ""
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.posts)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.posts) {
				detail, err := RenderPostDetail(&m.posts[m.cursor])
				if err != nil {
					detail = fmt.Sprintf("render error: %v", err)
				}
				m.detail = detail
			}
		case "r":
			m.refresh()
		}
	}
	return m, nil
}

// View renders the gallery or, when open, the detail pane.
func (m GalleryModel) View() string {
	if m.quitting {
		return ""
	}
	if m.detail != "" {
		return m.detail + "\n" + m.styles.Footer.Render("esc: back to gallery")
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(fmt.Sprintf("%s / post gallery", m.school.Name)))
	sb.WriteString("\n\n")

	if m.loadErr != nil {
		sb.WriteString(fmt.Sprintf("could not load posts: %v\n", m.loadErr))
	}
	if len(m.posts) == 0 {
		sb.WriteString("No posts yet. Run `brandstudio create` to generate one.\n")
	}

	for i, p := range m.posts {
		line := fmt.Sprintf("%s  %-30s %-7s %-5s %s",
			m.styles.StatusBadge(p.Status),
			truncate(p.Title, 30),
			p.PostType,
			p.AspectRatio,
			p.CreatedAt.Local().Format("2006-01-02 15:04"))
		if p.Status == types.PostStatusGenerating {
			line = m.spinner.View() + " " + line
		}
		if i == m.cursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString(m.styles.Normal.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render(fmt.Sprintf(
		"usage %d/%d · %d posts · enter: detail · r: refresh · q: quit",
		m.school.PostsGeneratedThisMonth, m.school.PlanLimit, len(m.posts))))
	return sb.String()
}

func truncate(s string, l int) string {
	if len(s) > l {
		return s[:l-3] + "..."
	}
	return s
}

// Run starts the gallery program and blocks until the user quits.
func Run(manager *lifecycle.Manager, school *types.School) error {
	m := NewGallery(manager, school)
	m.refresh()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
