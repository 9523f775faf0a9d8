package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ishaan812/gitstory/internal/memory"
)

const listWidth = 42

// StoryModel is the Bubbletea model for the story browser. It is pure
// presentation: records and the generated story are handed in by the CLI
// and it performs no I/O of its own.
type StoryModel struct {
	width  int
	height int

	records []memory.CommitRecord
	story   string
	recent  int

	// cursor 0 selects the story itself; 1..len(records) select a commit.
	cursor int
	scroll int

	viewport viewport.Model
	ready    bool
	quitting bool
}

// NewStoryModel creates a story browser over extracted records.
func NewStoryModel(records []memory.CommitRecord, story string, recent int) StoryModel {
	vp := viewport.New(0, 0)
	vp.SetContent("")

	return StoryModel{
		records:  records,
		story:    story,
		recent:   recent,
		viewport: vp,
	}
}

func (m StoryModel) Init() tea.Cmd {
	return nil
}

func (m StoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = m.paneHeight() - 2
		m.ready = true
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshContent()
			}
		case "down", "j":
			if m.cursor < len(m.records) {
				m.cursor++
				m.refreshContent()
			}
		case "home", "g":
			m.cursor = 0
			m.refreshContent()
		case "end", "G":
			m.cursor = len(m.records)
			m.refreshContent()

		case "pgup", "b":
			m.viewport.ViewUp()
		case "pgdown", "f", " ":
			m.viewport.ViewDown()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *StoryModel) refreshContent() {
	if !m.ready {
		return
	}

	if m.cursor == 0 {
		m.viewport.SetContent(m.renderStory())
	} else {
		m.viewport.SetContent(renderCommitDetail(m.records[m.cursor-1]))
	}
	m.viewport.GotoTop()

	// Keep the cursor inside the visible window of the list.
	visible := m.paneHeight() - 2
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
}

func (m *StoryModel) renderStory() string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.contentWidth()-2),
	)
	if err != nil {
		return m.story
	}
	rendered, err := renderer.Render(m.story)
	if err != nil {
		return m.story
	}
	return rendered
}

func renderCommitDetail(r memory.CommitRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Commit %d: %s\n\n", r.Sequence, r.Headline)
	fmt.Fprintf(&b, "Date:     %s\n", r.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Author:   %s\n", r.Author)
	fmt.Fprintf(&b, "Category: %s\n\n", r.Category)
	fmt.Fprintf(&b, "Files changed (%d):\n", r.TotalFilesChanged)
	for _, f := range r.ChangedFiles {
		fmt.Fprintf(&b, "  %s (%s): +%d/-%d\n", f.FileName, f.Purpose, f.Insertions, f.Deletions)
	}
	fmt.Fprintf(&b, "\nInsertions: %d, Deletions: %d\n", r.TotalInsertions, r.TotalDeletions)
	if r.Message != r.Headline {
		fmt.Fprintf(&b, "\nFull message:\n%s\n", r.Message)
	}
	return b.String()
}

func (m StoryModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render("GitStory")
	subtitle := dimStyle.Render(fmt.Sprintf(" %d commits, %d detailed", len(m.records), m.detailedCount()))
	titleBar := lipgloss.JoinHorizontal(lipgloss.Top, title, subtitle)

	list := m.renderList()
	content := m.renderContent()
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, content)

	help := helpStyle.Render("up/down: select | pgup/pgdn: scroll | q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, titleBar, body, help)
}

func (m StoryModel) renderList() string {
	visible := m.paneHeight() - 2
	var lines []string

	for i := m.scroll; i <= len(m.records) && len(lines) < visible; i++ {
		prefix := "  "
		style := itemStyle
		if i == m.cursor {
			prefix = "> "
			style = cursorStyle
		}

		var label string
		if i == 0 {
			label = "Story"
		} else {
			r := m.records[i-1]
			badge := categoryStyles[r.Category].Render(fmt.Sprintf("[%s]", r.Category))
			label = fmt.Sprintf("%3d %s %s", r.Sequence, badge, truncate(r.Headline, listWidth-16))
		}
		lines = append(lines, style.Render(prefix)+label)
	}

	pane := strings.Join(lines, "\n")
	border := activeBorderStyle
	return border.Width(listWidth).Height(m.paneHeight() - 2).Render(pane)
}

func (m StoryModel) renderContent() string {
	header := headerStyle.Render(m.contentHeader())
	return inactiveBorderStyle.Width(m.contentWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View()))
}

func (m StoryModel) contentHeader() string {
	if m.cursor == 0 {
		return "Repository journey"
	}
	r := m.records[m.cursor-1]
	return fmt.Sprintf("Commit %d of %d", r.Sequence, len(m.records))
}

func (m StoryModel) contentWidth() int {
	w := m.width - listWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m StoryModel) paneHeight() int {
	h := m.height - 2
	if h < 6 {
		h = 6
	}
	return h
}

func (m StoryModel) detailedCount() int {
	if m.recent > len(m.records) {
		return len(m.records)
	}
	if m.recent < 0 {
		return 0
	}
	return m.recent
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// RunStoryBrowser opens the interactive browser over extracted records and
// a generated story.
func RunStoryBrowser(records []memory.CommitRecord, story string, recent int) error {
	model := NewStoryModel(records, story, recent)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run story browser: %w", err)
	}
	return nil
}
