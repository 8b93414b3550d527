// Package preview provides the chunk pager TUI: one chunk at a time
// with a metadata header, paging between chunks with the arrow keys.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/corpora-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/corpora-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// headerHeight is the vertical space reserved above the viewport.
const headerHeight = 3

// footerHeight is the vertical space reserved below the viewport.
const footerHeight = 2

// Model is the chunk pager.
type Model struct {
	doc      *domain.Document
	chunks   []domain.Chunk
	index    int
	viewport viewport.Model
	keys     *keymap.KeyMap
	styles   *styles.Styles
	ready    bool
	width    int
}

// New creates a pager over the given chunks.
func New(doc *domain.Document, chunks []domain.Chunk) *Model {
	return &Model{
		doc:    doc,
		chunks: chunks,
		keys:   keymap.DefaultKeyMap(),
		styles: styles.DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - headerHeight - footerHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
			m.setChunkContent()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextChunk):
			if m.index < len(m.chunks)-1 {
				m.index++
				m.setChunkContent()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevChunk):
			if m.index > 0 {
				m.index--
				m.setChunkContent()
			}
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

// Index returns the current chunk index.
func (m *Model) Index() int {
	return m.index
}

// setChunkContent loads the current chunk into the viewport.
func (m *Model) setChunkContent() {
	if len(m.chunks) == 0 {
		m.viewport.SetContent(m.styles.Muted.Render("(no chunks)"))
		return
	}
	m.viewport.SetContent(m.styles.Normal.Render(m.chunks[m.index].Content))
	m.viewport.GotoTop()
}

func (m *Model) headerView() string {
	title := "Preview"
	if m.doc != nil && m.doc.Title != "" {
		title = m.doc.Title
	}

	var meta string
	if len(m.chunks) == 0 {
		meta = "no chunks"
	} else {
		chunk := &m.chunks[m.index]
		meta = fmt.Sprintf("chunk %d/%d · %d words · %d chars · %s",
			m.index+1, len(m.chunks),
			chunk.Metadata.WordCount, chunk.Metadata.CharCount,
			chunk.Metadata.InferredTitle)
	}

	return m.styles.Title.Render(title) + "\n" +
		m.styles.Subtitle.Render(meta) + "\n" +
		strings.Repeat("─", maxInt(m.width, 1))
}

func (m *Model) footerView() string {
	scroll := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)

	bindings := []key.Binding{m.keys.PrevChunk, m.keys.NextChunk, m.keys.Quit}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = h.Key + " " + h.Desc
	}

	return m.styles.Muted.Render(scroll) + "  " + m.styles.Help.Render(strings.Join(parts, " · "))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
