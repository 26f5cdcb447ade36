// Package ui implements the interactive terminal browser: template and
// token lists with an assembled-prompt preview pane.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/framecraft/promptdeck/internal/clipboard"
	"github.com/framecraft/promptdeck/internal/models"
	"github.com/framecraft/promptdeck/internal/renderer"
	"github.com/framecraft/promptdeck/internal/service"
)

// createGlamourRenderer creates a glamour renderer with contrast handling
func createGlamourRenderer(wordWrap int) (*glamour.TermRenderer, error) {
	// Check for environment variable override first
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		return glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wordWrap),
		)
	}

	profile := termenv.ColorProfile()

	var styleOption glamour.TermRendererOption
	if lipgloss.HasDarkBackground() {
		styleOption = glamour.WithStandardStyle("dark")
	} else {
		styleOption = glamour.WithStandardStyle("light")
	}
	if profile == termenv.Ascii {
		styleOption = glamour.WithAutoStyle()
	}

	return glamour.NewTermRenderer(
		styleOption,
		glamour.WithColorProfile(profile),
		glamour.WithWordWrap(wordWrap),
	)
}

// ViewMode represents the current view in the TUI
type ViewMode int

const (
	ViewTemplates ViewMode = iota
	ViewTokens
	ViewTemplateDetail
)

type keyMap struct {
	Switch key.Binding
	Open   key.Binding
	Style  key.Binding
	Copy   key.Binding
	Back   key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Open, k.Style, k.Copy, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Open, k.Back},
		{k.Style, k.Copy, k.Save, k.Quit},
	}
}

var defaultKeys = keyMap{
	Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "templates/tokens")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "preview")),
	Style:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle style")),
	Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy prompt")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save config")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model for the interactive browser.
type Model struct {
	svc *service.Service

	mode         ViewMode
	templateList list.Model
	tokenList    list.Model
	preview      viewport.Model
	glamourRend  *glamour.TermRenderer
	help         help.Model
	keys         keyMap

	selected *models.Template
	hasStyle bool
	status   string
	width    int
	height   int
}

// NewModel creates the TUI model over an initialized service.
func NewModel(svc *service.Service) (*Model, error) {
	initializeStyles()

	rend, err := createGlamourRenderer(80)
	if err != nil {
		return nil, fmt.Errorf("failed to create glamour renderer: %w", err)
	}

	templateList := list.New(templateItems(svc), list.NewDefaultDelegate(), 0, 0)
	templateList.Title = "Templates"
	templateList.SetShowHelp(false)

	tokenList := list.New(tokenItems(svc), list.NewDefaultDelegate(), 0, 0)
	tokenList.Title = "Tokens"
	tokenList.SetShowHelp(false)

	return &Model{
		svc:          svc,
		templateList: templateList,
		tokenList:    tokenList,
		preview:      viewport.New(0, 0),
		glamourRend:  rend,
		help:         help.New(),
		keys:         defaultKeys,
	}, nil
}

func templateItems(svc *service.Service) []list.Item {
	var items []list.Item
	for _, t := range svc.Templates() {
		items = append(items, *t)
	}
	return items
}

func tokenItems(svc *service.Service) []list.Item {
	var items []list.Item
	for _, t := range svc.Tokens() {
		items = append(items, *t)
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - 4
		m.templateList.SetSize(msg.Width, listHeight)
		m.tokenList.SetSize(msg.Width, listHeight)
		m.preview.Width = msg.Width - 4
		m.preview.Height = msg.Height - 6
		if rend, err := createGlamourRenderer(m.preview.Width); err == nil {
			m.glamourRend = rend
		}
		if m.selected != nil {
			m.renderPreview()
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.mode == ViewTemplateDetail && msg.String() == "q" {
				m.mode = ViewTemplates
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.mode == ViewTemplateDetail {
				m.mode = ViewTemplates
			}
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.mode == ViewTemplates {
				m.mode = ViewTokens
			} else if m.mode == ViewTokens {
				m.mode = ViewTemplates
			}
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if m.mode == ViewTemplates {
				if item, ok := m.templateList.SelectedItem().(models.Template); ok {
					m.selected = &item
					m.mode = ViewTemplateDetail
					m.renderPreview()
				}
				return m, nil
			}

		case key.Matches(msg, m.keys.Style):
			if m.mode == ViewTemplateDetail {
				m.hasStyle = !m.hasStyle
				m.renderPreview()
				return m, nil
			}

		case key.Matches(msg, m.keys.Copy):
			if m.mode == ViewTemplateDetail && m.selected != nil {
				prompt := m.svc.Assembler().BuildPreview(*m.selected, m.hasStyle)
				if msgText, err := clipboard.CopyWithFallback(prompt); err != nil {
					m.status = errorStyle.Render(err.Error())
				} else {
					m.status = statusStyle.Render(msgText)
				}
				return m, nil
			}

		case key.Matches(msg, m.keys.Save):
			if err := m.svc.SaveConfig(); err != nil {
				m.status = errorStyle.Render(m.svc.Err())
			} else {
				m.status = statusStyle.Render("Config saved")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case ViewTemplates:
		m.templateList, cmd = m.templateList.Update(msg)
	case ViewTokens:
		m.tokenList, cmd = m.tokenList.Update(msg)
	case ViewTemplateDetail:
		m.preview, cmd = m.preview.Update(msg)
	}
	return m, cmd
}

// renderPreview rebuilds the detail pane for the selected template.
func (m *Model) renderPreview() {
	if m.selected == nil {
		return
	}

	asm := m.svc.Assembler()
	lookup := func(id string) (models.Token, bool) {
		return asm.GetToken(id)
	}

	var b strings.Builder
	b.WriteString(renderer.MarkdownSummary(*m.selected, lookup))
	b.WriteString("\n## Preview\n\n")
	b.WriteString(asm.BuildPreview(*m.selected, m.hasStyle))
	b.WriteString("\n")

	out, err := m.glamourRend.Render(b.String())
	if err != nil {
		out = b.String()
	}
	m.preview.SetContent(out)
	m.preview.GotoTop()
}

func (m Model) View() string {
	var body string
	switch m.mode {
	case ViewTemplates:
		body = m.templateList.View()
	case ViewTokens:
		body = m.tokenList.View()
	case ViewTemplateDetail:
		title := m.selected.Name
		if m.hasStyle {
			title += " (style on)"
		}
		body = titleStyle.Render(title) + "\n" + previewStyle.Render(m.preview.View())
	}

	status := m.status
	if status == "" && m.svc.HasUnsavedChanges() {
		status = warningStyle.Render("unsaved changes")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		status,
		helpStyle.Render(m.help.View(m.keys)),
	)
}
