// Package tui provides the Terminal User Interface for the afibcare application.
package tui

import (
	"fmt"
	"strings"

	"github.com/afibcare/afibcare/internal/service"
	"github.com/afibcare/afibcare/internal/tui/ui"
	"github.com/afibcare/afibcare/internal/tui/views"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab represents a view tab
type Tab int

const (
	TabCheckin Tab = iota
	TabHistory
	TabCharts
	TabLearn
)

var tabNames = []string{"Check-in", "History", "Charts", "Learn"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	checkinView views.CheckinModel
	historyView views.HistoryModel
	chartsView  views.ChartsModel
	learnView   views.LearnModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	// Initialize theme from config
	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabCheckin,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		checkinView:   views.NewCheckinModel(services, styles, keys),
		historyView:   views.NewHistoryModel(services, styles, keys),
		chartsView:    views.NewChartsModel(services, styles, keys),
		learnView:     views.NewLearnModel(styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.checkinView.Init(),
		m.historyView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Check input modes:
		// - modalInput: blocks ALL global keys (check-in text edit)
		// - capturingKeys: blocks character keys but allows Tab (delete confirm)
		modalInput := m.isModalInputMode()
		capturingKeys := m.isCapturingKeys()

		// Handle global keys first
		switch {
		case key.Matches(msg, m.keys.Quit) && !capturingKeys:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturingKeys:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Theme) && !capturingKeys:
			m.themeProvider.NextTheme()
			cmd := m.applyTheme()
			return m, cmd

		case key.Matches(msg, m.keys.NextTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturingKeys:
			m.activeTab = TabCheckin
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturingKeys:
			m.activeTab = TabHistory
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturingKeys:
			m.activeTab = TabCharts
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab4) && !capturingKeys:
			m.activeTab = TabLearn
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update view dimensions
		contentHeight := m.height - 4 // Account for tabs and status bar
		m.checkinView.SetSize(m.width, contentHeight)
		m.historyView.SetSize(m.width, contentHeight)
		m.chartsView.SetSize(m.width, contentHeight)
		m.learnView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		cmd := m.applyTheme()
		return m, cmd
	}

	// Update the active view
	switch m.activeTab {
	case TabCheckin:
		m.checkinView, cmd = m.checkinView.Update(msg)
	case TabHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case TabCharts:
		m.chartsView, cmd = m.chartsView.Update(msg)
	case TabLearn:
		m.learnView, cmd = m.learnView.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// applyTheme rebuilds the styles from the current theme, broadcasts the
// change to all views, and persists the selection to the config file.
func (m *Model) applyTheme() tea.Cmd {
	newTheme := m.themeProvider.CurrentName()
	m.styles = m.themeProvider.Styles()

	themeMsg := ui.ThemeChangedMsg{
		ThemeName: newTheme,
		Styles:    m.styles,
	}
	m.checkinView, _ = m.checkinView.Update(themeMsg)
	m.historyView, _ = m.historyView.Update(themeMsg)
	m.chartsView, _ = m.chartsView.Update(themeMsg)
	m.learnView, _ = m.learnView.Update(themeMsg)

	return m.saveThemeConfig(newTheme)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Render tabs
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	// Render active view
	switch m.activeTab {
	case TabCheckin:
		b.WriteString(m.checkinView.View())
	case TabHistory:
		b.WriteString(m.historyView.View())
	case TabCharts:
		b.WriteString(m.chartsView.View())
	case TabLearn:
		b.WriteString(m.learnView.View())
	}

	// Render status bar
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	// Help overlay
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	// Check if in modal input mode for context-specific hints
	if m.isModalInputMode() {
		parts = append(parts, m.renderKeyHelp("Enter", "save"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		// View-specific keys
		switch m.activeTab {
		case TabCheckin:
			parts = append(parts, m.renderKeyHelp("j/k", "field"))
			parts = append(parts, m.renderKeyHelp("space", "toggle"))
			parts = append(parts, m.renderKeyHelp("enter", "edit"))
			parts = append(parts, m.renderKeyHelp("h/l", "day"))
		case TabHistory:
			parts = append(parts, m.renderKeyHelp("j/k", "move"))
			parts = append(parts, m.renderKeyHelp("w/f/m/a", "range"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
		case TabCharts:
			parts = append(parts, m.renderKeyHelp("p/b", "metric"))
			parts = append(parts, m.renderKeyHelp("w/f/m/a", "range"))
		case TabLearn:
			parts = append(parts, m.renderKeyHelp("j/k", "topic"))
		}

		// Global keys
		parts = append(parts, m.renderKeyHelp("1-4", "views"))
		parts = append(parts, m.renderKeyHelp("T", "theme"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode checks if the current view is in a modal input mode
// where the user should not be able to switch views (check-in text edit)
func (m Model) isModalInputMode() bool {
	switch m.activeTab {
	case TabCheckin:
		return m.checkinView.IsInputMode()
	case TabHistory:
		return m.historyView.IsInputMode()
	}
	return false
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	return m.isModalInputMode()
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabCheckin:
		return m.checkinView.Init()
	case TabHistory:
		return m.historyView.Init()
	case TabCharts:
		return m.chartsView.Init()
	case TabLearn:
		return m.learnView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

// GetThemeProvider returns the theme provider for use by views
func (m Model) GetThemeProvider() *ui.ThemeProvider {
	return m.themeProvider
}

// renderHelpOverlay renders a help overlay on top of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	// Global keys
	help.WriteString(m.styles.FieldLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-4    Switch views\n")
	help.WriteString("  T          Cycle theme\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	// View-specific keys
	switch m.activeTab {
	case TabCheckin:
		help.WriteString(m.styles.FieldLabel.Render("Check-in:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Move between fields\n")
		help.WriteString("  Space      Toggle symptom or dose\n")
		help.WriteString("  Enter      Edit vitals, notes, fatigue\n")
		help.WriteString("  h/l        Previous/next day\n")
		help.WriteString("  r          Refresh\n")
	case TabHistory:
		help.WriteString(m.styles.FieldLabel.Render("History:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Move between days\n")
		help.WriteString("  w/f/m/a    Week, fortnight, month, all\n")
		help.WriteString("  d          Delete selected day\n")
		help.WriteString("  r          Refresh\n")
	case TabCharts:
		help.WriteString(m.styles.FieldLabel.Render("Charts:"))
		help.WriteString("\n")
		help.WriteString("  p          Pulse chart\n")
		help.WriteString("  b          Blood pressure chart\n")
		help.WriteString("  w/f/m/a    Week, fortnight, month, all\n")
		help.WriteString("  r          Refresh\n")
	case TabLearn:
		help.WriteString(m.styles.FieldLabel.Render("Learn:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Move between topics\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.FieldLabel.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())
	return m.styles.App.Render(helpBox)
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
