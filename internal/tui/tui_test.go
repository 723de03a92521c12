package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/afibcare/afibcare/internal/config"
	"github.com/afibcare/afibcare/internal/service"
	"github.com/afibcare/afibcare/internal/tui/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "records.json")
	configPath := filepath.Join(tmpDir, "config.toml")
	cfg := config.DefaultConfig()

	return service.NewServicesWithPaths(storePath, configPath, cfg)
}

func TestNew(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	if model.activeTab != TabCheckin {
		t.Errorf("expected initial tab to be Check-in, got %d", model.activeTab)
	}
	if model.services == nil {
		t.Error("expected services to be set")
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
}

func TestInit(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	cmd := model.Init()
	if cmd == nil {
		t.Error("expected Init to return a command")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := newModel.(Model)

	if m.width != 100 {
		t.Errorf("expected width 100, got %d", m.width)
	}
	if m.height != 50 {
		t.Errorf("expected height 50, got %d", m.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	_ = newModel

	// Quit should return a tea.Quit command
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_HelpKey(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m := newModel.(Model)

	if !m.showHelp {
		t.Error("expected showHelp to be true after pressing ?")
	}

	// Toggle off
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)

	if m.showHelp {
		t.Error("expected showHelp to be false after pressing ? again")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	if model.activeTab != TabCheckin {
		t.Errorf("expected initial tab TabCheckin, got %d", model.activeTab)
	}

	// Press tab to go to next tab
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)

	if m.activeTab != TabHistory {
		t.Errorf("expected TabHistory after pressing tab, got %d", m.activeTab)
	}
}

func TestUpdate_DirectTabKeys(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	tests := []struct {
		key      rune
		expected Tab
	}{
		{'1', TabCheckin},
		{'2', TabHistory},
		{'3', TabCharts},
		{'4', TabLearn},
	}

	for _, tt := range tests {
		newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
		m := newModel.(Model)

		if m.activeTab != tt.expected {
			t.Errorf("pressing %c: expected tab %d, got %d", tt.key, tt.expected, m.activeTab)
		}
	}
}

func TestUpdate_PrevTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	model.activeTab = TabHistory

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m := newModel.(Model)

	if m.activeTab != TabCheckin {
		t.Errorf("expected TabCheckin after shift+tab, got %d", m.activeTab)
	}
}

func TestUpdate_PrevTab_Wraparound(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	model.activeTab = TabCheckin

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m := newModel.(Model)

	if m.activeTab != TabLearn {
		t.Errorf("expected TabLearn (wraparound) after shift+tab from TabCheckin, got %d", m.activeTab)
	}
}

func TestUpdate_NextTab_Wraparound(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	model.activeTab = TabLearn

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)

	if m.activeTab != TabCheckin {
		t.Errorf("expected TabCheckin (wraparound) after tab from TabLearn, got %d", m.activeTab)
	}
}

func TestUpdate_ThemeKey(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	before := model.themeProvider.CurrentName()

	newModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'T'}})
	m := newModel.(Model)

	if m.themeProvider.CurrentName() == before {
		t.Error("expected theme to change after pressing T")
	}
	if cmd == nil {
		t.Error("expected a command to persist the theme")
	}
}

func TestView_Loading(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	// Before window size is set, width is 0
	view := model.View()

	if !strings.Contains(view, "Loading") {
		t.Errorf("expected 'Loading...' when width is 0, got %q", view)
	}
}

func TestView_WithSize(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	view := m.View()

	if !strings.Contains(view, "Check-in") {
		t.Error("expected 'Check-in' tab in view")
	}

	if !strings.Contains(view, "quit") {
		t.Error("expected 'quit' in status bar")
	}
}

func TestView_AllTabs(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	tabs := []Tab{TabCheckin, TabHistory, TabCharts, TabLearn}
	for _, tab := range tabs {
		m.activeTab = tab
		view := m.View()

		if view == "" {
			t.Errorf("expected non-empty view for tab %d", tab)
		}
	}
}

func TestRenderTabs(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	tabs := model.renderTabs()

	for _, name := range tabNames {
		if !strings.Contains(tabs, name) {
			t.Errorf("expected tab name %s in rendered tabs", name)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)
	model.width = 80

	statusBar := model.renderStatusBar()

	if !strings.Contains(statusBar, "1-4") {
		t.Error("expected '1-4' in status bar")
	}
	if !strings.Contains(statusBar, "quit") {
		t.Error("expected 'quit' in status bar")
	}
	if !strings.Contains(statusBar, "?") {
		t.Error("expected '?' in status bar")
	}
}

func TestRenderStatusBar_CheckinTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)
	model.width = 80
	model.activeTab = TabCheckin

	statusBar := model.renderStatusBar()

	if !strings.Contains(statusBar, "toggle") {
		t.Error("expected 'toggle' in status bar for check-in tab")
	}
	if !strings.Contains(statusBar, "edit") {
		t.Error("expected 'edit' in status bar for check-in tab")
	}
}

func TestRenderStatusBar_HistoryTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)
	model.width = 80
	model.activeTab = TabHistory

	statusBar := model.renderStatusBar()

	if !strings.Contains(statusBar, "delete") {
		t.Error("expected 'delete' in status bar for history tab")
	}
	if !strings.Contains(statusBar, "range") {
		t.Error("expected 'range' in status bar for history tab")
	}
}

func TestRenderStatusBar_ChartsTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)
	model.width = 80
	model.activeTab = TabCharts

	statusBar := model.renderStatusBar()

	if !strings.Contains(statusBar, "metric") {
		t.Error("expected 'metric' in status bar for charts tab")
	}
}

func TestRenderKeyHelp(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	help := model.renderKeyHelp("q", "quit")

	if !strings.Contains(help, "q") {
		t.Error("expected key 'q' in key help")
	}
	if !strings.Contains(help, "quit") {
		t.Error("expected description 'quit' in key help")
	}
}

func TestInitCurrentView(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	tabs := []Tab{TabCheckin, TabHistory, TabCharts, TabLearn}
	for _, tab := range tabs {
		model.activeTab = tab
		cmd := model.initCurrentView()
		// Some views may return nil, others return a command
		_ = cmd
	}
}

func TestInitCurrentView_InvalidTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	model.activeTab = Tab(999)
	cmd := model.initCurrentView()

	if cmd != nil {
		t.Error("expected nil command for invalid tab")
	}
}

func TestTabNames(t *testing.T) {
	expectedNames := []string{"Check-in", "History", "Charts", "Learn"}

	if len(tabNames) != len(expectedNames) {
		t.Errorf("expected %d tab names, got %d", len(expectedNames), len(tabNames))
	}

	for i, name := range expectedNames {
		if tabNames[i] != name {
			t.Errorf("expected tab name %d to be %s, got %s", i, name, tabNames[i])
		}
	}
}

func TestTabConstants(t *testing.T) {
	if TabCheckin != 0 {
		t.Error("TabCheckin should be 0")
	}
	if TabHistory != 1 {
		t.Error("TabHistory should be 1")
	}
	if TabCharts != 2 {
		t.Error("TabCharts should be 2")
	}
	if TabLearn != 3 {
		t.Error("TabLearn should be 3")
	}
}

func TestUpdate_PassesMessagesToViews(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	// Send a key that would be handled by the view
	tabs := []Tab{TabCheckin, TabHistory, TabCharts, TabLearn}
	for _, tab := range tabs {
		m.activeTab = tab
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}) // Down key
		m = newModel.(Model)
	}
}

func TestUpdate_ModalInputBlocksTabSwitch(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	// Enter edit mode on the pulse field (cursor starts there)
	m.activeTab = TabCheckin
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	if !m.checkinView.IsInputMode() {
		t.Fatal("expected check-in view to be in input mode after enter")
	}

	// Pressing '2' should NOT switch to History because a text edit is open
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = newModel.(Model)

	if m.activeTab != TabCheckin {
		t.Errorf("expected to stay on TabCheckin when in modal input mode, got %d", m.activeTab)
	}

	// Tab should also NOT switch views in modal input mode
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(Model)

	if m.activeTab != TabCheckin {
		t.Errorf("expected Tab to NOT switch views in modal input mode, got %d", m.activeTab)
	}
}

func TestUpdate_ThemeChangeRequestBroadcasts(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, cmd := model.Update(ui.ThemeChangeRequestMsg{ThemeName: "nord"})
	m := newModel.(Model)

	if m.themeProvider.CurrentName() != "nord" {
		t.Errorf("expected theme nord, got %s", m.themeProvider.CurrentName())
	}
	if cmd == nil {
		t.Error("expected a command to persist the theme")
	}
}
