package views

import (
	"fmt"
	"strings"

	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/service"
	"github.com/afibcare/afibcare/internal/tui/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// historyMode represents the current mode of the history view
type historyMode int

const (
	historyModeNormal historyMode = iota
	historyModeDelete
)

// Range presets for the history listing, in days. Zero means everything.
const (
	rangeWeek      = 7
	rangeFortnight = 14
	rangeMonth     = 30
	rangeAll       = 0
)

// HistoryModel is the model for the history view: recorded days ascending
// by date, with alert markers and a detail pane for the selected day.
type HistoryModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	cursor  int
	days    []service.Day
	last    int
	warning string
	err     error

	mode historyMode
}

// NewHistoryModel creates a new history view model
func NewHistoryModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) HistoryModel {
	return HistoryModel{
		services: services,
		styles:   styles,
		keys:     keys,
		last:     rangeFortnight,
	}
}

// historyLoadedMsg is sent when the history listing is loaded
type historyLoadedMsg struct {
	days    []service.Day
	warning string
	err     error
}

// Init implements tea.Model
func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistory()
}

// Update implements tea.Model
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == historyModeDelete {
			return m.handleDeleteMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.days)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Week):
			m.last = rangeWeek
			return m, m.loadHistory()
		case key.Matches(msg, m.keys.Fortnight):
			m.last = rangeFortnight
			return m, m.loadHistory()
		case key.Matches(msg, m.keys.Month):
			m.last = rangeMonth
			return m, m.loadHistory()
		case key.Matches(msg, m.keys.All):
			m.last = rangeAll
			return m, m.loadHistory()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadHistory()
		case key.Matches(msg, m.keys.Delete):
			if len(m.days) > 0 && m.cursor < len(m.days) {
				m.mode = historyModeDelete
			}
			return m, nil
		}

	case historyLoadedMsg:
		m.err = msg.err
		m.mode = historyModeNormal
		if msg.err == nil {
			m.days = msg.days
			m.warning = msg.warning
			if m.cursor >= len(m.days) {
				m.cursor = max(0, len(m.days)-1)
			}
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleDeleteMode handles key events in the delete confirmation dialog
func (m HistoryModel) handleDeleteMode(msg tea.KeyMsg) (HistoryModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.cursor < len(m.days) {
			date := m.days[m.cursor].Entry.Date
			m.mode = historyModeNormal
			return m, m.deleteDay(date)
		}
	case "n", "N", "esc":
		m.mode = historyModeNormal
	}
	return m, nil
}

// View implements tea.Model
func (m HistoryModel) View() string {
	if m.mode == historyModeDelete {
		return m.renderDeleteConfirm()
	}

	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("History — " + m.rangeLabel()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Danger.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if len(m.days) == 0 {
		b.WriteString(m.styles.Muted.Render("No entries recorded"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("Record a day in the Check-in view"))
		return b.String()
	}

	for i, day := range m.days {
		b.WriteString(m.renderRow(i, day))
	}

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 20))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d %s", len(m.days), pluralize("day", len(m.days))))
	b.WriteString("\n\n")
	b.WriteString(m.renderDetail(m.days[m.cursor]))

	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Warning: " + m.warning))
	}

	return b.String()
}

// renderRow renders a single history row.
func (m HistoryModel) renderRow(i int, day service.Day) string {
	e := day.Entry

	date := m.styles.RowDate.Render(e.Date)
	vitals := m.styles.RowVitals.Render(fmt.Sprintf("%-10s %-12s %-8s",
		rowVital(e.Pulse),
		rowBP(e.BPSys, e.BPDia),
		record.FatigueLabel(e.Fatigue)))
	marker := m.styles.RowMarker.Render(severityMarker(day, m.styles))

	line := fmt.Sprintf("%s %s %s", date, vitals, marker)
	style := m.styles.RowNormal
	if i == m.cursor {
		style = m.styles.RowSelected
	}
	return style.Render(line) + "\n"
}

// renderDetail renders the full entry for the selected day.
func (m HistoryModel) renderDetail(day service.Day) string {
	e := day.Entry
	var b strings.Builder

	b.WriteString(m.styles.FieldLabel.Render("Selected:"))
	b.WriteString(m.styles.FieldValue.Render(e.Date))
	b.WriteString("\n")
	b.WriteString(m.styles.FieldLabel.Render("Pulse:"))
	b.WriteString(vitalText(e.Pulse, "bpm"))
	b.WriteString("\n")
	b.WriteString(m.styles.FieldLabel.Render("Blood pressure:"))
	b.WriteString(bpText(e.BPSys, e.BPDia))
	b.WriteString("\n")
	b.WriteString(m.styles.FieldLabel.Render("Meds:"))
	b.WriteString(medsSummary(e.Meds))
	b.WriteString("\n")
	if e.Notes != "" {
		b.WriteString(m.styles.FieldLabel.Render("Notes:"))
		b.WriteString(notesPreview(e.Notes))
		b.WriteString("\n")
	}

	if alerts := renderAlerts(&day, m.styles); alerts != "" {
		b.WriteString("\n")
		b.WriteString(alerts)
	}

	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m HistoryModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if m.cursor < len(m.days) {
		e := m.days[m.cursor].Entry
		b.WriteString(m.styles.Warning.Render("Remove the entry for " + e.Date + "? A backup is kept."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Muted.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// rangeLabel names the active range preset.
func (m HistoryModel) rangeLabel() string {
	switch m.last {
	case rangeWeek:
		return "last week"
	case rangeFortnight:
		return "last fortnight"
	case rangeMonth:
		return "last month"
	default:
		return "all recorded days"
	}
}

// SetSize sets the view dimensions
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Days returns the loaded days for testing.
func (m HistoryModel) Days() []service.Day {
	return m.days
}

// IsInputMode returns true when the view is capturing keys for a dialog
func (m HistoryModel) IsInputMode() bool {
	return m.mode == historyModeDelete
}

// loadHistory creates a command to load the history listing
func (m HistoryModel) loadHistory() tea.Cmd {
	last := m.last
	return func() tea.Msg {
		result, err := m.services.History.List("", "", last)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{days: result.Days, warning: result.Warning}
	}
}

// deleteDay creates a command to remove one day's entry and reload
func (m HistoryModel) deleteDay(date string) tea.Cmd {
	last := m.last
	return func() tea.Msg {
		if _, err := m.services.Checkin.Reset(date); err != nil {
			return historyLoadedMsg{err: err}
		}
		result, err := m.services.History.List("", "", last)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{days: result.Days, warning: result.Warning}
	}
}

// rowVital renders a vital for the compact history row.
func rowVital(s string) string {
	if _, ok := record.ParseVital(s); !ok {
		return "—"
	}
	return s
}

// rowBP renders the blood pressure pair for the compact history row.
func rowBP(sys, dia string) string {
	_, sysOK := record.ParseVital(sys)
	_, diaOK := record.ParseVital(dia)
	if !sysOK && !diaOK {
		return "—"
	}
	if !sysOK {
		sys = "?"
	}
	if !diaOK {
		dia = "?"
	}
	return sys + "/" + dia
}

// medsSummary summarizes medication adherence for a day.
func medsSummary(meds record.Meds) string {
	am := 0
	if meds.AM.Multaq {
		am++
	}
	if meds.AM.Edoxaban {
		am++
	}
	if meds.AM.Bisoprolol {
		am++
	}
	pm := 0
	if meds.PM.Multaq {
		pm++
	}
	return fmt.Sprintf("AM %d/3  PM %d/1", am, pm)
}
