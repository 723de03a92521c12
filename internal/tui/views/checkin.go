package views

import (
	"fmt"
	"strings"

	"github.com/afibcare/afibcare/internal/dateutil"
	"github.com/afibcare/afibcare/internal/record"
	"github.com/afibcare/afibcare/internal/service"
	"github.com/afibcare/afibcare/internal/tui/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Check-in form fields, in cursor order.
const (
	fieldPulse = iota
	fieldSys
	fieldDia
	fieldDizziness
	fieldSyncope
	fieldDyspnea
	fieldEdema
	fieldBleeding
	fieldFatigue
	fieldAMMultaq
	fieldAMEdoxaban
	fieldAMBisoprolol
	fieldPMMultaq
	fieldNotes
	fieldCount
)

// CheckinModel is the model for the daily check-in form view. Every change
// is persisted immediately through the check-in service; there is no
// separate save step.
type CheckinModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	date    string
	day     *service.Day
	warning string
	err     error

	cursor  int
	editing bool
	input   textinput.Model
}

// NewCheckinModel creates a new check-in view model for today's date.
func NewCheckinModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) CheckinModel {
	input := textinput.New()
	input.CharLimit = 200
	input.Width = 30

	return CheckinModel{
		services: services,
		styles:   styles,
		keys:     keys,
		date:     dateutil.Today(),
		input:    input,
	}
}

// dayLoadedMsg is sent when the entry for the current date is loaded or
// after a field change was persisted.
type dayLoadedMsg struct {
	day     *service.Day
	warning string
	err     error
}

// Init implements tea.Model
func (m CheckinModel) Init() tea.Cmd {
	return m.loadDay()
}

// Update implements tea.Model
func (m CheckinModel) Update(msg tea.Msg) (CheckinModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < fieldCount-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Left):
			return m.shiftDate(-1)
		case key.Matches(msg, m.keys.Right):
			return m.shiftDate(1)
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadDay()
		case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Select):
			return m.activateField()
		}

	case dayLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.day = msg.day
			m.warning = msg.warning
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleEditMode handles key events while a text field is being edited.
func (m CheckinModel) handleEditMode(msg tea.KeyMsg) (CheckinModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		value := strings.TrimSpace(m.input.Value())
		m.editing = false
		m.input.Blur()
		return m, m.logText(m.cursor, value)
	case key.Matches(msg, m.keys.Back): // Escape
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// activateField toggles, cycles or starts editing the field under the
// cursor.
func (m CheckinModel) activateField() (CheckinModel, tea.Cmd) {
	if m.day == nil {
		return m, nil
	}
	e := m.day.Entry

	switch m.cursor {
	case fieldPulse, fieldSys, fieldDia, fieldNotes:
		m.editing = true
		m.input.SetValue(m.textFieldValue())
		m.input.Placeholder = m.textFieldPlaceholder()
		m.input.Focus()
		m.input.CursorEnd()
		return m, textinput.Blink

	case fieldDizziness:
		return m, m.logPatch(record.Patch{Dizziness: boolPtr(!e.Dizziness)})
	case fieldSyncope:
		return m, m.logPatch(record.Patch{Syncope: boolPtr(!e.Syncope)})
	case fieldDyspnea:
		return m, m.logPatch(record.Patch{Dyspnea: boolPtr(!e.Dyspnea)})
	case fieldEdema:
		return m, m.logPatch(record.Patch{Edema: boolPtr(!e.Edema)})
	case fieldBleeding:
		return m, m.logPatch(record.Patch{Bleeding: boolPtr(!e.Bleeding)})

	case fieldFatigue:
		return m, m.logPatch(record.Patch{Fatigue: strPtr(nextFatigue(e.Fatigue))})

	case fieldAMMultaq:
		return m, m.logMorning(record.MorningPatch{Multaq: boolPtr(!e.Meds.AM.Multaq)})
	case fieldAMEdoxaban:
		return m, m.logMorning(record.MorningPatch{Edoxaban: boolPtr(!e.Meds.AM.Edoxaban)})
	case fieldAMBisoprolol:
		return m, m.logMorning(record.MorningPatch{Bisoprolol: boolPtr(!e.Meds.AM.Bisoprolol)})
	case fieldPMMultaq:
		p := record.EveningPatch{Multaq: boolPtr(!e.Meds.PM.Multaq)}
		return m, m.logPatch(record.Patch{Meds: &record.MedsPatch{PM: &p}})
	}

	return m, nil
}

// shiftDate moves the form to an adjacent date.
func (m CheckinModel) shiftDate(days int) (CheckinModel, tea.Cmd) {
	t, err := dateutil.Parse(m.date)
	if err != nil {
		return m, nil
	}
	m.date = dateutil.Format(t.AddDate(0, 0, days))
	m.cursor = 0
	return m, m.loadDay()
}

// textFieldValue returns the stored value of the text field under the
// cursor.
func (m CheckinModel) textFieldValue() string {
	e := m.day.Entry
	switch m.cursor {
	case fieldPulse:
		return e.Pulse
	case fieldSys:
		return e.BPSys
	case fieldDia:
		return e.BPDia
	case fieldNotes:
		return e.Notes
	}
	return ""
}

func (m CheckinModel) textFieldPlaceholder() string {
	switch m.cursor {
	case fieldPulse:
		return "Pulse in bpm..."
	case fieldSys:
		return "Systolic in mmHg..."
	case fieldDia:
		return "Diastolic in mmHg..."
	case fieldNotes:
		return "Notes..."
	}
	return ""
}

// View implements tea.Model
func (m CheckinModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Check-in for %s", m.date)
	if m.day != nil && !m.day.Stored {
		title += "  (nothing recorded yet)"
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Danger.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.day == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	e := m.day.Entry

	b.WriteString(m.renderSection("Vitals"))
	b.WriteString(m.renderField(fieldPulse, "Pulse", vitalText(e.Pulse, "bpm")))
	b.WriteString(m.renderField(fieldSys, "Systolic", vitalText(e.BPSys, "mmHg")))
	b.WriteString(m.renderField(fieldDia, "Diastolic", vitalText(e.BPDia, "mmHg")))

	b.WriteString(m.renderSection("Symptoms"))
	b.WriteString(m.renderField(fieldDizziness, "Dizziness", checkbox(e.Dizziness)))
	b.WriteString(m.renderField(fieldSyncope, "Fainting", checkbox(e.Syncope)))
	b.WriteString(m.renderField(fieldDyspnea, "Short of breath", checkbox(e.Dyspnea)))
	b.WriteString(m.renderField(fieldEdema, "Swelling", checkbox(e.Edema)))
	b.WriteString(m.renderField(fieldBleeding, "Bleeding", checkbox(e.Bleeding)))
	b.WriteString(m.renderField(fieldFatigue, "Fatigue", record.FatigueLabel(e.Fatigue)))

	b.WriteString(m.renderSection("Medication"))
	b.WriteString(m.renderField(fieldAMMultaq, "AM Multaq", checkbox(e.Meds.AM.Multaq)))
	b.WriteString(m.renderField(fieldAMEdoxaban, "AM Edoxaban", checkbox(e.Meds.AM.Edoxaban)))
	b.WriteString(m.renderField(fieldAMBisoprolol, "AM Bisoprolol", checkbox(e.Meds.AM.Bisoprolol)))
	b.WriteString(m.renderField(fieldPMMultaq, "PM Multaq", checkbox(e.Meds.PM.Multaq)))

	b.WriteString(m.renderSection("Notes"))
	b.WriteString(m.renderField(fieldNotes, "Notes", notesPreview(e.Notes)))

	if alerts := renderAlerts(m.day, m.styles); alerts != "" {
		b.WriteString("\n")
		b.WriteString(alerts)
	}

	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Warning: " + m.warning))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSection renders a form section header.
func (m CheckinModel) renderSection(name string) string {
	return m.styles.Muted.Render(name) + "\n"
}

// renderField renders one form row, with the input box in place of the
// value while that field is being edited.
func (m CheckinModel) renderField(field int, label, value string) string {
	cursor := "  "
	if field == m.cursor {
		cursor = m.styles.FieldCursor.Render("▸ ")
	}

	if m.editing && field == m.cursor {
		return fmt.Sprintf("%s%s %s\n", cursor, m.styles.FieldLabel.Render(label+":"), m.input.View())
	}

	rendered := m.styles.FieldValue.Render(value)
	if field != m.cursor {
		rendered = m.styles.StatusValue.Render(value)
	}
	return fmt.Sprintf("%s%s %s\n", cursor, m.styles.FieldLabel.Render(label+":"), rendered)
}

// notesPreview keeps the notes row on a single line.
func notesPreview(notes string) string {
	if notes == "" {
		return "—"
	}
	notes = strings.Join(strings.Fields(notes), " ")
	if len(notes) > 40 {
		return notes[:39] + "…"
	}
	return notes
}

// SetSize sets the view dimensions
func (m *CheckinModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Date returns the date the form is showing.
func (m CheckinModel) Date() string {
	return m.date
}

// IsInputMode returns true when the view is capturing keyboard input
func (m CheckinModel) IsInputMode() bool {
	return m.editing
}

// loadDay creates a command to load the entry for the current date.
func (m CheckinModel) loadDay() tea.Cmd {
	date := m.date
	return func() tea.Msg {
		day, warning, err := m.services.Checkin.Get(date)
		return dayLoadedMsg{day: day, warning: warning, err: err}
	}
}

// logPatch creates a command that persists a field change and reloads the
// evaluated day.
func (m CheckinModel) logPatch(p record.Patch) tea.Cmd {
	date := m.date
	return func() tea.Msg {
		day, warning, err := m.services.Checkin.Log(date, p)
		return dayLoadedMsg{day: day, warning: warning, err: err}
	}
}

// logMorning persists a single morning dose change.
func (m CheckinModel) logMorning(p record.MorningPatch) tea.Cmd {
	return m.logPatch(record.Patch{Meds: &record.MedsPatch{AM: &p}})
}

// logText persists the edited value of a text field. An empty value is
// stored as-is and clears the field.
func (m CheckinModel) logText(field int, value string) tea.Cmd {
	var p record.Patch
	switch field {
	case fieldPulse:
		p.Pulse = &value
	case fieldSys:
		p.BPSys = &value
	case fieldDia:
		p.BPDia = &value
	case fieldNotes:
		p.Notes = &value
	default:
		return nil
	}
	return m.logPatch(p)
}

// nextFatigue cycles the fatigue level none -> mild -> severe -> none.
func nextFatigue(current string) string {
	switch current {
	case record.FatigueNone:
		return record.FatigueMild
	case record.FatigueMild:
		return record.FatigueSevere
	default:
		return record.FatigueNone
	}
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }
