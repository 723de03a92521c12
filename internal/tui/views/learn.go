package views

import (
	"strings"

	"github.com/afibcare/afibcare/internal/tui/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// learnTopic is one short education note shown in the learn view.
type learnTopic struct {
	title string
	body  []string
}

// learnTopics covers each alert the app can raise. The wording stays
// deliberately plain: the app informs, it does not diagnose.
var learnTopics = []learnTopic{
	{
		title: "Pulse out of range",
		body: []string{
			"A resting pulse outside your configured safe range can mean the",
			"heart rhythm is unstable. Both a very fast and a very slow pulse",
			"matter; either one raises a danger alert.",
			"",
			"The default safe range is 50-110 bpm. You can adjust it in the",
			"config file to match what your doctor recommends.",
		},
	},
	{
		title: "Low blood pressure",
		body: []string{
			"Blood pressure below 90/60 mmHg is flagged as critically low.",
			"Rhythm medication can lower blood pressure, and a sudden drop may",
			"cause dizziness or fainting.",
			"",
			"A single low reading while feeling fine is usually harmless, but",
			"repeated low readings are worth mentioning to your doctor.",
		},
	},
	{
		title: "Bleeding",
		body: []string{
			"Anticoagulants slow clotting, so unusual bleeding is always a",
			"danger alert: nosebleeds that will not stop, blood in urine or",
			"stool, or bruising that spreads.",
			"",
			"Seek medical attention the same day you notice it.",
		},
	},
	{
		title: "Fainting",
		body: []string{
			"Fainting (syncope) can mean the heart briefly failed to keep",
			"blood flowing to the brain. With a rhythm condition this is",
			"never something to wait out.",
		},
	},
	{
		title: "Shortness of breath",
		body: []string{
			"New or worsening shortness of breath at rest or with light",
			"activity raises a danger alert. It can signal that the heart is",
			"not pumping effectively during an episode.",
		},
	},
	{
		title: "Dizziness",
		body: []string{
			"Dizziness on its own is a warning, not a danger. It often comes",
			"from low blood pressure or a medication change.",
			"",
			"Track it: a pattern of dizzy days alongside low pulse or low",
			"blood pressure readings is useful information for your doctor.",
		},
	},
	{
		title: "Swelling",
		body: []string{
			"Swelling (edema) in the ankles or legs is a warning sign of",
			"fluid retention. Record it when you notice it; the trend over",
			"days matters more than a single occurrence.",
		},
	},
	{
		title: "Severe fatigue",
		body: []string{
			"Severe fatigue is the heaviest fatigue level you can record and",
			"raises a warning. Persistent severe fatigue can accompany a",
			"prolonged episode or a medication side effect.",
		},
	},
}

// LearnModel is the model for the learn view: short notes on what each
// alert means and when to act on it.
type LearnModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	width  int
	height int

	cursor int
}

// NewLearnModel creates a new learn view model
func NewLearnModel(styles ui.Styles, keys ui.KeyMap) LearnModel {
	return LearnModel{
		styles: styles,
		keys:   keys,
	}
}

// Init implements tea.Model
func (m LearnModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m LearnModel) Update(msg tea.Msg) (LearnModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(learnTopics)-1 {
				m.cursor++
			}
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m LearnModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Learn — what the alerts mean"))
	b.WriteString("\n")

	for i, topic := range learnTopics {
		prefix := "  "
		style := m.styles.RowNormal
		if i == m.cursor {
			prefix = "▸ "
			style = m.styles.RowSelected
		}
		b.WriteString(style.Render(prefix + topic.title))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, line := range learnTopics[m.cursor].body {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.styles.Muted.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *LearnModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Topic returns the selected topic title for testing.
func (m LearnModel) Topic() string {
	return learnTopics[m.cursor].title
}
