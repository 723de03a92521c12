package views

import (
	"fmt"
	"strings"

	"github.com/afibcare/afibcare/internal/series"
	"github.com/afibcare/afibcare/internal/service"
	"github.com/afibcare/afibcare/internal/tui/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// chartMetric selects which vital the charts view plots.
type chartMetric int

const (
	metricPulse chartMetric = iota
	metricBP
)

// ChartsModel is the model for the charts view: sparkline trends of the
// recorded vitals over a selectable range of days.
type ChartsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	metric  chartMetric
	last    int
	points  []series.Point
	warning string
}

// NewChartsModel creates a new charts view model
func NewChartsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) ChartsModel {
	return ChartsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		metric:   metricPulse,
		last:     rangeMonth,
	}
}

// seriesLoadedMsg is sent when the chart series is loaded
type seriesLoadedMsg struct {
	points  []series.Point
	warning string
}

// Init implements tea.Model
func (m ChartsModel) Init() tea.Cmd {
	return m.loadSeries()
}

// Update implements tea.Model
func (m ChartsModel) Update(msg tea.Msg) (ChartsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Pulse):
			m.metric = metricPulse
			return m, nil
		case key.Matches(msg, m.keys.BP):
			m.metric = metricBP
			return m, nil
		case key.Matches(msg, m.keys.Week):
			m.last = rangeWeek
			return m, m.loadSeries()
		case key.Matches(msg, m.keys.Fortnight):
			m.last = rangeFortnight
			return m, m.loadSeries()
		case key.Matches(msg, m.keys.Month):
			m.last = rangeMonth
			return m, m.loadSeries()
		case key.Matches(msg, m.keys.All):
			m.last = rangeAll
			return m, m.loadSeries()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadSeries()
		}

	case seriesLoadedMsg:
		m.points = msg.points
		m.warning = msg.warning
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m ChartsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Charts — " + m.metricLabel()))
	b.WriteString("\n")

	if len(m.points) == 0 {
		b.WriteString(m.styles.Muted.Render("No entries recorded"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("Record a day in the Check-in view"))
		return b.String()
	}

	first := m.points[0].Date
	lastDate := m.points[len(m.points)-1].Date
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%s – %s (%d %s)",
		first, lastDate, len(m.points), pluralize("day", len(m.points)))))
	b.WriteString("\n\n")

	switch m.metric {
	case metricPulse:
		b.WriteString(m.renderLine("Pulse", series.PulseValues(m.points)))
	case metricBP:
		b.WriteString(m.renderLine("Systolic", series.SysValues(m.points)))
		b.WriteString("\n")
		b.WriteString(m.renderLine("Diastolic", series.DiaValues(m.points)))
	}

	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Warning: " + m.warning))
	}

	return b.String()
}

// renderLine renders one labelled sparkline with its summary.
func (m ChartsModel) renderLine(label string, values []*float64) string {
	var b strings.Builder
	b.WriteString(m.styles.ChartLabel.Render(label))
	b.WriteString(m.styles.ChartLine.Render(series.Sparkline(values)))
	b.WriteString("\n")
	b.WriteString(m.styles.ChartLabel.Render(""))
	b.WriteString(m.styles.Muted.Render(series.Summary(values)))
	b.WriteString("\n")
	return b.String()
}

// metricLabel names the active metric and range.
func (m ChartsModel) metricLabel() string {
	metric := "pulse"
	if m.metric == metricBP {
		metric = "blood pressure"
	}
	switch m.last {
	case rangeWeek:
		return metric + ", last week"
	case rangeFortnight:
		return metric + ", last fortnight"
	case rangeMonth:
		return metric + ", last month"
	default:
		return metric + ", all recorded days"
	}
}

// SetSize sets the view dimensions
func (m *ChartsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Points returns the loaded series for testing.
func (m ChartsModel) Points() []series.Point {
	return m.points
}

// loadSeries creates a command to load the chart series
func (m ChartsModel) loadSeries() tea.Cmd {
	last := m.last
	return func() tea.Msg {
		points, warning := m.services.History.Series(last)
		return seriesLoadedMsg{points: points, warning: warning}
	}
}
