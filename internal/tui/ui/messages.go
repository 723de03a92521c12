// Package ui holds the shared TUI building blocks: key bindings, styles,
// themes, and the messages that coordinate them across views.
package ui

// ThemeChangeRequestMsg asks the root model to switch to a named theme.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to every view after a theme switch so each
// can swap in the rebuilt styles.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}
