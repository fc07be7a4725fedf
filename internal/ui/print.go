// Package ui renders userchromes, prefs and progress steps for the terminal.
package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/ryanccn/nyoom/internal/config"
)

// Context selects the marker and color a userchrome is printed with
type Context int

const (
	Normal Context = iota
	Added
	Removed
)

// shortPrefs is how many prefs a short listing shows
const shortPrefs = 3

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	faint   = lipgloss.NewStyle().Faint(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	DoneStyle  = green
)

func (c Context) style() (string, lipgloss.Style) {
	switch c {
	case Added:
		return "+", green
	case Removed:
		return "-", red
	default:
		return "·", cyan
	}
}

// FormatPref renders "key: value", suffixed with "(raw)" for raw values
func FormatPref(p config.Pref) string {
	s := magenta.Render(p.Key) + ": " + p.Value
	if p.Raw {
		s += " " + faint.Render("(raw)")
	}
	return s
}

// PrintUserchrome writes a userchrome header followed by its prefs. short
// limits the prefs shown.
func PrintUserchrome(w io.Writer, uc *config.Userchrome, short bool, ctx Context) {
	marker, style := ctx.style()
	fmt.Fprintf(w, "%s %s %s\n", style.Render(marker), style.Render(uc.Name), faint.Render(uc.Source))

	prefs := uc.Prefs
	if short && len(prefs) > shortPrefs {
		prefs = prefs[:shortPrefs]
	}
	for _, p := range prefs {
		fmt.Fprintf(w, "    %s\n", FormatPref(p))
	}

	if short && len(uc.Prefs) > shortPrefs {
		fmt.Fprintf(w, "    %s\n", faint.Render(fmt.Sprintf("and %d more", len(uc.Prefs)-shortPrefs)))
	}
}

// Steps prints numbered progress lines
type Steps struct {
	w io.Writer
	n int
}

// NewSteps creates a step counter writing to w
func NewSteps(w io.Writer) *Steps {
	return &Steps{w: w}
}

// Next prints the next numbered step
func (s *Steps) Next(label string) {
	s.n++
	fmt.Fprintf(s.w, "%s %s\n", green.Render(strconv.Itoa(s.n)), label)
}

// Detail prints an indented line belonging to the current step
func (s *Steps) Detail(text string) {
	fmt.Fprintf(s.w, "%s %s\n", faint.Inherit(cyan).Render("╰"), faint.Render(text))
}

// Done prints the closing line
func (s *Steps) Done() {
	fmt.Fprintln(s.w, DoneStyle.Render("done!"))
}

// Count returns how many steps have been printed
func (s *Steps) Count() int {
	return s.n
}
