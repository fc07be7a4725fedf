package source

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// Progress receives download progress
type Progress interface {
	Start(url string, total int64)
	Advance(n int64)
	Finish(err error)
}

type progressWriter struct {
	progress Progress
}

func (w progressWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		w.progress.Advance(int64(len(p)))
	}
	return len(p), nil
}

var (
	treeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Faint(true)
	urlStyle     = lipgloss.NewStyle().Faint(true)
	sizeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Faint(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Faint(true)
	redrawPeriod = 100 * time.Millisecond
)

// TermProgress redraws a single status line with the number of bytes
// transferred so far
type TermProgress struct {
	w        io.Writer
	url      string
	done     int64
	lastDraw time.Time
}

// NewTermProgress creates a progress line writing to w (usually stderr)
func NewTermProgress(w io.Writer) *TermProgress {
	return &TermProgress{w: w}
}

func (p *TermProgress) Start(url string, total int64) {
	p.url = url
	p.done = 0
	p.lastDraw = time.Time{}
	p.draw(sizeStyle)
}

func (p *TermProgress) Advance(n int64) {
	p.done += n
	if time.Since(p.lastDraw) < redrawPeriod {
		return
	}
	p.draw(sizeStyle)
}

func (p *TermProgress) Finish(err error) {
	if err == nil {
		p.draw(doneStyle)
	}
	fmt.Fprintln(p.w)
}

func (p *TermProgress) draw(style lipgloss.Style) {
	p.lastDraw = time.Now()
	fmt.Fprintf(p.w, "\r%s%s %s  %s",
		ansi.EraseEntireLine,
		treeStyle.Render("╰"),
		urlStyle.Render(p.url),
		style.Render(humanize.Bytes(uint64(p.done))),
	)
}
