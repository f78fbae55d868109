package reporters

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/cheggaaa/pb/v3"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

const (
	progressScale    = 100
	progressTemplate = `{{ string . "prefix" }}{{ bar . "[" "=" ">" " " "]" }} {{ percent . }}`
)

// TerminalReporterRepository reports a run on a terminal: log lines through logrus,
// a pb progress bar and the site link, as an OSC 8 hyperlink when out is a terminal.
type TerminalReporterRepository struct {
	out         io.Writer
	interactive bool
	bar         *pb.ProgressBar
	ratio       float64

	successStyle lipgloss.Style
	linkStyle    lipgloss.Style
}

// NewTerminalReporterRepository creates a reporter writing to stdout.
func NewTerminalReporterRepository() repositories.ReporterRepository {
	return NewTerminalReporterRepositoryWith(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

// NewTerminalReporterRepositoryWith creates a reporter writing to out. When interactive
// is false the bar is only redrawn on changes and links are printed as plain text.
func NewTerminalReporterRepositoryWith(out io.Writer, interactive bool) *TerminalReporterRepository {
	renderer := lipgloss.NewRenderer(out)
	return &TerminalReporterRepository{
		out:          out,
		interactive:  interactive,
		successStyle: renderer.NewStyle().Foreground(lipgloss.Color("10")),
		linkStyle:    renderer.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("12")),
	}
}

func (r *TerminalReporterRepository) Info(msg string)  { logger.Info(msg) }
func (r *TerminalReporterRepository) Debug(msg string) { logger.Debug(msg) }
func (r *TerminalReporterRepository) Error(msg string) { logger.Error(msg) }

func (r *TerminalReporterRepository) Success(msg string) {
	logger.Info(r.successStyle.Render(msg))
}

// ShowProgress starts a fresh bar at 0%.
func (r *TerminalReporterRepository) ShowProgress() {
	if r.bar != nil {
		r.bar.Finish()
	}

	r.ratio = 0
	r.bar = pb.ProgressBarTemplate(progressTemplate).New(progressScale)
	r.bar.SetWriter(r.out)
	r.bar.Set("prefix", "Replicating ")
	if !r.interactive {
		r.bar.Set(pb.Static, true)
	}
	r.bar.Start()
	r.redraw()
}

// SetProgress moves the bar to ratio, clamped to [0,1].
func (r *TerminalReporterRepository) SetProgress(ratio float64) {
	r.ratio = math.Max(0, math.Min(1, ratio))
	if r.bar == nil {
		return
	}
	r.bar.SetCurrent(int64(math.Round(r.ratio * progressScale)))
	r.redraw()
}

// Ratio returns the last ratio the bar was moved to.
func (r *TerminalReporterRepository) Ratio() float64 { return r.ratio }

// ShowURL prints the published site.
func (r *TerminalReporterRepository) ShowURL(url string) {
	r.Finish()

	text := r.linkStyle.Render(url)
	if r.interactive {
		text = fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, text)
	}
	fmt.Fprintf(r.out, "Site published at %s\n", text)
}

// Finish stops the bar, leaving its last state on screen.
func (r *TerminalReporterRepository) Finish() {
	if r.bar == nil {
		return
	}
	r.bar.Finish()
	r.bar = nil
}

func (r *TerminalReporterRepository) redraw() {
	if !r.interactive && r.bar != nil {
		r.bar.Write()
	}
}
