// Package report renders the one-line status printed after a run.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dongho-jung/cursorignore/internal/constants"
	"github.com/dongho-jung/cursorignore/internal/initializer"
)

// Printer writes status lines styled for its writer.
// Writers that are not terminals get plain text.
type Printer struct {
	w            io.Writer
	createdStyle lipgloss.Style
	skippedStyle lipgloss.Style
}

// New creates a Printer bound to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w: w,
		createdStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}),
		skippedStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "244", Dark: "245"}),
	}
}

// Line returns the styled status line for outcome, without a newline.
func (p *Printer) Line(outcome initializer.Outcome, name string) string {
	msg := outcome.Message(name)
	if outcome == initializer.OutcomeSkipped {
		return p.skippedStyle.Render(constants.EmojiSkipped + " " + msg)
	}
	return p.createdStyle.Render(constants.EmojiCreated + " " + msg)
}

// Print writes the status line for outcome followed by a newline.
func (p *Printer) Print(outcome initializer.Outcome, name string) error {
	_, err := fmt.Fprintln(p.w, p.Line(outcome, name))
	return err
}
