package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dongho-jung/cursorignore/internal/initializer"
)

func TestPrintSingleLine(t *testing.T) {
	tests := []struct {
		name    string
		outcome initializer.Outcome
		want    string
	}{
		{"created", initializer.OutcomeCreated, ".cursorignore created."},
		{"skipped", initializer.OutcomeSkipped, ".cursorignore already exists, skipping creation."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(&buf).Print(tt.outcome, ".cursorignore"); err != nil {
				t.Fatalf("Print() error = %v", err)
			}

			out := buf.String()
			if strings.Count(out, "\n") != 1 || !strings.HasSuffix(out, "\n") {
				t.Errorf("Print() should write exactly one line, got %q", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Print() = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestPrintPlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).Print(initializer.OutcomeCreated, ".cursorignore"); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Non-terminal output should not contain escape sequences, got %q", buf.String())
	}
}

func TestLineDistinguishesOutcomes(t *testing.T) {
	p := New(&bytes.Buffer{})
	created := p.Line(initializer.OutcomeCreated, ".cursorignore")
	skipped := p.Line(initializer.OutcomeSkipped, ".cursorignore")

	if created == skipped {
		t.Errorf("Created and skipped lines should differ, both = %q", created)
	}
}
