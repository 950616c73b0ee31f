// Package report computes the three stream idioms for a [config.Config] and
// renders the results for a terminal.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hasbyte1/go-stream-idioms/collections"
	"github.com/hasbyte1/go-stream-idioms/internal/config"
	"github.com/hasbyte1/go-stream-idioms/streams"
)

// ErrUnknownFormat is returned by [Render] for an unsupported format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Result holds the output of every idiom for one configuration.
type Result struct {
	Frequencies []collections.Pair[string, int]
	Flattened   []int

	// SecondHighest is only meaningful when Found is true.
	SecondHighest int
	Found         bool
}

// New runs the idioms over the inputs in cfg.
func New(cfg config.Config) Result {
	second, found := streams.SecondHighestDistinct(cfg.Numbers)
	return Result{
		Frequencies:   streams.OrderedFrequencies(cfg.Sentence),
		Flattened:     streams.Flatten(cfg.Nested),
		SecondHighest: second,
		Found:         found,
	}
}

// secondHighest returns the display value, falling back to
// [streams.NotFound] like the original console output.
func (r Result) secondHighest() int {
	if !r.Found {
		return streams.NotFound
	}
	return r.SecondHighest
}

// flattened formats the flattened list with comma separators, e.g.
// "[1, 2, 3, 4]".
func (r Result) flattened() string {
	parts := make([]string, len(r.Flattened))
	for i, n := range r.Flattened {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Render writes r to w in the given format.
func Render(w io.Writer, format string, r Result) error {
	switch format {
	case config.FormatTable:
		renderTable(w, r)
		return nil
	case config.FormatPlain:
		return renderPlain(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderTable(w io.Writer, r Result) {
	words := table.NewWriter()
	words.SetStyle(table.StyleLight)
	words.SetOutputMirror(w)
	words.SetTitle("Word Count")
	words.AppendHeader(table.Row{"Word", "Count"})
	for _, p := range r.Frequencies {
		words.AppendRow(table.Row{p.First, p.Second})
	}
	words.Render()

	summary := table.NewWriter()
	summary.SetStyle(table.StyleLight)
	summary.SetOutputMirror(w)
	summary.AppendHeader(table.Row{"Idiom", "Result"})
	summary.AppendRows([]table.Row{
		{"Flattened List", r.flattened()},
		{"Second Highest", r.secondHighest()},
	})
	summary.Render()
}

func renderPlain(w io.Writer, r Result) error {
	for _, p := range r.Frequencies {
		if _, err := fmt.Fprintf(w, "%s: %d\n", p.First, p.Second); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Flattened List: %s\n", r.flattened()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Second Highest: %d\n", r.secondHighest())
	return err
}
