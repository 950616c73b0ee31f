// Package config holds the inputs and output options of the streamdemo
// command.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Output formats accepted by [Config.Format].
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

var (
	// ErrInvalidNumber is returned when a number list contains a value that
	// is not a base-10 integer.
	ErrInvalidNumber = errors.New("config: invalid number")

	// ErrInvalidFormat is returned when Format is not one of the known
	// output formats.
	ErrInvalidFormat = errors.New("config: unknown output format")
)

// Config holds the runtime configuration of the demo command.
type Config struct {
	// Sentence is the text whose words are counted.
	Sentence string

	// Nested is the list of lists that gets flattened.
	Nested [][]int

	// Numbers is searched for its second-highest distinct value.
	Numbers []int

	// Format selects the renderer: "table" (default) or "plain".
	Format string

	// LogLevel is a logrus level name. Defaults to "info".
	LogLevel string
}

// DefaultConfig returns a [Config] populated with the example inputs.
func DefaultConfig() Config {
	return Config{
		Sentence: "Java is fun and Java is powerful",
		Nested:   [][]int{{1, 2}, {3, 4}},
		Numbers:  []int{5, 3, 9, 7, 1},
		Format:   FormatTable,
		LogLevel: "info",
	}
}

// Validate reports whether c can be rendered.
func (c Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatPlain:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
}

// ParseNumbers parses a comma-separated list such as "5,3,9". Blank entries
// are ignored, so "" yields an empty list.
func ParseNumbers(s string) ([]int, error) {
	out := []int{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, field)
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseNested parses groups separated by ";" into a nested list, e.g.
// "1,2;3,4" → [[1 2] [3 4]]. An empty group yields an empty inner list;
// "" yields an empty outer list.
func ParseNested(s string) ([][]int, error) {
	out := [][]int{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, group := range strings.Split(s, ";") {
		nums, err := ParseNumbers(group)
		if err != nil {
			return nil, err
		}
		out = append(out, nums)
	}
	return out, nil
}
