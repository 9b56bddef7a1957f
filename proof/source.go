package proof

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnolang/hilbert/internal/parser"
)

// ErrEmptySource is returned for a file without a sequent line.
var ErrEmptySource = errors.New("proof file is empty")

// Source is a proof file split into its sequent and proof lines. All
// whitespace has been removed from every line.
type Source struct {
	File   string
	Header string
	Lines  []string
}

// ParseSource splits data into the sequent line and the proof lines.
// Trailing empty lines are dropped.
func ParseSource(name string, data []byte) (*Source, error) {
	raw := strings.Split(string(data), "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = parser.StripSpace(l)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptySource)
	}
	if !strings.Contains(lines[0], parser.Turnstile) {
		return nil, fmt.Errorf("%s: %w", name, parser.ErrNoTurnstile)
	}

	return &Source{
		File:   name,
		Header: lines[0],
		Lines:  lines[1:],
	}, nil
}

// ReadSource reads and splits the proof file at path.
func ReadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(path, data)
}

var desiredExtensions = map[string]bool{
	".proof": true,
	".in":    true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
