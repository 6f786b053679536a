package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// historyLimit caps how many entries are kept on disk.
const historyLimit = 500

// history is the list of lines entered in the repl. With an empty path it
// is kept in memory only.
type history struct {
	path  string
	lines []string
}

// loadHistory reads path, one entry per line. A missing file is an empty
// history.
func loadHistory(path string) (*history, error) {
	h := &history{path: path}
	if path == "" {
		return h, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return h, nil
		}

		return nil, fmt.Errorf("reading history: %w", err)
	}

	// Lines have no length limit; save keeps at most historyLimit of them.
	for line := range strings.Lines(string(data)) {
		if line = strings.TrimSpace(line); line != "" {
			h.lines = append(h.lines, line)
		}
	}

	return h, nil
}

func (h *history) add(line string) {
	if n := len(h.lines); n > 0 && h.lines[n-1] == line {
		return
	}

	h.lines = append(h.lines, line)
}

// save writes the newest historyLimit entries. The file is replaced
// atomically so an interrupted write keeps the previous history.
func (h *history) save() error {
	if h.path == "" {
		return nil
	}

	lines := h.lines
	if len(lines) > historyLimit {
		lines = lines[len(lines)-historyLimit:]
	}

	err := os.MkdirAll(filepath.Dir(h.path), 0o750)
	if err != nil {
		return fmt.Errorf("writing history: %w", err)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	err = atomic.WriteFile(h.path, strings.NewReader(b.String()))
	if err != nil {
		return fmt.Errorf("writing history: %w", err)
	}

	return nil
}
