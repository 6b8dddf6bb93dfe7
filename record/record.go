// Package record persists one summary line per finished match.
package record

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultKeep is how many summaries a Store retains.
const DefaultKeep = 10

// Summary is the outcome of one match: rounds lost by each side.
type Summary struct {
	BlueLost int
	RedLost  int
}

func (s Summary) String() string {
	return strconv.Itoa(s.BlueLost) + " " + strconv.Itoa(s.RedLost)
}

// ParseSummary parses a "<blue> <red>" line.
func ParseSummary(line string) (Summary, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Summary{}, fmt.Errorf("record: malformed line %q", line)
	}
	blue, err := strconv.Atoi(fields[0])
	if err != nil {
		return Summary{}, fmt.Errorf("record: blue count %q: %w", fields[0], err)
	}
	red, err := strconv.Atoi(fields[1])
	if err != nil {
		return Summary{}, fmt.Errorf("record: red count %q: %w", fields[1], err)
	}
	return Summary{BlueLost: blue, RedLost: red}, nil
}

// Store is a text file of summaries, oldest first.
type Store struct {
	Path string
	Keep int
}

func NewStore(path string, keep int) *Store {
	if keep <= 0 {
		keep = DefaultKeep
	}
	return &Store{Path: path, Keep: keep}
}

// Load returns the stored summaries, oldest first. A missing file is empty.
// Malformed lines are skipped.
func (s *Store) Load() ([]Summary, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("record: read %s: %w", s.Path, err)
	}
	var out []Summary
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		sum, err := ParseSummary(line)
		if err != nil {
			continue
		}
		out = append(out, sum)
	}
	return out, sc.Err()
}

// Append adds sum and trims the file to the most recent Keep entries.
func (s *Store) Append(sum Summary) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}
	all := append(existing, sum)
	if len(all) > s.Keep {
		all = all[len(all)-s.Keep:]
	}

	var buf bytes.Buffer
	for _, r := range all {
		buf.WriteString(r.String())
		buf.WriteByte('\n')
	}

	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("record: mkdir %s: %w", dir, err)
		}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("record: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("record: replace %s: %w", s.Path, err)
	}
	return nil
}
