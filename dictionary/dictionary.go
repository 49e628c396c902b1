// Package dictionary supplies candidate words for a ladder query.
//
// A Source maps a word length to a file inside an fs.FS and reads it line by
// line. It does not filter by length; words of the wrong length are excluded
// later by ladder.Build.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// ErrUnsupportedLength indicates no dictionary file is configured for a length.
var ErrUnsupportedLength = errors.New("dictionary: invalid length of word")

// LoadError reports a dictionary file that could not be opened or read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dictionary: unable to read file %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DefaultFiles is the stock length → file table.
func DefaultFiles() map[int]string {
	return map[int]string{
		3: "words.3",
		4: "words.4",
		5: "words.5",
		6: "words.6",
		7: "words.7",
		8: "words.8.8",
		9: "words.9.9",
	}
}

// Source reads dictionary files from fsys.
type Source struct {
	fsys  fs.FS
	files map[int]string
}

// NewSource returns a Source over fsys using files, or DefaultFiles when
// files is empty. The table is copied.
func NewSource(fsys fs.FS, files map[int]string) *Source {
	if len(files) == 0 {
		files = DefaultFiles()
	}
	own := make(map[int]string, len(files))
	for k, v := range files {
		own[k] = v
	}

	return &Source{fsys: fsys, files: own}
}

// Lengths returns the supported word lengths in ascending order.
func (s *Source) Lengths() []int {
	out := lo.Keys(s.files)
	sort.Ints(out)

	return out
}

// Path returns the file configured for length.
func (s *Source) Path(length int) (string, error) {
	p, ok := s.files[length]
	if !ok {
		return "", fmt.Errorf("%w: %d (supported: %v)", ErrUnsupportedLength, length, s.Lengths())
	}

	return p, nil
}

// Words returns the candidate words in the file configured for length.
func (s *Source) Words(length int) ([]string, error) {
	p, err := s.Path(length)
	if err != nil {
		return nil, err
	}
	f, err := s.fsys.Open(p)
	if err != nil {
		return nil, &LoadError{Path: p, Err: err}
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, &LoadError{Path: p, Err: err}
	}
	log.Debug().Str("file", p).Int("length", length).Int("lines", len(words)).Msg("dictionary loaded")

	return words, nil
}

// Read returns one candidate per line of r. Surrounding whitespace is
// trimmed; blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	words := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		w := strings.TrimSpace(line)
		return w, w != "" && !strings.HasPrefix(w, "#")
	})

	return words, nil
}
