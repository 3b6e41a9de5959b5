// Package loader reads the tab-separated movie files into rows of fields.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	internalErrors "github.com/gcbaptista/go-movie-analyzer/internal/errors"
)

const (
	fieldSeparator = "\t"
	// titles in the IMDB exports stay well under this, but leave room for long cast lists
	maxLineBytes = 1024 * 1024
)

// TSVSource reads tab-separated files. It fulfills the services.RowSource interface.
type TSVSource struct {
	// HeaderRows is the number of leading rows discarded from every file.
	HeaderRows int
}

// NewTSVSource creates a TSVSource that drops headerRows leading rows.
func NewTSVSource(headerRows int) *TSVSource {
	if headerRows < 0 {
		headerRows = 0
	}
	return &TSVSource{HeaderRows: headerRows}
}

// ReadRows reads the file at path. Surrounding whitespace is trimmed from each
// line, blank lines are skipped and the remaining lines are split on tabs.
func (s *TSVSource) ReadRows(path string) ([][]string, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from the operator's configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internalErrors.NewSourceNotFoundError(path)
		}
		return nil, fmt.Errorf("failed to open source %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("Warning: failed to close source %s: %v", path, closeErr)
		}
	}()

	rows, err := s.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", path, err)
	}
	return rows, nil
}

// Parse splits r into rows, discarding the configured header rows.
func (s *TSVSource) Parse(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	rows := make([][]string, 0)
	skipped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if skipped < s.HeaderRows {
			skipped++
			continue
		}
		rows = append(rows, strings.Split(line, fieldSeparator))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
