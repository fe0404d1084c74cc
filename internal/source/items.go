// Package source produces the rows shown by the demo list: generated
// sample rows or the lines of an items file, reloaded when the file changes.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotRegularFile is returned when the items path is a directory or device
var ErrNotRegularFile = errors.New("items path is not a regular file")

// Sample returns n generated rows
func Sample(n int) []string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf("Item %d", i))
	}
	return items
}

// ReadItems reads one item per line from path. Blank lines are skipped and
// surrounding whitespace trimmed.
func ReadItems(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat items file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items file: %w", err)
	}
	defer file.Close()

	items := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	return items, nil
}
