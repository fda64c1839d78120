package domain

import (
	"fmt"
	"os"
	"strings"
)

// ReadList loads raw domain entries from a file, one per line. Blank
// lines and #-comments are skipped. Entries are returned unvalidated,
// ready for Normalize.
func ReadList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading domain list: %w", err)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}
