package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type entry struct {
	word     string
	value    string
	hasValue bool
}

// parseEntry parses one line of a word list. Blank lines and lines starting
// with '#' are skipped.
func parseEntry(line string) (entry, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return entry{}, false
	}
	word, value, found := strings.Cut(line, "\t")
	word = strings.TrimSpace(word)
	if word == "" {
		return entry{}, false
	}
	return entry{word: word, value: value, hasValue: found}, true
}

func readEntries(path string, onEntry func(e entry)) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if e, ok := parseEntry(scanner.Text()); ok {
			onEntry(e)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
