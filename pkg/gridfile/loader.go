package gridfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines returns the trimmed lines of r, skipping blank lines and # comments.
func ReadLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadQueries splits every non-comment line of r into whitespace separated words.
func ReadQueries(r io.Reader) ([]string, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	queries := []string{}
	for _, line := range lines {
		queries = append(queries, strings.Fields(line)...)
	}
	return queries, nil
}

// LoadGrid reads grid rows from a text file. Shape checks are left to the finder.
func LoadGrid(path string) ([]string, error) {
	if err := ValidateFile(path, KindGrid); err != nil {
		return nil, err
	}
	rows, err := readFile(path, ReadLines)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid %s: %w", path, err)
	}
	return rows, nil
}

// LoadQueries reads a query stream from a text file.
func LoadQueries(path string) ([]string, error) {
	if err := ValidateFile(path, KindQueries); err != nil {
		return nil, err
	}
	queries, err := readFile(path, ReadQueries)
	if err != nil {
		return nil, fmt.Errorf("failed to read queries %s: %w", path, err)
	}
	return queries, nil
}

func readFile(path string, read func(io.Reader) ([]string, error)) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return read(file)
}
