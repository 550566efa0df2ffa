// Package cli handles cmd line input for querying a grid interactively, mainly for DBG and testing
package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/bastiangx/wordfinder/internal/utils"
	"github.com/bastiangx/wordfinder/pkg/finder"
	"github.com/charmbracelet/log"
)

// InputHandler reads query streams line by line and prints the ranked grid words
// found in each. Every line is its own stream; words are split on whitespace.
type InputHandler struct {
	finder       finder.IWordFinder
	reader       io.Reader
	logger       *log.Logger
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(f finder.IWordFinder, r io.Reader, logger *log.Logger) *InputHandler {
	return &InputHandler{
		finder: f,
		reader: r,
		logger: logger,
	}
}

// Start begins the interface loop. It returns nil once the input is exhausted.
func (h *InputHandler) Start() error {
	stats := h.finder.Stats()
	h.logger.Printf("wordfinder CLI: %dx%d grid, %d distinct words", stats["rows"], stats["cols"], stats["words"])
	h.logger.Print("type words separated by spaces and press Enter (Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.reader)
	for {
		h.logger.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.HandleInput(strings.Fields(line))
	}
}

// HandleInput runs one query stream through the finder and prints the result.
func (h *InputHandler) HandleInput(queries []string) []finder.Match {
	h.requestCount++

	start := time.Now()
	matches, err := h.finder.FindMatches(slices.Values(queries))
	elapsed := time.Since(start)
	if err != nil {
		h.logger.Errorf("Find failed: %v", err)
		return nil
	}
	h.logger.Debugf("Took [ %v ] for %d queries (request #%d)", elapsed, len(queries), h.requestCount)

	if len(matches) == 0 {
		h.logger.Warnf("No grid words among %d queries", len(queries))
		return matches
	}

	h.logger.Printf("Found %d grid words among %d queries:", len(matches), len(queries))
	for i, m := range matches {
		word := fmt.Sprintf("\033[38;5;75m%s\033[0m", m.Word)
		h.logger.Printf("%2d. %-40s (count: %8s)", i+1, word, utils.FormatWithCommas(m.Count))
	}
	return matches
}
