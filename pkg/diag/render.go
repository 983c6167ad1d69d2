package diag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"
)

// contextLines is how many lines of surrounding source are shown around
// the error line.
const contextLines = 2

// sourceCacheLimit bounds how many files' contents are held in memory at
// once (LRU eviction), so a long-running resolver (an LSP-style host,
// say) doesn't accumulate unbounded memory across many runs.
const sourceCacheLimit = 100

var (
	sourceCacheMu   sync.RWMutex
	sourceCache     = make(map[string][]string)
	sourceCacheKeys = make([]string, 0, sourceCacheLimit)
)

// Render formats d as a rustc-style diagnostic: a header naming the code,
// message, and location, a source snippet with a caret under the error
// span, any notes at their own spans, and a suggestion line if present.
func Render(d *Diagnostic) string {
	var buf strings.Builder

	if d.Span.Line > 0 {
		fmt.Fprintf(&buf, "error[%s]: %s\n  --> %s:%d:%d\n\n",
			d.Code, d.Message, filepath.Base(d.Span.Filename), d.Span.Line, d.Span.Column)
	} else {
		fmt.Fprintf(&buf, "error[%s]: %s\n\n", d.Code, d.Message)
	}

	writeSnippet(&buf, d.Span, "")

	for _, note := range d.Notes {
		fmt.Fprintf(&buf, "note: %s\n", note.Message)
		writeSnippet(&buf, note.Span, "")
	}

	if d.Suggestion != "" {
		fmt.Fprintf(&buf, "help: %s\n", d.Suggestion)
	}

	return buf.String()
}

func writeSnippet(buf *strings.Builder, span Span, annotation string) {
	if span.Line <= 0 || span.Filename == "" {
		return
	}

	lines, highlightIdx, err := extractSourceLines(span.Filename, span.Line, contextLines)
	if err != nil {
		fmt.Fprintf(buf, "  (source unavailable: %v)\n\n", err)
		return
	}

	startLine := span.Line - highlightIdx
	for i, line := range lines {
		lineNum := startLine + i
		fmt.Fprintf(buf, "  %4d | %s\n", lineNum, line)
		if i == highlightIdx {
			col := span.Column - 1
			if col < 0 {
				col = 0
			}
			if col > len(line) {
				col = len(line)
			}
			caretIndent := utf8.RuneCountInString(line[:col])
			fmt.Fprintf(buf, "       | %s^", strings.Repeat(" ", caretIndent))
			if annotation != "" {
				fmt.Fprintf(buf, " %s", annotation)
			}
			buf.WriteString("\n")
		}
	}
	buf.WriteString("\n")
}

// extractSourceLines reads filename (using a bounded LRU cache across
// calls) and returns the lines surrounding targetLine, plus the index of
// targetLine within the returned slice.
func extractSourceLines(filename string, targetLine, context int) ([]string, int, error) {
	sourceCacheMu.RLock()
	allLines, cached := sourceCache[filename]
	sourceCacheMu.RUnlock()

	if cached {
		// Refresh recency so eviction drops the least recently used file.
		sourceCacheMu.Lock()
		addToSourceCache(filename, allLines)
		sourceCacheMu.Unlock()
	} else {
		content, err := os.ReadFile(filename)
		if err != nil {
			return nil, 0, fmt.Errorf("cannot read file: %w", err)
		}
		if !utf8.Valid(content) {
			return nil, 0, fmt.Errorf("file is not valid UTF-8")
		}

		normalized := strings.ReplaceAll(string(content), "\r\n", "\n")
		allLines = strings.Split(normalized, "\n")
		if len(allLines) > 0 && allLines[len(allLines)-1] == "" {
			allLines = allLines[:len(allLines)-1]
		}

		sourceCacheMu.Lock()
		addToSourceCache(filename, allLines)
		sourceCacheMu.Unlock()
	}

	targetIdx := targetLine - 1
	if targetIdx < 0 || targetIdx >= len(allLines) {
		return nil, 0, fmt.Errorf("line %d out of range (1-%d)", targetLine, len(allLines))
	}

	start := targetIdx - context
	if start < 0 {
		start = 0
	}
	end := targetIdx + context + 1
	if end > len(allLines) {
		end = len(allLines)
	}

	return allLines[start:end], targetIdx - start, nil
}

// addToSourceCache records filename's lines, evicting the oldest entry if
// the cache is full. Callers must hold sourceCacheMu for writing.
func addToSourceCache(filename string, lines []string) {
	for i, key := range sourceCacheKeys {
		if key == filename {
			sourceCacheKeys = append(sourceCacheKeys[:i], sourceCacheKeys[i+1:]...)
			sourceCacheKeys = append(sourceCacheKeys, filename)
			sourceCache[filename] = lines
			return
		}
	}

	if len(sourceCacheKeys) >= sourceCacheLimit {
		oldest := sourceCacheKeys[0]
		delete(sourceCache, oldest)
		sourceCacheKeys = sourceCacheKeys[1:]
	}

	sourceCacheKeys = append(sourceCacheKeys, filename)
	sourceCache[filename] = lines
}

// ClearSourceCache empties the cached file contents. Call this after a
// batch of resolver runs in a long-running host to release memory
// promptly instead of waiting for LRU eviction.
func ClearSourceCache() {
	sourceCacheMu.Lock()
	defer sourceCacheMu.Unlock()
	sourceCache = make(map[string][]string)
	sourceCacheKeys = make([]string, 0, sourceCacheLimit)
}
