package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"minijava/colors"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	if lines, ok := sc.files[filepath]; ok {
		if line > 0 && line <= len(lines) {
			return lines[line-1], nil
		}
		return "", fmt.Errorf("line %d out of range", line)
	}

	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	sc.files[filepath] = lines

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}

	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache  *SourceCache
	writer io.Writer
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		cache:  NewSourceCache(),
		writer: w,
	}
}

// SetSourceLines pre-populates the cache for in-memory sources
func (e *Emitter) SetSourceLines(filepath string, lines []string) {
	e.cache.files[filepath] = lines
}

// Emit renders a single diagnostic
func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)

	if len(diag.Labels) > 0 {
		e.printLabel(diag.FilePath, diag.Labels[0], diag.Severity)
	} else if diag.FilePath != "" {
		colors.BLUE.Fprintf(e.writer, "  --> %s\n", diag.FilePath)
	}

	for _, note := range diag.Notes {
		colors.CYAN.Fprint(e.writer, "  = note: ")
		fmt.Fprintln(e.writer, note.Message)
	}

	if diag.Help != "" {
		colors.GREEN.Fprint(e.writer, "  = help: ")
		fmt.Fprintln(e.writer, diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := severityColor(diag.Severity)

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil {
		end = start
	}

	colors.BLUE.Fprintf(e.writer, "  --> %s:%d:%d\n", filepath, start.Line, start.Column)

	line, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}

	width := len(fmt.Sprintf("%d", start.Line))
	gutter := strings.Repeat(" ", width)

	colors.BLUE.Fprintf(e.writer, "%s |\n", gutter)
	colors.BLUE.Fprintf(e.writer, "%*d | ", width, start.Line)
	fmt.Fprintln(e.writer, line)

	span := 1
	if end.Line == start.Line && end.Column > start.Column {
		span = end.Column - start.Column
	}
	colors.BLUE.Fprintf(e.writer, "%s | ", gutter)
	fmt.Fprint(e.writer, strings.Repeat(" ", max(start.Column-1, 0)))
	severityColor(severity).Fprint(e.writer, strings.Repeat("^", span))
	if label.Message != "" {
		severityColor(severity).Fprint(e.writer, " "+label.Message)
	}
	fmt.Fprintln(e.writer)
}

func severityColor(s Severity) colors.COLOR {
	switch s {
	case Error:
		return colors.BOLD_RED
	case Warning:
		return colors.BOLD_YELLOW
	default:
		return colors.BOLD_CYAN
	}
}
