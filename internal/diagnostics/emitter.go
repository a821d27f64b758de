package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"minilang/colors"
	"minilang/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
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

// AddSource registers in-memory content under filepath
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = source.SplitLines(content)
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		data, err := os.ReadFile(filepath)
		if err != nil {
			return "", err
		}
		lines = source.SplitLines(string(data))
		sc.files[filepath] = lines
	}
	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	// end of input after a final line break
	if line == len(lines)+1 {
		return "", nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache               *SourceCache
	writer              io.Writer
	highlighter         *SyntaxHighlighter
	currentLineNumWidth int // Line number width for current diagnostic
}

func newEmitterWithCache(w io.Writer, cache *SourceCache) *Emitter {
	return &Emitter{
		cache:       cache,
		writer:      w,
		highlighter: NewSyntaxHighlighter(colors.Enabled),
	}
}

// lineNumWidth is the gutter width needed for every line shown by diag
func lineNumWidth(diag *Diagnostic) int {
	maxLine := 0
	for _, label := range diag.Labels {
		if label.Location.End.Line > maxLine {
			maxLine = label.Location.End.Line
		}
		if label.Location.Start.Line > maxLine {
			maxLine = label.Location.Start.Line
		}
	}
	if maxLine == 0 {
		return 1
	}
	return len(fmt.Sprintf("%d", maxLine))
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.currentLineNumWidth = lineNumWidth(diag)

	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(diag.FilePath, label, diag.Severity)
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}

	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	var color colors.COLOR

	switch diag.Severity {
	case Error:
		color = colors.BOLD_RED
	case Warning:
		color = colors.BOLD_YELLOW
	default:
		color = colors.BOLD_CYAN
	}

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	start := label.Location.Start
	end := label.Location.End
	if start.Line == 0 {
		return
	}
	width := e.currentLineNumWidth

	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", width), filepath, start.Line, start.Column)
	fmt.Fprint(e.writer, strings.Repeat(" ", width))
	colors.GREY.Fprintln(e.writer, " |")

	// Previous non-blank line for context
	if start.Line > 1 {
		prevLine, err := e.cache.GetLine(filepath, start.Line-1)
		if err == nil && strings.TrimSpace(prevLine) != "" {
			colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, width, start.Line-1)
			colors.GREY.Fprintln(e.writer, prevLine)
		}
	}

	sourceLine, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}
	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, width, start.Line)
	e.highlighter.HighlightWithColor(sourceLine, e.writer)
	fmt.Fprintln(e.writer)

	// Spans that run past the line are underlined to its end
	length := end.Column - start.Column
	if end.Line != start.Line {
		length = utf8.RuneCountInString(sourceLine) - (start.Column - 1)
	}
	if length <= 0 {
		length = 1
	}

	underlineColor := colors.BLUE
	underlineChar := "-"
	if label.Style == Primary {
		underlineColor = severityColor(severity)
		underlineChar = "~"
		if length == 1 {
			underlineChar = "^"
		}
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", width))
	colors.GREY.Fprint(e.writer, " | ")
	fmt.Fprint(e.writer, underlinePadding(sourceLine, start.Column-1))
	underlineColor.Fprint(e.writer, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		underlineColor.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)

	fmt.Fprint(e.writer, strings.Repeat(" ", width))
	colors.GREY.Fprintln(e.writer, " |")
}

// underlinePadding spaces out n columns of line, keeping its tabs so the
// underline lands under the same character.
func underlinePadding(line string, n int) string {
	var b strings.Builder
	for _, r := range line {
		if n == 0 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteByte(' ')
		}
		n--
	}
	b.WriteString(strings.Repeat(" ", n))
	return b.String()
}

func severityColor(severity Severity) colors.COLOR {
	switch severity {
	case Warning:
		return colors.YELLOW
	case Info:
		return colors.BLUE
	default:
		return colors.RED
	}
}

func (e *Emitter) printNote(note Note) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth+1))
	colors.CYAN.Fprint(e.writer, "= note: ")
	fmt.Fprintln(e.writer, note.Message)
}

func (e *Emitter) printHelp(help string) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth+1))
	colors.GREEN.Fprint(e.writer, "= help: ")
	fmt.Fprintln(e.writer, help)
}
