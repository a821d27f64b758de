package colors

import (
	"fmt"
	"io"
	"strings"
)

// Print methods (default to stdout)
func (c COLOR) Printf(format string, args ...any) {
	fmt.Print(c.Sprintf(format, args...))
}

func (c COLOR) Println(args ...any) {
	fmt.Print(c.Sprintln(args...))
}

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, c.Sprintf(format, args...))
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, c.Sprintln(args...))
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, c.Sprint(args...))
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return c.prefix() + fmt.Sprintf(format, args...) + c.suffix()
}

func (c COLOR) Sprintln(args ...any) string {
	return c.prefix() + fmt.Sprintln(args...) + c.suffix()
}

func (c COLOR) Sprint(args ...any) string {
	return c.prefix() + fmt.Sprint(args...) + c.suffix()
}

var ansiToHTML = []struct {
	ansi COLOR
	html string
}{
	{RESET, "</span>"},
	{RED, "<span style=\"color: #ef4444\">"},
	{GREEN, "<span style=\"color: #10b981\">"},
	{YELLOW, "<span style=\"color: #f59e0b\">"},
	{BLUE, "<span style=\"color: #3b82f6\">"},
	{PURPLE, "<span style=\"color: #c678dd; font-weight: bold\">"},
	{CYAN, "<span style=\"color: #56b6c2\">"},
	{WHITE, "<span style=\"color: #f3f4f6\">"},
	{GREY, "<span style=\"color: #5c6370\">"},
	{BOLD_RED, "<span style=\"color: #ef4444; font-weight: bold\">"},
	{BOLD_YELLOW, "<span style=\"color: #f59e0b; font-weight: bold\">"},
	{BOLD_CYAN, "<span style=\"color: #56b6c2; font-weight: bold\">"},
	{ORANGE, "<span style=\"color: #ff8700\">"},
}

// ConvertANSIToHTML converts ANSI color codes to HTML span tags
func ConvertANSIToHTML(text string) string {
	// First, escape HTML entities
	result := strings.ReplaceAll(text, "&", "&amp;")
	result = strings.ReplaceAll(result, "<", "&lt;")
	result = strings.ReplaceAll(result, ">", "&gt;")

	for _, pair := range ansiToHTML {
		result = strings.ReplaceAll(result, string(pair.ansi), pair.html)
	}

	// Convert newlines to <br> and spaces to &nbsp; for proper formatting
	result = strings.ReplaceAll(result, "\n", "<br>")
	result = strings.ReplaceAll(result, "  ", "&nbsp;&nbsp;")

	return result
}
