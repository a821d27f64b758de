package diagnostics

import (
	"minilang/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a compiler diagnostic (error, warning, etc.)
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // Error code like "P0002"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the error
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel adds a labeled location to the diagnostic
func (d *Diagnostic) WithLabel(filepath string, loc source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

// WithPrimaryLabel adds the primary labeled location.
// A diagnostic has at most one; later calls are ignored.
func (d *Diagnostic) WithPrimaryLabel(filepath string, loc source.Location, message string) *Diagnostic {
	if _, ok := d.PrimaryLabel(); ok {
		return d
	}
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	// Ensure primary label is always first
	d.Labels = append([]Label{{
		Location: loc,
		Message:  message,
		Style:    Primary,
	}}, d.Labels...)
	return d
}

// WithSecondaryLabel adds a secondary labeled location
// Primary label must exist before adding secondary labels
func (d *Diagnostic) WithSecondaryLabel(filepath string, loc source.Location, message string) *Diagnostic {
	if _, ok := d.PrimaryLabel(); !ok {
		panic("Cannot add secondary label without primary label. Call WithPrimaryLabel first.")
	}
	return d.WithLabel(filepath, loc, message, Secondary)
}

// PrimaryLabel returns the primary label, if any.
func (d *Diagnostic) PrimaryLabel() (Label, bool) {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return label, true
		}
	}
	return Label{}, false
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
