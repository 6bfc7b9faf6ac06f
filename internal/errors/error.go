package errors

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryParse     Category = "parse"
	CategoryHydration Category = "hydration"
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
	CategoryReport    Category = "report"
	CategoryServer    Category = "server"
)

// Location represents a position in an input file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// HydrateError is a structured error with source location, suggestions, and documentation.
type HydrateError struct {
	// Code is a unique error identifier (e.g., "H001").
	Code string

	// Category is the error type (parse, hydration, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the input location where the error occurred.
	Location *Location

	// Context contains surrounding input lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is input showing the correct form.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HydrateError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HydrateError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds an input location to the error.
func (e *HydrateError) WithLocation(file string, line, column int) *HydrateError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *HydrateError) WithSuggestion(s string) *HydrateError {
	e.Suggestion = s
	return e
}

// WithExample adds an input example to the error.
func (e *HydrateError) WithExample(ex string) *HydrateError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *HydrateError) WithDetail(d string) *HydrateError {
	e.Detail = d
	return e
}

// WithContext adds custom context lines to the error.
func (e *HydrateError) WithContext(lines []string) *HydrateError {
	e.Context = lines
	return e
}

// Wrap wraps another error.
func (e *HydrateError) Wrap(err error) *HydrateError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a HydrateError from a registered error code.
func New(code string) *HydrateError {
	template, ok := registry[code]
	if !ok {
		return &HydrateError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &HydrateError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new HydrateError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *HydrateError {
	return &HydrateError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a HydrateError.
func FromError(err error, code string) *HydrateError {
	if err == nil {
		return nil
	}
	if he, ok := err.(*HydrateError); ok {
		return he
	}
	return New(code).Wrap(err)
}

// WithLocationFromError parses a "file:line:column" prefix from a
// parser error message and attaches it as a Location.
func (e *HydrateError) WithLocationFromError(err error) *HydrateError {
	if err == nil {
		return e
	}
	msg := err.Error()
	parts := strings.SplitN(msg, ":", 4)
	if len(parts) >= 3 {
		var line, col int
		fmt.Sscanf(parts[1], "%d", &line)
		fmt.Sscanf(parts[2], "%d", &col)
		if line > 0 {
			e.Location = &Location{File: parts[0], Line: line, Column: col}
			e.Context = readContextLines(parts[0], line, 5)
		}
	}
	return e
}
