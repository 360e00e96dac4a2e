package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every interpreter failure wraps exactly one of these so
// callers can branch with errors.Is.
var (
	// ErrExpression is an arithmetic or type error tied to an expression node
	ErrExpression = errors.New("expression error")

	// ErrCommand is an argument, option or validation failure of a command
	ErrCommand = errors.New("command error")

	// ErrNotFound is returned for unresolved identifiers, names and registry entries
	ErrNotFound = errors.New("not found")

	// ErrException wraps failures of external collaborators
	ErrException = errors.New("exception")
)

// Position locates the node an error originated from.
type Position struct {
	Line int
	Col  int
}

// Error is the single error type produced by the interpreter and its
// collaborators. Kind is one of the sentinel errors above.
type Error struct {
	Kind    error
	Name    string
	Node    string
	Pos     *Position
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Name)
	if e.Node != "" || e.Pos != nil {
		sb.WriteString("(")
		sb.WriteString(e.Node)
		if e.Pos != nil {
			if e.Node != "" {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d:%d", e.Pos.Line, e.Pos.Col)
		}
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	return sb.String()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewExpressionError builds an ErrExpression error. name narrows the error
// (e.g. "ArithmeticExpressionError").
func NewExpressionError(name, node string, pos *Position, format string, args ...any) *Error {
	if name == "" {
		name = "ExpressionError"
	}
	return &Error{
		Kind:    ErrExpression,
		Name:    name,
		Node:    node,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewCommandError builds an ErrCommand error for the named command.
func NewCommandError(command string, pos *Position, format string, args ...any) *Error {
	return &Error{
		Kind:    ErrCommand,
		Name:    "CommandError",
		Node:    command,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewNotFoundError builds an ErrNotFound error.
func NewNotFoundError(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Name:    "ErrorNotFound",
		Message: fmt.Sprintf(format, args...),
	}
}

// NewException wraps a failure of an external collaborator.
func NewException(cause error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &Error{
		Kind:    ErrException,
		Name:    "ErrorException",
		Message: msg,
		Cause:   cause,
	}
}

// ListItems formats several sub-errors under one title.
func ListItems(title string, items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return title + ":\n" + strings.Join(lines, "\n")
}

// CommaListItems joins items for a one-line message.
func CommaListItems(items []string) string {
	return strings.Join(items, ", ")
}
