// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// Issue is an error enriched with context for user-facing output: the
	// attempted operation, the resource involved, and suggestions for
	// fixing the problem.
	//
	// Construct it with the Context builder:
	//
	//	err := issue.NewContext().
	//		WithOperation("parse smackspec").
	//		WithResource("./widget.smackspec").
	//		WithSuggestion("Check the reported line for a typo in the key").
	//		Wrap(parseErr).
	//		Err()
	Issue struct {
		// Operation is what was being attempted, as a verb phrase
		// (e.g., "parse smackspec", "list remote versions").
		Operation string

		// Resource identifies the file, URL, or entity involved (optional).
		Resource string

		// Suggestions are hints on how to fix the problem (optional).
		Suggestions []string

		// Cause is the underlying error (optional).
		Cause error
	}

	// Context is a fluent builder for Issue values.
	Context struct {
		issue Issue
	}
)

// NewContext creates an empty Issue builder.
func NewContext() *Context {
	return &Context{}
}

// WithOperation sets the operation being performed. An operation is
// required; a Context without one builds to nil.
func (c *Context) WithOperation(op string) *Context {
	c.issue.Operation = op
	return c
}

// WithResource sets the resource (file, URL, entity) involved.
func (c *Context) WithResource(res string) *Context {
	c.issue.Resource = res
	return c
}

// WithSuggestion adds one fix-it hint. May be called repeatedly.
func (c *Context) WithSuggestion(s string) *Context {
	c.issue.Suggestions = append(c.issue.Suggestions, s)
	return c
}

// Wrap records the underlying error as the cause.
func (c *Context) Wrap(err error) *Context {
	c.issue.Cause = err
	return c
}

// Err returns the built Issue as an error, or nil when no operation was set.
func (c *Context) Err() error {
	if c.issue.Operation == "" {
		return nil
	}
	built := c.issue
	return &built
}

// Error implements the error interface with the concise, non-verbose form.
func (e *Issue) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

// Unwrap returns the cause so errors.Is/As see through the Issue.
func (e *Issue) Unwrap() error {
	return e.Cause
}

// Format renders the issue for terminal output. Suggestions are listed as
// bullets; verbose mode appends the unwrapped cause chain.
func (e *Issue) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	for _, s := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(s)
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		for depth, err := 1, e.Cause; err != nil; depth, err = depth+1, errors.Unwrap(err) {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
		}
	}

	return msg.String()
}
