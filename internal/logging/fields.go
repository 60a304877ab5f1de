// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Parse fields.
	FieldBytes     = "bytes"
	FieldNodes     = "nodes"
	FieldTokens    = "tokens"
	FieldBlocks    = "blocks"
	FieldAnnotated = "annotated"
	FieldFormat    = "format"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
