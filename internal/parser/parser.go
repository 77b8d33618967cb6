// Package parser defines the contract shared by all import format
// parsers.
package parser

import (
	"io"

	"github.com/jbqneto/financial-flow/internal/models"
)

// Parser reads one export format and produces canonical transactions.
// Implementations skip malformed rows silently; the returned error is
// reserved for failures of the underlying read, which void the whole
// import attempt.
type Parser interface {
	// Parse consumes the decoded file content and returns the
	// normalized transactions in input row order.
	Parse(r io.Reader) ([]models.Transaction, error)

	// Source is the provenance tag stamped on every transaction this
	// parser produces.
	Source() models.Source
}
