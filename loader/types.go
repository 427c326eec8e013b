package loader

import (
	"context"
	"errors"

	"github.com/katalvlaran/citysearch/core"
)

// Sentinel errors for record parsing.
var (
	// ErrMalformedRecord indicates a line with missing fields or unparsable coordinates.
	ErrMalformedRecord = errors.New("loader: malformed record")

	// ErrUnknownCity indicates an edge endpoint that names no loaded city.
	ErrUnknownCity = errors.New("loader: unknown city")

	// ErrMalformedQuery indicates a query file without two non-empty lines.
	ErrMalformedQuery = errors.New("loader: malformed query")
)

const (
	cityFields = 4
	edgeFields = 2
)

// Source yields a fully built graph. Files and citydb.DB implement it.
type Source interface {
	Load(ctx context.Context) (*core.Graph, error)
}

// EdgeRecord is one parsed edge line.
type EdgeRecord struct {
	A, B string
	Line int
}

// Query is the parsed query file: start and destination names, trimmed.
type Query struct {
	From string
	To   string
}
