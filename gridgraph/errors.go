package gridgraph

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is the umbrella for every grid validation failure.
// All other construction errors in this package wrap it.
var ErrMalformedGrid = errors.New("gridgraph: malformed grid")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrMissingStart indicates no Start cell was found.
	ErrMissingStart = fmt.Errorf("%w: no start cell", ErrMalformedGrid)
	// ErrDuplicateStart indicates more than one Start cell.
	ErrDuplicateStart = fmt.Errorf("%w: more than one start cell", ErrMalformedGrid)
	// ErrMissingGoal indicates no Goal cell was found.
	ErrMissingGoal = fmt.Errorf("%w: no goal cell", ErrMalformedGrid)
	// ErrDuplicateGoal indicates more than one Goal cell.
	ErrDuplicateGoal = fmt.Errorf("%w: more than one goal cell", ErrMalformedGrid)
	// ErrUnknownTerrain indicates a Terrain value outside Free..Goal.
	ErrUnknownTerrain = fmt.Errorf("%w: unknown terrain value", ErrMalformedGrid)
	// ErrUnknownSymbol indicates a rune outside the Parse alphabet.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrMalformedGrid)
)
