package grid

import "fmt"

// ValidationError reports a dimension, color, or input-shape violation.
// It is returned by constructors and mutating operations; the caller is
// expected to surface it and retry with corrected input.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeBadWidth  = "BAD_WIDTH"
	CodeBadHeight = "BAD_HEIGHT"
	CodeBadColor  = "BAD_COLOR"
	CodeEmptyGrid = "EMPTY_GRID"
	CodeRaggedRow = "RAGGED_ROWS"
)

// OutOfBoundsError reports a Get/Set access outside the current grid
// extent. Out-of-range access never silently returns a default; masking
// a bad coordinate would hide caller bugs.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinates (%d,%d) out of bounds for %dx%d grid", e.X, e.Y, e.Width, e.Height)
}
