package vector

import "fmt"

// UnknownDimension reports a write (or by-name lookup) against a dimension
// that is not in the closed catalog declared in dims.go.
type UnknownDimension struct {
	Name string
}

func (e *UnknownDimension) Error() string {
	return fmt.Sprintf("vector: unknown dimension %q", e.Name)
}
