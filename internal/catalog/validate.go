package catalog

import (
	"fmt"
	"strings"
)

type Violation struct {
	ImagePath  string
	Unresolved []string
}

func (v Violation) String() string {
	return fmt.Sprintf("invalid collection(s) [%s] referenced in image: %s",
		strings.Join(v.Unresolved, ", "), v.ImagePath)
}

// ValidationError lists every image whose collections do not resolve.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks that every collection referenced by an image is declared in
// c or is a virtual collection. It does not modify c.
func Validate(c Catalog) error {
	known := make(map[string]bool, len(c.Collections)+len(VirtualCollections))
	for _, col := range c.Collections {
		known[col.ID] = true
	}
	for _, id := range VirtualCollections {
		known[id] = true
	}

	var violations []Violation
	for _, img := range c.Images {
		var unresolved []string
		for _, id := range img.Meta.Collections {
			if !known[id] {
				unresolved = append(unresolved, id)
			}
		}
		if len(unresolved) > 0 {
			violations = append(violations, Violation{ImagePath: img.Path, Unresolved: unresolved})
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
