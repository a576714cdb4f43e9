package benchplot

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Commands that produce the input files, run from the build directory.
var generators = []string{"./benchmark_asp", "./benchmark_std"}

// MissingInputError lists the input files that do not exist, in the
// order they were checked.
type MissingInputError struct {
	Paths []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required CSV files: %s", strings.Join(e.Paths, ", "))
}

// WriteGuidance prints the missing files and the commands that create
// them.
func (e *MissingInputError) WriteGuidance(w io.Writer) {
	fmt.Fprintln(w, "Missing required CSV files:")
	for _, p := range e.Paths {
		fmt.Fprintln(w, "  -", p)
	}
	fmt.Fprintln(w, "\nTo generate them, run the following from your build directory:")
	for _, cmd := range generators {
		fmt.Fprintln(w, " ", cmd)
	}
}

// MissingInputs returns the paths that cannot be stat-ed, preserving order.
func MissingInputs(paths ...string) []string {
	var missing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	return missing
}

// CheckInputs returns a *MissingInputError when any path is absent.
func CheckInputs(paths ...string) error {
	missing := MissingInputs(paths...)
	if len(missing) > 0 {
		return &MissingInputError{Paths: missing}
	}
	return nil
}
