// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
)

// FormatLabelled formats a matrix as an aligned table with the given
// row and column labels. NaN entries are printed as a dash. Missing
// labels are left blank.
func FormatLabelled(X mat.Matrix, rows, cols []string) string {
	r, c := X.Dims()

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(w, "\t")
	for j := 0; j < c; j++ {
		fmt.Fprintf(w, "%v\t", label(cols, j))
	}
	fmt.Fprintln(w)

	for i := 0; i < r; i++ {
		fmt.Fprintf(w, "%v\t", label(rows, i))
		for j := 0; j < c; j++ {
			if v := X.At(i, j); math.IsNaN(v) {
				fmt.Fprint(w, "-\t")
			} else {
				fmt.Fprintf(w, "%.3f\t", v)
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	return b.String()
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}
