package regression

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
)

// Equation renders the fitted equation with coefficients rounded to 4
// decimal places in the fixed order intercept then predictors.
func (fm *FittedModel) Equation() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %.4f", fm.OutcomeName, fm.Intercept)
	for i, c := range fm.Coef {
		sign := "+"
		if math.Signbit(c) {
			sign = "-"
		}
		fmt.Fprintf(&b, " %s %.4f*%s", sign, math.Abs(c), fm.Names[i])
	}
	return b.String()
}

// TablePrint writes a plain text regression summary with the fit scores and
// the per-coefficient inference rows.
func (fm *FittedModel) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sSales Regression:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, indentExpand(indent, 1), fm.Equation()); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%sR2: %.4f    Adj R2: %.4f    F: %.4f (p=%.4g)    df: %d\n",
		prefix, indentExpand(indent, 1),
		fm.R2, fm.AdjR2, fm.FStat, fm.FPValue, fm.DFResidual,
	); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s%sterm\tcoef\tstd err\tt\tp\n", prefix, indentExpand(indent, 1)); err != nil {
		return err
	}
	for _, c := range fm.Summary {
		if _, err := fmt.Fprintf(tw, "%s%s%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			prefix, indentExpand(indent, 1),
			c.Name, c.Value, c.StdErr, c.TValue, c.PValue,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func indentExpand(indent string, level int) string {
	return strings.Repeat(indent, level)
}
