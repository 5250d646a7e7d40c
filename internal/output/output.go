// Package output renders a run's result sequence.
package output

import (
	"bytes"
	"io"

	"github.com/shopspring/decimal"
	"github.com/specialistvlad/clampsum/internal/validation"
)

// Places is the number of fractional digits every value is printed with.
const Places = 1

// Format renders v with exactly one fractional digit, rounding half to even.
func Format(v decimal.Decimal) string {
	return v.RoundBank(Places).StringFixed(Places)
}

// Write prints values one per line. The whole sequence is rendered before
// the single write to w.
func Write(w io.Writer, values []decimal.Decimal) error {
	var buf bytes.Buffer
	for _, v := range values {
		buf.WriteString(Format(v))
		buf.WriteByte('\n')
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return &validation.Error{Kind: validation.Write, Err: err}
	}
	return nil
}
