package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxInputs is the largest number of input values a run accepts.
const MaxInputs = 100

// MaxValue is the inclusive upper bound of every accepted decimal. The lower
// bound is zero.
var MaxValue = decimal.NewFromInt(1_000_000_000)

// FractionPlaces bounds the scale of every accepted value. Finer digits are
// rounded half to even, so a value below 0.5e-30 becomes zero.
const FractionPlaces = 30

const (
	// maxMagnitude is the base-10 order of magnitude of MaxValue.
	maxMagnitude = 9
	// exponentCap is far beyond any exponent that could keep a nonzero
	// value inside [0, MaxValue] with FractionPlaces of precision.
	exponentCap = 1 << 40
)

var (
	errNotDecimal = errors.New("not a decimal number")
	errOutOfRange = errors.New("outside of [0, 1000000000]")
)

var (
	// literalPattern accepts sign, digits with single underscores between
	// them, an optional fraction and an optional exponent.
	literalPattern  = regexp.MustCompile(`^[+-]?(?:\d(?:_?\d)*(?:\.(?:\d(?:_?\d)*)?)?|\.\d(?:_?\d)*)(?:[eE][+-]?\d(?:_?\d)*)?$`)
	infinityPattern = regexp.MustCompile(`(?i)^[+-]?inf(?:inity)?$`)
)

// Argument validates a configuration scalar such as the threshold or the
// limit. name is used verbatim in the diagnostic.
func Argument(text, name string) (decimal.Decimal, error) {
	d, err := parseBounded(text)
	if err != nil {
		kind := ArgumentRange
		if errors.Is(err, errNotDecimal) {
			kind = InvalidArgument
		}
		return decimal.Decimal{}, &Error{Kind: kind, Subject: name, Err: err}
	}
	return d, nil
}

// Input validates one already-trimmed line of standard input.
func Input(line string) (decimal.Decimal, error) {
	d, err := parseBounded(line)
	if err != nil {
		kind := InputRange
		if errors.Is(err, errNotDecimal) {
			kind = InvalidInput
		}
		return decimal.Decimal{}, &Error{Kind: kind, Subject: line, Err: err}
	}
	return d, nil
}

// IsNumber reports whether text is shaped like a decimal literal, in range or
// not. The CLI uses it to tell negative numbers apart from flags.
func IsNumber(text string) bool {
	s := strings.TrimSpace(text)
	return literalPattern.MatchString(s) || infinityPattern.MatchString(s)
}

func parseBounded(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if infinityPattern.MatchString(s) {
		return decimal.Decimal{}, errOutOfRange
	}
	if !literalPattern.MatchString(s) {
		return decimal.Decimal{}, errNotDecimal
	}
	s = strings.ReplaceAll(s, "_", "")

	mantissaText, exponentText := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissaText, exponentText = s[:i], s[i+1:]
	}
	mantissa, err := decimal.NewFromString(mantissaText)
	if err != nil {
		return decimal.Decimal{}, errors.Join(errNotDecimal, err)
	}
	if mantissa.IsZero() {
		return decimal.Zero, nil
	}
	if mantissa.Sign() < 0 {
		return decimal.Decimal{}, errOutOfRange
	}

	// The value lies in [10^magnitude, 10^(magnitude+1)).
	coefficient := mantissa.Coefficient()
	exponent := int64(mantissa.Exponent()) + parseExponent(exponentText)
	magnitude := int64(len(coefficient.Text(10))) + exponent - 1
	switch {
	case magnitude > maxMagnitude:
		return decimal.Decimal{}, errOutOfRange
	case magnitude < -FractionPlaces-1:
		return decimal.Zero, nil
	}

	d := decimal.NewFromBigInt(coefficient, int32(exponent))
	if d.GreaterThan(MaxValue) {
		return decimal.Decimal{}, errOutOfRange
	}
	if exponent < -FractionPlaces {
		d = d.RoundBank(FractionPlaces)
	}
	return d, nil
}

// parseExponent reads the digits after the exponent marker. Exponents too
// large for int64 saturate at exponentCap with their sign.
func parseExponent(text string) int64 {
	if text == "" {
		return 0
	}
	exp, err := strconv.ParseInt(text, 10, 64)
	if err != nil || exp > exponentCap || exp < -exponentCap {
		if strings.HasPrefix(text, "-") {
			return -exponentCap
		}
		return exponentCap
	}
	return exp
}
