// SPDX-License-Identifier: Apache-2.0

package interval

import (
	"strconv"
	"strings"
)

// String returns the human-readable form: "[]" when empty, "[v]" when
// degenerate and "[a..b]" when proper. [Parse] reverses it.
func (i Interval) String() string {
	switch {
	case i.IsEmpty():
		return "[]"
	case i.IsDegenerate():
		return "[" + strconv.Itoa(i.start) + "]"
	default:
		return "[" + strconv.Itoa(i.start) + ".." + strconv.Itoa(i.end) + "]"
	}
}

// GoString returns the constructor form used by the %#v verb:
// "Interval()", "Interval(v)" or "Interval(a, b)".
func (i Interval) GoString() string {
	switch {
	case i.IsEmpty():
		return "Interval()"
	case i.IsDegenerate():
		return "Interval(" + strconv.Itoa(i.start) + ")"
	default:
		return "Interval(" + strconv.Itoa(i.start) + ", " + strconv.Itoa(i.end) + ")"
	}
}

func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Parse reads an interval in the form produced by [Interval.String].
// Leading and trailing white space is ignored. A two-endpoint form whose
// start is not below its end fails with an *InvalidIntervalError; any other
// malformed input fails with a *SyntaxError.
func Parse(s string) (Interval, error) {
	text := strings.TrimSpace(s)

	inner, ok := strings.CutPrefix(text, "[")
	if !ok {
		return Interval{}, &SyntaxError{Input: s, Message: "missing '['"}
	}
	inner, ok = strings.CutSuffix(inner, "]")
	if !ok {
		return Interval{}, &SyntaxError{Input: s, Message: "missing ']'"}
	}

	if inner == "" {
		return Empty(), nil
	}

	first, second, proper := strings.Cut(inner, "..")
	start, err := parseEndpoint(s, first)
	if err != nil {
		return Interval{}, err
	}
	if !proper {
		return Degenerate(start), nil
	}

	end, err := parseEndpoint(s, second)
	if err != nil {
		return Interval{}, err
	}
	return Proper(start, end)
}

func parseEndpoint(input, field string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, &SyntaxError{Input: input, Message: "bad endpoint " + strconv.Quote(field)}
	}
	return v, nil
}
