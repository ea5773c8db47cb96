package ux

import (
	"fmt"
	"strconv"
	"strings"
)

// formatUnsigned implements fmt.Formatter by handing the canonical value to
// the formatter of its backing type, preserving flags, width and precision.
// %v and %s are rendered as %d.
func formatUnsigned[T unsigned](s fmt.State, c rune, v T) {
	fmt.Fprintf(s, decimalFormat(s, c), v)
}

// formatSigned is formatUnsigned for signed values. Negative values in
// binary, octal or hex are written as the two's complement bit pattern of
// the logical width, not as a signed magnitude and not with the padding bits
// of the backing type:
//
//	fmt.Sprintf("%x", NewI5(-3)) == "1d"
func formatSigned[T signed](s fmt.State, c rune, v T, bits uint) {
	if v < 0 {
		switch c {
		case 'b', 'o', 'O', 'x', 'X':
			pattern := uint64(int64(v)) & (uint64(1)<<bits - 1)
			fmt.Fprintf(s, fmt.FormatString(s, c), pattern)
			return
		}
	}
	fmt.Fprintf(s, decimalFormat(s, c), v)
}

// decimalFormat rebuilds the directive for the backing value. %v and %s
// become %d. As with native integers, '+' in %+v names struct fields and
// does not force a sign.
func decimalFormat(s fmt.State, c rune) string {
	switch c {
	case 'v':
		return strings.Replace(fmt.FormatString(s, 'd'), "+", "", 1)
	case 's':
		return fmt.FormatString(s, 'd')
	}
	return fmt.FormatString(s, c)
}

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }
