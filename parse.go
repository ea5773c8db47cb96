package ux

import (
	"strconv"
)

// parseUnsigned parses s like strconv.ParseUint with a bit size of bits, so
// out-of-range input is rejected rather than truncated.
func parseUnsigned[T unsigned](s string, base int, bits uint) (T, error) {
	v, err := strconv.ParseUint(s, base, int(bits))
	if err != nil {
		return 0, Error.Wrap(err)
	}
	return T(v), nil
}

func parseSigned[T signed](s string, base int, bits uint) (T, error) {
	v, err := strconv.ParseInt(s, base, int(bits))
	if err != nil {
		return 0, Error.Wrap(err)
	}
	return T(v), nil
}

// unmarshalText decodes a base-10 value into dst, leaving dst untouched on
// error.
func unmarshalText[T any](dst *T, bts []byte, parse func(string, int) (T, error)) error {
	v, err := parse(string(bts), 10)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// unmarshalJSON accepts a JSON number or a quoted decimal string. JSON null
// leaves dst untouched, matching encoding/json's handling of native ints.
func unmarshalJSON[T any](dst *T, bts []byte, parse func(string, int) (T, error)) error {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return Error.New("invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return unmarshalText(dst, bts, parse)
}
