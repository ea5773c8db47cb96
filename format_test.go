package ux

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFormat(t *testing.T) {
	for idx, tc := range []struct {
		in  interface{}
		f   string
		out string
	}{
		{NewU5(17), "%d", "17"},
		{NewU5(17), "%v", "17"},
		{NewU5(17), "%s", "17"},
		{NewU5(17), "%x", "11"},
		{NewU5(26), "%X", "1A"},
		{NewU5(17), "%#x", "0x11"},
		{NewU5(17), "%o", "21"},
		{NewU5(17), "%O", "0o21"},
		{NewU5(5), "%b", "101"},
		{NewU5(5), "%08b", "00000101"},
		{NewU5(5), "%4d", "   5"},
		{NewU5(5), "%-4d|", "5   |"},
		{NewU5(5), "%+d", "+5"},
		{MaxU63, "%d", "9223372036854775807"},
		{MaxU63, "%x", "7fffffffffffffff"},

		{NewI5(-3), "%d", "-3"},
		{NewI5(-3), "%v", "-3"},
		{NewI5(-3), "%5d", "   -3"},
		{NewI5(-3), "%x", "1d"},
		{NewI5(-3), "%X", "1D"},
		{NewI5(-3), "%o", "35"},
		{NewI5(-3), "%b", "11101"},
		{NewI5(-3), "%08b", "00011101"},
		{NewI5(3), "%b", "11"},
		{NewI5(3), "%+d", "+3"},
		{MinI5, "%b", "10000"},
		{NewI9(-1), "%x", "1ff"},
		{NewI9(-1), "%#x", "0x1ff"},
		{MinI63, "%d", "-4611686018427387904"},
		{MinI63, "%x", "4000000000000000"},
		{MaxI63, "%d", "4611686018427387903"},
		{NewI33(-1), "%b", "111111111111111111111111111111111"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.f, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.f, tc.in))
		})
	}
}

func TestFormatStruct(t *testing.T) {
	tt := assert.WrapTB(t)
	v := struct {
		A U5
		B I9
	}{NewU5(3), NewI9(-2)}
	tt.MustEqual("{3 -2}", fmt.Sprintf("%v", v))
	tt.MustEqual("{A:3 B:-2}", fmt.Sprintf("%+v", v))
	tt.MustEqual("[1 2]", fmt.Sprint([]U12{NewU12(1), NewU12(2)}))
}

func TestString(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("0", U7{}.String())
	tt.MustEqual("0", I7{}.String())
	tt.MustEqual("-64", MinI7.String())
	tt.MustEqual("127", MaxU7.String())
	tt.MustEqual("-1", NewI2(-1).String())
}

func TestParse(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		base int
		u5   int64
		i5   int64
		ok5  bool
		okI5 bool
	}{
		{"0", 10, 0, 0, true, true},
		{"15", 10, 15, 15, true, true},
		{"16", 10, 16, 0, true, false},
		{"31", 10, 31, 0, true, false},
		{"32", 10, 0, 0, false, false},
		{"-16", 10, 0, -16, false, true},
		{"-17", 10, 0, 0, false, false},
		{"0x1f", 0, 31, 0, true, false},
		{"0b111", 0, 7, 7, true, true},
		{"-0x10", 0, 0, -16, false, true},
		{"f", 16, 15, 15, true, true},
		{"", 10, 0, 0, false, false},
		{"1.5", 10, 0, 0, false, false},
		{"abc", 10, 0, 0, false, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)

			u, err := ParseU5(tc.in, tc.base)
			if tc.ok5 {
				tt.MustOK(err)
				tt.MustEqual(tc.u5, u.Int64())
			} else {
				tt.MustAssert(err != nil)
				tt.MustAssert(Error.Has(err))
			}

			i, err := ParseI5(tc.in, tc.base)
			if tc.okI5 {
				tt.MustOK(err)
				tt.MustEqual(tc.i5, i.Int64())
			} else {
				tt.MustAssert(err != nil)
				tt.MustAssert(Error.Has(err))
			}
		})
	}
}

func TestParseWide(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := ParseU9("511", 10)
	tt.MustOK(err)
	tt.MustEqual(MaxU9, v)
	_, err = ParseU9("512", 10)
	tt.MustAssert(err != nil)

	i, err := ParseI63("-4611686018427387904", 10)
	tt.MustOK(err)
	tt.MustEqual(MinI63, i)
	_, err = ParseI63("4611686018427387904", 10)
	tt.MustAssert(err != nil)

	u, err := ParseU63("9223372036854775807", 10)
	tt.MustOK(err)
	tt.MustEqual(MaxU63, u)
	_, err = ParseU63("9223372036854775808", 10)
	tt.MustAssert(err != nil)
}

func TestUnmarshalTextLeavesValueOnError(t *testing.T) {
	tt := assert.WrapTB(t)
	v := NewI9(-7)
	tt.MustAssert(v.UnmarshalText([]byte("256")) != nil)
	tt.MustEqual(NewI9(-7), v)
	tt.MustOK(v.UnmarshalText([]byte("255")))
	tt.MustEqual(MaxI9, v)
}

type jsonDoc struct {
	A U5  `json:"a"`
	B I17 `json:"b"`
	C U63 `json:"c"`
}

func TestMarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts, err := json.Marshal(jsonDoc{NewU5(31), NewI17(-65536), MaxU63})
	tt.MustOK(err)
	tt.MustEqual(`{"a":31,"b":-65536,"c":9223372036854775807}`, string(bts))

	bts, err = json.Marshal(map[string]I5{"x": MinI5})
	tt.MustOK(err)
	tt.MustEqual(`{"x":-16}`, string(bts))
}

func TestUnmarshalJSON(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out jsonDoc
		ok  bool
	}{
		{`{"a":31,"b":-65536,"c":1}`, jsonDoc{NewU5(31), NewI17(-65536), NewU63(1)}, true},
		{`{"a":"7","b":"-2"}`, jsonDoc{NewU5(7), NewI17(-2), NewU63(0)}, true},
		{`{"a":null,"b":null}`, jsonDoc{}, true},
		{`{"a":32}`, jsonDoc{}, false},
		{`{"b":65536}`, jsonDoc{}, false},
		{`{"a":-1}`, jsonDoc{}, false},
		{`{"a":1.5}`, jsonDoc{}, false},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var doc jsonDoc
			err := json.Unmarshal([]byte(tc.in), &doc)
			if !tc.ok {
				tt.MustAssert(err != nil)
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.out, doc)
		})
	}
}

func TestUnmarshalJSONNullKeepsValue(t *testing.T) {
	tt := assert.WrapTB(t)
	v := NewU9(300)
	tt.MustOK(v.UnmarshalJSON([]byte("null")))
	tt.MustEqual(NewU9(300), v)
	tt.MustAssert(v.UnmarshalJSON([]byte(`"12`)) != nil)
	tt.MustEqual(NewU9(300), v)
}
