package main

const fileTemplate = `// Code generated by uxgen. DO NOT EDIT.

package {{.Package}}

import (
	"cmp"
	"fmt"
)
{{range .Types}}
// {{.Name}} is {{.Desc}} {{.Bits}}-bit integer backed by {{.Backing}}. The zero
// value is 0.
type {{.Name}} struct{ v {{.Backing}} }

var (
	Min{{.Name}} = {{.Min}}
	Max{{.Name}} = {{.Max}}
)

// New{{.Name}} returns v as a {{.Name}}. It panics if v is outside
// [Min{{.Name}}, Max{{.Name}}]; v is never truncated.
func New{{.Name}}(v {{.Backing}}) {{.Name}} {
	return {{.Name}}{v: mustFit{{.Kind}}(v, {{.Bits}}, "{{.Name}}")}
}
{{range .Froms}}
// {{.Func}} converts v without loss; every {{.Native}} fits in {{.Owner}}.
func {{.Func}}(v {{.Native}}) {{.Owner}} { return {{.Owner}}{v: {{.Backing}}(v)} }
{{end}}
// Parse{{.Name}} interprets s in the given base like strconv.{{.ParseFunc}},
// rejecting values that do not fit in {{.Bits}} bits.
func Parse{{.Name}}(s string, base int) ({{.Name}}, error) {
	v, err := parse{{.Kind}}[{{.Backing}}](s, base, {{.Bits}})
	return {{.Name}}{v: v}, err
}

func ({{.Name}}) Bits() uint         { return {{.Bits}} }
func ({{.Name}}) Signed() bool       { return {{.Signed}} }
func ({{.Name}}) MinValue() {{.Name}} { return Min{{.Name}} }
func ({{.Name}}) MaxValue() {{.Name}} { return Max{{.Name}} }

// WrappingAdd returns u+n modulo 2^{{.Bits}}.
func (u {{.Name}}) WrappingAdd(n {{.Name}}) {{.Name}} { return {{.Name}}{v: mask{{.Kind}}(u.v+n.v, {{.Bits}})} }

// WrappingSub returns u-n modulo 2^{{.Bits}}.
func (u {{.Name}}) WrappingSub(n {{.Name}}) {{.Name}} { return {{.Name}}{v: mask{{.Kind}}(u.v-n.v, {{.Bits}})} }

// Add returns u+n. It wraps like WrappingAdd, except under the ux_debug
// build tag where overflow panics.
func (u {{.Name}}) Add(n {{.Name}}) {{.Name}} { return {{.Name}}{v: add{{.Kind}}(u.v, n.v, {{.Bits}}, "{{.Name}}")} }

// Sub returns u-n. It wraps like WrappingSub, except under the ux_debug
// build tag where overflow panics.
func (u {{.Name}}) Sub(n {{.Name}}) {{.Name}} { return {{.Name}}{v: sub{{.Kind}}(u.v, n.v, {{.Bits}}, "{{.Name}}")} }

func (u {{.Name}}) Cmp(n {{.Name}}) int               { return cmp.Compare(u.v, n.v) }
func (u {{.Name}}) Equal(n {{.Name}}) bool            { return u.v == n.v }
func (u {{.Name}}) LessThan(n {{.Name}}) bool         { return u.v < n.v }
func (u {{.Name}}) LessOrEqualTo(n {{.Name}}) bool    { return u.v <= n.v }
func (u {{.Name}}) GreaterThan(n {{.Name}}) bool      { return u.v > n.v }
func (u {{.Name}}) GreaterOrEqualTo(n {{.Name}}) bool { return u.v >= n.v }

// Lsh returns u<<n. Bits shifted out of the low {{.Bits}} are discarded.
func (u {{.Name}}) Lsh(n uint) {{.Name}} { return {{.Name}}{v: mask{{.Kind}}(u.v<<n, {{.Bits}})} }

// Rsh returns u>>n.
func (u {{.Name}}) Rsh(n uint) {{.Name}} { return {{.Name}}{v: u.v >> n} }

func (u {{.Name}}) Or(n {{.Name}}) {{.Name}} { return {{.Name}}{v: mask{{.Kind}}(u.v|n.v, {{.Bits}})} }

func (u *{{.Name}}) LshAssign(n uint)     { *u = u.Lsh(n) }
func (u *{{.Name}}) RshAssign(n uint)     { *u = u.Rsh(n) }
func (u *{{.Name}}) OrAssign(n {{.Name}}) { *u = u.Or(n) }

func (u {{.Name}}) Hash() uint64 { return hashInt64(int64(u.v)) }
{{range .Natives}}
func (u {{.Owner}}) {{.Func}}() {{.Native}} { return {{.Native}}(u.v) }
{{- end}}

func (u {{.Name}}) String() string                  { return formatInt(int64(u.v)) }
func (u {{.Name}}) Format(s fmt.State, c rune)      { format{{.Kind}}(s, c, {{.FormatArgs}}) }
func (u {{.Name}}) MarshalText() ([]byte, error)    { return []byte(u.String()), nil }
func (u *{{.Name}}) UnmarshalText(bts []byte) error { return unmarshalText(u, bts, Parse{{.Name}}) }
func (u {{.Name}}) MarshalJSON() ([]byte, error)    { return []byte(u.String()), nil }
func (u *{{.Name}}) UnmarshalJSON(bts []byte) error { return unmarshalJSON(u, bts, Parse{{.Name}}) }

func (u *{{.Name}}) setInt64(v int64) { u.v = {{.Backing}}(v) }
{{end}}`
