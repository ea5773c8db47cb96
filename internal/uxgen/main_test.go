package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"text/template"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseTemplate(t *testing.T) *template.Template {
	t.Helper()
	tpl, err := template.New("ux").Parse(fileTemplate)
	require.NoError(t, err)
	return tpl
}

// decls returns every top level name declared in src: types, vars and
// functions by name, methods as Recv.Name.
func decls(t *testing.T, name string, src []byte) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.SkipObjectResolution)
	require.NoError(t, err)

	var out []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				out = append(out, d.Name.Name)
				continue
			}
			recv := d.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			out = append(out, recv.(*ast.Ident).Name+"."+d.Name.Name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					out = append(out, spec.Name.Name)
				case *ast.ValueSpec:
					for _, n := range spec.Names {
						out = append(out, n.Name)
					}
				}
			}
		}
	}
	sort.Strings(out)
	return out
}

func TestPlan(t *testing.T) {
	files := plan("ux")
	require.Len(t, files, 8)

	var names []string
	for _, f := range files {
		for _, it := range f.Types {
			names = append(names, it.Name)
		}
	}
	require.Len(t, names, 118)
	require.Contains(t, names, "U2")
	require.Contains(t, names, "I63")
	require.NotContains(t, names, "U8")
	require.NotContains(t, names, "I16")
	require.NotContains(t, names, "U32")
	require.NotContains(t, names, "I64")
}

func TestPlanNatives(t *testing.T) {
	find := func(name string) integer {
		for _, f := range plan("ux") {
			for _, it := range f.Types {
				if it.Name == name {
					return it
				}
			}
		}
		t.Fatalf("no type %s", name)
		return integer{}
	}
	funcs := func(ns []native) (out []string) {
		for _, n := range ns {
			out = append(out, n.Func)
		}
		return out
	}

	for _, tc := range []struct {
		name    string
		natives []string
		froms   []string
	}{
		{"U5", []string{"Uint8", "Uint16", "Uint32", "Uint64", "Int8", "Int16", "Int32", "Int64"}, nil},
		{"I5", []string{"Int8", "Int16", "Int32", "Int64"}, nil},
		{"U9", []string{"Uint16", "Uint32", "Uint64", "Int16", "Int32", "Int64"}, []string{"U9FromUint8"}},
		{"I9", []string{"Int16", "Int32", "Int64"}, []string{"I9FromUint8", "I9FromInt8"}},
		{"U63", []string{"Uint64", "Int64"}, []string{"U63FromUint8", "U63FromUint16", "U63FromUint32"}},
		{"I63", []string{"Int64"}, []string{
			"I63FromUint8", "I63FromUint16", "I63FromUint32",
			"I63FromInt8", "I63FromInt16", "I63FromInt32",
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			it := find(tc.name)
			if diff := cmp.Diff(tc.natives, funcs(it.Natives)); diff != "" {
				t.Fatalf("natives (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.froms, funcs(it.Froms)); diff != "" {
				t.Fatalf("froms (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHolds(t *testing.T) {
	require.True(t, holds(8, false, 5, false))
	require.True(t, holds(8, true, 7, false))
	require.False(t, holds(8, true, 8, false))
	require.False(t, holds(64, false, 2, true))
	require.True(t, holds(64, true, 63, true))
	require.False(t, holds(7, true, 8, true))
}

func TestRenderParses(t *testing.T) {
	tpl := parseTemplate(t)
	for _, f := range plan("ux") {
		t.Run(f.Name, func(t *testing.T) {
			src, err := render(tpl, f)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(string(src), "// Code generated by uxgen. DO NOT EDIT."))

			got := decls(t, f.Name, src)
			for _, it := range f.Types {
				require.Contains(t, got, it.Name)
				require.Contains(t, got, "Min"+it.Name)
				require.Contains(t, got, "Max"+it.Name)
				require.Contains(t, got, "New"+it.Name)
				require.Contains(t, got, "Parse"+it.Name)
				require.Contains(t, got, it.Name+".WrappingAdd")
				require.Contains(t, got, it.Name+".OrAssign")
				require.Contains(t, got, it.Name+".Format")
				require.Contains(t, got, it.Name+".UnmarshalJSON")
				for _, n := range it.Natives {
					require.Contains(t, got, it.Name+"."+n.Func)
				}
				for _, n := range it.Froms {
					require.Contains(t, got, n.Func)
				}
			}
		})
	}
}

// The checked in files must declare exactly what the generator would write
// now; run 'go generate' after changing the template or the plan.
func TestGeneratedFilesCurrent(t *testing.T) {
	tpl := parseTemplate(t)
	for _, f := range plan("ux") {
		t.Run(f.Name, func(t *testing.T) {
			want, err := render(tpl, f)
			require.NoError(t, err)

			have, err := os.ReadFile(filepath.Join("..", "..", f.Name))
			require.NoError(t, err)

			if diff := cmp.Diff(decls(t, f.Name, want), decls(t, f.Name, have)); diff != "" {
				t.Fatalf("%s is stale (-want +have):\n%s", f.Name, diff)
			}
		})
	}
}
