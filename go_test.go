package ux_test

import (
	"bufio"
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// The library must stay consumable as a plain module: no replace directives
// and no local module paths.
func TestNoReplace(t *testing.T) {
	if os.Getenv("UX_SKIP_MOD") != "" {
		// Use this to avoid this check if you need a replace while hacking:
		t.Skip()
	}

	tt := assert.WrapTB(t)
	bts, err := os.ReadFile("go.mod")
	tt.MustOK(err)

	scn := bufio.NewScanner(bytes.NewReader(fixNL(bts)))
	for line := 1; scn.Scan(); line++ {
		txt := strings.TrimSpace(scn.Text())
		tt.MustAssert(!strings.HasPrefix(txt, "replace"), "go.mod:%d: unexpected replace directive", line)
		tt.MustAssert(!strings.Contains(txt, "=> ."), "go.mod:%d: unexpected local path", line)
	}
	tt.MustOK(scn.Err())
}

func TestGofmt(t *testing.T) {
	tt := assert.WrapTB(t)
	files, err := filepath.Glob("*.go")
	tt.MustOK(err)
	more, err := filepath.Glob(filepath.Join("internal", "*", "*.go"))
	tt.MustOK(err)
	files = append(files, more...)
	tt.MustAssert(len(files) > 0)

	for _, name := range files {
		bts, err := os.ReadFile(name)
		tt.MustOK(err)
		formatted, err := format.Source(bts)
		tt.MustOK(err)
		tt.MustAssert(bytes.Equal(bts, formatted), "%s is not gofmt-clean", name)
	}
}

func fixNL(d []byte) []byte {
	d = bytes.Replace(d, []byte{13, 10}, []byte{10}, -1)
	d = bytes.Replace(d, []byte{13}, []byte{10}, -1)
	return d
}
