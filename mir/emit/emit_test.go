package emit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecstatic-morse/polonius.next/internal/txtar"
	"github.com/ecstatic-morse/polonius.next/mir/emit"
	"github.com/ecstatic-morse/polonius.next/mir/facts"
	"github.com/ecstatic-morse/polonius.next/mir/parser"
	"github.com/ecstatic-morse/polonius.next/mir/render"
)

// file returns the named file's data from a, or fails the test.
func file(t *testing.T, a *txtar.Archive, name string) string {
	t.Helper()
	for _, f := range a.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	t.Fatalf("txtar archive has no file %q", name)
	return ""
}

func runFixture(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	a := txtar.Parse(data)

	src := file(t, a, "program.mir")
	want := file(t, a, "facts.txt")
	simpleNodes := strings.Contains(string(a.Comment), "simple-nodes: true")

	prog, err := parser.Parse(src, path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	e := emit.New(prog, simpleNodes)
	f := &facts.Facts{}
	e.Emit(f)

	got := render.Text(f)
	if got != want {
		t.Errorf("render.Text mismatch for %s:\ngot:\n%s\nwant:\n%s", path, got, want)
	}
}

func TestFixtures(t *testing.T) {
	matches, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatal("no fixtures found under testdata/")
	}
	for _, m := range matches {
		m := m
		t.Run(filepath.Base(m), func(t *testing.T) {
			runFixture(t, m)
		})
	}
}
