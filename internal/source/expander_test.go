package source

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func TestExpand_DropsCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "list", "# header comment\n\nexample.com\n\n   \nfull:exact.example.com\n")

	e := NewExpander(dir)
	got := e.Expand("list")

	want := []string{"example.com", "full:exact.example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
	if len(e.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", e.Warnings())
	}
}

func TestExpand_SplicesIncludesInPlace(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "outer", "before.com\ninclude:inner\nafter.com\n")
	writeDataFile(t, dir, "inner", "middle-a.com\nmiddle-b.com\n")

	e := NewExpander(dir)
	got := e.Expand("outer")

	want := []string{"before.com", "middle-a.com", "middle-b.com", "after.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestExpand_NestedIncludes(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "a", "a.com\ninclude:b\n")
	writeDataFile(t, dir, "b", "b.com\ninclude:c\n")
	writeDataFile(t, dir, "c", "c.com\n")

	e := NewExpander(dir)
	got := e.Expand("a")

	want := []string{"a.com", "b.com", "c.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestExpand_MissingIncludeTargetIsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "list", "kept.com\ninclude:nonexistent\nalso-kept.com\n")

	e := NewExpander(dir)
	got := e.Expand("list")

	want := []string{"kept.com", "also-kept.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
	if len(e.Warnings()) != 1 {
		t.Fatalf("Warnings() = %v, want exactly one", e.Warnings())
	}
	if !strings.Contains(e.Warnings()[0], "nonexistent") {
		t.Errorf("warning %q should name the missing target", e.Warnings()[0])
	}
}

func TestExpand_MissingRootIsEmpty(t *testing.T) {
	dir := t.TempDir()

	e := NewExpander(dir)
	got := e.Expand("does-not-exist")

	if len(got) != 0 {
		t.Errorf("Expand() = %v, want empty", got)
	}
	if len(e.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, want exactly one", e.Warnings())
	}
}

func TestExpand_DirectCycleTerminates(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "self", "first.com\ninclude:self\nlast.com\n")

	e := NewExpander(dir)
	got := e.Expand("self")

	want := []string{"first.com", "last.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
	if len(e.Warnings()) != 1 || !strings.Contains(e.Warnings()[0], "circular") {
		t.Errorf("Warnings() = %v, want one circular-include warning", e.Warnings())
	}
}

func TestExpand_TransitiveCycleTerminates(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "x", "x.com\ninclude:y\n")
	writeDataFile(t, dir, "y", "y.com\ninclude:x\n")

	e := NewExpander(dir)
	got := e.Expand("x")

	want := []string{"x.com", "y.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
	if len(e.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, want exactly one", e.Warnings())
	}
}

func TestExpand_KeepsAttributeAnnotations(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "list", "tagged.com @ads @cn\nplain.com\n")

	e := NewExpander(dir)
	got := e.Expand("list")

	want := []string{"tagged.com @ads @cn", "plain.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestExpand_IncludeWithTrailingAnnotation(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "outer", "include:inner @cn\n")
	writeDataFile(t, dir, "inner", "inner.com\n")

	e := NewExpander(dir)
	got := e.Expand("outer")

	want := []string{"inner.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestExpand_FreshVisitedSetPerExpansion(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "list", "a.com\n")

	e := NewExpander(dir)
	first := e.Expand("list")
	second := e.Expand("list")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated expansion differs: %v vs %v", first, second)
	}
	if len(e.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", e.Warnings())
	}
}
