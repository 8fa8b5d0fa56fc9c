package font

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{"", Builtin} {
		f, err := Load("does-not-exist", name, 16)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", name, err)
		}
		if f.Name() != Builtin {
			t.Errorf("Name() = %q, expected %q", f.Name(), Builtin)
		}
		if f.Size() != 16 {
			t.Errorf("Size() = %v, expected 16", f.Size())
		}
		f.Close()
	}
}

func TestLoadFromAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "fonts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(dir, "custom"), gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(dir, "custom", 16)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer f.Close()

	if f.Name() != "custom" {
		t.Errorf("Name() = %q, expected custom", f.Name())
	}
}

func TestLoadMissingFont(t *testing.T) {
	_, err := Load(t.TempDir(), "LiberationMono-Regular", 16)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected not-exist", err)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("junk", []byte("not a font"), 16); err == nil {
		t.Error("Parse() of junk data should fail")
	}
	if _, err := Parse(Builtin, gomono.TTF, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Parse() with size 0 error = %v, expected ErrInvalidSize", err)
	}
}

func TestPath(t *testing.T) {
	got := Path("assets", "LiberationMono-Regular")
	expected := filepath.Join("assets", "fonts", "LiberationMono-Regular.ttf")
	if got != expected {
		t.Errorf("Path() = %q, expected %q", got, expected)
	}
}

func TestMeasure(t *testing.T) {
	f, err := Load("", Builtin, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, h := f.Measure("0 : 0")
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure() = %d x %d, expected positive", w, h)
	}
	if h != f.LineHeight() {
		t.Errorf("height = %d, expected line height %d", h, f.LineHeight())
	}
	if f.Ascent() <= 0 || f.Ascent() > h {
		t.Errorf("Ascent() = %d, expected within (0, %d]", f.Ascent(), h)
	}

	// Monospaced: width depends only on rune count
	if w2, _ := f.Measure("10:99"); w2 != w {
		t.Errorf("Measure(\"10:99\") width = %d, expected %d", w2, w)
	}
	if w3, _ := f.Measure("0 : 00"); w3 <= w {
		t.Errorf("longer text should be wider: %d <= %d", w3, w)
	}
	if w0, _ := f.Measure(""); w0 != 0 {
		t.Errorf("Measure(\"\") width = %d, expected 0", w0)
	}
}
