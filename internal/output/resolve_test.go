package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"plain", "sunset", "sunset"},
		{"spaces", "a red fox", "a_red_fox"},
		{"whitespace runs", "a \t red\n\nfox", "a_red_fox"},
		{"forbidden chars", `what? <a:b> "c/d\e|f*`, "what_ab_cdef"},
		{"control chars", "a\x00b\x1fc", "abc"},
		{"tab and newline collapse", "one\ttwo\nthree", "one_two_three"},
		{"control char inside whitespace run", "a\x00 \t b", "a_b"},
		{"leading space dropped", "  fox", "fox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.prompt); got != tt.want {
				t.Errorf("Sanitize(%q)=%q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestSanitize_Properties(t *testing.T) {
	prompts := []string{
		"a very long prompt " + strings.Repeat("word ", 100),
		`<>:"/\|?*`,
		"mixed  white\tspace and /slashes/ everywhere",
	}
	for _, p := range prompts {
		got := Sanitize(p)
		if len(got) > maxStemLength {
			t.Errorf("len=%d exceeds %d", len(got), maxStemLength)
		}
		if strings.ContainsAny(got, `<>:"/\|?* `+"\t\n\r") {
			t.Errorf("forbidden characters survive in %q", got)
		}
		if strings.Contains(got, "__") {
			t.Errorf("whitespace run not collapsed in %q", got)
		}
	}
}

func TestResolve_IndexSuffixes(t *testing.T) {
	dir := t.TempDir()
	want := []string{"sunset.png", "sunset_1.png", "sunset_2.png"}
	for i, w := range want {
		path, err := Resolve(dir, "", "sunset", i, "png")
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != w {
			t.Errorf("index %d: got %q, want %q", i, filepath.Base(path), w)
		}
		if !filepath.IsAbs(path) {
			t.Errorf("path must be absolute: %q", path)
		}
	}
}

func TestResolve_ExplicitFilename(t *testing.T) {
	dir := t.TempDir()

	path, err := Resolve(dir, "custom.png", "ignored prompt", 0, "png")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "custom.png" {
		t.Errorf("got %q", path)
	}

	path, err = Resolve(dir, "custom.png", "ignored prompt", 2, "png")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "custom_2.png" {
		t.Errorf("index suffix goes before the extension: %q", path)
	}

	// No extension on the explicit name: the default extension applies.
	path, err = Resolve(dir, "custom", "ignored prompt", 0, "jpeg")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "custom.jpeg" {
		t.Errorf("got %q", path)
	}
}

func TestResolve_CollisionCounter(t *testing.T) {
	dir := t.TempDir()
	mustTouch(t, filepath.Join(dir, "custom.png"))

	path, err := Resolve(dir, "custom.png", "", 0, "png")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "custom 1.png" {
		t.Errorf("got %q, want \"custom 1.png\"", filepath.Base(path))
	}

	mustTouch(t, filepath.Join(dir, "custom 1.png"))
	path, err = Resolve(dir, "custom.png", "", 0, "png")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "custom 2.png" {
		t.Errorf("got %q, want \"custom 2.png\"", filepath.Base(path))
	}
}

func TestResolve_CollisionComposesWithIndex(t *testing.T) {
	dir := t.TempDir()
	mustTouch(t, filepath.Join(dir, "custom_1.png"))

	path, err := Resolve(dir, "custom.png", "", 1, "png")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "custom_1 1.png" {
		t.Errorf("got %q, want \"custom_1 1.png\"", filepath.Base(path))
	}
}

func TestSave_WritesAndDisambiguates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	first, err := Save(dir, "", "sunset", 0, "png", []byte("one"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Save(dir, "", "sunset", 0, "png", []byte("two"))
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(first) != "sunset.png" || filepath.Base(second) != "sunset 1.png" {
		t.Errorf("got %q, %q", first, second)
	}
	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Errorf("second file holds %q", data)
	}
}

func TestResolve_EmptyPromptFallsBack(t *testing.T) {
	path, err := Resolve(t.TempDir(), "", `<>:"/\|?*`, 0, "png")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "image.png" {
		t.Errorf("got %q", path)
	}
}

func mustTouch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}
