// Package output computes unique, filesystem-safe paths for generated
// images and writes image bytes to them.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const maxStemLength = 200

// Sanitize turns prompt text into a filename stem: characters that are
// illegal in filenames and control characters are stripped, whitespace runs
// collapse to a single underscore, and the result is truncated to 200
// characters.
func Sanitize(prompt string) string {
	var b strings.Builder
	b.Grow(len(prompt))

	inSpace := false
	for _, r := range prompt {
		switch {
		// Whitespace must be classified before the control-character strip:
		// tab, newline and CR are both, and collapse rather than vanish.
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !inSpace && b.Len() > 0 {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		case r == '<', r == '>', r == ':', r == '"', r == '/', r == '\\', r == '|', r == '?', r == '*':
			continue
		case r < 0x20 || r == 0x7f:
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}

	stem := strings.TrimSuffix(b.String(), "_")
	if utf8.RuneCountInString(stem) > maxStemLength {
		stem = string([]rune(stem)[:maxStemLength])
	}
	return stem
}

// Resolve computes a unique absolute path for the index-th image of a
// batch. The base name comes from explicitName when given, otherwise from
// the sanitized prompt. Two disambiguation mechanisms compose: the batch
// index suffix (_1, _2, ...) is applied first, then a collision counter
// (" 1", " 2", ...) increments while a file already exists at the
// candidate path.
func Resolve(dir, explicitName, prompt string, index int, ext string) (string, error) {
	stem, fileExt := baseName(explicitName, prompt, ext)
	if index > 0 {
		stem = fmt.Sprintf("%s_%d", stem, index)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory %q: %w", dir, err)
	}

	candidate := filepath.Join(absDir, stem+fileExt)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil {
			return "", fmt.Errorf("checking %q: %w", candidate, err)
		}
		candidate = filepath.Join(absDir, fmt.Sprintf("%s %d%s", stem, counter, fileExt))
	}
}

func baseName(explicitName, prompt, ext string) (stem, fileExt string) {
	fileExt = ext
	if fileExt != "" && !strings.HasPrefix(fileExt, ".") {
		fileExt = "." + fileExt
	}

	if explicitName != "" {
		if e := filepath.Ext(explicitName); e != "" {
			return strings.TrimSuffix(explicitName, e), e
		}
		return explicitName, fileExt
	}

	stem = Sanitize(prompt)
	if stem == "" {
		stem = "image"
	}
	return stem, fileExt
}
