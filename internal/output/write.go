package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Save resolves a path and writes data to it. The file is opened with
// O_EXCL so a concurrent writer racing the existence check cannot clobber
// the file; on a lost race the path is re-resolved, which preserves the
// collision-counter naming sequence.
func Save(dir, explicitName, prompt string, index int, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %q: %w", dir, err)
	}

	for {
		path, err := Resolve(dir, explicitName, prompt, index, ext)
		if err != nil {
			return "", err
		}
		err = writeExclusive(path, data)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return path, nil
	}
}

func writeExclusive(path string, data []byte) error {
	f, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", path, err)
	}
	return nil
}
