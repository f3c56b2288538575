// Package output is the sink accepted images are copied through: one
// subdirectory per outcome category under a base output directory.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pictriage/pictriage/swipe"
)

// Saver copies queue items into category-named subdirectories of
// BaseDir. It implements swipe.Saver. Failures are reportable errors;
// they never stop navigation.
type Saver struct {
	BaseDir string
}

// NewSaver creates a saver rooted at dir.
func NewSaver(dir string) *Saver {
	return &Saver{BaseDir: dir}
}

// Save copies the item's source file to BaseDir/category/basename.
// The copy is written to a temporary file in the destination directory
// and renamed into place so readers never observe a partial file. An
// existing file with the same name is replaced.
func (s *Saver) Save(item swipe.Item, category string) error {
	destDir := filepath.Join(s.BaseDir, category)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	dest := filepath.Join(destDir, filepath.Base(item.SourcePath))
	if err := copyFile(item.SourcePath, dest); err != nil {
		return fmt.Errorf("copy %s: %w", item.SourcePath, err)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, dest)
}
