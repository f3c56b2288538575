// Package source produces queue items from local content: directory
// scans filtered by image extension. Remote sources plug in the same
// way by producing items; the engine does not care where they came
// from.
package source

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/pictriage/pictriage/swipe"
)

// DefaultExtensions are the image file extensions included in a scan
// when the caller does not override them.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".tiff"}

// Scan lists the images directly inside dir (no recursion) and
// returns them as queue items in name order. The label is the file's
// base name. An unreadable directory is an error; an empty result is
// not.
func Scan(dir string, extensions []string) ([]swipe.Item, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var items []swipe.Item
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !allowed[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		items = append(items, swipe.NewItem(filepath.Join(dir, name), name))
	}
	return items, nil
}

// Shuffle randomizes item order in place. Multi-round elimination
// reshuffles survivors between rounds so presentation order carries no
// information.
func Shuffle(items []swipe.Item) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
