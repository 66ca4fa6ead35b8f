package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanDir walks an inbox directory and discovers all .txt export files.
// A missing directory is not an error; it just yields nothing.
func ScanDir(inboxDir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(inboxDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return []DiscoveredFile{{Path: inboxDir, Name: filepath.Base(inboxDir)}}, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(inboxDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".txt") {
			return nil
		}

		files = append(files, DiscoveredFile{
			Path: path,
			Name: d.Name(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic import order regardless of walk order
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files, nil
}
