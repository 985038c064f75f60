package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	sourceFileName = "index.md"
	outputFileName = "index.html"
)

// A directory under the site root holding an index.md.
type pageEntry struct {
	Name     string
	HtmlPath string

	// Nil when the source failed to parse; ParseErr says why.
	Page     *page
	ParseErr error

	NeedsUpdate bool
}

type pageEntries []*pageEntry

// collectPageEntries reads every immediate sub-directory of root that holds an
// index.md. Directories without one are not pages and are left out.
func collectPageEntries(root string, md renderer) (pageEntries, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	entries := make(pageEntries, 0, len(dirEntries))
	for _, d := range dirEntries {
		if !d.IsDir() {
			continue
		}

		e, err := readPageEntry(filepath.Join(root, d.Name()), md)
		if err != nil {
			return nil, err
		}
		if e != nil {
			entries = append(entries, e)
		}
	}

	return entries, nil
}

// readPageEntry returns nil and no error when dir has no index.md.
func readPageEntry(dir string, md renderer) (*pageEntry, error) {
	sourcePath := filepath.Join(dir, sourceFileName)

	content, err := os.ReadFile(sourcePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %v: %w", sourcePath, err)
	}

	sourceInfo, err := os.Stat(sourcePath)
	if err != nil {
		return nil, err
	}

	e := &pageEntry{
		Name:     filepath.Base(dir),
		HtmlPath: filepath.Join(dir, outputFileName),
	}
	e.NeedsUpdate = isStale(sourceInfo, e.HtmlPath)
	e.Page, e.ParseErr = parsePage(string(content), md)

	return e, nil
}

// isStale reports whether the output at htmlPath is missing or older than
// the source. Equal modification times count as up to date.
func isStale(source fs.FileInfo, htmlPath string) bool {
	out, err := os.Stat(htmlPath)
	if err != nil {
		return true
	}
	return source.ModTime().After(out.ModTime())
}
