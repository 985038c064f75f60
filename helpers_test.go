package main

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConf(root string) *SiteConf {
	c := defaultConf()
	c.Root = root
	c.Analytics = template.HTML(defaultAnalytics)
	return &c
}

func postSource(title, day, desc string) string {
	return fmt.Sprintf("post:\n  title: %q\n  author: Analog Hors\n  date: %s\n  desc: %q\n---\nBody of %s.\n",
		title, day, desc, title)
}

func basicSource(title string, isHome bool) string {
	return fmt.Sprintf("basic:\n  title: %q\n  is_home: %v\n  desc: About %s\n---\nSome text.\n",
		title, isHome, title)
}

// writeSource writes slug/index.md under root with a modification time an
// hour in the past, so that outputs written by the test are newer.
func writeSource(t *testing.T, root, slug, content string) string {
	t.Helper()
	dir := filepath.Join(root, slug)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, sourceFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))
	return path
}

func postEntry(t *testing.T, name, title, day string) *pageEntry {
	t.Helper()
	d, err := parseDate(day)
	require.NoError(t, err)
	return &pageEntry{
		Name: name,
		Page: &page{
			Meta: &postMeta{Title: title, Author: "Analog Hors", Date: d, Desc: "About " + title},
			Body: "<p>" + template.HTML(title) + "</p>",
		},
	}
}

func basicEntry(name, title string) *pageEntry {
	return &pageEntry{
		Name: name,
		Page: &page{Meta: &basicMeta{Title: title, Desc: "About " + title}},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func fileModTime(t *testing.T, path string) time.Time {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.ModTime()
}
