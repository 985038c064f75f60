package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	writingDir       = "writing"
	writingIndexFile = "index.html"
	rssFileName      = "feed.xml"
	atomFileName     = "atom.xml"
)

type outcome int

const (
	updated outcome = iota
	skipped
	errored
)

func (o outcome) String() string {
	switch o {
	case updated:
		return "updated"
	case skipped:
		return "skipped"
	case errored:
		return "errored"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

type pageOutcome struct {
	Name    string
	Outcome outcome
}

type Site struct {
	entries pageEntries
	conf    *SiteConf
	engine  templateEngine
	log     *log.Logger
	metrics *buildMetrics
}

// ReadSite collects the pages under conf.Root. With force set every page is
// regenerated regardless of timestamps.
func ReadSite(conf *SiteConf, force bool, logger *log.Logger) (*Site, error) {
	entries, err := collectPageEntries(conf.Root, newMarkdownRenderer(conf.HighlightStyle))
	if err != nil {
		return nil, err
	}
	if force {
		for _, e := range entries {
			e.NeedsUpdate = true
		}
	}

	return &Site{
		entries: entries,
		conf:    conf,
		engine:  newTemplateEngine(conf),
		log:     logger,
		metrics: newBuildMetrics(),
	}, nil
}

// UpdatePages writes the HTML of every stale page that parsed. Pages that
// failed to parse are reported and left alone.
func (s *Site) UpdatePages() ([]pageOutcome, error) {
	s.log.Println("Updating pages...")

	outcomes := make([]pageOutcome, 0, len(s.entries))
	for _, e := range s.entries {
		o, err := s.updatePage(e)
		if err != nil {
			return outcomes, err
		}
		s.metrics.recordOutcome(o)
		outcomes = append(outcomes, pageOutcome{Name: e.Name, Outcome: o})
	}

	return outcomes, nil
}

func (s *Site) updatePage(e *pageEntry) (outcome, error) {
	// A page that does not parse is reported whatever its output's age.
	if e.Page == nil {
		s.log.Printf("[ERRORED] %v - Invalid page: %v", e.Name, e.ParseErr)
		return errored, nil
	}
	if !e.NeedsUpdate {
		s.log.Printf("[SKIPPED] %v - Up to date.", e.Name)
		return skipped, nil
	}

	var b bytes.Buffer
	if err := s.engine.renderPage(e.Name, e.Page, &b); err != nil {
		return errored, fmt.Errorf("rendering %v: %w", e.Name, err)
	}
	if err := writeFile(e.HtmlPath, b.Bytes()); err != nil {
		return errored, err
	}

	s.log.Printf("[UPDATED] %v - Updated.", e.Name)
	return updated, nil
}

func (s *Site) RenderWritingIndex() error {
	s.log.Println("Building writing index page...")

	var b bytes.Buffer
	if err := s.engine.renderWritingIndex(s.entries.writings(), &b); err != nil {
		return err
	}
	return writeFile(s.writingPath(writingIndexFile), b.Bytes())
}

func (s *Site) RenderFeeds() error {
	s.log.Println("Building feeds...")

	writings := s.entries.writings()
	s.metrics.posts.Set(float64(len(writings)))

	rss, err := renderRss(s.conf, writings)
	if err != nil {
		return err
	}
	if err = writeFile(s.writingPath(rssFileName), rss); err != nil {
		return err
	}

	// Posts the Atom generator rejects do not fail the build. A feed that
	// cannot be built is removed rather than left listing old posts.
	atomPath := s.writingPath(atomFileName)
	atomXml, err := s.renderAtom(writings)
	if err != nil {
		s.log.Printf("Skipping %v: %v", atomFileName, err)
		return removeFile(atomPath)
	}
	return writeFile(atomPath, atomXml)
}

func (s *Site) RenderAll() ([]pageOutcome, error) {
	start := time.Now()

	outcomes, err := s.UpdatePages()
	if err != nil {
		return outcomes, err
	}
	if err = os.MkdirAll(filepath.Join(s.conf.Root, writingDir), os.FileMode(0775)); err != nil {
		return outcomes, err
	}
	if err = s.RenderWritingIndex(); err != nil {
		return outcomes, err
	}
	if err = s.RenderFeeds(); err != nil {
		return outcomes, err
	}

	s.metrics.finish(time.Since(start))
	return outcomes, nil
}

func (s *Site) writingPath(file string) string {
	return filepath.Join(s.conf.Root, writingDir, file)
}

func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// writeFile replaces path through a temporary file so that readers never see
// a half-written page.
func writeFile(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, os.FileMode(0664)); err != nil {
		return fmt.Errorf("writing %v: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %v: %w", path, err)
	}
	return nil
}
