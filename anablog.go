// Package anablog is the static generator behind a small personal site.
//
// Every sub-directory of the site root holding an index.md is a page. The
// Markdown in it, after a YAML front matter block, is rendered to index.html
// next to it whenever the source is newer than the output. Pages whose front
// matter describes a post are also listed, newest first, in
// writing/index.html and in the feeds writing/feed.xml (RSS) and
// writing/atom.xml (Atom).
//
// Front matter looks like this, followed by a line starting with "---":
//
//	post:
//	  title: Some title
//	  author: Someone
//	  date: 2023-01-01
//	  desc: What it is about.
//
// Pages that are not posts use "basic:" with a title, a desc and optionally
// is_home.
package main

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type buildOptions struct {
	Root        string `help:"Directory holding one sub-directory per page." default:"." type:"existingdir" env:"ANABLOG_ROOT"`
	Config      string `short:"c" help:"Site configuration file, relative to the site root." default:"anablog.yaml"`
	BaseUrl     string `name:"base-url" help:"Canonical base URL of the site, overriding the configuration." env:"ANABLOG_BASE_URL"`
	Force       bool   `short:"f" help:"Regenerate every page even when it is up to date."`
	Export      string `help:"Copy the built site into this directory." type:"path"`
	MetricsFile string `help:"Write build metrics in Prometheus text format to this file." type:"path" env:"ANABLOG_METRICS_FILE"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	var opts buildOptions
	kong.Parse(&opts,
		kong.Name("anablog"),
		kong.Description("Render the pages, writing index and feeds of the site."),
		kong.UsageOnError(),
	)

	log.SetFlags(0)
	if err := build(opts, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func build(opts buildOptions, logOut io.Writer) error {
	logger := log.New(logOut, "", 0)

	conf, err := readConf(opts.Root, opts.Config, logger)
	if err != nil {
		return err
	}
	if len(opts.BaseUrl) > 0 {
		conf.BaseUrl = withTrailingSlash(opts.BaseUrl)
	}

	site, err := ReadSite(conf, opts.Force, logger)
	if err != nil {
		return err
	}
	if _, err = site.RenderAll(); err != nil {
		return err
	}

	if len(opts.MetricsFile) > 0 {
		if err = site.metrics.writeTextfile(opts.MetricsFile); err != nil {
			return err
		}
	}
	if len(opts.Export) > 0 {
		logger.Println("Exporting site to " + opts.Export)
		if err = exportSite(conf, opts.Config, opts.Export); err != nil {
			return err
		}
	}

	logger.Println("Done.")
	return nil
}
