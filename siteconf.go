package main

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/analytics.html
var defaultAnalytics string

type SiteConf struct {
	SiteName        string `yaml:"site_name"`
	Handle          string `yaml:"handle"`
	BaseUrl         string `yaml:"base_url"`
	FeedTitle       string `yaml:"feed_title"`
	FeedDescription string `yaml:"feed_description"`
	Language        string `yaml:"language"`
	Author          string `yaml:"author"`
	AuthorUri       string `yaml:"author_uri"`
	HighlightStyle  string `yaml:"highlight_style"`
	AnalyticsFile   string `yaml:"analytics_file"`

	// The directory holding one sub-directory per page.
	Root string `yaml:"-"`
	// Injected verbatim into every page head.
	Analytics template.HTML `yaml:"-"`
}

func defaultConf() SiteConf {
	return SiteConf{
		SiteName:        "Analog Hors",
		Handle:          "analog-hors",
		BaseUrl:         "https://analog-hors.github.io/site/",
		FeedTitle:       "Analog Hors - Writing",
		FeedDescription: "Analog's Blog",
		Language:        "en",
		Author:          "Analog Hors",
		AuthorUri:       "https://analog-hors.github.io/site/",
		HighlightStyle:  "base16-snazzy",
	}
}

// readConf loads the YAML configuration at fileName, relative to root. A
// missing file leaves every setting at its default and is reported to logger.
func readConf(root, fileName string, logger *log.Logger) (*SiteConf, error) {
	conf := defaultConf()
	conf.Root = root

	confPath := normalizePath(fileName, root)
	rawConf, err := os.ReadFile(confPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Println("No site configuration at " + confPath + ", using defaults")
	case err != nil:
		return nil, err
	default:
		if err = yaml.Unmarshal(rawConf, &conf); err != nil {
			return nil, fmt.Errorf("parsing %v: %w", confPath, err)
		}
	}

	conf.BaseUrl = withTrailingSlash(conf.BaseUrl)

	conf.Analytics = template.HTML(defaultAnalytics)
	if len(conf.AnalyticsFile) > 0 {
		analyticsPath := normalizePath(conf.AnalyticsFile, filepath.Dir(confPath))
		snippet, err := os.ReadFile(analyticsPath)
		if err != nil {
			return nil, fmt.Errorf("reading analytics snippet: %w", err)
		}
		conf.Analytics = template.HTML(snippet)
	}

	return &conf, nil
}

func (c *SiteConf) pageUrl(slug string) string {
	return c.BaseUrl + slug + "/"
}

func (c *SiteConf) writingUrl(file string) string {
	return c.BaseUrl + writingDir + "/" + file
}

func withTrailingSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}
