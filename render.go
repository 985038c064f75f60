package main

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

const writingIndexTitle = "Stuff I've written"

type templateParam struct {
	*SiteConf
	PageTitle    string
	Heading      string
	Description  string
	CanonicalUrl string
	// "website" or "article", for link previews.
	OgType string
}

type pageTemplateParam struct {
	templateParam
	// Nil unless the page is a post.
	Post *postMeta
	Body template.HTML
}

type writingTemplateParam struct {
	templateParam
	Writings []writing
}

type templateEngine struct {
	conf          *SiteConf
	templateCache map[string]*template.Template
}

func newTemplateEngine(conf *SiteConf) templateEngine {
	return templateEngine{
		conf:          conf,
		templateCache: make(map[string]*template.Template),
	}
}

// documentTitle is the <title> text: the heading prefixed with the site name
// unless bare is set.
func (te *templateEngine) documentTitle(heading string, bare bool) string {
	if bare {
		return heading
	}
	return te.conf.SiteName + " - " + heading
}

func (te *templateEngine) renderPage(slug string, p *page, w io.Writer) error {
	tp := pageTemplateParam{
		templateParam: templateParam{
			SiteConf:     te.conf,
			Heading:      p.Meta.title(),
			Description:  p.Meta.description(),
			CanonicalUrl: te.conf.pageUrl(slug),
		},
		Body: p.Body,
	}

	switch m := p.Meta.(type) {
	case *basicMeta:
		tp.PageTitle = te.documentTitle(m.Title, m.IsHome)
		tp.OgType = "website"
	case *postMeta:
		tp.PageTitle = te.documentTitle(m.Title, false)
		tp.OgType = "article"
		tp.Post = m
	}

	t := te.getTemplate("page.html")
	return t.ExecuteTemplate(w, "global", tp)
}

func (te *templateEngine) renderWritingIndex(writings []writing, w io.Writer) error {
	tp := writingTemplateParam{
		templateParam: templateParam{
			SiteConf:     te.conf,
			PageTitle:    te.documentTitle(writingIndexTitle, false),
			Heading:      writingIndexTitle,
			Description:  te.conf.FeedDescription,
			CanonicalUrl: te.conf.pageUrl(writingDir),
			OgType:       "website",
		},
		Writings: writings,
	}

	t := te.getTemplate("writing.html")
	return t.ExecuteTemplate(w, "global", tp)
}

func (te *templateEngine) getTemplate(filename string) *template.Template {
	t, ok := te.templateCache[filename]
	if !ok {
		t = template.Must(template.ParseFS(templateFS, "templates/global.html", "templates/"+filename))
		te.templateCache[filename] = t
	}
	return t
}
