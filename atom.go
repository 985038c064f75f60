package main

import (
	"errors"

	"github.com/microcosm-cc/bluemonday"
	atom "github.com/thomas11/atomgenerator"
)

// Post bodies may carry raw HTML such as scripts. Feed readers get a
// sanitized copy.
var feedContentPolicy = bluemonday.UGCPolicy()

var errEmptyAtomFeed = errors.New("no posts to list")

// renderAtom builds the Atom feed from writings, newest first. The feed date
// is that of the newest post so that an unchanged site renders the same
// bytes. An error means the feed could not be built from these posts; it is
// never an I/O failure.
func (s *Site) renderAtom(writings []writing) ([]byte, error) {
	// An Atom feed without entries is not valid.
	if len(writings) == 0 {
		return nil, errEmptyAtomFeed
	}

	feed := atom.Feed{
		Title:   s.conf.FeedTitle,
		Link:    s.conf.writingUrl(""),
		PubDate: writings[0].Post.Date.Time,
	}
	feed.AddAuthor(atom.Author{
		Name: s.conf.Author,
		Uri:  s.conf.AuthorUri,
	})

	for _, w := range writings {
		feed.AddEntry(s.entryForWriting(w))
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		s.log.Println("Atom feed is not valid!")
		for _, e := range errs {
			s.log.Println(e.Error())
		}
		return nil, errs[0]
	}

	return feed.GenXml()
}

func (s *Site) entryForWriting(w writing) *atom.Entry {
	return &atom.Entry{
		Title:       w.Post.Title,
		Description: w.Post.Desc,
		Link:        s.conf.pageUrl(w.Slug()),
		PubDate:     w.Post.Date.Time,
		Content:     feedContentPolicy.Sanitize(string(w.Entry.Page.Body)),
	}
}
