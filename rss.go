package main

import (
	"bytes"
	"encoding/xml"
	"time"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string      `xml:"title"`
	Description string      `xml:"description"`
	Link        string      `xml:"link"`
	Language    string      `xml:"language"`
	Self        rssAtomLink `xml:"atom:link"`
	Items       []rssItem   `xml:"item"`
}

type rssAtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Description string  `xml:"description"`
	Link        string  `xml:"link"`
	Guid        rssGuid `xml:"guid"`
	PubDate     string  `xml:"pubDate"`
}

type rssGuid struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// renderRss builds the RSS 2.0 document for the given posts, in the order
// given. Character data is escaped by the XML encoder.
func renderRss(conf *SiteConf, writings []writing) ([]byte, error) {
	feed := rssFeed{
		Version: "2.0",
		AtomNS:  atomNamespace,
		Channel: rssChannel{
			Title:       conf.FeedTitle,
			Description: conf.FeedDescription,
			Link:        conf.BaseUrl,
			Language:    conf.Language,
			Self: rssAtomLink{
				Href: conf.writingUrl(rssFileName),
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Items: make([]rssItem, 0, len(writings)),
		},
	}

	for _, w := range writings {
		link := conf.pageUrl(w.Slug())
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       w.Post.Title,
			Description: w.Post.Desc,
			Link:        link,
			Guid:        rssGuid{IsPermaLink: true, Value: link},
			PubDate:     w.Post.Date.UTC().Format(time.RFC1123Z),
		})
	}

	var b bytes.Buffer
	b.WriteString(xml.Header)
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, err
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
