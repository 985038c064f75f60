package main

import (
	"cmp"
	"slices"
)

// A post together with the entry it was read from.
type writing struct {
	Entry *pageEntry
	Post  *postMeta
}

// Called from templates
func (w writing) Slug() string { return w.Entry.Name }

// writings returns the entries that parsed as posts, newest first. Posts
// sharing a date are ordered by title. The slice is built fresh on every
// call.
func (es pageEntries) writings() []writing {
	ws := make([]writing, 0, len(es))
	for _, e := range es {
		if e.Page == nil {
			continue
		}
		switch m := e.Page.Meta.(type) {
		case *postMeta:
			ws = append(ws, writing{Entry: e, Post: m})
		case *basicMeta:
		}
	}

	slices.SortStableFunc(ws, func(a, b writing) int {
		// Newer comes first
		if c := b.Post.Date.Compare(a.Post.Date.Time); c != 0 {
			return c
		}
		return cmp.Compare(a.Post.Title, b.Post.Title)
	})

	return ws
}
