package main

import (
	"bytes"
	"log"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAtom(t *testing.T) {
	a := postEntry(t, "a", "Zeta", "2023-01-01")
	a.Page.Body = `<p>Kept</p><script>alert("tracked")</script>`
	site := &Site{
		entries: pageEntries{a, postEntry(t, "b", "Alpha", "2023-06-01")},
		conf:    testConf(t.TempDir()),
		log:     log.New(&bytes.Buffer{}, "", 0),
	}

	out, err := site.renderAtom(site.entries.writings())
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "tracked")
	assert.Contains(t, s, "Kept")

	feed, err := gofeed.NewParser().ParseString(s)
	require.NoError(t, err)
	assert.Equal(t, "atom", feed.FeedType)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "Alpha", feed.Items[0].Title)
	assert.Equal(t, "Zeta", feed.Items[1].Title)
}

func TestRenderAtom_StableAcrossRuns(t *testing.T) {
	site := &Site{
		entries: pageEntries{postEntry(t, "a", "Zeta", "2023-01-01")},
		conf:    testConf(t.TempDir()),
		log:     log.New(&bytes.Buffer{}, "", 0),
	}

	first, err := site.renderAtom(site.entries.writings())
	require.NoError(t, err)
	second, err := site.renderAtom(site.entries.writings())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRenderAtom_DatedByNewestWriting(t *testing.T) {
	// The feed is built from its argument alone.
	site := &Site{
		conf: testConf(t.TempDir()),
		log:  log.New(&bytes.Buffer{}, "", 0),
	}
	es := pageEntries{
		postEntry(t, "a", "Zeta", "2023-01-01"),
		postEntry(t, "b", "Alpha", "2023-06-01"),
	}

	out, err := site.renderAtom(es.writings())
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err)
	require.NotNil(t, feed.UpdatedParsed)
	assert.Equal(t, "2023-06-01", feed.UpdatedParsed.UTC().Format("2006-01-02"))
}

func TestRenderAtom_Rejected(t *testing.T) {
	site := &Site{
		conf: testConf(t.TempDir()),
		log:  log.New(&bytes.Buffer{}, "", 0),
	}

	t.Run("no posts", func(t *testing.T) {
		_, err := site.renderAtom(nil)
		require.ErrorIs(t, err, errEmptyAtomFeed)
	})

	t.Run("untitled post", func(t *testing.T) {
		es := pageEntries{postEntry(t, "a", "", "2023-01-01")}
		_, err := site.renderAtom(es.writings())
		require.Error(t, err)
	})
}
