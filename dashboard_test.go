package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var sampleValues = []string{
	"web-v2-98fc6cfbc-jb56w",
	"192.168.1.104",
	"was-v4-64f876c6d4-h4jjm",
	"192.168.2.139",
	"db",
	"10.101.207.125",
}

// hasClass reports whether n carries the CSS class c.
func hasClass(n *html.Node, c string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, f := range strings.Fields(a.Val) {
				if f == c {
					return true
				}
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findAll collects every element under n matching fn.
func findAll(n *html.Node, fn func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && fn(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func renderSample(t *testing.T, s Snapshot) (string, *html.Node) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, renderDashboard(&buf, buildView(s, time.Date(2026, 10, 18, 9, 30, 15, 0, time.UTC))))
	doc, err := html.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), doc
}

func TestRenderDashboardContainsSampleValues(t *testing.T) {
	page, _ := renderSample(t, sampleSnapshot())

	assert.Contains(t, strings.ToLower(page), "<!doctype html>", "Should contain DOCTYPE")
	assert.Contains(t, page, "3-Tier Application Dashboard", "Should contain dashboard title")
	assert.Contains(t, page, "System Operational")
	for _, v := range sampleValues {
		assert.Contains(t, page, v)
	}
	assert.Contains(t, page, "Connected to DB at db:3306")
	assert.Contains(t, page, "Last checked: <time>2026-10-18 09:30:15</time>")
}

func TestRenderDashboardCardRows(t *testing.T) {
	_, doc := renderSample(t, sampleSnapshot())

	cards := findAll(doc, func(n *html.Node) bool { return hasClass(n, "card") })
	require.Len(t, cards, 3)

	expect := []struct {
		tier   string
		rows   int
		badged bool
	}{
		{"web", 2, false},
		{"was", 2, false},
		{"db", 3, true},
	}
	for i, e := range expect {
		card := cards[i]
		assert.Equal(t, e.tier, attr(card, "data-tier"))
		rows := findAll(card, func(n *html.Node) bool { return hasClass(n, "row") })
		assert.Len(t, rows, e.rows, "tier %s", e.tier)
		badges := findAll(card, func(n *html.Node) bool { return hasClass(n, "connection") })
		if e.badged {
			require.Len(t, badges, 1)
			assert.Equal(t, "Connected", textOf(badges[0]))
			assert.True(t, hasClass(badges[0], "tone-ok"))
		} else {
			assert.Empty(t, badges, "tier %s", e.tier)
		}
	}
}

func TestRenderDashboardDiagram(t *testing.T) {
	_, doc := renderSample(t, sampleSnapshot())

	nodes := findAll(doc, func(n *html.Node) bool { return hasClass(n, "node") })
	require.Len(t, nodes, 3)
	assert.Equal(t, "Web", textOf(nodes[0]))
	assert.Equal(t, "WAS", textOf(nodes[1]))
	assert.Equal(t, "DB", textOf(nodes[2]))

	arrows := findAll(doc, func(n *html.Node) bool { return hasClass(n, "arrow") })
	assert.Len(t, arrows, 2)

	icons := findAll(doc, func(n *html.Node) bool { return n.Data == "svg" })
	assert.Len(t, icons, 6, "one icon per node and per card")
}

func TestRenderDashboardDisconnected(t *testing.T) {
	s := sampleSnapshot()
	s.Database.Connected = false
	_, doc := renderSample(t, s)

	badges := findAll(doc, func(n *html.Node) bool { return hasClass(n, "connection") })
	require.Len(t, badges, 1)
	assert.Equal(t, "Disconnected", textOf(badges[0]))
	assert.True(t, hasClass(badges[0], "tone-alert"))

	banner := findAll(doc, func(n *html.Node) bool { return hasClass(n, "banner") })
	require.Len(t, banner, 1)
	assert.True(t, hasClass(banner[0], "tone-ok"), "banner is always operational")
}

func TestRenderDashboardEscapesValues(t *testing.T) {
	s := sampleSnapshot()
	s.Web.PodName = `<script>alert("x")</script>`
	page, _ := renderSample(t, s)

	assert.NotContains(t, page, `<script>alert`)
	assert.Contains(t, page, "&lt;script&gt;")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write error")
}

func TestRenderDashboardWriteError(t *testing.T) {
	err := renderDashboard(failingWriter{}, buildView(sampleSnapshot(), time.Now()))
	assert.Error(t, err)
}
