// Package fetch is the retrieval collaborator: it pulls irealb:// links
// out of a playlist web page and saves them as .irealb files. The codec
// packages never touch the network; this one never parses chords.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/chordwire/chordwire/constants"
	"github.com/chordwire/chordwire/wire"
)

// Found is one playlist link discovered on a page: the anchor text and
// the percent-decoded wire string.
type Found struct {
	Name string
	Wire string
}

// Links walks an HTML document and collects every anchor whose href is an
// irealb:// URL, using the anchor text as the playlist name.
func Links(r io.Reader) ([]Found, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse page: %w", err)
	}
	var found []Found
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href, ok := attr(n, "href"); ok && strings.HasPrefix(href, wire.Prefix) {
				decoded, err := url.PathUnescape(href)
				if err != nil {
					decoded = href
				}
				found = append(found, Found{Name: nodeText(n), Wire: decoded})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found, nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
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

// Page downloads url and extracts its playlist links.
func Page(pageURL string) ([]Found, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %v: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not fetch %v: %v", pageURL, resp.Status)
	}
	return Links(resp.Body)
}

var unsafeChars = regexp.MustCompile(`[^\w -]`)

// SafeName strips filesystem-hostile characters from a playlist or song
// name.
func SafeName(name string) string {
	safe := strings.TrimSpace(unsafeChars.ReplaceAllString(name, "_"))
	if safe == "" {
		safe = "playlist"
	}
	return safe
}

// Filename turns a playlist name into a safe .irealb filename.
func Filename(name string) string {
	return SafeName(name) + constants.PlaylistExt
}

// SaveAll writes each found playlist into dir, creating it if needed.
func SaveAll(dir string, found []Found) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range found {
		path := filepath.Join(dir, Filename(f.Name))
		if err := os.WriteFile(path, []byte(f.Wire), 0o644); err != nil {
			return fmt.Errorf("could not save %v: %w", f.Name, err)
		}
	}
	return nil
}
