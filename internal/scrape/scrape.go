// Package scrape extracts a best-effort café profile from a public business
// listing page. Extraction is explicitly unreliable: every field of the
// result is optional, and any failure yields an empty profile with ok=false
// rather than an error. Callers must never treat extraction as a hard
// dependency.
package scrape

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Profile is a possibly-partial set of café fields recovered from a page.
type Profile struct {
	Name        string
	Description string
	LogoURL     string
	Phone       string
	Email       string
	Website     string
}

const (
	fetchTimeout = 10 * time.Second
	maxBodySize  = 2 << 20 // 2 MiB; listing pages past this are not worth parsing
)

// Extractor fetches and parses listing pages.
type Extractor struct {
	client *http.Client
}

// New creates an extractor. A nil client gets a default with a sane timeout.
func New(client *http.Client) *Extractor {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Extractor{client: client}
}

// Extract fetches url and pulls whatever profile fields it can find:
// og: meta tags, the document title, and tel:/mailto: links. The boolean is
// false when nothing useful could be recovered.
func (e *Extractor) Extract(ctx context.Context, url string) (Profile, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Profile{}, false
	}
	req.Header.Set("User-Agent", "qr-cafe-menu/1.0")

	resp, err := e.client.Do(req)
	if err != nil {
		return Profile{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, false
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Profile{}, false
	}

	var p Profile
	p.Website = url
	walk(doc, &p)

	if p.Name == "" && p.Description == "" && p.Phone == "" && p.Email == "" {
		return Profile{}, false
	}
	return p, true
}

func walk(n *html.Node, p *Profile) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "meta":
			readMeta(n, p)
		case "title":
			if p.Name == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				p.Name = strings.TrimSpace(n.FirstChild.Data)
			}
		case "a":
			readAnchor(n, p)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, p)
	}
}

func readMeta(n *html.Node, p *Profile) {
	var property, content string
	for _, attr := range n.Attr {
		switch attr.Key {
		case "property", "name":
			property = attr.Val
		case "content":
			content = attr.Val
		}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}

	switch property {
	case "og:title":
		p.Name = content
	case "og:description", "description":
		if p.Description == "" {
			p.Description = content
		}
	case "og:image":
		if p.LogoURL == "" {
			p.LogoURL = content
		}
	}
}

func readAnchor(n *html.Node, p *Profile) {
	for _, attr := range n.Attr {
		if attr.Key != "href" {
			continue
		}
		href := strings.TrimSpace(attr.Val)
		switch {
		case strings.HasPrefix(href, "tel:") && p.Phone == "":
			p.Phone = strings.TrimPrefix(href, "tel:")
		case strings.HasPrefix(href, "mailto:") && p.Email == "":
			p.Email = strings.TrimPrefix(href, "mailto:")
		}
	}
}
