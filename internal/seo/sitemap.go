package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Entry is one sitemap URL record.
type Entry struct {
	Loc        string
	ChangeFreq string
	Priority   string
}

// Entries returns the sitemap entries for every indexable page, with
// absolute URLs built from baseURL.
func Entries(baseURL string) []Entry {
	base := strings.TrimRight(baseURL, "/")
	var entries []Entry
	for _, p := range pages {
		if !p.Indexable {
			continue
		}
		entries = append(entries, Entry{
			Loc:        base + p.Path,
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}
	return entries
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// BuildSitemap renders the sitemaps.org urlset document for every
// indexable page.
func BuildSitemap(baseURL string) (string, error) {
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range Entries(baseURL) {
		set.URLs = append(set.URLs, sitemapURL(e))
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return xml.Header + string(body) + "\n", nil
}

// BuildRobots renders robots.txt with an absolute Sitemap line derived
// from baseURL.
func BuildRobots(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Sitemap: " + base + "/sitemap.xml\n")
	return b.String()
}
