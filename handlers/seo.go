package handlers

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sengiku/studio"
)

// DefaultSiteURL is used when SITE_URL is empty.
const DefaultSiteURL = "https://sengiku.studio"

const (
	seoCacheControl = "public, max-age=86400"
	sitemapXMLNS    = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// sitemapRoutes are the indexable pages; "" is the home page.
var sitemapRoutes = []string{"", "/services", "/projects", "/contact"}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// SEO serves robots.txt and sitemap.xml.
// Both documents are rendered once and cached by clients for a day.
type SEO struct {
	robots  []byte
	sitemap []byte
}

// NewSEO renders the documents for siteURL, stamping lastModified on every
// sitemap entry.
func NewSEO(siteURL string, lastModified time.Time) (*SEO, error) {
	siteURL = strings.TrimRight(strings.TrimSpace(siteURL), "/")
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}

	set := urlSet{XMLNS: sitemapXMLNS}
	lastMod := lastModified.UTC().Format(time.RFC3339)
	for _, route := range sitemapRoutes {
		priority := 0.7
		if route == "" {
			priority = 1
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        siteURL + route,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   strconv.FormatFloat(priority, 'f', -1, 64),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}

	return &SEO{
		robots:  []byte("User-Agent: *\nAllow: /\n\nSitemap: " + siteURL + "/sitemap.xml\n"),
		sitemap: append([]byte(xml.Header), body...),
	}, nil
}

// Routes declares the SEO documents.
func (h *SEO) Routes(r studio.Router) {
	r.GET("/robots.txt", h.robotsTxt)
	r.HEAD("/robots.txt", h.robotsTxt)
	r.GET("/sitemap.xml", h.sitemapXML)
	r.HEAD("/sitemap.xml", h.sitemapXML)
}

func (h *SEO) robotsTxt(c studio.Context) error {
	c.SetHeader("Cache-Control", seoCacheControl)
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", h.robots)
}

func (h *SEO) sitemapXML(c studio.Context) error {
	c.SetHeader("Cache-Control", seoCacheControl)
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", h.sitemap)
}
