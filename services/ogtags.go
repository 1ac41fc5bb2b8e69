package services

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// OGTags holds the metadata scraped from a page. Tags that are not present
// come back as empty strings.
type OGTags struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URL         string `json:"url"`
}

var (
	ogMetaRx = map[string]*regexp.Regexp{
		"og:title":       metaRx("og:title"),
		"og:description": metaRx("og:description"),
		"og:image":       metaRx("og:image"),
	}
	titleRx = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
)

func metaRx(property string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)<meta[^>]+property=["']` + regexp.QuoteMeta(property) + `["'][^>]+content=["']([^"']+)["']`)
}

// FetchOGTags fetches url with a 10 second timeout and extracts
// og:title/og:description/og:image, with a <title> fallback. A malformed page
// yields empty fields; only an unreachable URL is an error.
func FetchOGTags(url string) (OGTags, error) {
	tags := OGTags{URL: url}

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return tags, fmt.Errorf("invalid url: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := client.Do(req)
	if err != nil {
		return tags, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return tags, fmt.Errorf("read %s: %w", url, err)
	}
	html := string(body)

	get := func(name string) string {
		if m := ogMetaRx[name].FindStringSubmatch(html); m != nil {
			return m[1]
		}
		return ""
	}

	tags.Title = get("og:title")
	if tags.Title == "" {
		if m := titleRx.FindStringSubmatch(html); m != nil {
			tags.Title = m[1]
		}
	}
	tags.Description = get("og:description")
	tags.Image = get("og:image")
	return tags, nil
}
