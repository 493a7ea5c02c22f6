// Package scraper fetches puzzle text from a web page so a puzzle
// published online can be fed straight into the pipeline.
package scraper

import (
	"fmt"
	"strings"

	"github.com/gocolly/colly/v2"
)

// ScrapedPage represents the text content extracted from a webpage
type ScrapedPage struct {
	URL        string
	Title      string
	Paragraphs []string
	StatusCode int
}

// Scraper provides web scraping functionality
type Scraper struct {
	collector *colly.Collector
}

// NewScraper creates a new scraper instance with default configuration
func NewScraper() *Scraper {
	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.UserAgent("Mozilla/5.0 (compatible; logicpipe/1.0)"),
	)

	return &Scraper{
		collector: c,
	}
}

// Scrape fetches the page and collects its paragraph text
func (s *Scraper) Scrape(url string) (*ScrapedPage, error) {
	page := &ScrapedPage{
		URL: url,
	}

	s.collector.OnHTML("title", func(e *colly.HTMLElement) {
		page.Title = e.Text
	})

	s.collector.OnHTML("p", func(e *colly.HTMLElement) {
		if text := strings.TrimSpace(e.Text); text != "" {
			page.Paragraphs = append(page.Paragraphs, text)
		}
	})

	s.collector.OnResponse(func(r *colly.Response) {
		page.StatusCode = r.StatusCode
	})

	if err := s.collector.Visit(url); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	return page, nil
}

// Text joins the page's paragraphs into one block of puzzle text
func (p *ScrapedPage) Text() string {
	return strings.Join(p.Paragraphs, "\n\n")
}
