// Command rag-pipeline scrapes web pages through the Thordata Universal
// Scraping API, distills each page into markdown-style text, and writes
// the results to a single file suitable for embedding in a vector store.
//
// URLs come from the command line or from a file (one per line, blank
// lines and # comments ignored). A page that fails to scrape is reported
// and skipped; the pipeline only fails when every page does.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/thordata/thordata-mcp/extract"
	"github.com/thordata/thordata-mcp/thordata"
	"github.com/thordata/thordata-mcp/web"
)

var (
	stepStyle    = color.New(color.FgMagenta, color.Bold)
	successStyle = color.New(color.FgGreen)
	failureStyle = color.New(color.FgRed, color.Bold)
	mutedStyle   = color.New(color.FgWhite, color.Faint)
)

const (
	checkmark = "✓"
	xmark     = "✗"
	rocket    = "🚀"
)

func main() {
	var (
		urlsPath   string
		outputPath string
		country    string
		timeout    int
	)
	flag.StringVar(&urlsPath, "urls", "", "File containing URLs to scrape, one per line")
	flag.StringVar(&outputPath, "output", "knowledge_base_sample.md", "Output file for the distilled markdown")
	flag.StringVar(&country, "country", "", "Proxy country code for scraping (e.g. \"us\")")
	flag.IntVar(&timeout, "timeout", 60, "Per-page scrape timeout in seconds")
	flag.Parse()

	if err := run(urlsPath, outputPath, country, timeout, flag.Args()); err != nil {
		failureStyle.Fprintf(os.Stderr, "%s Pipeline failed: %v\n", xmark, err)
		os.Exit(1)
	}
}

func run(urlsPath, outputPath, country string, timeoutSeconds int, args []string) error {
	urls, err := gatherURLs(urlsPath, args)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs given: pass them as arguments or via -urls")
	}

	if os.Getenv("THORDATA_SCRAPER_TOKEN") == "" {
		return fmt.Errorf("THORDATA_SCRAPER_TOKEN is not set")
	}
	client, err := thordata.New()
	if err != nil {
		return fmt.Errorf("failed to create thordata client: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer out.Close()

	timeout := time.Duration(timeoutSeconds) * time.Second
	var saved int
	for i, pageURL := range urls {
		stepStyle.Fprintf(os.Stderr, "%s Scraping %d/%d: %s\n", rocket, i+1, len(urls), pageURL)
		content, err := scrapePage(client, pageURL, country, timeout)
		if err != nil {
			failureStyle.Fprintf(os.Stderr, "%s %s: %v\n", xmark, pageURL, err)
			continue
		}
		if saved > 0 {
			if _, err := out.WriteString("\n\n---\n\n"); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
		}
		if _, err := fmt.Fprintf(out, "Source: %s\n\n%s", pageURL, content); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		saved++
		successStyle.Fprintf(os.Stderr, "%s %s (%d characters)\n", checkmark, pageURL, len([]rune(content)))
	}
	if saved == 0 {
		return fmt.Errorf("all %d pages failed to scrape", len(urls))
	}
	mutedStyle.Fprintf(os.Stderr, "Saved %d of %d pages to %s\n", saved, len(urls), outputPath)
	return nil
}

// scrapePage fetches one rendered page and distills it to markdown.
func scrapePage(client *thordata.Client, pageURL, country string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	markup, err := client.Scrape(ctx, &web.ScrapeInput{
		URL:      pageURL,
		JSRender: true,
		Country:  country,
		Format:   web.DefaultScrapeFormat,
	})
	if err != nil {
		return "", err
	}
	content := extract.Markdown(markup)
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("no usable content after cleaning")
	}
	return content, nil
}

// gatherURLs merges the positional arguments with the lines of the
// optional URL file, preserving order.
func gatherURLs(urlsPath string, args []string) ([]string, error) {
	urls := make([]string, 0, len(args))
	urls = append(urls, args...)

	if urlsPath == "" {
		return urls, nil
	}
	f, err := os.Open(urlsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", urlsPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", urlsPath, err)
	}
	return urls, nil
}
