// Command thordata-mcp serves the Thordata tool surface over the Model
// Context Protocol's stdio transport. Pair it with an MCP-compatible
// host (e.g. Claude Desktop) by pointing the host at this binary.
//
// Credentials come from the environment: THORDATA_SCRAPER_TOKEN for
// the Universal Scraping API, and optionally THORDATA_PUBLIC_TOKEN /
// THORDATA_PUBLIC_KEY for the SERP API.
package main

import (
	"flag"
	"fmt"
	"os"

	thordatamcp "github.com/thordata/thordata-mcp"
	"github.com/thordata/thordata-mcp/config"
	"github.com/thordata/thordata-mcp/mcpserver"
	"github.com/thordata/thordata-mcp/slogger"
	"github.com/thordata/thordata-mcp/thordata"
	"github.com/thordata/thordata-mcp/toolkit"
	"github.com/thordata/thordata-mcp/web"
)

func main() {
	var (
		configPath  string
		logLevel    string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "thordata-mcp.yaml", "Path to YAML configuration file")
	flag.StringVar(&logLevel, "log-level", "", "Override the configured log level (debug|info|warn|error)")
	flag.BoolVar(&showVersion, "version", false, "Print the server name and version, then exit")
	flag.Parse()

	if err := run(configPath, logLevel, showVersion); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel string, showVersion bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if showVersion {
		fmt.Printf("%s %s\n", cfg.Server.Name, cfg.Server.Version)
		return nil
	}
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}

	// All logs go to stderr: stdout belongs to the MCP transport
	logger := slogger.New(slogger.LevelFromString(logLevel))

	client, err := thordata.New(
		thordata.WithSERPBaseURL(cfg.Thordata.SERPURL),
		thordata.WithUniversalBaseURL(cfg.Thordata.UniversalURL),
		thordata.WithMaxRetries(cfg.Thordata.MaxRetries),
		thordata.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create thordata client: %w", err)
	}

	searchOptions := toolkit.SearchToolOptions{
		Searcher:      client,
		Logger:        logger,
		Timeout:       cfg.Timeout(),
		DefaultEngine: web.ParseEngine(cfg.Defaults.Engine),
		DefaultNum:    cfg.Defaults.SearchResults,
	}
	tools := []thordatamcp.Tool{
		toolkit.NewSearchTool(searchOptions),
		toolkit.NewSearchNewsTool(toolkit.SearchNewsToolOptions{
			SearchToolOptions: searchOptions,
		}),
		toolkit.NewReadPageTool(toolkit.ReadPageToolOptions{
			Scraper:         client,
			Logger:          logger,
			Timeout:         cfg.Timeout(),
			DefaultMaxChars: cfg.Defaults.MaxChars,
		}),
		toolkit.NewExtractLinksTool(toolkit.ExtractLinksToolOptions{
			Scraper:         client,
			Logger:          logger,
			Timeout:         cfg.Timeout(),
			DefaultMaxLinks: cfg.Defaults.MaxLinks,
		}),
	}

	srv := mcpserver.New(
		mcpserver.WithName(cfg.Server.Name),
		mcpserver.WithVersion(cfg.Server.Version),
		mcpserver.WithLogger(logger),
		mcpserver.WithTools(tools...),
	)
	return srv.ServeStdio()
}
