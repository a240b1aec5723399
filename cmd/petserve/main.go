// Copyright 2025 The PetServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the pet value server and CLI [DBG] application.

PetServe loads a virtual-pet value catalog once per session and serves
diacritic-insensitive searches, rarity filters, sorted views and a
two-sided trade calculator. It can operate as a MessagePack IPC server for
integration with a presentation layer, or as a CLI application for testing
and debugging.

Dataset acquisition degrades gracefully: a time-boxed local cache is tried
first, then each configured remote candidate in order, and finally an
embedded snapshot of the catalog. The binary always starts with data.

# Usage

Start the server with default settings:

	petserve

Use a custom catalog mirror and enable debug mode:

	petserve -base https://mirror.example -d

Run in CLI mode for interactive testing:

	petserve -c -limit 10

# Configuration

Runtime configuration is managed through a TOML file covering data
acquisition, server limits and CLI defaults:

	[data]
	base_url = "https://adoptmevalores.pages.dev"
	cache_ttl_minutes = 60

	[server]
	max_limit = 64
	max_query_len = 60

The config file is automatically created with defaults if it doesn't exist,
and every value has a builtin default so the file itself is optional.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with timing information included in responses.

Send a query request:

	{"id": "q1", "op": "query", "q": "dragao", "sort": "value-desc"}

Drive the trade calculator:

	{"id": "t1", "op": "trade", "action": "add", "side": "offered", "pet": "owl"}

See the server package for the full operation list.

# CLI Mode

CLI mode provides an interactive interface for testing searches and trades
with human-readable output. It is primarily intended for development; new
features should be tested here before deploying to server mode.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/amvalores/petserve/internal/cli"
	"github.com/amvalores/petserve/internal/utils"
	"github.com/amvalores/petserve/pkg/config"
	"github.com/amvalores/petserve/pkg/query"
	"github.com/amvalores/petserve/pkg/server"
	"github.com/amvalores/petserve/pkg/store"
)

const (
	Version = "1.0.0"
	AppName = "petserve"
	gh      = "https://github.com/amvalores/petserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config file (default: ~/.config/petserve/config.toml)")
	baseURL := flag.String("base", "", "Override the catalog base URL")
	cachePath := flag.String("cache", "", "Path to the cache file (empty for the default location)")
	noCache := flag.Bool("no-cache", false, "Skip the local cache and always refetch")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to show in CLI mode")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, loadedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Warnf("Config load failed, continuing with defaults: %v", err)
		appConfig = config.DefaultConfig()
	}
	if loadedPath != "" {
		log.Debugf("Using config file: (%s)", loadedPath)
	}
	if *baseURL != "" {
		appConfig.Data.BaseURL = *baseURL
	}
	if *cachePath != "" {
		appConfig.Data.CachePath = *cachePath
	}

	cache := openCache(appConfig, *noCache)
	if cache != nil {
		defer cache.Close()
	}

	dataStore := store.New(store.Options{
		Candidates: appConfig.Candidates(),
		Cache:      cache,
		Window:     appConfig.CacheWindow(),
		Client:     &http.Client{Timeout: appConfig.FetchTimeout()},
	})
	dataset := dataStore.Load(context.Background())
	index := query.NewIndex(dataset.Pets)

	log.Debugf("Catalog ready: %d pets, version %s", len(dataset.Pets), dataset.Version)

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(dataset, index, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(dataset, index, appConfig)

	showStartupInfo(len(dataset.Pets), dataset.Version)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// openCache resolves the cache file location and opens it. A nil return
// disables caching; acquisition still works without it.
func openCache(cfg *config.Config, disabled bool) *store.Cache {
	if disabled {
		log.Debug("Cache disabled by flag")
		return nil
	}

	path := cfg.Data.CachePath
	if path == "" {
		resolved, err := config.DefaultCachePath()
		if err != nil {
			log.Warnf("Could not resolve cache location, running without cache: %v", err)
			return nil
		}
		path = resolved
	}

	cache, err := store.OpenCache(path)
	if err != nil {
		log.Warnf("Could not open cache at %s, running without cache: %v", path, err)
		return nil
	}
	log.Debugf("Using cache file at: %s", utils.GetAbsolutePath(path))
	return cache
}

func showVersionInfo() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ PetServe ] Serves pet values and fair trades!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(petCount int, version string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" PetServe ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("catalog: [ %d pets, v%s ]", petCount, version)
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
