// Copyright 2025 The wordfinder Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordfinder grid search server and CLI [DBG] application.

wordfinder indexes every row and column of a character grid (at most 64x64) and
reports which words of a query stream appear there, ranked by how often they
were queried. Three interchangeable indexes are available: a hash set, a
prefix trie and a compressed patricia trie.

# Usage

Rank the words of a file against a grid:

	wordfinder -grid grid.txt -queries words.txt

Pick the index and ignore case:

	wordfinder -grid grid.txt -queries words.txt -strategy set -i

Type query streams interactively:

	wordfinder -grid grid.txt -c

Serve msgpack requests over stdin/stdout:

	wordfinder -grid grid.txt -serve

Race every strategy on a generated 64x64 grid, as the benchmark harness does:

	wordfinder -bench -seed 42 -hits 0.2

# Configuration

Defaults are read from a TOML file, created on first run:

	[finder]
	strategy = "trie"
	case_sensitive = true
	grid = ""

	[server]
	max_queries = 100000

	[bench]
	rows = 64
	cols = 64
	stream_size = 1000
	min_word_len = 3
	max_word_len = 9
	hit_ratio = 0.0
	seed = 0

Flags given on the command line win over the file.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordfinder/internal/cli"
	"github.com/bastiangx/wordfinder/internal/logger"
	"github.com/bastiangx/wordfinder/internal/utils"
	"github.com/bastiangx/wordfinder/pkg/bench"
	"github.com/bastiangx/wordfinder/pkg/config"
	"github.com/bastiangx/wordfinder/pkg/finder"
	"github.com/bastiangx/wordfinder/pkg/gridfile"
	"github.com/bastiangx/wordfinder/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "wordfinder"
	gh      = "https://github.com/bastiangx/wordfinder"
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

// main only wires flags, config and packages together.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config.toml (default: user config dir)")
	gridPath := flag.String("grid", "", "Grid file, one row per line")
	queriesPath := flag.String("queries", "", "Query stream file, words separated by whitespace")
	strategyName := flag.String("strategy", "", "Index strategy: set, trie or patricia (default from config)")
	insensitive := flag.Bool("i", false, "Ignore case when matching")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	serveMode := flag.Bool("serve", false, "Serve msgpack requests over stdin/stdout")
	benchMode := flag.Bool("bench", false, "Compare every strategy on generated data")
	seed := flag.Int64("seed", -1, "Benchmark seed, 0 for random (default from config)")
	hits := flag.Float64("hits", -1, "Share of benchmark queries taken from the grid (default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	if *strategyName != "" {
		cfg.Finder.Strategy = *strategyName
	}
	if *insensitive {
		cfg.Finder.CaseSensitive = false
	}
	if *gridPath != "" {
		cfg.Finder.Grid = *gridPath
	}
	if *seed >= 0 {
		cfg.Bench.Seed = *seed
	}
	if *hits >= 0 {
		cfg.Bench.HitRatio = *hits
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	strategy, _ := finder.ParseStrategy(cfg.Finder.Strategy)

	if *benchMode {
		if err := runBench(cfg); err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
		return
	}

	if cfg.Finder.Grid == "" {
		log.Fatal("No grid given: use -grid or set finder.grid in the config")
	}
	grid, err := gridfile.LoadGrid(cfg.Finder.Grid)
	if err != nil {
		log.Fatalf("Failed to load grid: %v", err)
	}
	f, err := finder.New(strategy, grid, cfg.FinderOptions()...)
	if err != nil {
		log.Fatalf("Failed to index grid %s: %v", cfg.Finder.Grid, err)
	}
	log.Debug("Index built", "strategy", strategy, "stats", f.Stats())

	switch {
	case *serveMode:
		showStartupInfo(cfg.Finder.Grid, strategy)
		srv := server.NewServer(f, strategy, cfg)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	case *cliMode:
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(f, os.Stdin, logger.New(""))
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	default:
		if *queriesPath == "" {
			log.Fatal("No queries given: use -queries, -c or -serve")
		}
		queries, err := gridfile.LoadQueries(*queriesPath)
		if err != nil {
			log.Fatalf("Failed to load queries: %v", err)
		}
		words, err := f.Find(queries)
		if err != nil {
			log.Fatalf("Find failed: %v", err)
		}
		for _, w := range words {
			fmt.Println(w)
		}
	}
}

// runBench generates data from the bench section and prints each strategy's timings.
func runBench(cfg *config.Config) error {
	b := cfg.Bench
	params := bench.Params{
		Rows:       b.Rows,
		Cols:       b.Cols,
		StreamSize: b.StreamSize,
		MinWordLen: b.MinWordLen,
		MaxWordLen: b.MaxWordLen,
		HitRatio:   b.HitRatio,
		Seed:       uint64(b.Seed),
	}
	report, err := bench.Run(context.Background(), params, finder.Strategies(), cfg.FinderOptions()...)
	if err != nil {
		return err
	}

	out := logger.New("bench")
	out.SetLevel(log.InfoLevel)
	out.Info("Generated input", "grid", fmt.Sprintf("%dx%d", b.Rows, b.Cols), "queries", utils.FormatWithCommas(report.Queries), "seed", report.Seed)
	for _, r := range report.Results {
		out.Info(string(r.Strategy),
			"build", r.Build,
			"find", r.Find,
			"words", r.Stats["words"],
			"matches", len(r.Matches))
	}
	if !report.Agree {
		return fmt.Errorf("strategies disagree on seed %d", report.Seed)
	}
	if len(report.Results) > 0 {
		for i, m := range report.Results[0].Matches {
			out.Printf("%2d. %-20s (count: %s)", i+1, m.Word, utils.FormatWithCommas(m.Count))
		}
	}
	return nil
}

func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ wordfinder ] Finds the grid's rows and columns in a word stream")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info on stderr; stdout carries the IPC stream.
func showStartupInfo(gridPath string, strategy finder.Strategy) {
	info := logger.New(AppName)
	info.SetLevel(log.InfoLevel)
	info.Infof("Version: %s", Version)
	info.Infof("Process ID: [ %d ]", os.Getpid())
	info.Infof("grid: ( %s )", utils.GetAbsolutePath(gridPath))
	info.Infof("strategy: %s", strategy)
	info.Info("status: ready")
}
