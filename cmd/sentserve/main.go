// Copyright 2025 The SentServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the sentence completion server, CLI and TUI.

Note: This is a BETA release. APIs and functionality may rapidly change.

SentServe suggests previously typed sentences while a new one is being typed,
one character at a time. Suggestions are the top ranked sentences sharing the
typed prefix, ordered by how often each was submitted and then alphabetically.
Typing the terminator ('#' by default) records the sentence and starts over.

# Usage

Start the IPC server with a seed file:

	sentserve -seed history.txt

Run in CLI mode for line based testing:

	sentserve -c -seed history.txt

Run the interactive terminal UI:

	sentserve -tui -seed history.txt

Convert a text seed into the msgpack binary format:

	sentserve -seed history.txt -export history.bin

# Seed files

Text seeds hold one sentence per line followed by a tab and its frequency.
Binary seeds (.bin) hold the same data msgpack encoded. Relative seed paths are
looked up in the working directory, next to the executable and in the config
directory.

# Configuration

Runtime configuration is read from a TOML file:

	[session]
	limit = 3
	terminator = "#"

	[seed]
	path = ""

	[server]
	max_buffer = 200

	[cli]
	show_frequency = true

The file is created with defaults at ~/.config/sentserve/config.toml if it
doesn't exist. Flags override file values.

# IPC Protocol

The server reads msgpack requests from stdin and writes responses to stdout.
Logs always go to stderr.

	{"id": "1", "c": "i"}
	{"id": "1", "s": ["i enjoy programming", "island", "i enjoy learning"], "n": 3, "b": "i", "t": 9}

See package server for the full message set.

# Command Line Flags

	-config string
	    Path to a config file
	-seed string
	    Seed file with historical sentences (overrides [seed] path)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-tui
	    Run the interactive terminal UI
	-limit int
	    Number of suggestions per keystroke (overrides [session] limit)
	-export string
	    Write the loaded seed to this path and exit
	-version
	    Show current version

Recorded sentences live only as long as the process.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/sentserve/internal/cli"
	"github.com/bastiangx/sentserve/internal/logger"
	"github.com/bastiangx/sentserve/internal/tui"
	"github.com/bastiangx/sentserve/internal/utils"
	"github.com/bastiangx/sentserve/pkg/config"
	"github.com/bastiangx/sentserve/pkg/seed"
	"github.com/bastiangx/sentserve/pkg/server"
	"github.com/bastiangx/sentserve/pkg/suggest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "sentserve"
	gh      = "https://github.com/bastiangx/sentserve"
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

// main wires config, seed data and the session into the selected frontend.
// main() does not implement logic for them and only manages the flow.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config file")
	seedPath := flag.String("seed", "", "Seed file with historical sentences (.txt, .tsv or .bin)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	tuiMode := flag.Bool("tui", false, "Run the interactive terminal UI")
	limit := flag.Int("limit", 0, "Number of suggestions per keystroke (0 keeps the config value)")
	exportPath := flag.String("export", "", "Write the loaded seed to this path (.txt, .tsv or .bin) and exit")

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
	log.SetOutput(os.Stderr)

	if !*tuiMode {
		sigHandler()
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	if *limit > 0 {
		appConfig.Session.Limit = *limit
	}
	if *seedPath != "" {
		appConfig.Seed.Path = *seedPath
	}
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	data, err := loadSeed(appConfig.Seed.Path)
	if err != nil {
		log.Fatalf("Failed to load seed: %v", err)
	}

	if *exportPath != "" {
		if err := exportSeed(*exportPath, data, appConfig); err != nil {
			log.Fatalf("Failed to export seed: %v", err)
		}
		log.Infof("Exported %d sentences to %s", data.Len(), *exportPath)
		return
	}

	session, err := suggest.New(data.Sentences, data.Frequencies, appConfig.SessionOptions()...)
	if err != nil {
		log.Fatalf("Failed to init session: %v", err)
	}
	log.Debug("Session init done", "stats", session.Stats())

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(session, os.Stdin, os.Stderr, appConfig.CLI.ShowFrequency)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *tuiMode {
		if _, err := tea.NewProgram(tui.NewModel(session)).Run(); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(session, appConfig)
	showStartupInfo(appConfig.Seed.Path, session)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadSeed resolves and reads the seed file; an empty path yields no history.
func loadSeed(path string) (*seed.Data, error) {
	if path == "" {
		log.Warn("No seed file specified, starting with empty history...")
		return &seed.Data{}, nil
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	resolved, err := pathResolver.Resolve(path)
	if err != nil {
		return nil, fmt.Errorf("seed file %s not found (looked in %v)", path, pathResolver.Candidates(path))
	}
	return seed.Load(resolved)
}

// exportSeed writes data to path once it is known to build a session under cfg.
func exportSeed(path string, data *seed.Data, cfg *config.Config) error {
	if _, err := suggest.New(data.Sentences, data.Frequencies, cfg.SessionOptions()...); err != nil {
		return err
	}
	return seed.Save(path, data)
}

func printVersion() {
	versionLog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	versionLog.SetStyles(styles)

	versionLog.Print("")
	versionLog.Print("[ SentServe ] Suggests your hottest sentences as you type!")
	versionLog.Print("", "version", Version)
	versionLog.Print("")
	versionLog.Print("use -h or --help to see available options")
	versionLog.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(seedPath string, session *suggest.Session) {
	info := logger.NewWithConfig(AppName, log.InfoLevel, false, false, log.TextFormatter)
	stats := session.Stats()

	info.Infof("Version: %s", Version)
	info.Infof("Process ID: [ %d ]", os.Getpid())
	info.Infof("seed: ( %s )", seedPath)
	info.Info("history", "sentences", stats["sentences"], "limit", stats["limit"])
	info.Info("status: ready")
}
