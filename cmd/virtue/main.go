package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"virtue/internal/backend"
	"virtue/internal/config"
	"virtue/internal/favorites"
	"virtue/internal/log"
	"virtue/internal/search"
	"virtue/internal/store"
	"virtue/internal/tui"
	"virtue/internal/tui/styles"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("virtue %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting virtue", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	styles.ApplyTheme(cfg.UI.Theme)

	client := backend.NewClient(cfg.Server.URL, cfg.Server.Token, logger)

	snapshots, err := store.NewFavoriteStore(cfg.Cache.Dir)
	if err != nil {
		logger.Warn("snapshot store unavailable, running without persistence", "error", err)
		snapshots, _ = store.NewFavoriteStore("")
	}
	defer snapshots.Close()

	favSvc := favorites.NewService(client, snapshots, logger)
	favSvc.StartAutoRefresh(cfg.Sync.RefreshInterval)
	defer favSvc.Close()

	searchSvc := search.NewService(logger)

	model := tui.NewModel(favSvc, client, searchSvc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when not configured
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Virtue!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	var serverURL string
	for {
		fmt.Print("Enter the admin backend URL (e.g., http://192.168.1.50:5000): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		serverURL = strings.TrimRight(strings.TrimSpace(input), "/")

		if serverURL == "" {
			fmt.Println("Backend URL cannot be empty. Please try again.")
			continue
		}
		break
	}

	fmt.Print("Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	client := backend.NewClient(serverURL, "", logger)
	token, err := client.Login(context.Background(), username, string(passwordBytes))
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	cfg.Server.URL = serverURL
	cfg.Server.Token = token
	cfg.Server.Username = username

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run virtue again to start the console.")

	return nil
}
