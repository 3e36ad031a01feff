package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"skyfeed/internal/bsky"
	"skyfeed/internal/config"
	"skyfeed/internal/logger"
	"skyfeed/internal/trace"
	"skyfeed/internal/ui"
)

// flags holds the persistent command-line overrides. Zero values mean the
// config file or environment decides.
type flags struct {
	service string
	dataDir string
	logFile string
	debug   bool
}

var opts flags

var rootCmd = &cobra.Command{
	Use:   "skyfeed",
	Short: "Terminal client for Bluesky feeds",
	Long: `skyfeed shows your Bluesky home timeline and notifications in the terminal.
The session is kept in the data directory so you only log in once.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.service, "service", "", "PDS or entryway URL (default "+bsky.DefaultService+")")
	pf.StringVar(&opts.dataDir, "data-dir", "", "Directory for config.json, session.json and logs")
	pf.StringVar(&opts.logFile, "log-file", "", "Write the debug log here instead of the data directory")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// loadConfig resolves the configuration and applies flags set on cmd.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.dataDir)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cmd.Flags().Changed("service") {
		cfg.Service = f.service
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = f.debug
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the config and starts logging and tracing. The returned
// function flushes both.
func setup(cmd *cobra.Command) (*config.Config, *bsky.Client, func(), error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.SetDebug(cfg.Debug)
	if err := logger.Init(cfg.LogFile); err != nil {
		return nil, nil, nil, err
	}

	tp, err := trace.Setup(cmd.Context())
	if err != nil {
		logger.Warn("tracing disabled: %v", err)
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn("trace shutdown: %v", err)
		}
		logger.Close()
	}

	client := bsky.NewClient(cfg.Service, bsky.NewFileStore(cfg.DataDir))
	return cfg, client, cleanup, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, client, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	logger.Info("starting skyfeed service=%s data_dir=%s", cfg.Service, cfg.DataDir)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := ui.NewAppModel(ctx, client, cfg).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
