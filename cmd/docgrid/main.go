package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/docgrid/docgrid/internal/ai"
	"github.com/docgrid/docgrid/internal/config"
	"github.com/docgrid/docgrid/internal/document"
	"github.com/docgrid/docgrid/internal/export"
	"github.com/docgrid/docgrid/internal/extract"
	"github.com/docgrid/docgrid/internal/mcp"
	"github.com/docgrid/docgrid/internal/pipeline"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode.
func setupLogging(cfg *config.Config) {
	if cfg.IsStdioMode() {
		// In stdio mode, keep log output away from the MCP protocol stream.
		log.SetOutput(os.Stderr)
		if !cfg.IsDebug() {
			log.SetOutput(os.NewFile(0, os.DevNull))
		}
	} else {
		log.SetOutput(os.Stderr)
		if cfg.IsServerMode() {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		}
	}
}

// buildStrategies compiles the configured patterns and wires the strategies.
// The rule strategy always exists; the AI strategy is added when an API key
// is available.
func buildStrategies(ctx context.Context, cfg *config.Config) (map[string]extract.Strategy, error) {
	defs, err := cfg.LoadPatterns()
	if err != nil {
		return nil, err
	}
	patterns, err := extract.Compile(defs)
	if err != nil {
		return nil, err
	}

	rules := extract.NewRules(patterns, cfg.ContextWindow)
	strategies := map[string]extract.Strategy{
		config.StrategyRules: rules,
	}

	if key := cfg.APIKey(); key != "" {
		client, err := ai.NewClient(ctx, key, cfg.AIModel)
		if err != nil {
			return nil, err
		}
		var fallback extract.Strategy
		if cfg.AIFallback {
			fallback = rules
		}
		strategies[config.StrategyAI] = ai.NewStrategy(client, fallback)
	} else if cfg.Strategy == config.StrategyAI {
		return nil, fmt.Errorf("strategy 'ai' requires the %s environment variable", config.APIKeyEnv)
	}

	return strategies, nil
}

// runExtract performs a one-shot extraction and prints a summary.
func runExtract(ctx context.Context, cfg *config.Config, strategies map[string]extract.Strategy) error {
	strategy := strategies[cfg.Strategy]
	reader := document.NewReader(cfg.MaxFileSize)
	writer := export.NewWriter()

	p := pipeline.New(reader, strategy, writer)
	outcome, err := p.Run(ctx, pipeline.Job{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
	})
	if err != nil {
		return err
	}

	if len(outcome.Records) == 0 {
		fmt.Println("No data extracted. Skipping spreadsheet output.")
		return nil
	}

	if outcome.Exported {
		fmt.Printf("Data successfully extracted and saved to %s\n", cfg.OutputPath)
	}
	fmt.Printf("Total records extracted: %d\n", len(outcome.Records))
	for _, rec := range outcome.Records {
		fmt.Printf("%3d  %-35s %s\n", rec.Index, rec.Key, rec.Value)
	}
	return nil
}

// runServiceMode starts the MCP server with signal handling for graceful
// shutdown in HTTP mode; in stdio mode the parent process owns the lifecycle.
func runServiceMode(ctx context.Context, cancel context.CancelFunc, cfg *config.Config,
	strategies map[string]extract.Strategy,
) error {
	srv, err := mcp.NewServer(cfg,
		document.NewReader(cfg.MaxFileSize),
		document.NewValidator(cfg.MaxFileSize),
		export.NewWriter(),
		strategies,
	)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	if cfg.IsStdioMode() {
		return srv.Run(ctx)
	}

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.Run(ctx)
	}()

	select {
	case sig := <-signalCh:
		log.Printf("Received signal: %s", sig)
		log.Println("Initiating graceful shutdown...")
		cancel()
		if err := <-serverErrCh; err != nil {
			return err
		}
	case err := <-serverErrCh:
		if err != nil {
			return err
		}
	}

	log.Println("Server stopped successfully")
	return nil
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() && !cfg.IsStdioMode() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategies, err := buildStrategies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to configure extraction: %v", err)
	}

	if cfg.IsServiceMode() {
		if err := runServiceMode(ctx, cancel, cfg, strategies); err != nil {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := runExtract(ctx, cfg, strategies); err != nil {
		log.Printf("Extraction failed: %v", err)
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("docgrid\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
