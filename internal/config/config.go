package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/docgrid/docgrid/internal/extract"
)

const (
	// Mode constants
	ModeExtract = "extract"
	ModeStdio   = "stdio"
	ModeServer  = "server"

	// Strategy constants
	StrategyRules = "rules"
	StrategyAI    = "ai"

	// Default values
	DefaultPort        = 8080
	DefaultHost        = "127.0.0.1"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
	DefaultOutputPath  = "Output.xlsx"

	// Environment variable holding the Gemini API key. Never a flag.
	APIKeyEnv = "GEMINI_API_KEY"
)

// Config holds all configuration for the document extractor. It is built
// once at startup and passed into the pipeline explicitly; nothing reads
// ambient state after that.
type Config struct {
	// Run mode: one-shot extract, or MCP service over stdio/HTTP
	Mode string

	// One-shot extraction
	InputPath  string
	OutputPath string

	// Extraction strategy
	Strategy      string
	PatternsFile  string
	ContextWindow int
	AIModel       string
	AIFallback    bool

	// Service configuration
	Host              string
	Port              int
	DocumentDirectory string

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:              ModeExtract,
		OutputPath:        DefaultOutputPath,
		Strategy:          StrategyRules,
		ContextWindow:     extract.DefaultWindow,
		AIFallback:        true,
		Host:              DefaultHost,
		Port:              DefaultPort,
		DocumentDirectory: currentDir,
		Version:           "1.0.0",
		ServerName:        "docgrid",
		LogLevel:          DefaultLogLevel,
		MaxFileSize:       DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.DocumentDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.DocumentDirectory); err == nil {
			cfg.DocumentDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("DOCGRID")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("input", cfg.InputPath)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("strategy", cfg.Strategy)
	viper.SetDefault("patterns", cfg.PatternsFile)
	viper.SetDefault("contextwindow", cfg.ContextWindow)
	viper.SetDefault("aimodel", cfg.AIModel)
	viper.SetDefault("aifallback", cfg.AIFallback)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("dir", cfg.DocumentDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'extract' for one-shot extraction, 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("input", cfg.InputPath, "Input document path (.pdf or .txt, extract mode)")
	pflag.String("output", cfg.OutputPath, "Output spreadsheet path (extract mode)")
	pflag.String("strategy", cfg.Strategy, "Extraction strategy: 'rules' or 'ai'")
	pflag.String("patterns", cfg.PatternsFile, "YAML file with extraction patterns (empty uses the built-in set)")
	pflag.Int("contextwindow", cfg.ContextWindow, "Maximum look-around distance for comment sentences, in bytes")
	pflag.String("aimodel", cfg.AIModel, "Model name for the AI strategy")
	pflag.Bool("aifallback", cfg.AIFallback, "Fall back to the rule strategy when the AI service fails")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("dir", cfg.DocumentDirectory, "Directory containing document files (service modes)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum document file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	for _, name := range []string{
		"mode", "input", "output", "strategy", "patterns", "contextwindow",
		"aimodel", "aifallback", "host", "port", "dir", "loglevel", "maxfilesize",
	} {
		_ = viper.BindPFlag(name, pflag.Lookup(name))
	}
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ndocgrid - extract key-value data from PDF documents into a spreadsheet\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input=profile.pdf --output=Output.xlsx        # rule-based extraction\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=profile.pdf --strategy=ai               # AI-assisted extraction\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=stdio --dir=/path/to/docs                # MCP server over stdio\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DOCGRID_MODE         Run mode\n")
		fmt.Fprintf(os.Stderr, "  DOCGRID_STRATEGY     Extraction strategy\n")
		fmt.Fprintf(os.Stderr, "  DOCGRID_PATTERNS     Pattern file path\n")
		fmt.Fprintf(os.Stderr, "  DOCGRID_DIR          Document directory\n")
		fmt.Fprintf(os.Stderr, "  DOCGRID_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  %s       API key for the AI strategy\n", APIKeyEnv)
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.InputPath = viper.GetString("input")
	cfg.OutputPath = viper.GetString("output")
	cfg.Strategy = viper.GetString("strategy")
	cfg.PatternsFile = viper.GetString("patterns")
	cfg.ContextWindow = viper.GetInt("contextwindow")
	cfg.AIModel = viper.GetString("aimodel")
	cfg.AIFallback = viper.GetBool("aifallback")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.DocumentDirectory = viper.GetString("dir")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeExtract && c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be one of 'extract', 'stdio', 'server'")
	}

	if c.Strategy != StrategyRules && c.Strategy != StrategyAI {
		return fmt.Errorf("invalid strategy: %s (must be 'rules' or 'ai')", c.Strategy)
	}

	if c.Mode == ModeExtract && c.InputPath == "" {
		return errors.New("input path is required in extract mode")
	}

	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.IsServiceMode() && c.DocumentDirectory == "" {
		return errors.New("document directory cannot be empty in service modes")
	}

	if c.ContextWindow < 0 {
		return errors.New("context window cannot be negative")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// LoadPatterns returns the pattern definitions to use: the YAML file when one
// is configured, otherwise the built-in set. Compilation and validation of
// the definitions happens in extract.Compile, before any extraction begins.
func (c *Config) LoadPatterns() ([]extract.PatternDef, error) {
	if c.PatternsFile == "" {
		return extract.DefaultPatterns(), nil
	}

	v := viper.New()
	v.SetConfigFile(c.PatternsFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cannot read pattern file %s: %w", c.PatternsFile, err)
	}

	var defs []extract.PatternDef
	if err := v.UnmarshalKey("patterns", &defs); err != nil {
		return nil, fmt.Errorf("invalid pattern file %s: %w", c.PatternsFile, err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("pattern file %s defines no patterns", c.PatternsFile)
	}
	return defs, nil
}

// APIKey reads the Gemini API key from the environment.
func (c *Config) APIKey() string {
	return os.Getenv(APIKeyEnv)
}

// Address returns the server address as host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsServiceMode returns true for the MCP service modes.
func (c *Config) IsServiceMode() bool {
	return c.Mode == ModeStdio || c.Mode == ModeServer
}

// IsServerMode returns true if running as an HTTP server.
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if running over MCP standard I/O.
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Strategy: %s, Input: %s, Output: %s, Dir: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.Strategy, c.InputPath, c.OutputPath, c.DocumentDirectory, c.LogLevel, c.MaxFileSize)
}
