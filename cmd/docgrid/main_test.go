package main

import (
	"context"
	"os"
	"testing"

	"github.com/docgrid/docgrid/internal/config"
)

func TestBuildStrategiesRulesOnly(t *testing.T) {
	os.Unsetenv(config.APIKeyEnv)

	cfg := config.DefaultConfig()
	cfg.InputPath = "doc.pdf"

	strategies, err := buildStrategies(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildStrategies failed: %v", err)
	}
	if _, ok := strategies[config.StrategyRules]; !ok {
		t.Error("Expected rules strategy to always be present")
	}
	if _, ok := strategies[config.StrategyAI]; ok {
		t.Error("Expected no AI strategy without an API key")
	}
}

func TestBuildStrategiesAIWithoutKeyFails(t *testing.T) {
	os.Unsetenv(config.APIKeyEnv)

	cfg := config.DefaultConfig()
	cfg.InputPath = "doc.pdf"
	cfg.Strategy = config.StrategyAI

	if _, err := buildStrategies(context.Background(), cfg); err == nil {
		t.Error("Expected error when strategy 'ai' has no API key")
	}
}

func TestBuildStrategiesBadPatternFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputPath = "doc.pdf"
	cfg.PatternsFile = "/nonexistent/patterns.yaml"

	if _, err := buildStrategies(context.Background(), cfg); err == nil {
		t.Error("Expected error for unreadable pattern file")
	}
}

func TestPrintVersion(t *testing.T) {
	// Smoke test: must not panic.
	printVersion()
}
