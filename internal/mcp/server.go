// Package mcp exposes the extraction pipeline as Model Context Protocol
// tools so agent clients can run it against files in a configured directory.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docgrid/docgrid/internal/config"
	"github.com/docgrid/docgrid/internal/document"
	"github.com/docgrid/docgrid/internal/export"
	"github.com/docgrid/docgrid/internal/extract"
)

// Server represents the MCP server instance.
type Server struct {
	config     *config.Config
	reader     *document.Reader
	validator  *document.Validator
	guard      *document.PathGuard
	writer     *export.Writer
	strategies map[string]extract.Strategy
	mcpServer  *server.MCPServer
}

// NewServer creates an MCP server over the extraction components. The
// strategies map holds every configured strategy keyed by name; the config's
// Strategy field names the default.
func NewServer(cfg *config.Config, reader *document.Reader, validator *document.Validator,
	writer *export.Writer, strategies map[string]extract.Strategy,
) (*Server, error) {
	if reader == nil || validator == nil || writer == nil {
		return nil, fmt.Errorf("reader, validator, and writer cannot be nil")
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("at least one extraction strategy is required")
	}
	if _, ok := strategies[cfg.Strategy]; !ok {
		return nil, fmt.Errorf("default strategy %q is not configured", cfg.Strategy)
	}

	guard, err := document.NewPathGuard(cfg.DocumentDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path guard: %w", err)
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:     cfg,
		reader:     reader,
		validator:  validator,
		guard:      guard,
		writer:     writer,
		strategies: strategies,
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	extractTool := mcp.NewTool(
		"document_extract",
		mcp.WithDescription("Extract key-value records with contextual comments from a document"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document file (.pdf or .txt)"),
		),
		mcp.WithString("strategy",
			mcp.Description("Extraction strategy: 'rules' or 'ai' (uses the configured default if empty)"),
		),
		mcp.WithString("output",
			mcp.Description("Optional path for an .xlsx spreadsheet of the records"),
		),
	)
	s.mcpServer.AddTool(extractTool, s.handleDocumentExtract)

	readTool := mcp.NewTool(
		"document_read",
		mcp.WithDescription("Read and return the raw text content of a document"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document file"),
		),
	)
	s.mcpServer.AddTool(readTool, s.handleDocumentRead)

	validateTool := mcp.NewTool(
		"document_validate",
		mcp.WithDescription("Validate whether a file is a readable document"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document file"),
		),
	)
	s.mcpServer.AddTool(validateTool, s.handleDocumentValidate)

	infoTool := mcp.NewTool(
		"server_info",
		mcp.WithDescription("Get server information, available tools, and configured strategies"),
	)
	s.mcpServer.AddTool(infoTool, s.handleServerInfo)
}

func (s *Server) handleDocumentExtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.guard.Validate(path); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("security validation failed: %v", err)), nil
	}

	name := request.GetString("strategy", s.config.Strategy)
	strategy, ok := s.strategies[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown strategy: %s", name)), nil
	}

	read, err := s.reader.ReadFile(document.ReadRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := strategy.Extract(ctx, read.Text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	output := request.GetString("output", "")
	exported := false
	if output != "" && len(result.Records) > 0 {
		if err := s.guard.Validate(output); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("security validation failed: %v", err)), nil
		}
		if err := s.writer.WriteFile(output, result.Records); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		exported = true
	}

	responseText := fmt.Sprintf("Extracted %d records from %s using the %s strategy\n",
		len(result.Records), path, strategy.Name())
	if len(result.Unmatched) > 0 {
		responseText += fmt.Sprintf("Patterns with no match: %v\n", result.Unmatched)
	}
	if exported {
		responseText += fmt.Sprintf("Spreadsheet written to %s\n", output)
	}

	recordsJSON, err := json.MarshalIndent(result.Records, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode records: %v", err)), nil
	}
	responseText += "\nRecords:\n" + string(recordsJSON)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleDocumentRead(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.guard.Validate(path); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("security validation failed: %v", err)), nil
	}

	result, err := s.reader.ReadFile(document.ReadRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Successfully read document: %s\n", result.Path)
	responseText += fmt.Sprintf("Pages: %d\n", result.Pages)
	responseText += fmt.Sprintf("Size: %d bytes\n", result.Size)
	responseText += "\nContent:\n"
	responseText += result.Text

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleDocumentValidate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.guard.Validate(path); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("security validation failed: %v", err)), nil
	}

	result, err := s.validator.ValidateFile(document.ValidateRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.Valid {
		return mcp.NewToolResultText(fmt.Sprintf("Valid document: %s", result.Path)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Invalid document: %s\nReason: %s", result.Path, result.Message)), nil
}

func (s *Server) handleServerInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	responseText := fmt.Sprintf("%s %s\n", s.config.ServerName, s.config.Version)
	responseText += fmt.Sprintf("Document directory: %s\n", s.guard.Root())
	responseText += fmt.Sprintf("Default strategy: %s\n", s.config.Strategy)
	responseText += "Strategies: "
	for name := range s.strategies {
		responseText += name + " "
	}
	responseText += "\n\nTools:\n"
	responseText += "  document_extract  - extract key-value records from a document\n"
	responseText += "  document_read     - read raw document text\n"
	responseText += "  document_validate - validate a document file\n"
	responseText += "  server_info       - this information\n"

	return mcp.NewToolResultText(responseText), nil
}

// Run starts the server in the configured mode.
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server over standard I/O.
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting docgrid MCP server in stdio mode")
		log.Printf("Document directory: %s", s.config.DocumentDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server over streamable HTTP.
func (s *Server) runServerMode(ctx context.Context) error {
	log.Printf("Starting docgrid MCP server on %s", s.config.Address())

	httpServer := server.NewStreamableHTTPServer(s.mcpServer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(s.config.Address())
	}()

	select {
	case <-ctx.Done():
		return httpServer.Shutdown(context.Background())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve http: %w", err)
		}
		return nil
	}
}
