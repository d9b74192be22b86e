// Package pipeline orchestrates a single document run: read text, apply an
// extraction strategy, export the records. All state is local to the
// invocation, so concurrent runs over different documents need no locks and
// cancellation cannot leak partial state.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/docgrid/docgrid/internal/document"
	"github.com/docgrid/docgrid/internal/export"
	"github.com/docgrid/docgrid/internal/extract"
)

// Job names one extraction run. OutputPath may be empty to skip export.
type Job struct {
	InputPath  string
	OutputPath string
}

// Outcome reports what a run produced.
type Outcome struct {
	Records   []extract.Record
	Unmatched []string
	Pages     int
	Exported  bool
}

// Pipeline wires the document reader, a strategy, and the exporter.
type Pipeline struct {
	reader   *document.Reader
	strategy extract.Strategy
	writer   *export.Writer
}

// New builds a pipeline around the given strategy.
func New(reader *document.Reader, strategy extract.Strategy, writer *export.Writer) *Pipeline {
	return &Pipeline{reader: reader, strategy: strategy, writer: writer}
}

// Strategy exposes the configured strategy name for logging and tool output.
func (p *Pipeline) Strategy() string {
	return p.strategy.Name()
}

// Run processes one document. An error aborts only this document; nothing is
// shared with other runs. The exporter is not invoked when extraction
// produced no records.
func (p *Pipeline) Run(ctx context.Context, job Job) (*Outcome, error) {
	read, err := p.reader.ReadFile(document.ReadRequest{Path: job.InputPath})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", job.InputPath, err)
	}

	result, err := p.strategy.Extract(ctx, read.Text)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", job.InputPath, err)
	}
	for _, label := range result.Unmatched {
		log.Printf("pattern %q matched nothing in %s", label, job.InputPath)
	}

	outcome := &Outcome{
		Records:   result.Records,
		Unmatched: result.Unmatched,
		Pages:     read.Pages,
	}

	if job.OutputPath == "" || len(result.Records) == 0 {
		return outcome, nil
	}
	if err := p.writer.WriteFile(job.OutputPath, result.Records); err != nil {
		return nil, fmt.Errorf("export %s: %w", job.OutputPath, err)
	}
	outcome.Exported = true
	return outcome, nil
}
