package ai

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/docgrid/docgrid/internal/extract"
)

// itemCaller abstracts the client so the strategy can be tested without a
// live model behind it.
type itemCaller interface {
	ExtractItems(ctx context.Context, text string) ([]Item, error)
}

// Strategy runs the AI pipeline. When the service is unreachable or returns
// unparseable output and a fallback is configured, the fallback strategy
// handles the document instead.
type Strategy struct {
	client   itemCaller
	fallback extract.Strategy
}

// NewStrategy wraps a client; fallback may be nil, in which case service
// errors surface to the caller.
func NewStrategy(client *Client, fallback extract.Strategy) *Strategy {
	return &Strategy{client: client, fallback: fallback}
}

// Name returns the strategy identifier used in configuration and tools.
func (s *Strategy) Name() string {
	return "ai"
}

// Extract asks the model for key-value items, then applies the shared
// assembler policy: document order by first occurrence of the value in the
// text, dedup on (key, value), indices from 1. Items whose value cannot be
// located in the text keep their arrival order after the located ones.
func (s *Strategy) Extract(ctx context.Context, text string) (*extract.Result, error) {
	if text == "" {
		return nil, extract.ErrEmptyInput
	}

	items, err := s.client.ExtractItems(ctx, text)
	if err != nil {
		var serviceErr *ServiceError
		if errors.As(err, &serviceErr) && s.fallback != nil {
			log.Printf("ai strategy failed (%v), falling back to %s", err, s.fallback.Name())
			return s.fallback.Extract(ctx, text)
		}
		return nil, err
	}

	pairs := make([]extract.Pair, 0, len(items))
	for i, item := range items {
		start := strings.Index(text, item.Value)
		if start < 0 || item.Value == "" {
			// Past the end of the text, so arrival order is preserved
			// behind every located item.
			start = len(text) + i
		}
		pairs = append(pairs, extract.Pair{
			Match: extract.Match{
				Label: item.Key,
				Start: start,
				End:   start + len(item.Value),
				Value: item.Value,
			},
			Comment: item.Comments,
		})
	}

	return &extract.Result{Records: extract.Assemble(pairs)}, nil
}
