// Package describe orchestrates the description pipeline: normalize and
// validate the fact sheet, build the prompts, invoke the model once, persist
// the result, return the text.
package describe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/yourhome24/expose/internal/config"
	"github.com/yourhome24/expose/internal/listing"
	"github.com/yourhome24/expose/internal/prompt"
	"github.com/yourhome24/expose/internal/store"
)

// Generator produces a description from a system and user instruction pair.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Service runs the pipeline. Dependencies are injected at construction so
// tests can substitute fakes; there is no process-wide client.
type Service struct {
	modelCfg config.ModelConfig
	gen      Generator
	store    store.Store
}

// NewService wires the pipeline. st may be nil: the one-shot CLI runs
// without persistence, and the generated text must never depend on it.
func NewService(modelCfg config.ModelConfig, gen Generator, st store.Store) *Service {
	return &Service{modelCfg: modelCfg, gen: gen, store: st}
}

// Generate runs one pass of the pipeline. raw is the request body as
// submitted; it is persisted verbatim. When raw is empty (lenient intake of
// an unreadable body) the normalized fact sheet is stored instead.
//
// A store insert failure is logged and swallowed: the caller already has a
// generated description and must not lose it over a persistence problem.
// Every other failure kind surfaces.
func (s *Service) Generate(ctx context.Context, l listing.Listing, raw json.RawMessage) (string, error) {
	l = l.Normalize()
	if err := l.Validate(); err != nil {
		return "", err
	}

	// Config check happens before any network call is attempted.
	if err := s.modelCfg.Validate(); err != nil {
		return "", err
	}

	system, user := prompt.Build(l)
	text, err := s.gen.Generate(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("generating description: %w", err)
	}

	if s.store != nil {
		payload := raw
		if len(payload) == 0 {
			payload, _ = json.Marshal(l)
		}
		if _, err := s.store.Insert(ctx, payload, text); err != nil {
			log.Printf("store insert error (description still returned): %v", err)
		}
	}

	return text, nil
}
