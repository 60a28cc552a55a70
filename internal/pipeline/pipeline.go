// Package pipeline sequences normalization, the model call, response
// parsing, and the deterministic fallback resolvers into one extraction
// run per scanned label.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parcelworks/labelextract/internal/llm"
	"github.com/parcelworks/labelextract/internal/normalize"
	"github.com/parcelworks/labelextract/internal/resolve"
)

// Record is the sole data contract with downstream consumers: exactly two
// string fields, each either a valid value or "". A non-empty name is
// always a whitelist member; a non-empty address is either the model's
// verbatim or a title-cased pattern match.
type Record struct {
	RecipientName    string `json:"recipient_name"`
	RecipientAddress string `json:"recipient_address"`
}

// Result pairs the final record with the backend's raw reply, kept for
// audit storage.
type Result struct {
	Record        Record
	ModelResponse string
}

// Orchestrator runs the extraction state machine. It holds no mutable
// state across runs besides the read-only whitelist inside the name
// resolver, so one Orchestrator is safe to share across records processed
// in parallel.
type Orchestrator struct {
	log   *slog.Logger
	gen   llm.Generator
	names *resolve.NameResolver
}

func New(logger *slog.Logger, gen llm.Generator, names *resolve.NameResolver) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{log: logger, gen: gen, names: names}
}

// Run processes one raw OCR text through the full fallback chain:
//
//  1. normalize the raw text
//  2. invoke the model; a backend failure aborts this record and is
//     propagated (unreachable backend is distinct from unusable output)
//  3. parse the reply into a candidate (never fails; worst case empty)
//  4. validate the candidate name against the whitelist; if that yields
//     nothing, re-run the resolver over the original raw text
//  5. take the candidate address verbatim if present, else pattern-extract
//     from the raw text
//
// Every record that survives step 2 yields a Record; "could not determine"
// is an empty field, never an error.
func (o *Orchestrator) Run(ctx context.Context, rawText string) (Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	cleaned := normalize.Clean(rawText)
	o.log.Info("pipeline.record.start", "record_id", rid, "raw_len", len(rawText), "cleaned_len", len(cleaned))

	resp, err := o.gen.Generate(ctx, llm.BuildPrompt(cleaned))
	if err != nil {
		o.log.Error("pipeline.generate.failed", "record_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return Result{}, fmt.Errorf("generate: %w", err)
	}

	cand := llm.ParseCandidate(resp)

	name := ""
	fromModel := false
	if cand.RecipientName != "" {
		name = o.names.Resolve(cand.RecipientName)
		fromModel = name != ""
	}
	if name == "" {
		// Second, independent attempt over the original raw text, not the
		// normalized text: the fuzzy patterns were tuned against raw scans.
		name = o.names.Resolve(rawText)
	}

	address := resolve.ResolveAddress(cand.RecipientAddress, rawText)

	o.log.Info("pipeline.record.ok",
		"record_id", rid,
		"name_found", name != "",
		"name_from_model", fromModel,
		"address_found", address != "",
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Record:        Record{RecipientName: name, RecipientAddress: address},
		ModelResponse: resp,
	}, nil
}
