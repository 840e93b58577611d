package services

import (
	"context"
	"fmt"

	"gpr-profile-service/internal/domain"
	"gpr-profile-service/internal/platform/obs"
	"gpr-profile-service/internal/ports"
)

// Processing options shared by the server and the offline tool.
type Options struct {
	Mode   ColumnMode
	Layers domain.LayerSet
	Step   float64
}

func DefaultOptions() Options {
	return Options{
		Mode:   ByName,
		Layers: domain.DefaultLayerSet(),
		Step:   domain.DefaultChainageStep,
	}
}

// ProcessSurvey reads one raw table and computes its boundary profile.
// Cell-level parse failures are absorbed by the truncation rule; only
// read failures and structural column errors surface here.
func ProcessSurvey(ctx context.Context, src ports.TableSource, opts Options) (s *domain.Survey, err error) {
	defer obs.Time(ctx, "process_survey")(&err)

	t, err := src.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("process survey: read table: %w", err)
	}

	m, err := MapLayerColumns(t, opts.Mode, opts.Layers)
	if err != nil {
		return nil, fmt.Errorf("process survey: %w", err)
	}

	return ComputeBoundaries(t, m, opts.Step), nil
}

// One uploaded table within a batch.
type BatchInput struct {
	Name   string
	Source ports.TableSource
}

// Outcome for one table of a batch. Exactly one of Survey and Err is
// set.
type BatchResult struct {
	Name   string
	Survey *domain.Survey
	Err    error
}

// ProcessBatch processes uploaded tables in presentation order with
// per-table isolation: a structurally bad table records its error and
// the rest of the batch continues. Nothing here is fatal to the batch.
func ProcessBatch(ctx context.Context, inputs []BatchInput, opts Options) []BatchResult {
	results := make([]BatchResult, 0, len(inputs))

	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			results = append(results, BatchResult{Name: in.Name, Err: err})
			continue
		}

		s, err := ProcessSurvey(ctx, in.Source, opts)
		if err != nil {
			results = append(results, BatchResult{Name: in.Name, Err: err})
			continue
		}

		results = append(results, BatchResult{Name: in.Name, Survey: s})
	}

	return results
}
