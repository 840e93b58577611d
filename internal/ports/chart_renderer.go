package ports

import (
	"context"
	"io"

	"gpr-profile-service/internal/domain"
)

// Contract for drawing a depth-profile chart from a processed survey.
type ChartRenderer interface {
	// Render writes a raster chart image for the survey's boundary
	// series. Fails when the survey has no plottable data.
	Render(ctx context.Context, survey *domain.Survey, w io.Writer) error
}
