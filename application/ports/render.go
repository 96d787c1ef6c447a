package ports

import (
	"context"

	"muzac-backend/domain/calendar"
)

// RenderSpec carries everything the managed renderer needs for a timelapse.
type RenderSpec struct {
	Images          []calendar.DailyImage `json:"images"`
	Language        string                `json:"language"`
	BackgroundColor string                `json:"backgroundColor"`
	TransitionType  string                `json:"transitionType"`
	ImageDuration   float64               `json:"imageDuration"`
	OutName         string                `json:"outName"`
}

// RenderProgress is a snapshot of a render job as reported by the renderer.
type RenderProgress struct {
	Done            bool    `json:"done"`
	OverallProgress float64 `json:"overallProgress"`
	OutputFile      string  `json:"outputFile"`
}

// VideoRenderer proxies to the managed rendering backend. StartRender is
// fire-and-forget; the client polls Progress until done.
type VideoRenderer interface {
	StartRender(ctx context.Context, spec RenderSpec) (string, error)
	Progress(ctx context.Context, renderID string) (RenderProgress, error)
}
