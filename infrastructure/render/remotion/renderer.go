package remotion

import (
	"context"
	"encoding/json"
	"fmt"

	"muzac-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"go.uber.org/zap"
)

// Renderer drives the Remotion render function on Lambda: one invocation to
// start a render, one per poll to read its progress. The render itself runs
// entirely on the managed side.
type Renderer struct {
	client       *awslambda.Client
	functionName string
	serveURL     string
	composition  string
	bucketName   string
	logger       *zap.Logger
}

// NewRenderer creates a new Remotion renderer
func NewRenderer(client *awslambda.Client, functionName, serveURL, composition, bucketName string, logger *zap.Logger) ports.VideoRenderer {
	return &Renderer{
		client:       client,
		functionName: functionName,
		serveURL:     serveURL,
		composition:  composition,
		bucketName:   bucketName,
		logger:       logger,
	}
}

type startRequest struct {
	Type            string      `json:"type"`
	ServeURL        string      `json:"serveUrl"`
	Composition     string      `json:"composition"`
	InputProps      interface{} `json:"inputProps"`
	Codec           string      `json:"codec"`
	OutName         string      `json:"outName"`
	Privacy         string      `json:"privacy"`
	ForceBucketName string      `json:"forceBucketName"`
}

type startResponse struct {
	RenderID string `json:"renderId"`
}

type statusRequest struct {
	Type       string `json:"type"`
	RenderID   string `json:"renderId"`
	BucketName string `json:"bucketName"`
}

type statusResponse struct {
	Done            bool    `json:"done"`
	OverallProgress float64 `json:"overallProgress"`
	OutputFile      string  `json:"outputFile"`
}

// StartRender forwards the render parameters to the render function and
// returns the job id.
func (r *Renderer) StartRender(ctx context.Context, spec ports.RenderSpec) (string, error) {
	req := startRequest{
		Type:        "start",
		ServeURL:    r.serveURL,
		Composition: r.composition,
		InputProps: map[string]interface{}{
			"images":          spec.Images,
			"language":        spec.Language,
			"backgroundColor": spec.BackgroundColor,
			"transitionType":  spec.TransitionType,
			"imageDuration":   spec.ImageDuration,
		},
		Codec:           "h264",
		OutName:         spec.OutName,
		Privacy:         "private",
		ForceBucketName: r.bucketName,
	}

	var resp startResponse
	if err := r.invoke(ctx, req, &resp); err != nil {
		return "", err
	}
	if resp.RenderID == "" {
		return "", fmt.Errorf("render function returned no render id")
	}

	r.logger.Info("Remotion render started",
		zap.String("renderID", resp.RenderID),
		zap.String("outName", spec.OutName),
	)
	return resp.RenderID, nil
}

// Progress reads the current state of a render job.
func (r *Renderer) Progress(ctx context.Context, renderID string) (ports.RenderProgress, error) {
	req := statusRequest{
		Type:       "status",
		RenderID:   renderID,
		BucketName: r.bucketName,
	}

	var resp statusResponse
	if err := r.invoke(ctx, req, &resp); err != nil {
		return ports.RenderProgress{}, err
	}

	return ports.RenderProgress{
		Done:            resp.Done,
		OverallProgress: resp.OverallProgress,
		OutputFile:      resp.OutputFile,
	}, nil
}

// invoke runs one synchronous Lambda invocation with a JSON payload.
func (r *Renderer) invoke(ctx context.Context, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal render payload: %w", err)
	}

	result, err := r.client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName: aws.String(r.functionName),
		Payload:      body,
	})
	if err != nil {
		return fmt.Errorf("failed to invoke render function: %w", err)
	}
	if result.FunctionError != nil {
		return fmt.Errorf("render function error: %s", aws.ToString(result.FunctionError))
	}

	if err := json.Unmarshal(result.Payload, out); err != nil {
		return fmt.Errorf("failed to decode render function response: %w", err)
	}
	return nil
}
