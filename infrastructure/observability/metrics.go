package observability

import (
	"context"

	"muzac-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// Metrics publishes operational counters to CloudWatch. Publishing is
// best-effort: failures are logged and never fail the request.
type Metrics struct {
	client    *cloudwatch.Client
	namespace string
	logger    *zap.Logger
}

// NewMetrics creates a new CloudWatch metrics publisher
func NewMetrics(client *cloudwatch.Client, namespace string, logger *zap.Logger) ports.MetricsPublisher {
	return &Metrics{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
}

// Increment publishes a count-1 data point for the metric.
func (m *Metrics) Increment(ctx context.Context, name string) {
	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name),
				Value:      aws.Float64(1),
				Unit:       types.StandardUnitCount,
			},
		},
	})
	if err != nil {
		m.logger.Warn("Failed to publish metric",
			zap.String("metric", name),
			zap.Error(err),
		)
	}
}

// NopMetrics discards all counters. Used when metrics are disabled.
type NopMetrics struct{}

// Increment does nothing.
func (NopMetrics) Increment(ctx context.Context, name string) {}
