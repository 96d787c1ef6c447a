package dynamodb

import (
	"context"
	"fmt"

	"muzac-backend/application/ports"
	"muzac-backend/domain/preferences"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// PreferenceRepository stores the single per-user preference row in DynamoDB,
// keyed by userId. Writes are unconditional; last write wins.
type PreferenceRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewPreferenceRepository creates a new PreferenceRepository
func NewPreferenceRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.PreferenceRepository {
	return &PreferenceRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Get returns nil without error when the user has no stored row.
func (r *PreferenceRepository) Get(ctx context.Context, userID string) (*preferences.UserPreferences, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		r.logger.Error("Failed to get preferences",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var prefs preferences.UserPreferences
	if err := attributevalue.UnmarshalMap(out.Item, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	return &prefs, nil
}

// Put overwrites the user's row.
func (r *PreferenceRepository) Put(ctx context.Context, prefs preferences.UserPreferences) error {
	av, err := attributevalue.MarshalMap(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("Failed to put preferences",
			zap.String("userID", prefs.UserID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
