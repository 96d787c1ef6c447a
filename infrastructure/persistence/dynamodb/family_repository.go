package dynamodb

import (
	"context"
	"fmt"

	"muzac-backend/application/ports"
	"muzac-backend/domain/family"
	apperrors "muzac-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// FamilyRepository implements the family member store on a flat DynamoDB
// table keyed by id, with sparse GSIs on the mom and dad references.
type FamilyRepository struct {
	client       *dynamodb.Client
	tableName    string
	momIndexName string
	dadIndexName string
	logger       *zap.Logger
}

// NewFamilyRepository creates a new FamilyRepository
func NewFamilyRepository(client *dynamodb.Client, tableName, momIndexName, dadIndexName string, logger *zap.Logger) ports.FamilyRepository {
	return &FamilyRepository{
		client:       client,
		tableName:    tableName,
		momIndexName: momIndexName,
		dadIndexName: dadIndexName,
		logger:       logger,
	}
}

// Create persists a member unconditionally. An existing item with the same id
// is overwritten; referential integrity is not checked.
func (r *FamilyRepository) Create(ctx context.Context, member family.Member) error {
	av, err := attributevalue.MarshalMap(member)
	if err != nil {
		return fmt.Errorf("failed to marshal family member: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("Failed to put family member",
			zap.String("memberID", member.ID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save family member: %w", err)
	}

	return nil
}

// GetByID returns a member or a not-found error.
func (r *FamilyRepository) GetByID(ctx context.Context, id string) (family.Member, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return family.Member{}, fmt.Errorf("failed to get family member %s: %w", id, err)
	}
	if out.Item == nil {
		return family.Member{}, apperrors.NewNotFoundError("family member")
	}

	var member family.Member
	if err := attributevalue.UnmarshalMap(out.Item, &member); err != nil {
		return family.Member{}, fmt.Errorf("failed to unmarshal family member %s: %w", id, err)
	}
	return member, nil
}

// GetAll scans the whole table. The data volume is one family, so a paginated
// scan is cheap.
func (r *FamilyRepository) GetAll(ctx context.Context) ([]family.Member, error) {
	var members []family.Member

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			r.logger.Error("Family table scan failed", zap.Error(err))
			return nil, fmt.Errorf("failed to scan family members: %w", err)
		}

		var pageMembers []family.Member
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageMembers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal family members: %w", err)
		}
		members = append(members, pageMembers...)
	}

	return members, nil
}

// GetByMom returns members whose mom reference equals parentID.
func (r *FamilyRepository) GetByMom(ctx context.Context, parentID string) ([]family.Member, error) {
	return r.queryIndex(ctx, r.momIndexName, "mom", parentID)
}

// GetByDad returns members whose dad reference equals parentID.
func (r *FamilyRepository) GetByDad(ctx context.Context, parentID string) ([]family.Member, error) {
	return r.queryIndex(ctx, r.dadIndexName, "dad", parentID)
}

// queryIndex runs a key-equality query against one of the parent GSIs.
func (r *FamilyRepository) queryIndex(ctx context.Context, indexName, keyName, parentID string) ([]family.Member, error) {
	keyCond := expression.Key(keyName).Equal(expression.Value(parentID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", indexName, err)
	}

	var members []family.Member
	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(indexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			r.logger.Error("Family index query failed",
				zap.String("index", indexName),
				zap.String("parentID", parentID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to query %s: %w", indexName, err)
		}

		var pageMembers []family.Member
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageMembers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s results: %w", indexName, err)
		}
		members = append(members, pageMembers...)
	}

	return members, nil
}
