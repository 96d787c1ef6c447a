package di

import (
	"context"
	"fmt"

	"muzac-backend/application/ports"
	"muzac-backend/application/services"
	"muzac-backend/infrastructure/config"
	"muzac-backend/infrastructure/identity/cognito"
	"muzac-backend/infrastructure/observability"
	dynamorepo "muzac-backend/infrastructure/persistence/dynamodb"
	"muzac-backend/infrastructure/render/remotion"
	s3store "muzac-backend/infrastructure/storage/s3"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awscognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ImagesStore is the object store bound to the daily-images bucket.
type ImagesStore ports.ObjectStore

// VideosStore is the object store bound to the rendered-videos bucket.
type VideosStore ports.ObjectStore

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideS3Client creates an S3 client
func ProvideS3Client(awsCfg aws.Config) *awss3.Client {
	return awss3.NewFromConfig(awsCfg)
}

// ProvideCognitoClient creates a Cognito identity provider client
func ProvideCognitoClient(awsCfg aws.Config) *awscognito.Client {
	return awscognito.NewFromConfig(awsCfg)
}

// ProvideLambdaClient creates a Lambda client for render invocations
func ProvideLambdaClient(awsCfg aws.Config) *awslambda.Client {
	return awslambda.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates the metrics publisher, or a no-op when disabled
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) ports.MetricsPublisher {
	if !cfg.EnableMetrics {
		return observability.NopMetrics{}
	}
	namespace := fmt.Sprintf("Muzac/%s", cfg.Environment)
	return observability.NewMetrics(client, namespace, logger)
}

// ProvideIdentityProvider creates the Cognito identity adapter
func ProvideIdentityProvider(client *awscognito.Client, cfg *config.Config, logger *zap.Logger) ports.IdentityProvider {
	return cognito.NewProvider(client, cfg.UserPoolClientID, logger)
}

// ProvideImagesStore creates the object store for the daily-images bucket
func ProvideImagesStore(client *awss3.Client, cfg *config.Config, logger *zap.Logger) ImagesStore {
	return s3store.NewObjectStore(client, cfg.ImagesBucket, logger)
}

// ProvideVideosStore creates the object store for the rendered-videos bucket
func ProvideVideosStore(client *awss3.Client, cfg *config.Config, logger *zap.Logger) VideosStore {
	return s3store.NewObjectStore(client, cfg.VideosBucket, logger)
}

// ProvideFamilyRepository creates the family member repository
func ProvideFamilyRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.FamilyRepository {
	return dynamorepo.NewFamilyRepository(
		client,
		cfg.FamilyTable,
		cfg.MomIndexName,
		cfg.DadIndexName,
		logger,
	)
}

// ProvidePreferenceRepository creates the preference repository
func ProvidePreferenceRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.PreferenceRepository {
	return dynamorepo.NewPreferenceRepository(client, cfg.PreferencesTable, logger)
}

// ProvideVideoRenderer creates the Remotion render adapter
func ProvideVideoRenderer(client *awslambda.Client, cfg *config.Config, logger *zap.Logger) ports.VideoRenderer {
	return remotion.NewRenderer(
		client,
		cfg.RenderFunctionName,
		cfg.RenderServeURL,
		cfg.RenderComposition,
		cfg.VideosBucket,
		logger,
	)
}

// ProvideAuthService creates the auth service
func ProvideAuthService(identity ports.IdentityProvider, logger *zap.Logger) *services.AuthService {
	return services.NewAuthService(identity, logger)
}

// ProvideImageService creates the image calendar service
func ProvideImageService(store ImagesStore, metrics ports.MetricsPublisher, logger *zap.Logger) *services.ImageService {
	return services.NewImageService(store, metrics, logger)
}

// ProvidePreferenceService creates the preference service
func ProvidePreferenceService(repo ports.PreferenceRepository, logger *zap.Logger) *services.PreferenceService {
	return services.NewPreferenceService(repo, logger)
}

// ProvideVideoService creates the video render proxy service
func ProvideVideoService(
	renderer ports.VideoRenderer,
	videos VideosStore,
	cfg *config.Config,
	metrics ports.MetricsPublisher,
	logger *zap.Logger,
) *services.VideoService {
	return services.NewVideoService(renderer, videos, cfg.VideosBucket, metrics, logger)
}

// ProvideFamilyService creates the family tree service
func ProvideFamilyService(repo ports.FamilyRepository, logger *zap.Logger) *services.FamilyService {
	return services.NewFamilyService(repo, logger)
}
