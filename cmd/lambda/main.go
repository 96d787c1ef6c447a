package main

import (
	"context"
	"log"
	"time"

	"muzac-backend/infrastructure/config"
	"muzac-backend/infrastructure/di"
	"muzac-backend/interfaces/http/rest"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Global variables for Lambda lifecycle management
var (
	// chiLambda wraps the Chi router for AWS Lambda integration
	chiLambda *chiadapter.ChiLambda

	// container holds the dependency injection container
	container *di.Container

	// coldStart tracks whether this is a cold start invocation
	coldStart = true

	// coldStartTime records when the cold start began
	coldStartTime time.Time
)

// init runs during cold start
func init() {
	coldStartTime = time.Now()
	log.Println("Lambda cold start initiated")

	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container
	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Setup routes
	handler := rest.NewRouter(container).Setup()

	// Create Lambda adapter - need to type assert to *chi.Mux
	chiRouter, ok := handler.(*chi.Mux)
	if !ok {
		log.Fatal("Failed to cast handler to chi.Mux")
	}
	chiLambda = chiadapter.New(chiRouter)

	log.Printf("Lambda cold start completed in %v", time.Since(coldStartTime))
}

// Handler is the Lambda function handler
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := chiLambda.ProxyWithContext(ctx, req)

	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	if coldStart {
		resp.Headers["X-Cold-Start"] = "true"
		resp.Headers["X-Cold-Start-Duration"] = time.Since(coldStartTime).String()
		coldStart = false
	} else {
		resp.Headers["X-Cold-Start"] = "false"
	}
	if req.RequestContext.RequestID != "" {
		resp.Headers["X-Request-ID"] = req.RequestContext.RequestID
	}

	if resp.StatusCode >= 400 {
		container.Logger.Warn("Lambda error response",
			zap.String("method", req.HTTPMethod),
			zap.String("path", req.Path),
			zap.Int("status_code", resp.StatusCode),
		)
	}

	return resp, err
}

// main is the entry point for the Lambda function
func main() {
	lambda.Start(Handler)
}
