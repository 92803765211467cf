//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/mandymoney/quote-craft/docs"
	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/server"
)

// @title           Quote Craft API
// @version         1.0
// @description     Quote and order builder for the High School Program

// @contact.name   Mandy Money
// @contact.url    https://www.mandymoney.com.au

// @host      localhost:8000
// @BasePath  /api/v1

var ginLambda *ginadapter.GinLambda

func init() {
	// Initialize your Gin router
	r := gin.Default()

	// Initialize Handlers (also initializes the logger from STAGE)
	server.InitializeHandlers()

	// Initialize routes
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.Any("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
