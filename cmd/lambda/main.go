package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"

	"github.com/raywall/pet-crud-service/pkg/config"
	"github.com/raywall/pet-crud-service/pkg/kvstore"
	"github.com/raywall/pet-crud-service/pkg/logger"
	"github.com/raywall/pet-crud-service/pkg/metrics"
	"github.com/raywall/pet-crud-service/pkg/pet"
	"github.com/raywall/pet-crud-service/pkg/transport"
)

// The DynamoDB client and the handler are built once per execution
// environment and reused across invocations.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}
	if err := cfg.ValidateTable(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Logger = logger.Configure(cfg.Logging)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("loading AWS configuration")
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Table.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Table.Endpoint)
		}
	})

	provider, err := metrics.Setup(cfg.Metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("setting up metrics")
	}

	store := kvstore.New[pet.Record](client, kvstore.TableConfig{
		TableName: cfg.Table.Name,
		HashKey:   cfg.Table.HashKey,
	})
	handler := transport.NewLambdaHandler(transport.NewHandler(pet.NewService(store), provider))

	lambda.Start(handler.Handle)
}
