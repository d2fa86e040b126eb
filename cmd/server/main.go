package main

import (
	"context"
	"flag"

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

// Local development server. Runs the same handler as the Lambda
// entrypoint against DynamoDB (or DynamoDB Local via DYNAMODB_ENDPOINT)
// or, with -memory, against an in-process store.
func main() {
	configPath := flag.String("config", "", "optional YAML configuration file")
	inMemory := flag.Bool("memory", false, "use the in-memory store instead of DynamoDB")
	flag.Parse()

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}
	log.Logger = logger.Configure(cfg.Logging)

	provider, err := metrics.Setup(cfg.Metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("setting up metrics")
	}

	var store kvstore.Store[pet.Record]
	if *inMemory {
		log.Info().Msg("using in-memory store")
		store = kvstore.NewMemory[pet.Record]()
	} else {
		if err := cfg.ValidateTable(); err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("loading AWS configuration")
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.Table.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Table.Endpoint)
			}
		})
		store = kvstore.New[pet.Record](client, kvstore.TableConfig{
			TableName: cfg.Table.Name,
			HashKey:   cfg.Table.HashKey,
		})
	}

	core := transport.NewHandler(pet.NewService(store), provider)
	if err := transport.StartHTTPServer(cfg.Service, core); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}

func loadConfig(path string) (*config.ServiceConfig, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
