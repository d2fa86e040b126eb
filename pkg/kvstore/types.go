package kvstore

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotFound is returned when a Get misses. Callers must be able to
// tell this apart from an infrastructure failure, so it is the only
// sentinel the package exposes.
var ErrNotFound = errors.New("kvstore: item not found")

// DynamoDBClient abstracts the subset of the AWS SDK client used by
// the store, allowing substitution in tests.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Store is the key-value contract the service depends on: point lookup,
// unconditional insert/overwrite and idempotent delete, all addressed
// by a single string key. `T` is the Go type stored per item.
type Store[T any] interface {
	// Get returns the item stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (*T, error)
	// Put inserts or overwrites the item under key (last writer wins).
	Put(ctx context.Context, key string, item T) error
	// Delete removes the item under key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error
}

// TableConfig describes the DynamoDB table behind a Store.
//
// The `env` tags allow the zero value to be completed from the
// environment (DYNAMODB_TABLE_NAME, DYNAMODB_HASH_KEY).
type TableConfig struct {
	TableName string `env:"DYNAMODB_TABLE_NAME"`
	HashKey   string `env:"DYNAMODB_HASH_KEY" envDefault:"id"`
}
