package kvstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raywall/pet-crud-service/pkg/envloader"
)

type dynamoStore[T any] struct {
	client DynamoDBClient
	cfg    TableConfig
}

// New creates a reusable DynamoDB-backed Store. When cfg is zero the
// table configuration is completed from the environment.
func New[T any](client DynamoDBClient, cfg TableConfig) Store[T] {
	if cfg.TableName == "" {
		_ = envloader.Load(&cfg)
	}

	return &dynamoStore[T]{
		client: client,
		cfg:    cfg,
	}
}

// Get performs a consistent point lookup by hash key.
func (s *dynamoStore[T]) Get(ctx context.Context, key string) (*T, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.cfg.TableName),
		Key:            s.keyAttr(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: get failed: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("kvstore: unmarshal failed: %w", err)
	}
	return &item, nil
}

// Put inserts or overwrites the item under key. The hash key attribute
// in the marshalled item is always set from key, so the addressed key
// stays authoritative over whatever the payload carries.
func (s *dynamoStore[T]) Put(ctx context.Context, key string, item T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("kvstore: marshal failed: %w", err)
	}
	av[s.cfg.HashKey] = &types.AttributeValueMemberS{Value: key}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.TableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("kvstore: put failed: %w", err)
	}
	return nil
}

// Delete removes the item under key. DynamoDB's DeleteItem is
// idempotent, so a miss is indistinguishable from a hit here.
func (s *dynamoStore[T]) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.cfg.TableName),
		Key:       s.keyAttr(key),
	})
	if err != nil {
		return fmt.Errorf("kvstore: delete failed: %w", err)
	}
	return nil
}

func (s *dynamoStore[T]) keyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		s.cfg.HashKey: &types.AttributeValueMemberS{Value: key},
	}
}
