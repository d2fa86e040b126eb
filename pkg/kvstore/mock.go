package kvstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// MockStore is a function-field mock of Store[T] for tests that need
// to force specific store outcomes (errors, misses).
type MockStore[T any] struct {
	GetFn    func(ctx context.Context, key string) (*T, error)
	PutFn    func(ctx context.Context, key string, item T) error
	DeleteFn func(ctx context.Context, key string) error
}

func (m *MockStore[T]) Get(ctx context.Context, key string) (*T, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return nil, ErrNotFound
}

func (m *MockStore[T]) Put(ctx context.Context, key string, item T) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, key, item)
	}
	return nil
}

func (m *MockStore[T]) Delete(ctx context.Context, key string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	return nil
}

// MockDynamoClient is a function-field mock of the low-level SDK
// client, for testing the DynamoDB store itself.
type MockDynamoClient struct {
	GetItemFn    func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItemFn    func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItemFn func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

func (m *MockDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.GetItemFn != nil {
		return m.GetItemFn(ctx, params, optFns...)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (m *MockDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.PutItemFn != nil {
		return m.PutItemFn(ctx, params, optFns...)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (m *MockDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, params, optFns...)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}
