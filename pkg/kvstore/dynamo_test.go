package kvstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/pet-crud-service/pkg/kvstore"
)

type testItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

func testConfig() kvstore.TableConfig {
	return kvstore.TableConfig{TableName: "test-pets", HashKey: "id"}
}

func TestDynamoGet_Success(t *testing.T) {
	t.Parallel()

	client := &kvstore.MockDynamoClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "test-pets", aws.ToString(params.TableName))
			assert.Equal(t, &types.AttributeValueMemberS{Value: "pet-123"}, params.Key["id"])
			assert.True(t, aws.ToBool(params.ConsistentRead))

			return &dynamodb.GetItemOutput{
				Item: map[string]types.AttributeValue{
					"id":   &types.AttributeValueMemberS{Value: "pet-123"},
					"name": &types.AttributeValueMemberS{Value: "Rex"},
				},
			}, nil
		},
	}
	store := kvstore.New[testItem](client, testConfig())

	item, err := store.Get(context.Background(), "pet-123")

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "pet-123", item.ID)
	assert.Equal(t, "Rex", item.Name)
}

func TestDynamoGet_NotFound(t *testing.T) {
	t.Parallel()

	client := &kvstore.MockDynamoClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: nil}, nil
		},
	}
	store := kvstore.New[testItem](client, testConfig())

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestDynamoGet_ClientError(t *testing.T) {
	t.Parallel()

	boom := errors.New("throttled")
	client := &kvstore.MockDynamoClient{
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return nil, boom
		},
	}
	store := kvstore.New[testItem](client, testConfig())

	_, err := store.Get(context.Background(), "pet-123")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, kvstore.ErrNotFound)
}

func TestDynamoPut_KeyIsAuthoritative(t *testing.T) {
	t.Parallel()

	var written map[string]types.AttributeValue
	client := &kvstore.MockDynamoClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			written = params.Item
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	store := kvstore.New[testItem](client, testConfig())

	// The item claims a different id; the addressed key must win.
	err := store.Put(context.Background(), "pet-123", testItem{ID: "other", Name: "Rex"})

	require.NoError(t, err)
	require.NotNil(t, written)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "pet-123"}, written["id"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Rex"}, written["name"])
}

func TestDynamoPut_ClientError(t *testing.T) {
	t.Parallel()

	client := &kvstore.MockDynamoClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("table missing")
		},
	}
	store := kvstore.New[testItem](client, testConfig())

	err := store.Put(context.Background(), "pet-123", testItem{Name: "Rex"})

	assert.ErrorContains(t, err, "put failed")
}

func TestDynamoDelete(t *testing.T) {
	t.Parallel()

	var deletedKey map[string]types.AttributeValue
	client := &kvstore.MockDynamoClient{
		DeleteItemFn: func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			deletedKey = params.Key
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}
	store := kvstore.New[testItem](client, testConfig())

	err := store.Delete(context.Background(), "pet-123")

	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "pet-123"}, deletedKey["id"])
}

func TestDynamoDelete_ClientError(t *testing.T) {
	t.Parallel()

	client := &kvstore.MockDynamoClient{
		DeleteItemFn: func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			return nil, errors.New("access denied")
		},
	}
	store := kvstore.New[testItem](client, testConfig())

	err := store.Delete(context.Background(), "pet-123")

	assert.ErrorContains(t, err, "delete failed")
}
