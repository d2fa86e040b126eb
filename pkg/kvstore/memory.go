package kvstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MemoryStore is an in-process Store used by the local server and by
// tests. Items are kept in their marshalled (AttributeValue) form and
// unmarshalled on every Get, so callers always receive an independent
// copy and anything that would not survive the DynamoDB codec fails
// here too.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]map[string]types.AttributeValue
}

// NewMemory creates an empty MemoryStore.
func NewMemory[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{
		items: make(map[string]map[string]types.AttributeValue),
	}
}

func (s *MemoryStore[T]) Get(ctx context.Context, key string) (*T, error) {
	s.mu.RLock()
	av, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	var item T
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, fmt.Errorf("kvstore: unmarshal failed: %w", err)
	}
	return &item, nil
}

func (s *MemoryStore[T]) Put(ctx context.Context, key string, item T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("kvstore: marshal failed: %w", err)
	}

	s.mu.Lock()
	s.items[key] = av
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore[T]) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored items. Test helper.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
