package kvstore

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo stores items by their "key" attribute and understands the two
// condition expressions the store sends.
type fakeDynamo struct {
	mu        sync.Mutex
	tables    map[string]map[string]map[string]types.AttributeValue
	failWrite error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = map[string]map[string]types.AttributeValue{}
	}

	return f.tables[name]
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := in.Key["key"].(*types.AttributeValueMemberS).Value

	return &dynamodb.GetItemOutput{Item: f.table(*in.TableName)[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWrite != nil {
		return nil, f.failWrite
	}
	table := f.table(*in.TableName)
	key := in.Item["key"].(*types.AttributeValueMemberS).Value
	existing, exists := table[key]

	if in.ConditionExpression != nil {
		failed := false
		switch *in.ConditionExpression {
		case conditionUnversioned:
			_, versioned := existing["version"]
			failed = exists && versioned
		case conditionVersionMatch:
			want := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value
			have, ok := existing["version"].(*types.AttributeValueMemberN)
			failed = !exists || !ok || have.Value != want
		}
		if failed {
			return nil, &types.ConditionalCheckFailedException{Message: stringPtr("condition failed")}
		}
	}
	table[key] = in.Item

	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWrite != nil {
		return nil, f.failWrite
	}
	table := f.table(*in.TableName)
	key := in.Key["key"].(*types.AttributeValueMemberS).Value

	version := int64(0)
	if n, ok := table[key]["version"].(*types.AttributeValueMemberN); ok {
		version, _ = strconv.ParseInt(n.Value, 10, 64)
	}
	table[key] = map[string]types.AttributeValue{
		"key":        in.Key["key"],
		"value":      in.ExpressionAttributeValues[":value"],
		"updated_at": in.ExpressionAttributeValues[":updated"],
		"version":    &types.AttributeValueMemberN{Value: strconv.FormatInt(version+1, 10)},
	}

	return &dynamodb.UpdateItemOutput{}, nil
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, found, err := store.Get(ctx, "cart:1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "cart:1", `[{"id":"a"}]`))
	require.NoError(t, store.Set(ctx, "cart:1", `[]`))

	value, found, err := store.Get(ctx, "cart:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)
}

func TestDynamoStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeDynamo()
	store := NewDynamoDBStore(client, "storefront-kv").(*dynamoStore)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	_, found, err := store.Get(ctx, "wishlist:1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "wishlist:1", `[{"id":"gift"}]`))

	value, found, err := store.Get(ctx, "wishlist:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"gift"}]`, value)

	item := client.tables["storefront-kv"]["wishlist:1"]
	require.Contains(t, item, "value")
	require.Contains(t, item, "updated_at")
}

func TestDynamoStore_WriteErrorCarriesCode(t *testing.T) {
	client := newFakeDynamo()
	client.failWrite = &types.ResourceNotFoundException{Message: stringPtr("no table")}
	store := NewDynamoDBStore(client, "missing")

	err := store.Set(context.Background(), "cart:1", "[]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ResourceNotFoundException")
}

func TestNewKVStore_Providers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		basket  *config.BasketConfig
		wantErr bool
	}{
		{"unset falls back to memory", nil, false},
		{"memory", &config.BasketConfig{Provider: "memory"}, false},
		{"postgres without db", &config.BasketConfig{Provider: "postgres"}, true},
		{"dynamodb without table", &config.BasketConfig{Provider: "dynamodb"}, true},
		{"unknown", &config.BasketConfig{Provider: "redis"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewKVStore(StoreParams{
				Ctx:    context.Background(),
				Config: &config.Config{Basket: tt.basket},
				Logger: logger,
			})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, store)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}

func stringPtr(s string) *string {
	return &s
}

func TestVersionedStores_CompareAndSet(t *testing.T) {
	stores := map[string]service.VersionedKVStore{
		"memory":   NewMemoryStore(),
		"dynamodb": NewDynamoDBStore(newFakeDynamo(), "storefront-kv"),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			version, err := store.CompareAndSet(ctx, "cart:1", `["a"]`, 0)
			require.NoError(t, err)
			assert.Equal(t, int64(1), version)

			// A second writer that also read "absent" loses
			_, err = store.CompareAndSet(ctx, "cart:1", `["b"]`, 0)
			assert.ErrorIs(t, err, service.ErrVersionConflict)

			version, err = store.CompareAndSet(ctx, "cart:1", `["a","c"]`, 1)
			require.NoError(t, err)
			assert.Equal(t, int64(2), version)

			_, err = store.CompareAndSet(ctx, "cart:1", `["stale"]`, 1)
			assert.ErrorIs(t, err, service.ErrVersionConflict)

			// Plain Set still bumps the version
			require.NoError(t, store.Set(ctx, "cart:1", `[]`))
			value, version, found, err := store.GetVersioned(ctx, "cart:1")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `[]`, value)
			assert.Equal(t, int64(3), version)

			_, err = store.CompareAndSet(ctx, "cart:1", `["x"]`, 2)
			assert.ErrorIs(t, err, service.ErrVersionConflict)
		})
	}
}

func TestDynamoStore_CompareAndSetAdoptsUnversionedItem(t *testing.T) {
	ctx := context.Background()
	client := newFakeDynamo()
	client.table("storefront-kv")["cart:1"] = map[string]types.AttributeValue{
		"key":   &types.AttributeValueMemberS{Value: "cart:1"},
		"value": &types.AttributeValueMemberS{Value: `["legacy"]`},
	}
	store := NewDynamoDBStore(client, "storefront-kv")

	value, version, found, err := store.GetVersioned(ctx, "cart:1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `["legacy"]`, value)
	assert.Zero(t, version)

	version, err = store.CompareAndSet(ctx, "cart:1", `["legacy","new"]`, version)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
