package kvstore

import (
	"context"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

const (
	dynamoKeyAttr     = "key"
	dynamoVersionAttr = "version"
	defaultRegion     = "us-east-1"

	conditionUnversioned  = "attribute_not_exists(#version)"
	conditionVersionMatch = "#version = :expected"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type kvItem struct {
	Key       string    `dynamodbav:"key"`
	Value     string    `dynamodbav:"value"`
	Version   int64     `dynamodbav:"version"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

// dynamoStore keeps values in a DynamoDB table whose partition key is the string attribute "key".
type dynamoStore struct {
	client DynamoDBAPI
	table  string
	now    func() time.Time
}

// NewDynamoDBStore creates a store over an existing client.
func NewDynamoDBStore(client DynamoDBAPI, table string) service.VersionedKVStore {
	return &dynamoStore{
		client: client,
		table:  table,
		now:    time.Now,
	}
}

// NewDynamoDBClient loads the default AWS credential chain for cfg's region and
// honours an endpoint override such as DynamoDB Local.
func NewDynamoDBClient(ctx context.Context, cfg *config.DynamoDBConfig) (*dynamodb.Client, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func (s *dynamoStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, _, found, err := s.GetVersioned(ctx, key)

	return value, found, err
}

func (s *dynamoStore) GetVersioned(ctx context.Context, key string) (string, int64, bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			dynamoKeyAttr: &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", 0, false, wrapAPIError(err, "get item")
	}
	if len(out.Item) == 0 {
		return "", 0, false, nil
	}

	var item kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return "", 0, false, errors.Wrap(err, "unmarshal kv item")
	}

	return item.Value, item.Version, true, nil
}

// Set writes unconditionally and bumps the version atomically.
func (s *dynamoStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			dynamoKeyAttr: &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String("SET #value = :value, #updated = :updated ADD #version :one"),
		ExpressionAttributeNames: map[string]string{
			"#value":   "value",
			"#updated": "updated_at",
			"#version": dynamoVersionAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value":   &types.AttributeValueMemberS{Value: value},
			":updated": &types.AttributeValueMemberS{Value: s.now().UTC().Format(time.RFC3339Nano)},
			":one":     &types.AttributeValueMemberN{Value: "1"},
		},
	}); err != nil {
		return wrapAPIError(err, "update item")
	}

	return nil
}

// CompareAndSet puts the item with a condition on the version that was read.
func (s *dynamoStore) CompareAndSet(ctx context.Context, key, value string, expected int64) (int64, error) {
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       key,
		Value:     value,
		Version:   expected + 1,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return 0, errors.Wrap(err, "marshal kv item")
	}

	input := &dynamodb.PutItemInput{
		TableName:                aws.String(s.table),
		Item:                     av,
		ExpressionAttributeNames: map[string]string{"#version": dynamoVersionAttr},
	}
	if expected == 0 {
		// Also matches items written before versions were stored
		input.ConditionExpression = aws.String(conditionUnversioned)
	} else {
		input.ConditionExpression = aws.String(conditionVersionMatch)
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		}
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return 0, service.ErrVersionConflict
		}

		return 0, wrapAPIError(err, "put item")
	}

	return expected + 1, nil
}

// wrapAPIError keeps the DynamoDB error code in the message for log searches.
func wrapAPIError(err error, op string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return errors.Wrapf(err, "%s: %s", op, apiErr.ErrorCode())
	}

	return errors.Wrap(err, op)
}
