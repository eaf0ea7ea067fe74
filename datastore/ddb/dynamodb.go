/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/suparena/recordstore/datastore"
)

// DynamoDBAPI is the subset of the DynamoDB client the store depends on.
// Narrowing the surface keeps unit tests free of any network setup.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// Store implements datastore.Client over AWS DynamoDB.
type Store struct {
	api DynamoDBAPI
}

// New wraps an existing DynamoDB client (or any DynamoDBAPI) as a Store.
func New(api DynamoDBAPI) *Store {
	return &Store{api: api}
}

// NewClient initializes a DynamoDB client from static AWS credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// NewFromEnv builds a Store from AWS_ACCESS_KEY, AWS_SECRET_KEY and
// AWS_REGION, loading a .env file first when one is present.
func NewFromEnv() (*Store, error) {
	// Absence of a .env file is fine; the variables may already be exported.
	_ = godotenv.Load()

	client, err := NewClient(
		os.Getenv("AWS_ACCESS_KEY"),
		os.Getenv("AWS_SECRET_KEY"),
		os.Getenv("AWS_REGION"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return New(client), nil
}

// PutItem writes a full item to the named table.
func (s *Store) PutItem(ctx context.Context, table string, item datastore.Item) error {
	_, err := s.api.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// GetItem fetches the item with the given key. A missing item is (nil, nil).
func (s *Store) GetItem(ctx context.Context, table string, key datastore.Item) (datastore.Item, error) {
	out, err := s.api.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem failed: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return out.Item, nil
}

// DeleteItem removes the item with the given key.
func (s *Store) DeleteItem(ctx context.Context, table string, key datastore.Item) error {
	_, err := s.api.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("DeleteItem failed: %w", err)
	}
	return nil
}

// Page executes a single query page. The caller drives pagination by feeding
// the returned LastKey back as the next request's StartKey.
func (s *Store) Page(ctx context.Context, table string, req *datastore.PageRequest) (*datastore.PageResult, error) {
	input := &sdk.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    aws.String(req.KeyConditionExpression),
		ExpressionAttributeValues: req.ExpressionAttributeValues,
		FilterExpression:          req.FilterExpression,
		IndexName:                 req.IndexName,
		Limit:                     req.Limit,
		ScanIndexForward:          req.ScanIndexForward,
	}
	if len(req.StartKey) > 0 {
		input.ExclusiveStartKey = req.StartKey
	}

	out, err := s.api.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("Query failed: %w", err)
	}

	result := &datastore.PageResult{}
	for _, item := range out.Items {
		result.Items = append(result.Items, item)
	}
	if len(out.LastEvaluatedKey) > 0 {
		result.LastKey = out.LastEvaluatedKey
	}
	return result, nil
}
