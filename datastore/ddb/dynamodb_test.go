/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/recordstore/datastore"
)

// fakeAPI records the last input per operation and returns canned outputs.
type fakeAPI struct {
	putInput    *sdk.PutItemInput
	getInput    *sdk.GetItemInput
	deleteInput *sdk.DeleteItemInput
	queryInput  *sdk.QueryInput

	getOutput   *sdk.GetItemOutput
	queryOutput *sdk.QueryOutput
	err         error
}

func (f *fakeAPI) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	f.putInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeAPI) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	f.getInput = params
	if f.err != nil {
		return nil, f.err
	}
	if f.getOutput != nil {
		return f.getOutput, nil
	}
	return &sdk.GetItemOutput{}, nil
}

func (f *fakeAPI) DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	f.deleteInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &sdk.DeleteItemOutput{}, nil
}

func (f *fakeAPI) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	f.queryInput = params
	if f.err != nil {
		return nil, f.err
	}
	if f.queryOutput != nil {
		return f.queryOutput, nil
	}
	return &sdk.QueryOutput{}, nil
}

func TestPutItemTranslation(t *testing.T) {
	api := &fakeAPI{}
	store := New(api)

	item := datastore.Item{
		"id": &types.AttributeValueMemberN{Value: "1"},
	}
	if err := store.PutItem(context.Background(), "Records", item); err != nil {
		t.Fatalf("PutItem failed: %v", err)
	}

	if api.putInput == nil {
		t.Fatal("Expected a PutItem call")
	}
	if *api.putInput.TableName != "Records" {
		t.Errorf("Expected table Records, got %q", *api.putInput.TableName)
	}
	if !reflect.DeepEqual(api.putInput.Item, map[string]types.AttributeValue(item)) {
		t.Errorf("Expected item passed through unchanged, got %v", api.putInput.Item)
	}
}

func TestGetItemFound(t *testing.T) {
	stored := map[string]types.AttributeValue{
		"id":   &types.AttributeValueMemberN{Value: "1"},
		"body": &types.AttributeValueMemberS{Value: "Hello!"},
	}
	api := &fakeAPI{getOutput: &sdk.GetItemOutput{Item: stored}}
	store := New(api)

	got, err := store.GetItem(context.Background(), "Records", datastore.Item{
		"id": &types.AttributeValueMemberN{Value: "1"},
	})
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if !reflect.DeepEqual(got, datastore.Item(stored)) {
		t.Errorf("Expected raw item returned, got %v", got)
	}
}

func TestGetItemMissingIsNilNil(t *testing.T) {
	store := New(&fakeAPI{})

	got, err := store.GetItem(context.Background(), "Records", datastore.Item{
		"id": &types.AttributeValueMemberN{Value: "404"},
	})
	if err != nil {
		t.Fatalf("Expected no error for a missing item, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil item, got %v", got)
	}
}

func TestDeleteItemTranslation(t *testing.T) {
	api := &fakeAPI{}
	store := New(api)

	key := datastore.Item{"id": &types.AttributeValueMemberN{Value: "1"}}
	if err := store.DeleteItem(context.Background(), "Records", key); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if api.deleteInput == nil || *api.deleteInput.TableName != "Records" {
		t.Fatalf("Expected DeleteItem on Records, got %+v", api.deleteInput)
	}
}

func TestPageTranslation(t *testing.T) {
	lastKey := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: "10"},
	}
	api := &fakeAPI{queryOutput: &sdk.QueryOutput{
		Items: []map[string]types.AttributeValue{
			{"id": &types.AttributeValueMemberN{Value: "9"}},
			{"id": &types.AttributeValueMemberN{Value: "10"}},
		},
		LastEvaluatedKey: lastKey,
	}}
	store := New(api)

	req := &datastore.PageRequest{
		KeyConditionExpression: "id = :id",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberN{Value: "9"},
		},
		IndexName: aws.String("by-date"),
		Limit:     aws.Int32(2),
		StartKey:  datastore.Item{"id": &types.AttributeValueMemberN{Value: "8"}},
	}
	result, err := store.Page(context.Background(), "Records", req)
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}

	if len(result.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result.Items))
	}
	if !reflect.DeepEqual(result.LastKey, datastore.Item(lastKey)) {
		t.Errorf("Expected continuation key %v, got %v", lastKey, result.LastKey)
	}

	in := api.queryInput
	if in == nil {
		t.Fatal("Expected a Query call")
	}
	if *in.KeyConditionExpression != "id = :id" {
		t.Errorf("Unexpected key condition %q", *in.KeyConditionExpression)
	}
	if *in.IndexName != "by-date" || *in.Limit != 2 {
		t.Errorf("Expected index and limit forwarded, got %+v", in)
	}
	if in.ExclusiveStartKey == nil {
		t.Error("Expected StartKey forwarded as ExclusiveStartKey")
	}
}

func TestPageWithoutStartKeyOmitsExclusiveStartKey(t *testing.T) {
	api := &fakeAPI{}
	store := New(api)

	_, err := store.Page(context.Background(), "Records", &datastore.PageRequest{
		KeyConditionExpression: "id = :id",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if api.queryInput.ExclusiveStartKey != nil {
		t.Error("Expected no ExclusiveStartKey on the first page")
	}
}

func TestClientErrorsAreWrapped(t *testing.T) {
	boom := errors.New("throttled")
	store := New(&fakeAPI{err: boom})
	ctx := context.Background()
	key := datastore.Item{"id": &types.AttributeValueMemberN{Value: "1"}}

	tests := []struct {
		name     string
		expected string
		call     func() error
	}{
		{"put", "PutItem failed: throttled", func() error {
			return store.PutItem(ctx, "Records", key)
		}},
		{"get", "GetItem failed: throttled", func() error {
			_, err := store.GetItem(ctx, "Records", key)
			return err
		}},
		{"delete", "DeleteItem failed: throttled", func() error {
			return store.DeleteItem(ctx, "Records", key)
		}},
		{"page", "Query failed: throttled", func() error {
			_, err := store.Page(ctx, "Records", &datastore.PageRequest{})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, boom) {
				t.Fatalf("Expected wrapped error, got %v", err)
			}
			if err.Error() != tt.expected {
				t.Errorf("Expected message %q, got %q", tt.expected, err.Error())
			}
		})
	}
}
