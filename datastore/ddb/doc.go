/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package ddb implements the datastore.Client interface over AWS DynamoDB.
//
// The implementation is a thin translation layer: record items arrive already
// validated and marshaled to tagged attribute values, and store responses are
// handed back raw. Construct a Store from an existing DynamoDB client with
// New, from static credentials with NewClient, or from environment variables
// (optionally a .env file) with NewFromEnv.
//
// The Store depends on the DynamoDBAPI interface rather than the concrete SDK
// client, so tests can substitute an in-process fake.
package ddb
