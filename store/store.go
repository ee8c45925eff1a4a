// Package store keeps raw playlist wire strings in DynamoDB, keyed by
// playlist name. It stores the strings untouched; parsing stays with the
// codec packages.
package store

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/chordwire/chordwire/constants"
)

type Store struct {
	client *dynamodb.DynamoDB
	table  string
}

// New connects to the DynamoDB endpoint from DYNAMO_ENDPOINT (a local
// instance by default).
func New() (*Store, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create DynamoDB session: %w", err)
	}
	return &Store{
		client: dynamodb.New(sess),
		table:  constants.GetDynamoTable(),
	}, nil
}

// PutPlaylist stores the raw wire string under the playlist name,
// overwriting any previous version.
func (s *Store) PutPlaylist(name, wire string) error {
	_, err := s.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":   {S: aws.String(name)},
			"Wire": {S: aws.String(wire)},
		},
	})
	if err != nil {
		return fmt.Errorf("could not store playlist %q: %w", name, err)
	}
	return nil
}

// GetPlaylist fetches the raw wire string stored under name. The boolean
// is false when no such playlist exists.
func (s *Store) GetPlaylist(name string) (string, bool, error) {
	out, err := s.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(name)},
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("could not fetch playlist %q: %w", name, err)
	}
	if out.Item == nil {
		return "", false, nil
	}
	attr, ok := out.Item["Wire"]
	if !ok || attr.S == nil {
		return "", false, fmt.Errorf("playlist %q has no wire attribute", name)
	}
	return *attr.S, true, nil
}
