// Package db stores passage metadata in DynamoDB. It is disabled unless
// MOTIF_DYNAMODB_ENDPOINT is set.
package db

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/model"
)

// maxBatchKeys is DynamoDB's BatchGetItem limit.
const maxBatchKeys = 100

type DB struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

// New connects using the environment configuration. It returns nil, nil
// when no endpoint is configured.
func New() (*DB, error) {
	endpoint := constants.GetDynamoDBEndpoint()
	if endpoint == "" {
		return nil, nil
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetDynamoDBRegion()),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewWithClient(dynamodb.New(sess), constants.GetDynamoDBTable()), nil
}

func NewWithClient(client dynamodbiface.DynamoDBAPI, table string) *DB {
	return &DB{client: client, table: table}
}

func (d *DB) PutPassage(ctx context.Context, p model.Passage) error {
	item, err := dynamodbattribute.MarshalMap(p)
	if err != nil {
		return errors.Wrap(err, "could not marshal passage")
	}
	_, err = d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	return errors.Wrap(err, "error from DynamoDB")
}

func key(id string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String(id)},
	}
}

// GetPassage returns nil without an error when id is unknown.
func (d *DB) GetPassage(ctx context.Context, id string) (*model.Passage, error) {
	out, err := d.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       key(id),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error from DynamoDB")
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var p model.Passage
	if err := dynamodbattribute.UnmarshalMap(out.Item, &p); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal passage")
	}
	return &p, nil
}

// GetPassages looks up many ids at once. Unknown ids are absent from the
// result.
func (d *DB) GetPassages(ctx context.Context, ids []string) (map[string]model.Passage, error) {
	if len(ids) > maxBatchKeys {
		return nil, errors.Errorf("at most %d ids per lookup, got %d", maxBatchKeys, len(ids))
	}
	res := make(map[string]model.Passage)
	if len(ids) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range ids {
		keys = append(keys, key(id))
	}
	out, err := d.client.BatchGetItemWithContext(ctx, &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			d.table: {Keys: keys},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "error from DynamoDB")
	}
	for _, item := range out.Responses[d.table] {
		var p model.Passage
		if err := dynamodbattribute.UnmarshalMap(item, &p); err != nil {
			return nil, errors.Wrap(err, "could not unmarshal passage")
		}
		res[p.Id] = p
	}
	return res, nil
}
