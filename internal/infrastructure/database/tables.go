package database

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EnsureTables creates the tables the service needs when they do not
// exist yet. Useful against DynamoDB Local; in managed environments the
// tables are expected to be provisioned ahead of time, in which case
// this is a no-op.
func EnsureTables(ctx context.Context, client *dynamodb.Client) error {
	tables := []string{
		getenvDefault("REQUESTS_TABLE", "requests"),
		getenvDefault("WAREHOUSES_TABLE", "warehouses"),
	}

	for _, table := range tables {
		if err := ensureTable(ctx, client, table); err != nil {
			return err
		}
	}
	return nil
}

func ensureTable(ctx context.Context, client *dynamodb.Client, name string) error {
	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return err
	}

	log.Printf("[database] created table %s, waiting until active", name)
	waiter := dynamodb.NewTableExistsWaiter(client)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, 2*time.Minute)
}
