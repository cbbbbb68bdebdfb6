package repository

import (
	"context"
	"errors"
	"time"

	"burrow/internal/domain/entities"
	"burrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWarehousesTableName = "warehouses"

type warehouseItem struct {
	ID             string    `dynamodbav:"id"`
	Name           string    `dynamodbav:"name"`
	Address        string    `dynamodbav:"address"`
	Coordinates    []float64 `dynamodbav:"coordinates"`
	Capacity       int       `dynamodbav:"capacity"`
	OperatingHours string    `dynamodbav:"operating_hours"`
	IsActive       bool      `dynamodbav:"is_active"`
	CreatedAt      string    `dynamodbav:"created_at"`
	UpdatedAt      string    `dynamodbav:"updated_at"`
}

// WarehouseDynamoRepository persists Warehouse entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type WarehouseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWarehouseRepository = (*WarehouseDynamoRepository)(nil)

func NewWarehouseDynamoRepository(ddb *dynamodb.Client) *WarehouseDynamoRepository {
	return &WarehouseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WAREHOUSES_TABLE", defaultWarehousesTableName),
	}
}

func (r *WarehouseDynamoRepository) Create(ctx context.Context, w entities.Warehouse) (entities.Warehouse, error) {
	av, err := attributevalue.MarshalMap(toWarehouseItem(w))
	if err != nil {
		return entities.Warehouse{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Warehouse{}, interfaces.ErrDuplicateID
		}
		return entities.Warehouse{}, err
	}
	return w, nil
}

func (r *WarehouseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Warehouse, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Warehouse{}, err
	}
	if len(out.Item) == 0 {
		return entities.Warehouse{}, nil
	}

	var it warehouseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Warehouse{}, err
	}
	return fromWarehouseItem(it), nil
}

func (r *WarehouseDynamoRepository) ListActive(ctx context.Context) ([]entities.Warehouse, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#is_active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#is_active": "is_active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	var warehouses []entities.Warehouse
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it warehouseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			warehouses = append(warehouses, fromWarehouseItem(it))
		}
	}
	return warehouses, nil
}

func (r *WarehouseDynamoRepository) Count(ctx context.Context) (int, error) {
	total := 0
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func toWarehouseItem(w entities.Warehouse) warehouseItem {
	return warehouseItem{
		ID:             w.ID,
		Name:           w.Name,
		Address:        w.Address,
		Coordinates:    []float64{w.Coordinates[0], w.Coordinates[1]},
		Capacity:       w.Capacity,
		OperatingHours: w.OperatingHours,
		IsActive:       w.IsActive,
		CreatedAt:      w.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      w.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWarehouseItem(it warehouseItem) entities.Warehouse {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var coords entities.Coordinates
	for i := 0; i < len(it.Coordinates) && i < 2; i++ {
		coords[i] = it.Coordinates[i]
	}

	return entities.Warehouse{
		ID:             it.ID,
		Name:           it.Name,
		Address:        it.Address,
		Coordinates:    coords,
		Capacity:       it.Capacity,
		OperatingHours: it.OperatingHours,
		IsActive:       it.IsActive,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
