package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"burrow/internal/domain/entities"
	"burrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRequestsTableName = "requests"

type addressItem struct {
	Line1         string `dynamodbav:"line1"`
	Line2         string `dynamodbav:"line2,omitempty"`
	City          string `dynamodbav:"city"`
	State         string `dynamodbav:"state"`
	Pincode       string `dynamodbav:"pincode"`
	Landmark      string `dynamodbav:"landmark,omitempty"`
	ContactNumber string `dynamodbav:"contact_number,omitempty"`
}

type historyItem struct {
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

type paymentItem struct {
	BaseHandlingFee float64 `dynamodbav:"base_handling_fee"`
	StorageFee      float64 `dynamodbav:"storage_fee"`
	DeliveryCharge  float64 `dynamodbav:"delivery_charge"`
	GST             float64 `dynamodbav:"gst"`
	TotalAmount     float64 `dynamodbav:"total_amount"`
	PaymentMethod   string  `dynamodbav:"payment_method"`
	PaymentStatus   string  `dynamodbav:"payment_status"`
}

type requestItem struct {
	ID                    string        `dynamodbav:"id"`
	OwnerID               string        `dynamodbav:"owner_id"`
	OrderNumber           string        `dynamodbav:"order_number"`
	Platform              string        `dynamodbav:"platform"`
	ProductDescription    string        `dynamodbav:"product_description"`
	WarehouseID           string        `dynamodbav:"warehouse_id"`
	OriginalETA           string        `dynamodbav:"original_eta"`
	ScheduledDeliveryDate string        `dynamodbav:"scheduled_delivery_date"`
	DeliveryTimeSlot      string        `dynamodbav:"delivery_time_slot"`
	DestinationAddress    addressItem   `dynamodbav:"destination_address"`
	Notes                 string        `dynamodbav:"notes,omitempty"`
	ReceiptURL            string        `dynamodbav:"receipt_url,omitempty"`
	Status                string        `dynamodbav:"status"`
	StatusHistory         []historyItem `dynamodbav:"status_history"`
	PaymentDetails        paymentItem   `dynamodbav:"payment_details"`
	Revision              int64         `dynamodbav:"revision"`
	CreatedAt             string        `dynamodbav:"created_at"`
	UpdatedAt             string        `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists DeliveryRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole aggregate (history log and payment snapshot included) lives in
// one item, so every save is a single-document atomic replace guarded by the
// revision condition.
type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.DeliveryRequest) (entities.DeliveryRequest, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.DeliveryRequest{}, err
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
			return entities.DeliveryRequest{}, interfaces.ErrDuplicateID
		}
		return entities.DeliveryRequest{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.DeliveryRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DeliveryRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.DeliveryRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DeliveryRequest{}, err
	}
	return fromRequestItem(it), nil
}

// List scans the table applying the owner/status filter server-side.
// TODO: switch the owner filter to a Query on an owner_id-index GSI once the
// table definition gains it; a full scan is fine at concierge volumes.
func (r *RequestDynamoRepository) List(ctx context.Context, filter interfaces.RequestFilter) ([]entities.DeliveryRequest, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.OwnerID != "" {
		conds = append(conds, "#owner_id = :owner_id")
		names["#owner_id"] = "owner_id"
		values[":owner_id"] = &types.AttributeValueMemberS{Value: filter.OwnerID}
	}
	if filter.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: filter.Status}
	}
	if len(conds) > 0 {
		input.FilterExpression = aws.String(strings.Join(conds, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var requests []entities.DeliveryRequest
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it requestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			requests = append(requests, fromRequestItem(it))
		}
	}
	return requests, nil
}

// Save replaces the stored aggregate, conditional on the revision the caller
// read. A stale revision loses the race and reports ErrRevisionConflict.
func (r *RequestDynamoRepository) Save(ctx context.Context, req entities.DeliveryRequest) (entities.DeliveryRequest, error) {
	expected := req.Revision
	req.Revision = expected + 1

	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.DeliveryRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #revision = :revision"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#revision": "revision",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":revision": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DeliveryRequest{}, interfaces.ErrRevisionConflict
		}
		return entities.DeliveryRequest{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toRequestItem(r entities.DeliveryRequest) requestItem {
	history := make([]historyItem, 0, len(r.StatusHistory))
	for _, h := range r.StatusHistory {
		history = append(history, historyItem{
			Status:    string(h.Status),
			Timestamp: h.Timestamp.UTC().Format(time.RFC3339Nano),
			Notes:     h.Notes,
		})
	}

	return requestItem{
		ID:                    r.ID,
		OwnerID:               r.OwnerID,
		OrderNumber:           r.OrderNumber,
		Platform:              r.Platform,
		ProductDescription:    r.ProductDescription,
		WarehouseID:           r.WarehouseID,
		OriginalETA:           r.OriginalETA.UTC().Format(time.RFC3339Nano),
		ScheduledDeliveryDate: r.ScheduledDeliveryDate.UTC().Format(time.RFC3339Nano),
		DeliveryTimeSlot:      r.DeliveryTimeSlot,
		DestinationAddress: addressItem{
			Line1:         r.DestinationAddress.Line1,
			Line2:         r.DestinationAddress.Line2,
			City:          r.DestinationAddress.City,
			State:         r.DestinationAddress.State,
			Pincode:       r.DestinationAddress.Pincode,
			Landmark:      r.DestinationAddress.Landmark,
			ContactNumber: r.DestinationAddress.ContactNumber,
		},
		Notes:      r.Notes,
		ReceiptURL: r.ReceiptURL,
		Status:     string(r.Status),
		StatusHistory: history,
		PaymentDetails: paymentItem{
			BaseHandlingFee: r.PaymentDetails.BaseHandlingFee,
			StorageFee:      r.PaymentDetails.StorageFee,
			DeliveryCharge:  r.PaymentDetails.DeliveryCharge,
			GST:             r.PaymentDetails.GST,
			TotalAmount:     r.PaymentDetails.TotalAmount,
			PaymentMethod:   r.PaymentDetails.PaymentMethod,
			PaymentStatus:   r.PaymentDetails.PaymentStatus,
		},
		Revision:  r.Revision,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRequestItem(it requestItem) entities.DeliveryRequest {
	history := make([]entities.StatusHistoryEntry, 0, len(it.StatusHistory))
	for _, h := range it.StatusHistory {
		ts, _ := time.Parse(time.RFC3339Nano, h.Timestamp)
		history = append(history, entities.StatusHistoryEntry{
			Status:    entities.Status(h.Status),
			Timestamp: ts,
			Notes:     h.Notes,
		})
	}

	originalETA, _ := time.Parse(time.RFC3339Nano, it.OriginalETA)
	scheduled, _ := time.Parse(time.RFC3339Nano, it.ScheduledDeliveryDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.DeliveryRequest{
		ID:                    it.ID,
		OwnerID:               it.OwnerID,
		OrderNumber:           it.OrderNumber,
		Platform:              it.Platform,
		ProductDescription:    it.ProductDescription,
		WarehouseID:           it.WarehouseID,
		OriginalETA:           originalETA,
		ScheduledDeliveryDate: scheduled,
		DeliveryTimeSlot:      it.DeliveryTimeSlot,
		DestinationAddress: entities.Address{
			Line1:         it.DestinationAddress.Line1,
			Line2:         it.DestinationAddress.Line2,
			City:          it.DestinationAddress.City,
			State:         it.DestinationAddress.State,
			Pincode:       it.DestinationAddress.Pincode,
			Landmark:      it.DestinationAddress.Landmark,
			ContactNumber: it.DestinationAddress.ContactNumber,
		},
		Notes:         it.Notes,
		ReceiptURL:    it.ReceiptURL,
		Status:        entities.Status(it.Status),
		StatusHistory: history,
		PaymentDetails: entities.PaymentDetails{
			BaseHandlingFee: it.PaymentDetails.BaseHandlingFee,
			StorageFee:      it.PaymentDetails.StorageFee,
			DeliveryCharge:  it.PaymentDetails.DeliveryCharge,
			GST:             it.PaymentDetails.GST,
			TotalAmount:     it.PaymentDetails.TotalAmount,
			PaymentMethod:   it.PaymentDetails.PaymentMethod,
			PaymentStatus:   it.PaymentDetails.PaymentStatus,
		},
		Revision:  it.Revision,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
