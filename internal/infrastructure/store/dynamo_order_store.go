package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/example/storefront/internal/domain/order"
)

// DynamoOrderStore keeps orders in DynamoDB. The table is keyed by order id;
// a user_id GSI serves per-user listings and a fixed-value gsi1pk attribute
// lets the admin listing query all orders sorted by creation time.
type DynamoOrderStore struct {
	client    *dynamodb.Client
	tableName string
}

const (
	dynamoUserIndex = "user_id-index"
	dynamoAllIndex  = "gsi1-index"
)

// dynamoOrder is the DynamoDB item layout. Line items and shipping address
// are stored as JSON strings.
type dynamoOrder struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	Items           string `dynamodbav:"items"`
	TotalAmount     int    `dynamodbav:"total_amount"`
	ShippingAddress string `dynamodbav:"shipping_address"`
	PaymentMethod   string `dynamodbav:"payment_method"`
	PaymentStatus   string `dynamodbav:"payment_status"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	GSI1PK          string `dynamodbav:"gsi1pk"`
}

func NewDynamoOrderStore(client *dynamodb.Client, tableName string) *DynamoOrderStore {
	return &DynamoOrderStore{
		client:    client,
		tableName: tableName,
	}
}

func (s *DynamoOrderStore) CreateOrder(ctx context.Context, o *order.Order) error {
	item, err := marshalDynamoOrder(o)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	return err
}

func (s *DynamoOrderStore) GetOrder(ctx context.Context, id string) (*order.Order, bool) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		log.Printf("[DynamoStore] Error getting order %s: %v", id, err)
		return nil, false
	}
	if out.Item == nil {
		return nil, false
	}

	o, err := unmarshalDynamoOrder(out.Item)
	if err != nil {
		log.Printf("[DynamoStore] Error decoding order %s: %v", id, err)
		return nil, false
	}
	return o, true
}

func (s *DynamoOrderStore) ListOrdersByUser(ctx context.Context, userID string) []*order.Order {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(dynamoUserIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false), // newest first
	})
	if err != nil {
		log.Printf("[DynamoStore] Error listing orders for user %s: %v", userID, err)
		return nil
	}
	return s.decodeItems(out.Items)
}

func (s *DynamoOrderStore) ListOrders(ctx context.Context) []*order.Order {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(dynamoAllIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: "ORDERS"},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		log.Printf("[DynamoStore] Error listing orders: %v", err)
		return nil
	}
	return s.decodeItems(out.Items)
}

func (s *DynamoOrderStore) UpdateOrderStatus(ctx context.Context, id string, status order.Status, updatedAt time.Time) (*order.Order, bool) {
	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, updated_at = :updated"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":updated": &types.AttributeValueMemberS{Value: updatedAt.Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if !errors.As(err, &ccf) {
			log.Printf("[DynamoStore] Error updating order %s status: %v", id, err)
		}
		return nil, false
	}

	o, err := unmarshalDynamoOrder(out.Attributes)
	if err != nil {
		log.Printf("[DynamoStore] Error decoding updated order %s: %v", id, err)
		return nil, false
	}
	return o, true
}

func (s *DynamoOrderStore) decodeItems(items []map[string]types.AttributeValue) []*order.Order {
	var orders []*order.Order
	for _, item := range items {
		o, err := unmarshalDynamoOrder(item)
		if err != nil {
			log.Printf("[DynamoStore] Error decoding order item: %v", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders
}

func marshalDynamoOrder(o *order.Order) (*dynamoOrder, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}
	addressJSON, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return nil, err
	}

	return &dynamoOrder{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           string(itemsJSON),
		TotalAmount:     o.TotalAmount,
		ShippingAddress: string(addressJSON),
		PaymentMethod:   string(o.PaymentMethod),
		PaymentStatus:   string(o.PaymentStatus),
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339Nano),
		GSI1PK:          "ORDERS",
	}, nil
}

func unmarshalDynamoOrder(item map[string]types.AttributeValue) (*order.Order, error) {
	var d dynamoOrder
	if err := attributevalue.UnmarshalMap(item, &d); err != nil {
		return nil, err
	}

	var o order.Order
	o.ID = d.ID
	o.UserID = d.UserID
	o.TotalAmount = d.TotalAmount
	o.PaymentMethod = order.PaymentMethod(d.PaymentMethod)
	o.PaymentStatus = order.PaymentStatus(d.PaymentStatus)
	o.Status = order.Status(d.Status)

	if err := json.Unmarshal([]byte(d.Items), &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(d.ShippingAddress), &o.ShippingAddress); err != nil {
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339Nano, d.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.CreatedAt = createdAt
	o.UpdatedAt = updatedAt
	return &o, nil
}
