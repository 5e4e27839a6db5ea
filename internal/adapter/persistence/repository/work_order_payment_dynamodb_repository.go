package repository

import (
	"context"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsWorkOrderIDIndex = "work_order_id-index"

type workOrderPaymentItem struct {
	ID                 string `dynamodbav:"id"`
	WorkOrderID        string `dynamodbav:"work_order_id"`
	Amount             string `dynamodbav:"amount"`
	Date               string `dynamodbav:"date"`
	Status             string `dynamodbav:"status"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// WorkOrderPaymentDynamoRepository persists WorkOrderPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)

type WorkOrderPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorkOrderPaymentRepository = (*WorkOrderPaymentDynamoRepository)(nil)

func NewWorkOrderPaymentDynamoRepository(ddb DynamoAPI, tableName string) *WorkOrderPaymentDynamoRepository {
	return &WorkOrderPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkOrderPaymentDynamoRepository) Create(ctx context.Context, p entities.WorkOrderPayment) (entities.WorkOrderPayment, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderPaymentItem(p))
	if err != nil {
		return entities.WorkOrderPayment{}, err
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
		return entities.WorkOrderPayment{}, err
	}
	return p, nil
}

func (r *WorkOrderPaymentDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkOrderPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workOrderPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkOrderPaymentItem(it))
	}
	return items, nil
}

func toWorkOrderPaymentItem(p entities.WorkOrderPayment) workOrderPaymentItem {
	return workOrderPaymentItem{
		ID:                 p.ID,
		WorkOrderID:        p.WorkOrderID,
		Amount:             decimalToString(p.Amount),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromWorkOrderPaymentItem(it workOrderPaymentItem) entities.WorkOrderPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.WorkOrderPayment{
		ID:                 it.ID,
		WorkOrderID:        it.WorkOrderID,
		Amount:             parseDecimal(it.Amount),
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
