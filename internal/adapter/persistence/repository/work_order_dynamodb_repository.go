package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type serviceLineItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

type workOrderItem struct {
	ID           string            `dynamodbav:"id"`
	Services     []serviceLineItem `dynamodbav:"services"`
	Total        string            `dynamodbav:"total"`
	VehicleModel string            `dynamodbav:"vehicle_model"`
	Plate        string            `dynamodbav:"plate"`
	Date         string            `dynamodbav:"date"`
	Status       string            `dynamodbav:"status"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Lines are stored as a snapshot of the catalog entries at save time. The
// total is stored for reporting but recomputed from the lines on read.

type WorkOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoAPI, tableName string) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	o.Total = entities.SumPrices(o.Services)
	av, err := attributevalue.MarshalMap(toWorkOrderItem(o))
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	var it workOrderItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// Update replaces the stored order. It returns a zero WorkOrder when the
// order no longer exists.
func (r *WorkOrderDynamoRepository) Update(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	o.Total = entities.SumPrices(o.Services)
	av, err := attributevalue.MarshalMap(toWorkOrderItem(o))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, o entities.WorkOrder) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(o.ID),
	})
	return err
}

// List orders by date (then id) in the requested direction.
func (r *WorkOrderDynamoRepository) List(ctx context.Context, filter entities.PageFilter) (entities.Page[entities.WorkOrder], error) {
	items, err := scanAll[workOrderItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return entities.Page[entities.WorkOrder]{}, err
	}

	orders := make([]entities.WorkOrder, 0, len(items))
	for _, it := range items {
		orders = append(orders, fromWorkOrderItem(it))
	}

	filter = filter.Normalize()
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if filter.Order == entities.SortDesc {
			a, b = b, a
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})
	return entities.Paginate(orders, filter), nil
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	lines := make([]serviceLineItem, 0, len(o.Services))
	for _, s := range o.Services {
		lines = append(lines, serviceLineItem{ID: s.ID, Name: s.Name, Price: decimalToString(s.Price)})
	}
	return workOrderItem{
		ID:           o.ID,
		Services:     lines,
		Total:        decimalToString(o.Total),
		VehicleModel: o.VehicleModel,
		Plate:        o.Plate,
		Date:         o.Date.UTC().Format(entities.DateLayout),
		Status:       string(o.Status),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	date, _ := time.Parse(entities.DateLayout, it.Date)
	lines := make([]entities.ServiceLine, 0, len(it.Services))
	for _, s := range it.Services {
		lines = append(lines, entities.ServiceLine{ID: s.ID, Name: s.Name, Price: parseDecimal(s.Price)})
	}
	return entities.WorkOrder{
		ID:           it.ID,
		Services:     lines,
		Total:        entities.SumPrices(lines),
		VehicleModel: it.VehicleModel,
		Plate:        it.Plate,
		Date:         date,
		Status:       entities.WorkOrderStatus(it.Status),
	}
}
