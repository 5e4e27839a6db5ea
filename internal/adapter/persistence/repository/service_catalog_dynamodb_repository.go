package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type catalogServiceItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Price     string `dynamodbav:"price"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ServiceCatalogDynamoRepository persists the service catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceCatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogDynamoRepository)(nil)

func NewServiceCatalogDynamoRepository(ddb DynamoAPI, tableName string) *ServiceCatalogDynamoRepository {
	return &ServiceCatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceCatalogDynamoRepository) Create(ctx context.Context, s entities.ServiceLine) (entities.ServiceLine, error) {
	av, err := attributevalue.MarshalMap(toCatalogServiceItem(s))
	if err != nil {
		return entities.ServiceLine{}, err
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
		return entities.ServiceLine{}, err
	}
	return s, nil
}

func (r *ServiceCatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceLine, error) {
	var it catalogServiceItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ServiceLine{}, err
	}
	return fromCatalogServiceItem(it), nil
}

// List returns services ordered by name.
func (r *ServiceCatalogDynamoRepository) List(ctx context.Context, filter entities.PageFilter) (entities.Page[entities.ServiceLine], error) {
	items, err := scanAll[catalogServiceItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return entities.Page[entities.ServiceLine]{}, err
	}

	services := make([]entities.ServiceLine, 0, len(items))
	for _, it := range items {
		services = append(services, fromCatalogServiceItem(it))
	}

	filter = filter.Normalize()
	sort.SliceStable(services, func(i, j int) bool {
		a, b := services[i], services[j]
		if filter.Order == entities.SortDesc {
			a, b = b, a
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.ID < b.ID
	})
	return entities.Paginate(services, filter), nil
}

func toCatalogServiceItem(s entities.ServiceLine) catalogServiceItem {
	return catalogServiceItem{
		ID:        s.ID,
		Name:      s.Name,
		Price:     decimalToString(s.Price),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCatalogServiceItem(it catalogServiceItem) entities.ServiceLine {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ServiceLine{
		ID:        it.ID,
		Name:      it.Name,
		Price:     parseDecimal(it.Price),
		CreatedAt: createdAt,
	}
}
