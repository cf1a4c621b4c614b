package repository

import (
	"context"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCentersTableName = "centers"

type centerItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Address    string `dynamodbav:"address"`
	City       string `dynamodbav:"city"`
	PostalCode string `dynamodbav:"postal_code"`
	IsActive   bool   `dynamodbav:"is_active"`
}

// CenterDynamoRepository persists Center entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CenterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICenterRepository = (*CenterDynamoRepository)(nil)

func NewCenterDynamoRepository(ddb *dynamodb.Client) *CenterDynamoRepository {
	return &CenterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CENTERS_TABLE", defaultCentersTableName),
	}
}

func (r *CenterDynamoRepository) Create(ctx context.Context, c entities.Center) (entities.Center, error) {
	av, err := attributevalue.MarshalMap(toCenterItem(c))
	if err != nil {
		return entities.Center{}, err
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
		return entities.Center{}, err
	}
	return c, nil
}

func (r *CenterDynamoRepository) Save(ctx context.Context, c entities.Center) (entities.Center, error) {
	av, err := attributevalue.MarshalMap(toCenterItem(c))
	if err != nil {
		return entities.Center{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Center{}, err
	}
	return c, nil
}

func (r *CenterDynamoRepository) GetByID(ctx context.Context, id entities.CenterID) (entities.Center, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Center{}, err
	}
	if len(out.Item) == 0 {
		return entities.Center{}, nil
	}

	var it centerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Center{}, err
	}
	return fromCenterItem(it), nil
}

func (r *CenterDynamoRepository) List(ctx context.Context) ([]entities.Center, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	centers := make([]entities.Center, 0, len(out.Items))
	for _, raw := range out.Items {
		var it centerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		centers = append(centers, fromCenterItem(it))
	}
	return centers, nil
}

func toCenterItem(c entities.Center) centerItem {
	return centerItem{
		ID:         c.ID.String(),
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		IsActive:   c.IsActive,
	}
}

func fromCenterItem(it centerItem) entities.Center {
	return entities.Center{
		ID:         entities.CenterID(it.ID),
		Name:       it.Name,
		Address:    it.Address,
		City:       it.City,
		PostalCode: it.PostalCode,
		IsActive:   it.IsActive,
	}
}
