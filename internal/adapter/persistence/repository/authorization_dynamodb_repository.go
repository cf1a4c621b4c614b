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

const defaultAuthorizationsTableName = "campaign_store_authorizations"

type authorizationItem struct {
	CampaignID string `dynamodbav:"campaign_id"`
	StoreID    string `dynamodbav:"store_id"`
	ID         string `dynamodbav:"id"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// AuthorizationDynamoRepository persists CampaignStoreAuthorization entities
// in DynamoDB.
//
// Table requirements:
//   - PK: campaign_id (string)
//   - SK: store_id (string)
//
// The composite key makes pair uniqueness structural: Save is a plain put
// and repeating it can only ever overwrite the single record for the pair,
// which is exactly the idempotence the usecase wants.

type AuthorizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuthorizationRepository = (*AuthorizationDynamoRepository)(nil)

func NewAuthorizationDynamoRepository(ddb *dynamodb.Client) *AuthorizationDynamoRepository {
	return &AuthorizationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUTHORIZATIONS_TABLE", defaultAuthorizationsTableName),
	}
}

func (r *AuthorizationDynamoRepository) Save(ctx context.Context, a entities.CampaignStoreAuthorization) (entities.CampaignStoreAuthorization, error) {
	av, err := attributevalue.MarshalMap(toAuthorizationItem(a))
	if err != nil {
		return entities.CampaignStoreAuthorization{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CampaignStoreAuthorization{}, err
	}
	return a, nil
}

func (r *AuthorizationDynamoRepository) GetByCampaignAndStore(ctx context.Context, campaignID entities.CampaignID, storeID entities.StoreID) (entities.CampaignStoreAuthorization, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"campaign_id": &types.AttributeValueMemberS{Value: campaignID.String()},
			"store_id":    &types.AttributeValueMemberS{Value: storeID.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CampaignStoreAuthorization{}, err
	}
	if len(out.Item) == 0 {
		return entities.CampaignStoreAuthorization{}, nil
	}

	var it authorizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CampaignStoreAuthorization{}, err
	}
	return fromAuthorizationItem(it), nil
}

func (r *AuthorizationDynamoRepository) ListByCampaign(ctx context.Context, campaignID entities.CampaignID) ([]entities.CampaignStoreAuthorization, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("campaign_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: campaignID.String()},
		},
	})
	if err != nil {
		return nil, err
	}

	authorizations := make([]entities.CampaignStoreAuthorization, 0, len(out.Items))
	for _, raw := range out.Items {
		var it authorizationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		authorizations = append(authorizations, fromAuthorizationItem(it))
	}
	return authorizations, nil
}

func toAuthorizationItem(a entities.CampaignStoreAuthorization) authorizationItem {
	return authorizationItem{
		CampaignID: a.CampaignID.String(),
		StoreID:    a.StoreID.String(),
		ID:         a.ID.String(),
		Status:     string(a.Status),
		CreatedAt:  formatTime(a.CreatedAt),
		UpdatedAt:  formatTime(a.UpdatedAt),
	}
}

func fromAuthorizationItem(it authorizationItem) entities.CampaignStoreAuthorization {
	return entities.CampaignStoreAuthorization{
		ID:         entities.AuthorizationID(it.ID),
		CampaignID: entities.CampaignID(it.CampaignID),
		StoreID:    entities.StoreID(it.StoreID),
		Status:     entities.AuthorizationStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
