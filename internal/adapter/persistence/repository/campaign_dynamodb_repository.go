package repository

import (
	"context"
	"strconv"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCampaignsTableName = "campaigns"
	campaignsIDIndex          = "id-index"
)

type campaignItem struct {
	Year               int    `dynamodbav:"year"`
	ID                 string `dynamodbav:"id"`
	Name               string `dynamodbav:"name"`
	StartDate          string `dynamodbav:"start_date"`
	EndDate            string `dynamodbav:"end_date"`
	GracePeriodEndDate string `dynamodbav:"grace_period_end_date"`
	Status             string `dynamodbav:"status"`
	Description        string `dynamodbav:"description"`
	Objectives         string `dynamodbav:"objectives"`
	CreatedBy          string `dynamodbav:"created_by"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	ClosedBy           string `dynamodbav:"closed_by"`
	ClosedAt           string `dynamodbav:"closed_at"`
}

// CampaignDynamoRepository persists Campaign entities in DynamoDB.
//
// Table requirements:
//   - PK: year (number)
//   - GSI id-index: PK id (string)
//
// We purposely use the year as PK to guarantee one campaign per calendar
// year: the second conditional put for the same year fails. Lookups by
// campaign id go through the GSI.

type CampaignDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICampaignRepository = (*CampaignDynamoRepository)(nil)

func NewCampaignDynamoRepository(ddb *dynamodb.Client) *CampaignDynamoRepository {
	return &CampaignDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CAMPAIGNS_TABLE", defaultCampaignsTableName),
	}
}

func (r *CampaignDynamoRepository) Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error) {
	av, err := attributevalue.MarshalMap(toCampaignItem(c))
	if err != nil {
		return entities.Campaign{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#year)"),
		ExpressionAttributeNames: map[string]string{
			"#year": "year",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Campaign{}, interfaces.ErrDuplicateKey
		}
		return entities.Campaign{}, err
	}
	return c, nil
}

func (r *CampaignDynamoRepository) Save(ctx context.Context, c entities.Campaign) (entities.Campaign, error) {
	av, err := attributevalue.MarshalMap(toCampaignItem(c))
	if err != nil {
		return entities.Campaign{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	return c, nil
}

func (r *CampaignDynamoRepository) GetByYear(ctx context.Context, year int) (entities.Campaign, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"year": &types.AttributeValueMemberN{Value: strconv.Itoa(year)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	if len(out.Item) == 0 {
		return entities.Campaign{}, nil
	}

	var it campaignItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Campaign{}, err
	}
	return fromCampaignItem(it), nil
}

func (r *CampaignDynamoRepository) GetByID(ctx context.Context, id entities.CampaignID) (entities.Campaign, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(campaignsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id.String()},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	if len(out.Items) == 0 {
		return entities.Campaign{}, nil
	}

	var it campaignItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Campaign{}, err
	}
	return fromCampaignItem(it), nil
}

func (r *CampaignDynamoRepository) List(ctx context.Context, filter interfaces.CampaignFilter) ([]entities.Campaign, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	filterExpr := ""
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	if filter.Year != 0 {
		filterExpr = "#year = :year"
		values[":year"] = &types.AttributeValueMemberN{Value: strconv.Itoa(filter.Year)}
		names["#year"] = "year"
	}
	if filter.Status != "" {
		if filterExpr != "" {
			filterExpr += " AND "
		}
		filterExpr += "#status = :status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		names["#status"] = "status"
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeValues = values
		input.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, err
	}

	campaigns := make([]entities.Campaign, 0, len(out.Items))
	for _, raw := range out.Items {
		var it campaignItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, fromCampaignItem(it))
	}
	return campaigns, nil
}

func toCampaignItem(c entities.Campaign) campaignItem {
	return campaignItem{
		Year:               c.Year,
		ID:                 c.ID.String(),
		Name:               c.Name,
		StartDate:          formatTime(c.StartDate),
		EndDate:            formatTime(c.EndDate),
		GracePeriodEndDate: formatTime(c.GracePeriodEndDate),
		Status:             string(c.Status),
		Description:        c.Description,
		Objectives:         c.Objectives,
		CreatedBy:          c.CreatedBy.String(),
		CreatedAt:          formatTime(c.CreatedAt),
		UpdatedAt:          formatTime(c.UpdatedAt),
		ClosedBy:           c.ClosedBy.String(),
		ClosedAt:           formatTimePtr(c.ClosedAt),
	}
}

func fromCampaignItem(it campaignItem) entities.Campaign {
	return entities.Campaign{
		ID:                 entities.CampaignID(it.ID),
		Name:               it.Name,
		Year:               it.Year,
		StartDate:          parseTime(it.StartDate),
		EndDate:            parseTime(it.EndDate),
		GracePeriodEndDate: parseTime(it.GracePeriodEndDate),
		Status:             entities.CampaignStatus(it.Status),
		Description:        it.Description,
		Objectives:         it.Objectives,
		CreatedBy:          entities.UserID(it.CreatedBy),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		ClosedBy:           entities.UserID(it.ClosedBy),
		ClosedAt:           parseTimePtr(it.ClosedAt),
	}
}
