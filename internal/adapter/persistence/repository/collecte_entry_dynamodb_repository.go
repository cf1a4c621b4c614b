package repository

import (
	"context"
	"fmt"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEntriesTableName = "collecte_entries"

type entryItemItem struct {
	ProductRef string `dynamodbav:"product_ref"`
	Family     string `dynamodbav:"family"`
	SubFamily  string `dynamodbav:"sub_family"`
	WeightKg   int    `dynamodbav:"weight_kg"`
}

type collecteEntryItem struct {
	ID          string          `dynamodbav:"id"`
	CampaignID  string          `dynamodbav:"campaign_id"`
	StoreID     string          `dynamodbav:"store_id"`
	CenterID    string          `dynamodbav:"center_id"`
	CreatedBy   string          `dynamodbav:"created_by"`
	Status      string          `dynamodbav:"status"`
	Items       []entryItemItem `dynamodbav:"items"`
	CreatedAt   string          `dynamodbav:"created_at"`
	ValidatedAt string          `dynamodbav:"validated_at"`
}

// draftGuardItem reserves the open draft for one (campaign, store, user)
// triple. It shares the table, keyed by a deterministic "draft#" id, and is
// deleted when the entry validates.
type draftGuardItem struct {
	ID      string `dynamodbav:"id"`
	EntryID string `dynamodbav:"entry_id"`
}

func draftGuardID(campaignID entities.CampaignID, storeID entities.StoreID, createdBy entities.UserID) string {
	return fmt.Sprintf("draft#%s#%s#%s", campaignID, storeID, createdBy)
}

// CollecteEntryDynamoRepository persists CollecteEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Entry rows and draft guard rows share the table. CreateDraft writes both
// in one transaction; two volunteers racing to open the same draft resolve
// at the guard's conditional put.

type CollecteEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICollecteEntryRepository = (*CollecteEntryDynamoRepository)(nil)

func NewCollecteEntryDynamoRepository(ddb *dynamodb.Client) *CollecteEntryDynamoRepository {
	return &CollecteEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENTRIES_TABLE", defaultEntriesTableName),
	}
}

func (r *CollecteEntryDynamoRepository) CreateDraft(ctx context.Context, e entities.CollecteEntry) (entities.CollecteEntry, error) {
	entryAV, err := attributevalue.MarshalMap(toCollecteEntryItem(e))
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	guardAV, err := attributevalue.MarshalMap(draftGuardItem{
		ID:      draftGuardID(e.CampaignID, e.StoreID, e.CreatedBy),
		EntryID: e.ID.String(),
	})
	if err != nil {
		return entities.CollecteEntry{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                entryAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                guardAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CollecteEntry{}, interfaces.ErrDuplicateKey
		}
		return entities.CollecteEntry{}, err
	}
	return e, nil
}

// Save persists the entry; once it is validated the draft guard is released
// in the same transaction, so the volunteer may immediately open the next
// draft for the triple.
func (r *CollecteEntryDynamoRepository) Save(ctx context.Context, e entities.CollecteEntry) (entities.CollecteEntry, error) {
	av, err := attributevalue.MarshalMap(toCollecteEntryItem(e))
	if err != nil {
		return entities.CollecteEntry{}, err
	}

	if !e.IsValidated() {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return entities.CollecteEntry{}, err
		}
		return e, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item:      av,
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: draftGuardID(e.CampaignID, e.StoreID, e.CreatedBy)},
				},
			}},
		},
	})
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	return e, nil
}

func (r *CollecteEntryDynamoRepository) GetByID(ctx context.Context, id entities.EntryID) (entities.CollecteEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CollecteEntry{}, nil
	}

	var it collecteEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CollecteEntry{}, err
	}
	return fromCollecteEntryItem(it), nil
}

func (r *CollecteEntryDynamoRepository) FindOpenDraft(ctx context.Context, campaignID entities.CampaignID, storeID entities.StoreID, createdBy entities.UserID) (entities.CollecteEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: draftGuardID(campaignID, storeID, createdBy)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CollecteEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CollecteEntry{}, nil
	}

	var guard draftGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.CollecteEntry{}, err
	}
	return r.GetByID(ctx, entities.EntryID(guard.EntryID))
}

func (r *CollecteEntryDynamoRepository) List(ctx context.Context, filter interfaces.EntryFilter) ([]entities.CollecteEntry, error) {
	// Guard rows have no status attribute; requiring one filters them out.
	filterExpr := "attribute_exists(#status)"
	values := map[string]types.AttributeValue{}
	names := map[string]string{"#status": "status"}

	if filter.CampaignID != "" {
		filterExpr += " AND campaign_id = :cid"
		values[":cid"] = &types.AttributeValueMemberS{Value: filter.CampaignID.String()}
	}
	if filter.StoreID != "" {
		filterExpr += " AND store_id = :sid"
		values[":sid"] = &types.AttributeValueMemberS{Value: filter.StoreID.String()}
	}
	if filter.CreatedBy != "" {
		filterExpr += " AND created_by = :uid"
		values[":uid"] = &types.AttributeValueMemberS{Value: filter.CreatedBy.String()}
	}

	input := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String(filterExpr),
		ExpressionAttributeNames: names,
	}
	if len(values) > 0 {
		input.ExpressionAttributeValues = values
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.CollecteEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it collecteEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromCollecteEntryItem(it))
	}
	return entries, nil
}

func toCollecteEntryItem(e entities.CollecteEntry) collecteEntryItem {
	items := make([]entryItemItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, entryItemItem{
			ProductRef: item.ProductRef,
			Family:     item.Family,
			SubFamily:  item.SubFamily,
			WeightKg:   item.WeightKg,
		})
	}
	return collecteEntryItem{
		ID:          e.ID.String(),
		CampaignID:  e.CampaignID.String(),
		StoreID:     e.StoreID.String(),
		CenterID:    e.CenterID.String(),
		CreatedBy:   e.CreatedBy.String(),
		Status:      string(e.Status),
		Items:       items,
		CreatedAt:   formatTime(e.CreatedAt),
		ValidatedAt: formatTimePtr(e.ValidatedAt),
	}
}

func fromCollecteEntryItem(it collecteEntryItem) entities.CollecteEntry {
	items := make([]entities.EntryItem, 0, len(it.Items))
	for _, item := range it.Items {
		items = append(items, entities.EntryItem{
			ProductRef: item.ProductRef,
			Family:     item.Family,
			SubFamily:  item.SubFamily,
			WeightKg:   item.WeightKg,
		})
	}
	return entities.CollecteEntry{
		ID:          entities.EntryID(it.ID),
		CampaignID:  entities.CampaignID(it.CampaignID),
		StoreID:     entities.StoreID(it.StoreID),
		CenterID:    entities.CenterID(it.CenterID),
		CreatedBy:   entities.UserID(it.CreatedBy),
		Status:      entities.EntryStatus(it.Status),
		Items:       items,
		CreatedAt:   parseTime(it.CreatedAt),
		ValidatedAt: parseTimePtr(it.ValidatedAt),
	}
}
