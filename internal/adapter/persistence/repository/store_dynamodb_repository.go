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

const (
	defaultStoresTableName = "stores"
	storesCenterIDIndex    = "center_id-index"
)

type storeImageItem struct {
	URL       string `dynamodbav:"url"`
	IsPrimary bool   `dynamodbav:"is_primary"`
}

type storeItem struct {
	ID              string           `dynamodbav:"id"`
	CenterID        string           `dynamodbav:"center_id"`
	Name            string           `dynamodbav:"name"`
	Address         string           `dynamodbav:"address"`
	City            string           `dynamodbav:"city"`
	PostalCode      string           `dynamodbav:"postal_code"`
	Phone           string           `dynamodbav:"phone"`
	ContactName     string           `dynamodbav:"contact_name"`
	Status          string           `dynamodbav:"status"`
	StatusChangedAt string           `dynamodbav:"status_changed_at"`
	StatusChangedBy string           `dynamodbav:"status_changed_by"`
	StatusReason    string           `dynamodbav:"status_reason"`
	Images          []storeImageItem `dynamodbav:"images"`
	CreatedAt       string           `dynamodbav:"created_at"`
	UpdatedAt       string           `dynamodbav:"updated_at"`
}

// addressGuardItem reserves one (center, address, city, postalCode) tuple in
// the same table. Its id is deterministic, so two stores can never claim the
// same address: the second conditional put fails.
type addressGuardItem struct {
	ID      string `dynamodbav:"id"`
	StoreID string `dynamodbav:"store_id"`
}

func addressGuardID(centerID entities.CenterID, address, city, postalCode string) string {
	return fmt.Sprintf("addr#%s#%s", centerID, normalizeAddressKey(address, city, postalCode))
}

// StoreDynamoRepository persists Store entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI center_id-index: PK center_id (string)
//
// Store rows and address guard rows share the table; guard ids carry the
// "addr#" prefix and never collide with UUID store ids.

type StoreDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStoreRepository = (*StoreDynamoRepository)(nil)

func NewStoreDynamoRepository(ddb *dynamodb.Client) *StoreDynamoRepository {
	return &StoreDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STORES_TABLE", defaultStoresTableName),
	}
}

func (r *StoreDynamoRepository) Create(ctx context.Context, s entities.Store) (entities.Store, error) {
	storeAV, err := attributevalue.MarshalMap(toStoreItem(s))
	if err != nil {
		return entities.Store{}, err
	}
	guardAV, err := attributevalue.MarshalMap(addressGuardItem{
		ID:      addressGuardID(s.CenterID, s.Address, s.City, s.PostalCode),
		StoreID: s.ID.String(),
	})
	if err != nil {
		return entities.Store{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                storeAV,
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
			return entities.Store{}, interfaces.ErrDuplicateKey
		}
		return entities.Store{}, err
	}
	return s, nil
}

// Save overwrites the store row. When the address changed it also migrates the
// guard row in the same transaction: the old reservation is released and the
// new one is claimed conditionally, so a concurrent claim on the new address
// surfaces as ErrDuplicateKey.
func (r *StoreDynamoRepository) Save(ctx context.Context, s entities.Store) (entities.Store, error) {
	av, err := attributevalue.MarshalMap(toStoreItem(s))
	if err != nil {
		return entities.Store{}, err
	}

	current, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Store{}, err
	}

	newGuardID := addressGuardID(s.CenterID, s.Address, s.City, s.PostalCode)
	oldGuardID := newGuardID
	if current.ID != "" {
		oldGuardID = addressGuardID(current.CenterID, current.Address, current.City, current.PostalCode)
	}

	if oldGuardID == newGuardID {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return entities.Store{}, err
		}
		return s, nil
	}

	guardAV, err := attributevalue.MarshalMap(addressGuardItem{
		ID:      newGuardID,
		StoreID: s.ID.String(),
	})
	if err != nil {
		return entities.Store{}, err
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
					"id": &types.AttributeValueMemberS{Value: oldGuardID},
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
			return entities.Store{}, interfaces.ErrDuplicateKey
		}
		return entities.Store{}, err
	}
	return s, nil
}

func (r *StoreDynamoRepository) GetByID(ctx context.Context, id entities.StoreID) (entities.Store, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Store{}, err
	}
	if len(out.Item) == 0 {
		return entities.Store{}, nil
	}

	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Store{}, err
	}
	return fromStoreItem(it), nil
}

// GetByCenterAndAddress resolves through the guard row, so it costs two key
// lookups instead of a scan.
func (r *StoreDynamoRepository) GetByCenterAndAddress(ctx context.Context, centerID entities.CenterID, address, city, postalCode string) (entities.Store, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: addressGuardID(centerID, address, city, postalCode)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Store{}, err
	}
	if len(out.Item) == 0 {
		return entities.Store{}, nil
	}

	var guard addressGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Store{}, err
	}
	return r.GetByID(ctx, entities.StoreID(guard.StoreID))
}

func (r *StoreDynamoRepository) ListByCenter(ctx context.Context, centerID entities.CenterID) ([]entities.Store, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(storesCenterIDIndex),
		KeyConditionExpression: aws.String("center_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: centerID.String()},
		},
	})
	if err != nil {
		return nil, err
	}

	stores := make([]entities.Store, 0, len(out.Items))
	for _, raw := range out.Items {
		var it storeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		stores = append(stores, fromStoreItem(it))
	}
	return stores, nil
}

func toStoreItem(s entities.Store) storeItem {
	images := make([]storeImageItem, 0, len(s.Images))
	for _, img := range s.Images {
		images = append(images, storeImageItem{URL: img.URL, IsPrimary: img.IsPrimary})
	}
	return storeItem{
		ID:              s.ID.String(),
		CenterID:        s.CenterID.String(),
		Name:            s.Name,
		Address:         s.Address,
		City:            s.City,
		PostalCode:      s.PostalCode,
		Phone:           s.Phone,
		ContactName:     s.ContactName,
		Status:          string(s.Status),
		StatusChangedAt: formatTimePtr(s.StatusChangedAt),
		StatusChangedBy: s.StatusChangedBy.String(),
		StatusReason:    s.StatusReason,
		Images:          images,
		CreatedAt:       formatTime(s.CreatedAt),
		UpdatedAt:       formatTime(s.UpdatedAt),
	}
}

func fromStoreItem(it storeItem) entities.Store {
	images := make([]entities.StoreImage, 0, len(it.Images))
	for _, img := range it.Images {
		images = append(images, entities.StoreImage{URL: img.URL, IsPrimary: img.IsPrimary})
	}
	return entities.Store{
		ID:              entities.StoreID(it.ID),
		CenterID:        entities.CenterID(it.CenterID),
		Name:            it.Name,
		Address:         it.Address,
		City:            it.City,
		PostalCode:      it.PostalCode,
		Phone:           it.Phone,
		ContactName:     it.ContactName,
		Status:          entities.StoreStatus(it.Status),
		StatusChangedAt: parseTimePtr(it.StatusChangedAt),
		StatusChangedBy: entities.UserID(it.StatusChangedBy),
		StatusReason:    it.StatusReason,
		Images:          images,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
