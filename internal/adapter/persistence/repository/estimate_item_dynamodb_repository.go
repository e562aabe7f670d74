package repository

import (
	"context"
	"sort"
	"time"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type lineItem struct {
	ID             string  `dynamodbav:"id"`
	EstimateID     string  `dynamodbav:"estimate_id"`
	Name           string  `dynamodbav:"name"`
	Description    string  `dynamodbav:"description,omitempty"`
	UnitPrice      float64 `dynamodbav:"unit_price"`
	Quantity       int     `dynamodbav:"quantity"`
	IsSelected     bool    `dynamodbav:"is_selected"`
	IsRequired     bool    `dynamodbav:"is_required"`
	Complexity     string  `dynamodbav:"complexity,omitempty"`
	EstimatedHours float64 `dynamodbav:"estimated_hours,omitempty"`
	Position       int     `dynamodbav:"position"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
	TTL            int64   `dynamodbav:"ttl,omitempty"`
}

// EstimateItemDynamoRepository persists EstimateItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI estimate_id-index: estimate_id (hash)
//   - TTL enabled on the "ttl" attribute, copied from the parent estimate
type EstimateItemDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	estimatesTable string
}

var _ interfaces.IEstimateItemRepository = (*EstimateItemDynamoRepository)(nil)

func NewEstimateItemDynamoRepository(ddb *dynamodb.Client, tableName, estimatesTable string) *EstimateItemDynamoRepository {
	return &EstimateItemDynamoRepository{ddb: ddb, tableName: tableName, estimatesTable: estimatesTable}
}

func (r *EstimateItemDynamoRepository) CreateBatch(ctx context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error) {
	if len(items) == 0 {
		return []entities.EstimateItem{}, nil
	}
	parents := make([]string, 0, 1)
	for _, it := range items {
		parents = append(parents, it.EstimateID)
	}
	ttls, err := parentTTLs(ctx, r.ddb, r.estimatesTable, parents)
	if err != nil {
		return nil, err
	}

	avs := make([]map[string]types.AttributeValue, 0, len(items))
	for _, it := range items {
		row := toLineItem(it)
		row.TTL = ttls[it.EstimateID]
		av, err := attributevalue.MarshalMap(row)
		if err != nil {
			return nil, err
		}
		avs = append(avs, av)
	}
	if err := batchPut(ctx, r.ddb, r.tableName, avs); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *EstimateItemDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateItem, error) {
	avs, err := queryIndex(ctx, r.ddb, r.tableName, estimateIndexName, "estimate_id", estimateID, true, 0)
	if err != nil {
		return nil, err
	}
	out := make([]entities.EstimateItem, 0, len(avs))
	for _, av := range avs {
		it, err := unmarshalLineItem(av)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *EstimateItemDynamoRepository) UpdateSelection(ctx context.Context, estimateID string, itemID string, selected bool) (entities.EstimateItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #estimate_id = :estimate_id"),
		UpdateExpression:    aws.String("SET #is_selected = :selected, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
			":selected":    &types.AttributeValueMemberBOOL{Value: selected},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#estimate_id": "estimate_id",
			"#is_selected": "is_selected",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.EstimateItem{}, nil
		}
		return entities.EstimateItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.EstimateItem{}, nil
	}
	return unmarshalLineItem(out.Attributes)
}

func unmarshalLineItem(av map[string]types.AttributeValue) (entities.EstimateItem, error) {
	var it lineItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.EstimateItem{}, err
	}
	return fromLineItem(it), nil
}

func toLineItem(e entities.EstimateItem) lineItem {
	return lineItem{
		ID:             e.ID,
		EstimateID:     e.EstimateID,
		Name:           e.Name,
		Description:    e.Description,
		UnitPrice:      e.UnitPrice,
		Quantity:       e.Quantity,
		IsSelected:     e.IsSelected,
		IsRequired:     e.IsRequired,
		Complexity:     string(e.Complexity),
		EstimatedHours: e.EstimatedHours,
		Position:       e.Position,
		CreatedAt:      formatTime(e.CreatedAt),
		UpdatedAt:      formatTime(e.UpdatedAt),
	}
}

func fromLineItem(it lineItem) entities.EstimateItem {
	return entities.EstimateItem{
		ID:             it.ID,
		EstimateID:     it.EstimateID,
		Name:           it.Name,
		Description:    it.Description,
		UnitPrice:      it.UnitPrice,
		Quantity:       it.Quantity,
		IsSelected:     it.IsSelected,
		IsRequired:     it.IsRequired,
		Complexity:     entities.Complexity(it.Complexity),
		EstimatedHours: it.EstimatedHours,
		Position:       it.Position,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
