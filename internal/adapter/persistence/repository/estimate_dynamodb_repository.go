package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type estimateMetadataItem struct {
	Organization string `dynamodbav:"organization,omitempty"`
	Industry     string `dynamodbav:"industry,omitempty"`
	Budget       string `dynamodbav:"budget,omitempty"`
	Timeline     string `dynamodbav:"timeline,omitempty"`
}

type estimateItem struct {
	ID                  string               `dynamodbav:"id"`
	SessionID           string               `dynamodbav:"session_id"`
	Title               string               `dynamodbav:"title"`
	Description         string               `dynamodbav:"description,omitempty"`
	InitialRequirements string               `dynamodbav:"initial_requirements"`
	Email               string               `dynamodbav:"email,omitempty"`
	Metadata            estimateMetadataItem `dynamodbav:"metadata"`
	Status              string               `dynamodbav:"status"`
	SystemCategoryID    string               `dynamodbav:"system_category_id,omitempty"`
	TotalAmount         float64              `dynamodbav:"total_amount"`
	CreatedAt           string               `dynamodbav:"created_at"`
	UpdatedAt           string               `dynamodbav:"updated_at"`
	ExpiresAt           string               `dynamodbav:"expires_at,omitempty"`
	TTL                 int64                `dynamodbav:"ttl,omitempty"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI session_id-index: session_id (hash), created_at (range)
//   - TTL enabled on the "ttl" attribute (epoch seconds)
//
// DynamoDB removes temporary estimates itself once ttl passes; finalized
// estimates have no ttl attribute. Line item and question rows carry the same
// ttl, and FinalizeByID clears it on every table in childTables.
type EstimateDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	childTables []string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string, childTables ...string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName, childTables: childTables}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}
	return unmarshalEstimate(out.Item)
}

func (r *EstimateDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Estimate, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, sessionIndexName, "session_id", sessionID, false, 1)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(items) == 0 {
		return entities.Estimate{}, nil
	}
	return unmarshalEstimate(items[0])
}

// ListRecent scans the table; the session table only holds short-lived rows.
func (r *EstimateDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Estimate, error) {
	var out []entities.Estimate
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			e, err := unmarshalEstimate(av)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *EstimateDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateCategoryByID(ctx context.Context, id string, categoryID string, status entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #category = :category, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":category":   &types.AttributeValueMemberS{Value: categoryID},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#category":   "system_category_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateTotalByID(ctx context.Context, id string, total float64) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #total = :total, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":total":      &types.AttributeValueMemberN{Value: strconv.FormatFloat(total, 'f', -1, 64)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#total":      "total_amount",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) FinalizeByID(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at REMOVE #expires_at, #ttl"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.EstimateStatusCompleted)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#expires_at": "expires_at",
			"#ttl":        "ttl",
		}
		return expr, vals, names
	})
	if err != nil || e.ID == "" {
		return e, err
	}

	for _, table := range r.childTables {
		if err := removeChildTTL(ctx, r.ddb, table, e.ID); err != nil {
			return entities.Estimate{}, err
		}
	}
	return e, nil
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	return unmarshalEstimate(out.Attributes)
}

func unmarshalEstimate(av map[string]types.AttributeValue) (entities.Estimate, error) {
	var it estimateItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		ID:                  e.ID,
		SessionID:           e.SessionID,
		Title:               e.Title,
		Description:         e.Description,
		InitialRequirements: e.InitialRequirements,
		Email:               e.Email,
		Metadata: estimateMetadataItem{
			Organization: e.Metadata.Organization,
			Industry:     e.Metadata.Industry,
			Budget:       e.Metadata.Budget,
			Timeline:     e.Metadata.Timeline,
		},
		Status:           string(e.Status),
		SystemCategoryID: e.SystemCategoryID,
		TotalAmount:      e.TotalAmount,
		CreatedAt:        formatTime(e.CreatedAt),
		UpdatedAt:        formatTime(e.UpdatedAt),
	}
	if e.ExpiresAt != nil {
		it.ExpiresAt = formatTime(*e.ExpiresAt)
		it.TTL = e.ExpiresAt.Unix()
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	e := entities.Estimate{
		ID:                  it.ID,
		SessionID:           it.SessionID,
		Title:               it.Title,
		Description:         it.Description,
		InitialRequirements: it.InitialRequirements,
		Email:               it.Email,
		Metadata: entities.EstimateMetadata{
			Organization: it.Metadata.Organization,
			Industry:     it.Metadata.Industry,
			Budget:       it.Metadata.Budget,
			Timeline:     it.Metadata.Timeline,
		},
		Status:           entities.EstimateStatus(it.Status),
		SystemCategoryID: it.SystemCategoryID,
		TotalAmount:      it.TotalAmount,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
	if it.ExpiresAt != "" {
		expiresAt := parseTime(it.ExpiresAt)
		e.ExpiresAt = &expiresAt
	}
	return e
}
