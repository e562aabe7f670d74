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

type questionItem struct {
	ID          string `dynamodbav:"id"`
	EstimateID  string `dynamodbav:"estimate_id"`
	Question    string `dynamodbav:"question"`
	Description string `dynamodbav:"description,omitempty"`
	Answer      string `dynamodbav:"answer,omitempty"`
	IsAnswered  bool   `dynamodbav:"is_answered"`
	Category    string `dynamodbav:"category,omitempty"`
	TemplateID  string `dynamodbav:"template_id,omitempty"`
	Position    int    `dynamodbav:"position"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	TTL         int64  `dynamodbav:"ttl,omitempty"`
}

// QuestionDynamoRepository persists Question entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI estimate_id-index: estimate_id (hash)
//   - TTL enabled on the "ttl" attribute, copied from the parent estimate
type QuestionDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	estimatesTable string
}

var _ interfaces.IQuestionRepository = (*QuestionDynamoRepository)(nil)

func NewQuestionDynamoRepository(ddb *dynamodb.Client, tableName, estimatesTable string) *QuestionDynamoRepository {
	return &QuestionDynamoRepository{ddb: ddb, tableName: tableName, estimatesTable: estimatesTable}
}

func (r *QuestionDynamoRepository) CreateBatch(ctx context.Context, questions []entities.Question) ([]entities.Question, error) {
	if len(questions) == 0 {
		return []entities.Question{}, nil
	}
	parents := make([]string, 0, 1)
	for _, q := range questions {
		parents = append(parents, q.EstimateID)
	}
	ttls, err := parentTTLs(ctx, r.ddb, r.estimatesTable, parents)
	if err != nil {
		return nil, err
	}

	avs := make([]map[string]types.AttributeValue, 0, len(questions))
	for _, q := range questions {
		row := toQuestionItem(q)
		row.TTL = ttls[q.EstimateID]
		av, err := attributevalue.MarshalMap(row)
		if err != nil {
			return nil, err
		}
		avs = append(avs, av)
	}
	if err := batchPut(ctx, r.ddb, r.tableName, avs); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Question, error) {
	avs, err := queryIndex(ctx, r.ddb, r.tableName, estimateIndexName, "estimate_id", estimateID, true, 0)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Question, 0, len(avs))
	for _, av := range avs {
		q, err := unmarshalQuestion(av)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *QuestionDynamoRepository) Answer(ctx context.Context, estimateID string, questionID string, answer string) (entities.Question, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: questionID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #estimate_id = :estimate_id"),
		UpdateExpression:    aws.String("SET #answer = :answer, #is_answered = :answered, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
			":answer":      &types.AttributeValueMemberS{Value: answer},
			":answered":    &types.AttributeValueMemberBOOL{Value: true},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#estimate_id": "estimate_id",
			"#answer":      "answer",
			"#is_answered": "is_answered",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Question{}, nil
		}
		return entities.Question{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Question{}, nil
	}
	return unmarshalQuestion(out.Attributes)
}

func (r *QuestionDynamoRepository) CountUnanswered(ctx context.Context, estimateID string) (int, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimateIndexName),
		KeyConditionExpression: aws.String("#estimate_id = :estimate_id"),
		FilterExpression:       aws.String("#is_answered = :answered"),
		ExpressionAttributeNames: map[string]string{
			"#estimate_id": "estimate_id",
			"#is_answered": "is_answered",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
			":answered":    &types.AttributeValueMemberBOOL{Value: false},
		},
		Select: types.SelectCount,
	})

	count := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int(page.Count)
	}
	return count, nil
}

func unmarshalQuestion(av map[string]types.AttributeValue) (entities.Question, error) {
	var it questionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Question{}, err
	}
	return fromQuestionItem(it), nil
}

func toQuestionItem(q entities.Question) questionItem {
	return questionItem{
		ID:          q.ID,
		EstimateID:  q.EstimateID,
		Question:    q.Question,
		Description: q.Description,
		Answer:      q.Answer,
		IsAnswered:  q.IsAnswered,
		Category:    q.Category,
		TemplateID:  q.TemplateID,
		Position:    q.Position,
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}
}

func fromQuestionItem(it questionItem) entities.Question {
	return entities.Question{
		ID:          it.ID,
		EstimateID:  it.EstimateID,
		Question:    it.Question,
		Description: it.Description,
		Answer:      it.Answer,
		IsAnswered:  it.IsAnswered,
		Category:    it.Category,
		TemplateID:  it.TemplateID,
		Position:    it.Position,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
