package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v4"
)

const (
	dynamoBatchSize       = 25
	dynamoMaxBatchRetries = 5

	sessionIndexName  = "session_id-index"
	estimateIndexName = "estimate_id-index"
)

// dynamoTimeLayout has a fixed width so string order on sort keys matches time order.
const dynamoTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var errParentNotFound = errors.New("parent estimate not found")

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dynamoTimeLayout)
}

func parseTime(s string) time.Time {
	// RFC3339Nano also accepts rows written with trimmed fractions.
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// batchPut writes items in batches of 25, retrying unprocessed items with
// exponential backoff.
func batchPut(ctx context.Context, ddb *dynamodb.Client, table string, items []map[string]types.AttributeValue) error {
	for start := 0; start < len(items); start += dynamoBatchSize {
		end := start + dynamoBatchSize
		if end > len(items) {
			end = len(items)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, av := range items[start:end] {
			requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}
		pending := map[string][]types.WriteRequest{table: requests}

		op := func() error {
			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return backoff.Permanent(err)
			}
			if len(out.UnprocessedItems) == 0 {
				return nil
			}
			pending = out.UnprocessedItems
			return fmt.Errorf("%d unprocessed items in %s", len(out.UnprocessedItems[table]), table)
		}

		policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), dynamoMaxBatchRetries), ctx)
		if err := backoff.Retry(op, policy); err != nil {
			return err
		}
	}
	return nil
}

// parentTTLs loads the ttl of each referenced estimate so child rows expire
// together with it. Finalized estimates have no ttl and yield 0.
func parentTTLs(ctx context.Context, ddb *dynamodb.Client, table string, estimateIDs []string) (map[string]int64, error) {
	ttls := make(map[string]int64, len(estimateIDs))
	for _, id := range estimateIDs {
		if _, ok := ttls[id]; ok {
			continue
		}
		out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ProjectionExpression:     aws.String("#id, #ttl"),
			ExpressionAttributeNames: map[string]string{"#id": "id", "#ttl": "ttl"},
			ConsistentRead:           aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		if len(out.Item) == 0 {
			return nil, fmt.Errorf("%w: %s", errParentNotFound, id)
		}
		var parent struct {
			TTL int64 `dynamodbav:"ttl,omitempty"`
		}
		if err := attributevalue.UnmarshalMap(out.Item, &parent); err != nil {
			return nil, err
		}
		ttls[id] = parent.TTL
	}
	return ttls, nil
}

// removeChildTTL drops the ttl attribute from every row of table that belongs
// to estimateID.
func removeChildTTL(ctx context.Context, ddb *dynamodb.Client, table, estimateID string) error {
	avs, err := queryIndex(ctx, ddb, table, estimateIndexName, "estimate_id", estimateID, true, 0)
	if err != nil {
		return err
	}
	for _, av := range avs {
		_, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                aws.String(table),
			Key:                      map[string]types.AttributeValue{"id": av["id"]},
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			UpdateExpression:         aws.String("REMOVE #ttl"),
			ExpressionAttributeNames: map[string]string{"#id": "id", "#ttl": "ttl"},
		})
		if err != nil && !isConditionFailed(err) {
			return fmt.Errorf("remove ttl in %s: %w", table, err)
		}
	}
	return nil
}

// queryIndex runs a paginated equality query on a global secondary index.
func queryIndex(ctx context.Context, ddb *dynamodb.Client, table, index, attr, value string, forward bool, limit int32) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#k = :v"),
		ExpressionAttributeNames:  map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
		ScanIndexForward:          aws.Bool(forward),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
		out, err := ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		return out.Items, nil
	}

	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}
