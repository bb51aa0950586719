// Package store persists computed score tables to DynamoDB. The core
// pipeline keeps nothing between documents; this is the optional backend
// collaborators write through.
package store

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"

	"github.com/hfwleague/fantasy-soccer-backends/internal/pipeline"
)

// DynamoDBAPI is the slice of the DynamoDB client the store needs.
type DynamoDBAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// scoreItem: PK=MatchID, SK=Team#Player.
type scoreItem struct {
	MatchID    string `dynamodbav:"MatchID"`
	TeamPlayer string `dynamodbav:"TeamPlayer"`
	Player     string `dynamodbav:"Player"`
	Team       string `dynamodbav:"Team"`
	Pos        string `dynamodbav:"Pos"`
	Score      int    `dynamodbav:"Score"`
	UpdatedAt  int64  `dynamodbav:"UpdatedAt"`
}

// PutScoreRows writes one match's score table in batches of 25 with
// retries for UnprocessedItems.
func PutScoreRows(ctx context.Context, ddb DynamoDBAPI, tableName, matchID string, rows []pipeline.ScoreRow) error {
	if len(rows) == 0 {
		return nil
	}

	const maxBatch = 25
	now := time.Now().Unix()

	for i := 0; i < len(rows); i += maxBatch {
		end := i + maxBatch
		if end > len(rows) {
			end = len(rows)
		}

		reqs := make([]types.WriteRequest, 0, end-i)
		for _, r := range rows[i:end] {
			if r.Player == "" {
				continue
			}
			item, err := attributevalue.MarshalMap(scoreItem{
				MatchID:    matchID,
				TeamPlayer: r.Team + "#" + r.Player,
				Player:     r.Player,
				Team:       r.Team,
				Pos:        string(r.Pos),
				Score:      r.Score,
				UpdatedAt:  now,
			})
			if err != nil {
				return errors.Wrapf(err, "marshal score row %q", r.Player)
			}
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(reqs) == 0 {
			continue
		}
		if err := batchWriteWithRetry(ctx, ddb, tableName, reqs); err != nil {
			return errors.Wrap(err, "batch write score rows")
		}
	}
	return nil
}

func batchWriteWithRetry(ctx context.Context, ddb DynamoDBAPI, tableName string, reqs []types.WriteRequest) error {
	unprocessed := map[string][]types.WriteRequest{tableName: reqs}
	backoff := 100 * time.Millisecond

	for attempt := 0; attempt < 8 && len(unprocessed) > 0; attempt++ {
		out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: unprocessed,
		})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems) == 0 {
			return nil
		}
		unprocessed = out.UnprocessedItems
		time.Sleep(backoff)
		backoff *= 2
		if backoff > 3*time.Second {
			backoff = 3 * time.Second
		}
	}
	if len(unprocessed) > 0 {
		return errors.New("unprocessed items remain after retries")
	}
	return nil
}
