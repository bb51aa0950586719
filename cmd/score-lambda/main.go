// Command score-lambda scores match-report documents dropped into S3 and
// writes the per-player score rows to DynamoDB. One invocation may carry
// several object records; each document's failure is isolated.
package main

import (
	"context"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/hfwleague/fantasy-soccer-backends/internal/pipeline"
	"github.com/hfwleague/fantasy-soccer-backends/internal/store"
)

func mustenv(log *zap.Logger, k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatal("missing env", zap.String("key", k))
	}
	return v
}

type app struct {
	log    *zap.Logger
	s3c    *s3.Client
	ddb    *dynamodb.Client
	table  string
	scorer *pipeline.Scorer
}

func (a *app) handler(ctx context.Context, ev events.S3Event) error {
	failed := 0
	for _, rec := range ev.Records {
		bucket := rec.S3.Bucket.Name
		key := rec.S3.Object.Key
		if err := a.scoreObject(ctx, bucket, key); err != nil {
			a.log.Error("score object",
				zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
			failed++
			continue
		}
		a.log.Info("scored object", zap.String("bucket", bucket), zap.String("key", key))
	}
	if failed == len(ev.Records) && failed > 0 {
		return errors.Newf("all %d object(s) failed", failed)
	}
	return nil
}

func (a *app) scoreObject(ctx context.Context, bucket, key string) error {
	out, err := a.s3c.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrap(err, "get object")
	}
	defer out.Body.Close()
	body, err := io.ReadAll(out.Body)
	if err != nil {
		return errors.Wrap(err, "read object body")
	}

	rows, err := a.scorer.ScoreMatch(string(body))
	if err != nil {
		return err
	}
	return store.PutScoreRows(ctx, a.ddb, a.table, key, rows)
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal("load aws config", zap.Error(err))
	}

	a := &app{
		log:    log,
		s3c:    s3.NewFromConfig(cfg),
		ddb:    dynamodb.NewFromConfig(cfg),
		table:  mustenv(log, "SCORES_TABLE_NAME"),
		scorer: pipeline.New(),
	}
	lambda.Start(a.handler)
}
