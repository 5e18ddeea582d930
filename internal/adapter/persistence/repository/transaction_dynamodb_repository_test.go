package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout_gateway/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	puts    []*dynamodb.PutItemInput
	putErr  error
	queries []*dynamodb.QueryInput
	pages   []*dynamodb.QueryOutput
	qErr    error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.qErr != nil {
		return nil, f.qErr
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func sampleRecord() entities.TransactionRecord {
	return entities.TransactionRecord{
		ID:              "rec-1",
		Token:           "T1",
		BuyOrder:        "ORD1",
		SessionID:       "S1",
		Amount:          1990,
		Stage:           entities.StageConfirmed,
		Outcome:         entities.OutcomeSuccess,
		ProcessorStatus: "AUTHORIZED",
		CreatedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Details:         map[string]any{"status": "AUTHORIZED", "authorization_code": "1213"},
	}
}

func TestTransactionDynamoRepository_Create(t *testing.T) {
	t.Run("Writes the item conditionally", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewTransactionDynamoRepository(ddb, "")

		got, err := repo.Create(context.Background(), sampleRecord())
		require.NoError(t, err)
		assert.Equal(t, "rec-1", got.ID)

		require.Len(t, ddb.puts, 1)
		in := ddb.puts[0]
		assert.Equal(t, DefaultTransactionsTableName, aws.ToString(in.TableName))
		assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))

		var it transactionItem
		require.NoError(t, attributevalue.UnmarshalMap(in.Item, &it))
		assert.Equal(t, "ORD1", it.BuyOrder)
		assert.Equal(t, "2026-03-01T12:00:00Z", it.CreatedAt)
		assert.JSONEq(t, `{"status":"AUTHORIZED","authorization_code":"1213"}`, it.DetailsRaw)
	})

	t.Run("Record without buy order stays out of the index", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewTransactionDynamoRepository(ddb, "custom")

		rec := sampleRecord()
		rec.BuyOrder = ""
		_, err := repo.Create(context.Background(), rec)
		require.NoError(t, err)

		assert.Equal(t, "custom", aws.ToString(ddb.puts[0].TableName))
		assert.NotContains(t, ddb.puts[0].Item, "buy_order")
	})

	t.Run("Propagates errors", func(t *testing.T) {
		repo := NewTransactionDynamoRepository(&fakeDynamo{putErr: errors.New("throttled")}, "")
		_, err := repo.Create(context.Background(), sampleRecord())
		assert.EqualError(t, err, "throttled")
	})
}

func TestTransactionDynamoRepository_ListByBuyOrder(t *testing.T) {
	item, err := toTransactionItem(sampleRecord())
	require.NoError(t, err)
	av, err := attributevalue.MarshalMap(item)
	require.NoError(t, err)

	t.Run("Follows pagination", func(t *testing.T) {
		ddb := &fakeDynamo{pages: []*dynamodb.QueryOutput{
			{Items: []map[string]types.AttributeValue{av}, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "rec-1"}}},
			{Items: []map[string]types.AttributeValue{av}},
		}}
		repo := NewTransactionDynamoRepository(ddb, "")

		got, err := repo.ListByBuyOrder(context.Background(), "ORD1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, sampleRecord().CreatedAt, got[0].CreatedAt)
		assert.Equal(t, entities.OutcomeSuccess, got[0].Outcome)
		assert.Equal(t, "1213", got[0].Details["authorization_code"])

		require.Len(t, ddb.queries, 2)
		assert.Equal(t, transactionsBuyOrderIndex, aws.ToString(ddb.queries[0].IndexName))
		assert.NotNil(t, ddb.queries[1].ExclusiveStartKey)
	})

	t.Run("Empty result", func(t *testing.T) {
		ddb := &fakeDynamo{pages: []*dynamodb.QueryOutput{{}}}
		got, err := NewTransactionDynamoRepository(ddb, "").ListByBuyOrder(context.Background(), "ORD9")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Query error", func(t *testing.T) {
		ddb := &fakeDynamo{qErr: errors.New("boom")}
		_, err := NewTransactionDynamoRepository(ddb, "").ListByBuyOrder(context.Background(), "ORD1")
		assert.Error(t, err)
	})
}
