package repository

import (
	"context"
	"encoding/json"
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultTransactionsTableName = "checkout_transactions"
	transactionsBuyOrderIndex    = "buy_order-index"
)

// DynamoAPI is the subset of *dynamodb.Client the repository needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// buy_order is omitted when unknown so the item stays out of the GSI.
type transactionItem struct {
	ID              string `dynamodbav:"id"`
	Token           string `dynamodbav:"token"`
	BuyOrder        string `dynamodbav:"buy_order,omitempty"`
	SessionID       string `dynamodbav:"session_id,omitempty"`
	Amount          int64  `dynamodbav:"amount,omitempty"`
	Stage           string `dynamodbav:"stage"`
	Outcome         string `dynamodbav:"outcome,omitempty"`
	ProcessorStatus string `dynamodbav:"processor_status,omitempty"`
	Channel         string `dynamodbav:"channel,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	DetailsRaw      string `dynamodbav:"details,omitempty"`
}

// TransactionDynamoRepository persists TransactionRecord entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buy_order-index (PK: buy_order)

type TransactionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITransactionRecordRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb DynamoAPI, tableName string) *TransactionDynamoRepository {
	if tableName == "" {
		tableName = DefaultTransactionsTableName
	}
	return &TransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
	it, err := toTransactionItem(rec)
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TransactionRecord{}, err
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
		return entities.TransactionRecord{}, err
	}
	return rec, nil
}

func (r *TransactionDynamoRepository) ListByBuyOrder(ctx context.Context, buyOrder string) ([]entities.TransactionRecord, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsBuyOrderIndex),
		KeyConditionExpression: aws.String("buy_order = :bo"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bo": &types.AttributeValueMemberS{Value: buyOrder},
		},
	})

	items := make([]entities.TransactionRecord, 0)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it transactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromTransactionItem(it))
		}
	}
	return items, nil
}

func toTransactionItem(rec entities.TransactionRecord) (transactionItem, error) {
	it := transactionItem{
		ID:              rec.ID,
		Token:           rec.Token,
		BuyOrder:        rec.BuyOrder,
		SessionID:       rec.SessionID,
		Amount:          rec.Amount,
		Stage:           string(rec.Stage),
		Outcome:         string(rec.Outcome),
		ProcessorStatus: rec.ProcessorStatus,
		Channel:         string(rec.Channel),
		CreatedAt:       rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(rec.Details) > 0 {
		b, err := json.Marshal(rec.Details)
		if err != nil {
			return transactionItem{}, err
		}
		it.DetailsRaw = string(b)
	}
	return it, nil
}

func fromTransactionItem(it transactionItem) entities.TransactionRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	rec := entities.TransactionRecord{
		ID:              it.ID,
		Token:           it.Token,
		BuyOrder:        it.BuyOrder,
		SessionID:       it.SessionID,
		Amount:          it.Amount,
		Stage:           entities.TransactionStage(it.Stage),
		Outcome:         entities.TransactionOutcome(it.Outcome),
		ProcessorStatus: it.ProcessorStatus,
		Channel:         entities.ClientChannel(it.Channel),
		CreatedAt:       createdAt,
	}
	if it.DetailsRaw != "" {
		details := map[string]any{}
		if err := json.Unmarshal([]byte(it.DetailsRaw), &details); err == nil {
			rec.Details = details
		}
	}
	return rec
}
