//go:generate mockgen -source=transaction_record_repository_interface.go -destination=mocks/transaction_record_repository_interface.go -package=mock_interfaces

package interfaces

import (
	"context"

	"checkout_gateway/internal/domain/entities"
)

// ITransactionRecordRepository abstracts DynamoDB persistence for the checkout audit trail.

type ITransactionRecordRepository interface {
	Create(ctx context.Context, r entities.TransactionRecord) (entities.TransactionRecord, error)
	ListByBuyOrder(ctx context.Context, buyOrder string) ([]entities.TransactionRecord, error)
}
