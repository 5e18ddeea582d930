package response

import (
	"encoding/json"
	"testing"
	"time"

	"checkout_gateway/internal/domain/entities"
)

func TestFromCheckoutSession(t *testing.T) {
	res := FromCheckoutSession(entities.CheckoutSession{Token: "T1", URL: "https://pay/init"})
	if res.Token != "T1" || res.URL != "https://pay/init" || res.RedirectURL != "https://pay/init" {
		t.Fatalf("unexpected response: %+v", res)
	}

	b, _ := json.Marshal(res)
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["redirectUrl"] != "https://pay/init" || body["url"] != "https://pay/init" {
		t.Fatalf("unexpected json: %s", b)
	}
}

func TestFromConfirmationResult(t *testing.T) {
	details := map[string]any{"status": "CANCELED"}
	res := FromConfirmationResult(entities.ConfirmationResult{
		Status:  entities.OutcomeCancelled,
		Message: entities.OutcomeCancelled.Message(),
		Details: details,
	})
	if res.Status != "cancelled" || res.Message == "" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Details["status"] != "CANCELED" {
		t.Fatalf("unexpected details: %+v", res.Details)
	}
}

func TestFromTransactionRecords(t *testing.T) {
	now := time.Now().UTC()
	res := FromTransactionRecords([]entities.TransactionRecord{
		{ID: "r1", Token: "T1", BuyOrder: "ORD1", Stage: entities.StageInitiated, CreatedAt: now},
		{ID: "r2", Token: "T1", BuyOrder: "ORD1", Stage: entities.StageConfirmed, Outcome: entities.OutcomeSuccess, CreatedAt: now},
	})
	if len(res) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res))
	}
	if res[1].Stage != "confirmed" || res[1].Outcome != "success" || !res[1].CreatedAt.Equal(now) {
		t.Fatalf("unexpected record: %+v", res[1])
	}

	if empty := FromTransactionRecords(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
