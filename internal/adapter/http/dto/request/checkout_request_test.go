package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestInitRequest_ResolveAmount(t *testing.T) {
	valid := map[string]int64{
		"1990":   1990,
		"1990.0": 1990,
		" 15 ":   15,
		"0":      0,
		"-5":     -5,
		"1e3":    1000,
	}
	for raw, want := range valid {
		got, err := InitRequest{Amount: json.RawMessage(raw)}.ResolveAmount()
		if err != nil {
			t.Fatalf("amount %q: unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("amount %q: expected %d, got %d", raw, want, got)
		}
	}

	for _, raw := range []string{"", "null", `"1990"`, "19.9", "true", "{}", "[1]", "9223372036854775808", "9223372036854775807.0", "1e19"} {
		_, err := InitRequest{Amount: json.RawMessage(raw)}.ResolveAmount()
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %q: expected ErrInvalidAmount, got %v", raw, err)
		}
	}
}

func TestInitRequest_ToEntity(t *testing.T) {
	var r InitRequest
	body := `{"amount":1990,"buyOrder":" ORD1 ","sessionId":"S1","returnUrl":"https://x/return"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Amount != 1990 || got.BuyOrder != "ORD1" || got.SessionID != "S1" || got.ReturnURL != "https://x/return" {
		t.Fatalf("unexpected entity: %+v", got)
	}

	var missing InitRequest
	_ = json.Unmarshal([]byte(`{"buyOrder":"ORD1"}`), &missing)
	if _, err := missing.ToEntity(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
