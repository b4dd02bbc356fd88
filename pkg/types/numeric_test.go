package types

import (
	"encoding/json"
	"testing"
)

func TestNumericUnmarshal(t *testing.T) {
	var payload struct {
		Amount *Numeric `json:"amount"`
	}

	if err := json.Unmarshal([]byte(`{"amount":250.5}`), &payload); err != nil {
		t.Fatalf("number: %v", err)
	}
	if payload.Amount.Float64() != 250.5 {
		t.Fatalf("expected 250.5 got %v", payload.Amount)
	}

	payload.Amount = nil
	if err := json.Unmarshal([]byte(`{"amount":" 42 "}`), &payload); err != nil {
		t.Fatalf("numeric string: %v", err)
	}
	if payload.Amount.Float64() != 42 {
		t.Fatalf("expected 42 got %v", payload.Amount)
	}

	payload.Amount = nil
	if err := json.Unmarshal([]byte(`{}`), &payload); err != nil {
		t.Fatalf("absent: %v", err)
	}
	if payload.Amount != nil {
		t.Fatalf("absent fields must stay nil")
	}

	if err := json.Unmarshal([]byte(`{"amount":"mucho"}`), &payload); err == nil {
		t.Fatalf("non-numeric strings must be rejected")
	}
}
