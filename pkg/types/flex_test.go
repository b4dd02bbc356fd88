package types

import (
	"encoding/json"
	"testing"
)

func TestFlexStringUnmarshal(t *testing.T) {
	var payload struct {
		Telefono FlexString `json:"Telefono"`
	}

	if err := json.Unmarshal([]byte(`{"Telefono":"555-12-34"}`), &payload); err != nil {
		t.Fatalf("string value: %v", err)
	}
	if payload.Telefono.String() != "555-12-34" {
		t.Fatalf("unexpected value %q", payload.Telefono)
	}

	if err := json.Unmarshal([]byte(`{"Telefono":5512345678}`), &payload); err != nil {
		t.Fatalf("numeric value: %v", err)
	}
	if payload.Telefono.String() != "5512345678" {
		t.Fatalf("unexpected coerced value %q", payload.Telefono)
	}

	if err := json.Unmarshal([]byte(`{"Telefono":true}`), &payload); err == nil {
		t.Fatalf("expected error for boolean value")
	}
}
