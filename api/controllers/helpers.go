package controllers

import (
	"strings"

	"github.com/dsalazar-dev/restoops-backend/internal/records"
	"github.com/dsalazar-dev/restoops-backend/pkg/types"
)

// Sparse field-map builders. A key only enters the map when the caller sent
// it, so updates never null out absent fields. String setters skip empty
// values; the AllowEmpty variants let an update clear a field.

func setString(fields records.Fields, key string, value *string) {
	if value == nil {
		return
	}
	if trimmed := strings.TrimSpace(*value); trimmed != "" {
		fields[key] = trimmed
	}
}

func setStringAllowEmpty(fields records.Fields, key string, value *string) {
	if value != nil {
		fields[key] = strings.TrimSpace(*value)
	}
}

func setFlexString(fields records.Fields, key string, value *types.FlexString) {
	if value == nil {
		return
	}
	if trimmed := strings.TrimSpace(value.String()); trimmed != "" {
		fields[key] = trimmed
	}
}

func setFlexStringAllowEmpty(fields records.Fields, key string, value *types.FlexString) {
	if value != nil {
		fields[key] = strings.TrimSpace(value.String())
	}
}

func setNumber(fields records.Fields, key string, value *types.Numeric) {
	if value != nil {
		fields[key] = value.Float64()
	}
}

func setBool(fields records.Fields, key string, value *bool) {
	if value != nil {
		fields[key] = *value
	}
}

func setStringList(fields records.Fields, key string, value []string) {
	if len(value) > 0 {
		fields[key] = value
	}
}

// deleteRequest is the shared body shape for record deletion.
type deleteRequest struct {
	RecordID string `json:"recordId"`
}
