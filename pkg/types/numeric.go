package types

import (
	"encoding/json"
	"strconv"
	"strings"

	pkgerrors "github.com/dsalazar-dev/restoops-backend/pkg/errors"
)

// Numeric accepts a JSON number or a numeric string. Amount and quantity
// fields arrive as strings from some dashboard form widgets.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid numeric value")
	}
	switch v := raw.(type) {
	case nil:
		*n = 0
	case float64:
		*n = Numeric(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "value must be numeric")
		}
		*n = Numeric(parsed)
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "value must be a number or numeric string")
	}
	return nil
}

func (n Numeric) Float64() float64 {
	return float64(n)
}
