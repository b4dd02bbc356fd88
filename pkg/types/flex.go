package types

import (
	"encoding/json"
	"strconv"

	pkgerrors "github.com/dsalazar-dev/restoops-backend/pkg/errors"
)

// FlexString accepts a JSON string or number and stores it as a string. The
// dashboard sends phone and folio fields either way depending on the widget.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid string value")
	}
	switch v := raw.(type) {
	case nil:
		*s = ""
	case string:
		*s = FlexString(v)
	case float64:
		*s = FlexString(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "value must be a string or number")
	}
	return nil
}

func (s FlexString) String() string {
	return string(s)
}
