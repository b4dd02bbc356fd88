package airtable

import (
	"fmt"
	"net/url"
	"strconv"
)

const pageSize = 100

// Sort orders a listing by one field.
type Sort struct {
	Field     string
	Direction string
}

// ListOptions narrows a List call. The zero value fetches everything.
type ListOptions struct {
	Sort            []Sort
	Fields          []string
	FilterByFormula string
	MaxRecords      int
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(pageSize))
	for i, s := range o.Sort {
		q.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		direction := s.Direction
		if direction == "" {
			direction = "asc"
		}
		q.Set(fmt.Sprintf("sort[%d][direction]", i), direction)
	}
	for _, f := range o.Fields {
		q.Add("fields[]", f)
	}
	if o.FilterByFormula != "" {
		q.Set("filterByFormula", o.FilterByFormula)
	}
	if o.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(o.MaxRecords))
	}
	return q
}
