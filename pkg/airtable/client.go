package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dsalazar-dev/restoops-backend/pkg/config"
	pkgerrors "github.com/dsalazar-dev/restoops-backend/pkg/errors"
	"github.com/dsalazar-dev/restoops-backend/pkg/logger"
)

var (
	errAPIKeyRequired = errors.New("airtable api key is required")
	errBaseIDRequired = errors.New("airtable base id is required")
	errLoggerRequired = errors.New("airtable logger is required")
)

// Client wraps the Airtable REST API with centralized auth, logging, and
// error mapping. It never logs credentials or field values.
type Client struct {
	httpClient *http.Client
	baseURL    string
	baseID     string
	apiKey     string
	logger     *logger.Logger
}

// NewClient validates the credentials and builds the record-store client.
func NewClient(cfg config.AirtableConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}
	baseID := strings.TrimSpace(cfg.BaseID)
	if baseID == "" {
		return nil, errBaseIDRequired
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		baseID:     baseID,
		apiKey:     apiKey,
		logger:     logg,
	}

	logg.Info(context.Background(), "airtable client initialized")
	return c, nil
}

// Record is one row of a collection: a store-assigned id plus a schema-less
// field map.
type Record struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime,omitempty"`
	Fields      map[string]any `json:"fields"`
}

// DeletedRecord acknowledges a delete.
type DeletedRecord struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// APIError is a non-2xx response from the record store.
type APIError struct {
	Status  int
	Type    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("airtable: %s (%d %s)", e.Message, e.Status, e.Type)
	}
	return fmt.Sprintf("airtable: status %d %s", e.Status, e.Type)
}

func (e *APIError) StatusCode() int { return e.Status }

func (e *APIError) ErrorType() string { return e.Type }

// List fetches every record of a table, following pagination offsets until
// the store stops returning one.
func (c *Client) List(ctx context.Context, table string, opts ListOptions) ([]Record, error) {
	var records []Record
	offset := ""
	pages := 0
	for {
		query := opts.query()
		if offset != "" {
			query.Set("offset", offset)
		}

		var page struct {
			Records []Record `json:"records"`
			Offset  string   `json:"offset"`
		}
		if err := c.do(ctx, http.MethodGet, c.tablePath(table), query, nil, &page); err != nil {
			c.logError(ctx, "list", table, err)
			return nil, c.mapStoreError(err, "list")
		}
		records = append(records, page.Records...)
		pages++

		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	c.log(ctx, "list", table, map[string]any{"records": len(records), "pages": pages})
	return records, nil
}

// Create inserts a single record with the given sparse field set.
func (c *Client) Create(ctx context.Context, table string, fields map[string]any) (*Record, error) {
	body := map[string]any{"fields": fields}
	var record Record
	if err := c.do(ctx, http.MethodPost, c.tablePath(table), nil, body, &record); err != nil {
		c.logError(ctx, "create", table, err)
		return nil, c.mapStoreError(err, "create")
	}
	c.log(ctx, "create", table, map[string]any{"record_id": record.ID})
	return &record, nil
}

// Update patches the named record; fields absent from the map are untouched.
func (c *Client) Update(ctx context.Context, table, recordID string, fields map[string]any) (*Record, error) {
	body := map[string]any{"fields": fields}
	var record Record
	if err := c.do(ctx, http.MethodPatch, c.recordPath(table, recordID), nil, body, &record); err != nil {
		c.logError(ctx, "update", table, err)
		return nil, c.mapStoreError(err, "update")
	}
	c.log(ctx, "update", table, map[string]any{"record_id": record.ID})
	return &record, nil
}

// Delete removes the named record.
func (c *Client) Delete(ctx context.Context, table, recordID string) (*DeletedRecord, error) {
	var deleted DeletedRecord
	if err := c.do(ctx, http.MethodDelete, c.recordPath(table, recordID), nil, nil, &deleted); err != nil {
		c.logError(ctx, "delete", table, err)
		return nil, c.mapStoreError(err, "delete")
	}
	c.log(ctx, "delete", table, map[string]any{"record_id": deleted.ID})
	return &deleted, nil
}

func (c *Client) tablePath(table string) string {
	return fmt.Sprintf("/%s/%s", url.PathEscape(c.baseID), url.PathEscape(table))
}

func (c *Client) recordPath(table, recordID string) string {
	return fmt.Sprintf("%s/%s", c.tablePath(table), url.PathEscape(recordID))
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// decodeAPIError handles both error body shapes the store emits:
// {"error":{"type","message"}} and {"error":"NOT_FOUND"}.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) != nil || len(envelope.Error) == 0 {
		return apiErr
	}

	var typed struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if json.Unmarshal(envelope.Error, &typed) == nil && (typed.Type != "" || typed.Message != "") {
		apiErr.Type = typed.Type
		apiErr.Message = typed.Message
		return apiErr
	}

	var plain string
	if json.Unmarshal(envelope.Error, &plain) == nil {
		apiErr.Type = plain
	}
	return apiErr
}

func (c *Client) mapStoreError(err error, op string) error {
	if err == nil {
		return nil
	}
	code := pkgerrors.CodeDependency
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		code = domainCodeForStatus(apiErr.Status)
	}
	return pkgerrors.Wrap(code, err, fmt.Sprintf("airtable %s failed", op))
}

func domainCodeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusUnprocessableEntity:
		return pkgerrors.CodeValidation
	case http.StatusTooManyRequests:
		return pkgerrors.CodeRateLimit
	default:
		if status >= 400 && status < 500 {
			return pkgerrors.CodeValidation
		}
		return pkgerrors.CodeDependency
	}
}

func (c *Client) log(ctx context.Context, op, table string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"table":     table,
	}
	for k, v := range fields {
		logFields[k] = v
	}
	ctx = c.logger.WithFields(ctx, logFields)
	c.logger.Info(ctx, fmt.Sprintf("airtable %s", op))
}

func (c *Client) logError(ctx context.Context, op, table string, err error) {
	if c == nil || c.logger == nil {
		return
	}
	ctx = c.logger.WithFields(ctx, map[string]any{
		"operation": op,
		"table":     table,
	})
	c.logger.Error(ctx, fmt.Sprintf("airtable %s", op), err)
}
