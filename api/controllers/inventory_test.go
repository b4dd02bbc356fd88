package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dsalazar-dev/restoops-backend/internal/records"
	pkgerrors "github.com/dsalazar-dev/restoops-backend/pkg/errors"
)

type stubInventoryService struct {
	listResult []records.Item

	createFields records.Fields
	updateID     string
	updateFields records.Fields
	toggleID     string
	toggleActive *bool

	err error
}

func (s *stubInventoryService) ListItems(ctx context.Context) ([]records.Item, error) {
	return s.listResult, s.err
}

func (s *stubInventoryService) CreateItem(ctx context.Context, fields records.Fields) (*records.Item, error) {
	s.createFields = fields
	if s.err != nil {
		return nil, s.err
	}
	return &records.Item{ID: "recNew"}, nil
}

func (s *stubInventoryService) UpdateItem(ctx context.Context, recordID string, fields records.Fields) (*records.Item, error) {
	s.updateID = recordID
	s.updateFields = fields
	if s.err != nil {
		return nil, s.err
	}
	return &records.Item{ID: recordID}, nil
}

func (s *stubInventoryService) SetItemActive(ctx context.Context, recordID string, active bool) (*records.Item, error) {
	s.toggleID = recordID
	s.toggleActive = &active
	if s.err != nil {
		return nil, s.err
	}
	return &records.Item{ID: recordID}, nil
}

func TestCreateInventoryItemSparseFields(t *testing.T) {
	svc := &stubInventoryService{}
	handler := CreateInventoryItem(svc, nil)

	body := []byte(`{"nombre":"Harina","min_level":"5","activo":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/inventario", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if len(svc.createFields) != 3 {
		t.Fatalf("expected 3 fields got %v", svc.createFields)
	}
	if svc.createFields["min_level"] != 5.0 {
		t.Fatalf("stringified numbers must coerce, got %v", svc.createFields["min_level"])
	}
	if svc.createFields["activo"] != true {
		t.Fatalf("expected activo true, got %v", svc.createFields["activo"])
	}
}

func TestUpdateInventoryItemIgnoresActiveFlag(t *testing.T) {
	svc := &stubInventoryService{}
	handler := UpdateInventoryItem(svc, nil)

	body := []byte(`{"recordId":"recItem","proveedor":"Molinos SA","activo":false}`)
	req := httptest.NewRequest(http.MethodPut, "/api/inventario", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.updateID != "recItem" {
		t.Fatalf("expected record id to pass through, got %q", svc.updateID)
	}
	if _, ok := svc.updateFields["activo"]; ok {
		t.Fatalf("activo may only change through the toggle, got %v", svc.updateFields)
	}
	if svc.updateFields["proveedor"] != "Molinos SA" {
		t.Fatalf("unexpected fields %v", svc.updateFields)
	}
}

func TestToggleInventoryItem(t *testing.T) {
	svc := &stubInventoryService{}
	handler := ToggleInventoryItem(svc, nil)

	body := []byte(`{"recordId":"recItem","activo":false}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/inventario", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.toggleID != "recItem" || svc.toggleActive == nil || *svc.toggleActive {
		t.Fatalf("expected deactivation of recItem, got id=%q active=%v", svc.toggleID, svc.toggleActive)
	}
}

func TestUpdateInventoryItemMissingRecordID(t *testing.T) {
	svc := &stubInventoryService{err: pkgerrors.New(pkgerrors.CodeValidation, "recordId is required")}
	handler := UpdateInventoryItem(svc, nil)

	body := []byte(`{"nombre":"Harina"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/inventario", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestListInventoryStoreFailure(t *testing.T) {
	svc := &stubInventoryService{err: pkgerrors.New(pkgerrors.CodeDependency, "list records")}
	handler := ListInventory(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/inventario", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
