package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dsalazar-dev/restoops-backend/internal/records"
	"github.com/dsalazar-dev/restoops-backend/pkg/airtable"
)

type stubReservationService struct {
	createFields records.Fields
	updateID     string
	updateFields records.Fields
	deleteID     string
}

func (s *stubReservationService) ListReservations(ctx context.Context) ([]records.Reservation, error) {
	return nil, nil
}

func (s *stubReservationService) CreateReservation(ctx context.Context, fields records.Fields) (*records.Reservation, error) {
	s.createFields = fields
	return &records.Reservation{ID: "recNew"}, nil
}

func (s *stubReservationService) UpdateReservation(ctx context.Context, recordID string, fields records.Fields) (*records.Reservation, error) {
	s.updateID = recordID
	s.updateFields = fields
	return &records.Reservation{ID: recordID}, nil
}

func (s *stubReservationService) DeleteReservation(ctx context.Context, recordID string) (*airtable.DeletedRecord, error) {
	s.deleteID = recordID
	return &airtable.DeletedRecord{ID: recordID, Deleted: true}, nil
}

func TestCreateReservationMapsObservaciones(t *testing.T) {
	svc := &stubReservationService{}
	handler := CreateReservation(svc, nil)

	body := []byte(`{"ID":42,"fecha":"2025-06-20","nombre":"Luis","personas":"4","observaciones":"silla de ruedas"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reservas", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if svc.createFields["observaciones (Discapacidades)"] != "silla de ruedas" {
		t.Fatalf("notes must map to the store column, got %v", svc.createFields)
	}
	if _, ok := svc.createFields["observaciones"]; ok {
		t.Fatalf("the short wire name must not reach the store")
	}
	if svc.createFields["ID"] != "42" {
		t.Fatalf("folio must coerce to a string, got %v", svc.createFields["ID"])
	}
	if svc.createFields["personas"] != 4.0 {
		t.Fatalf("party size must coerce to a number, got %v", svc.createFields["personas"])
	}
}

func TestUpdateReservationCanClearNotes(t *testing.T) {
	svc := &stubReservationService{}
	handler := UpdateReservation(svc, nil)

	body := []byte(`{"recordId":"recRes","observaciones":"","estado":"confirmada"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/reservas", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.updateID != "recRes" {
		t.Fatalf("unexpected record id %q", svc.updateID)
	}
	if got, ok := svc.updateFields["observaciones (Discapacidades)"]; !ok || got != "" {
		t.Fatalf("updates must be able to clear notes, got %v", svc.updateFields)
	}
}
