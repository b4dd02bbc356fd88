package controllers

import (
	"context"
	"net/http"

	"github.com/dsalazar-dev/restoops-backend/api/responses"
	"github.com/dsalazar-dev/restoops-backend/api/validators"
	"github.com/dsalazar-dev/restoops-backend/internal/records"
	"github.com/dsalazar-dev/restoops-backend/pkg/airtable"
	"github.com/dsalazar-dev/restoops-backend/pkg/logger"
	"github.com/dsalazar-dev/restoops-backend/pkg/types"
)

type ReservationService interface {
	ListReservations(ctx context.Context) ([]records.Reservation, error)
	CreateReservation(ctx context.Context, fields records.Fields) (*records.Reservation, error)
	UpdateReservation(ctx context.Context, recordID string, fields records.Fields) (*records.Reservation, error)
	DeleteReservation(ctx context.Context, recordID string) (*airtable.DeletedRecord, error)
}

func ListReservations(svc ReservationService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservations, err := svc.ListReservations(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, reservations)
	}
}

func CreateReservation(svc ReservationService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload reservationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reservation, err := svc.CreateReservation(r.Context(), payload.fields(true))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, reservation)
	}
}

func UpdateReservation(svc ReservationService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload reservationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reservation, err := svc.UpdateReservation(r.Context(), payload.RecordID, payload.fields(false))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, reservation)
	}
}

func DeleteReservation(svc ReservationService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload deleteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deleted, err := svc.DeleteReservation(r.Context(), payload.RecordID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, deleted)
	}
}

type reservationRequest struct {
	RecordID        string            `json:"recordId,omitempty"`
	Folio           *types.FlexString `json:"ID,omitempty"`
	Fecha           *string           `json:"fecha,omitempty"`
	Hora            *string           `json:"hora,omitempty"`
	Nombre          *string           `json:"nombre,omitempty"`
	Personas        *types.Numeric    `json:"personas,omitempty"`
	Telefono        *types.FlexString `json:"telefono,omitempty"`
	OcasionEspecial *string           `json:"ocasion_especial,omitempty"`
	Observaciones   *string           `json:"observaciones,omitempty"`
	AnticipoPagado  *bool             `json:"anticipo_pagado,omitempty"`
	Estado          *string           `json:"estado,omitempty"`
}

// fields maps the short "observaciones" wire name onto the store's longer
// column. Updates may clear the folio, occasion, and notes; creates skip
// empty values.
func (p reservationRequest) fields(create bool) records.Fields {
	fields := records.Fields{}
	setString(fields, "fecha", p.Fecha)
	setString(fields, "hora", p.Hora)
	setString(fields, "nombre", p.Nombre)
	setNumber(fields, "personas", p.Personas)
	setFlexString(fields, "telefono", p.Telefono)
	setBool(fields, "anticipo_pagado", p.AnticipoPagado)
	setString(fields, "estado", p.Estado)
	if create {
		setFlexString(fields, "ID", p.Folio)
		setString(fields, "ocasion_especial", p.OcasionEspecial)
		setString(fields, "observaciones (Discapacidades)", p.Observaciones)
	} else {
		setFlexStringAllowEmpty(fields, "ID", p.Folio)
		setStringAllowEmpty(fields, "ocasion_especial", p.OcasionEspecial)
		setStringAllowEmpty(fields, "observaciones (Discapacidades)", p.Observaciones)
	}
	return fields
}
