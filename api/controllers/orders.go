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

type OrderService interface {
	ListOrders(ctx context.Context) ([]records.Order, error)
	CreateOrder(ctx context.Context, fields records.Fields) (*records.Order, error)
	UpdateOrder(ctx context.Context, recordID string, fields records.Fields) (*records.Order, error)
	DeleteOrder(ctx context.Context, recordID string) (*airtable.DeletedRecord, error)
}

func ListOrders(svc OrderService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.ListOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

func CreateOrder(svc OrderService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.CreateOrder(r.Context(), payload.fields())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, order)
	}
}

func UpdateOrder(svc OrderService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.UpdateOrder(r.Context(), payload.RecordID, payload.fields())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func DeleteOrder(svc OrderService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload deleteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deleted, err := svc.DeleteOrder(r.Context(), payload.RecordID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, deleted)
	}
}

type orderRequest struct {
	RecordID   string            `json:"recordId,omitempty"`
	PedidoID   *types.Numeric    `json:"Pedido ID,omitempty"`
	Nombre     *string           `json:"Nombre,omitempty"`
	Telefono   *types.FlexString `json:"Telefono,omitempty"`
	Fecha      *string           `json:"Fecha,omitempty"`
	Ubicacion  *string           `json:"Ubicación,omitempty"`
	MontoTotal *types.Numeric    `json:"Monto Total,omitempty"`
	Alimentos  *string           `json:"Alimentos,omitempty"`
	MetodoPago *string           `json:"Metodo de Pago,omitempty"`
	Estado     *string           `json:"Estado,omitempty"`
}

func (p orderRequest) fields() records.Fields {
	fields := records.Fields{}
	setNumber(fields, "Pedido ID", p.PedidoID)
	setString(fields, "Nombre", p.Nombre)
	setFlexString(fields, "Telefono", p.Telefono)
	setString(fields, "Fecha", p.Fecha)
	setString(fields, "Ubicación", p.Ubicacion)
	setNumber(fields, "Monto Total", p.MontoTotal)
	setString(fields, "Alimentos", p.Alimentos)
	setString(fields, "Metodo de Pago", p.MetodoPago)
	setString(fields, "Estado", p.Estado)
	return fields
}
