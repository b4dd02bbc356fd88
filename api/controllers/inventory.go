package controllers

import (
	"context"
	"net/http"

	"github.com/dsalazar-dev/restoops-backend/api/responses"
	"github.com/dsalazar-dev/restoops-backend/api/validators"
	"github.com/dsalazar-dev/restoops-backend/internal/records"
	"github.com/dsalazar-dev/restoops-backend/pkg/logger"
	"github.com/dsalazar-dev/restoops-backend/pkg/types"
)

type InventoryService interface {
	ListItems(ctx context.Context) ([]records.Item, error)
	CreateItem(ctx context.Context, fields records.Fields) (*records.Item, error)
	UpdateItem(ctx context.Context, recordID string, fields records.Fields) (*records.Item, error)
	SetItemActive(ctx context.Context, recordID string, active bool) (*records.Item, error)
}

func ListInventory(svc InventoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func CreateInventoryItem(svc InventoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload itemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.CreateItem(r.Context(), payload.fields(true))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, item)
	}
}

func UpdateInventoryItem(svc InventoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload itemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.UpdateItem(r.Context(), payload.RecordID, payload.fields(false))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// ToggleInventoryItem flips an item's active flag; deactivation stands in for
// deletion so movement history keeps resolving.
func ToggleInventoryItem(svc InventoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			RecordID string `json:"recordId"`
			Activo   *bool  `json:"activo"`
		}
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		active := payload.Activo != nil && *payload.Activo
		item, err := svc.SetItemActive(r.Context(), payload.RecordID, active)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

type itemRequest struct {
	RecordID     string         `json:"recordId,omitempty"`
	Nombre       *string        `json:"nombre,omitempty"`
	UnidadBase   *string        `json:"unidad_base,omitempty"`
	MinLevel     *types.Numeric `json:"min_level,omitempty"`
	StockIdeal   *types.Numeric `json:"stock_ideal,omitempty"`
	LimiteCocina *types.Numeric `json:"limite_cocina,omitempty"`
	Categoria    *string        `json:"categoria,omitempty"`
	Subcategoria *string        `json:"subcategoria,omitempty"`
	Proveedor    *string        `json:"proveedor,omitempty"`
	Activo       *bool          `json:"activo,omitempty"`
}

// fields builds the sparse store payload. The active flag is only settable on
// create; updates go through the dedicated toggle.
func (p itemRequest) fields(create bool) records.Fields {
	fields := records.Fields{}
	setString(fields, "nombre", p.Nombre)
	setString(fields, "unidad_base", p.UnidadBase)
	setNumber(fields, "min_level", p.MinLevel)
	setNumber(fields, "stock_ideal", p.StockIdeal)
	setNumber(fields, "limite_cocina", p.LimiteCocina)
	setString(fields, "categoria", p.Categoria)
	setString(fields, "subcategoria", p.Subcategoria)
	setString(fields, "proveedor", p.Proveedor)
	if create {
		setBool(fields, "activo", p.Activo)
	}
	return fields
}
