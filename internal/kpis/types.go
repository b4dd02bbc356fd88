package kpis

import (
	"time"

	"github.com/dsalazar-dev/restoops-backend/internal/daterange"
)

// Summary is the five-domain KPI payload. Field names are wire-stable with
// the dashboard cards; numeric fields are always present, zero when empty.
type Summary struct {
	Inventario InventorySummary    `json:"inventario"`
	Ventas     SalesSummary        `json:"ventas"`
	Reservas   ReservationsSummary `json:"reservas"`
	Pedidos    OrdersSummary       `json:"pedidos"`
	Tareas     TasksSummary        `json:"tareas"`
}

type InventorySummary struct {
	ItemsActivos   int     `json:"itemsActivos"`
	ItemsBajoStock int     `json:"itemsBajoStock"`
	Movimientos    int     `json:"movimientos"`
	Consumo        float64 `json:"consumo"`
}

type SalesSummary struct {
	Count             int     `json:"count"`
	TotalVendido      float64 `json:"totalVendido"`
	TicketPromedio    float64 `json:"ticketPromedio"`
	ProductosVendidos float64 `json:"productosVendidos"`
}

type ReservationsSummary struct {
	Count         int `json:"count"`
	PersonasTotal int `json:"personasTotal"`
	Confirmadas   int `json:"confirmadas"`
	Pendientes    int `json:"pendientes"`
}

type OrdersSummary struct {
	Count        int     `json:"count"`
	TotalPedidos float64 `json:"totalPedidos"`
	Pendientes   int     `json:"pendientes"`
}

type TasksSummary struct {
	Activas     int `json:"activas"`
	Pendientes  int `json:"pendientes"`
	Completadas int `json:"completadas"`
	Vencidas    int `json:"vencidas"`
}

// QueryRequest carries the resolved window and the caller's clock. Both come
// from outside so the aggregation stays a pure function of its inputs.
type QueryRequest struct {
	Window daterange.Range
	Now    time.Time
}
