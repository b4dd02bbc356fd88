// Package records maps the restaurant's record-store collections onto typed
// models and exposes the CRUD surface the dashboard uses. Field names on the
// wire match the store schema exactly (Spanish, spaces included) so the
// existing dashboard keeps working unchanged.
package records

import (
	"strings"
	"time"

	"github.com/dsalazar-dev/restoops-backend/pkg/airtable"
)

// Collection table names in the record store.
const (
	TableItems        = "Items"
	TableMovements    = "Movimientos"
	TableSales        = "Ventas"
	TableReservations = "Reservas"
	TableOrders       = "Pedidos"
	TableTasks        = "Tareas"
	TableUsers        = "Usuarios"
)

// Item is an inventory item.
type Item struct {
	ID           string   `json:"id"`
	Nombre       *string  `json:"nombre,omitempty"`
	UnidadBase   *string  `json:"unidad_base,omitempty"`
	MinLevel     *float64 `json:"min_level,omitempty"`
	StockIdeal   *float64 `json:"stock_ideal,omitempty"`
	LimiteCocina *float64 `json:"limite_cocina,omitempty"`
	Categoria    *string  `json:"categoria,omitempty"`
	Subcategoria *string  `json:"subcategoria,omitempty"`
	Proveedor    *string  `json:"proveedor,omitempty"`
	Activo       *bool    `json:"activo,omitempty"`
	BajoStock    *string  `json:"bajo_stock,omitempty"`
	StockActual  *float64 `json:"stock_actual,omitempty"`
}

func itemFromRecord(rec airtable.Record) Item {
	return Item{
		ID:           rec.ID,
		Nombre:       optString(rec.Fields, "nombre"),
		UnidadBase:   optString(rec.Fields, "unidad_base"),
		MinLevel:     optFloat(rec.Fields, "min_level"),
		StockIdeal:   optFloat(rec.Fields, "stock_ideal"),
		LimiteCocina: optFloat(rec.Fields, "limite_cocina"),
		Categoria:    optString(rec.Fields, "categoria"),
		Subcategoria: optString(rec.Fields, "subcategoria"),
		Proveedor:    optString(rec.Fields, "proveedor"),
		Activo:       optBool(rec.Fields, "activo"),
		BajoStock:    optString(rec.Fields, "bajo_stock"),
		StockActual:  optFloat(rec.Fields, "stock_actual"),
	}
}

func (i Item) IsActive() bool {
	return i.Activo != nil && *i.Activo
}

// IsLowStock: the store's explicit flag wins; otherwise current stock at or
// below the configured minimum counts as low.
func (i Item) IsLowStock() bool {
	if i.BajoStock != nil && *i.BajoStock == "BAJO" {
		return true
	}
	return i.StockActual != nil && i.MinLevel != nil && *i.StockActual <= *i.MinLevel
}

// Movement is one stock movement (IN or OUT).
type Movement struct {
	ID           string   `json:"id"`
	Item         []string `json:"item,omitempty"`
	Tipo         *string  `json:"tipo,omitempty"`
	CantidadBase *float64 `json:"cantidad_base,omitempty"`
	FechaHora    *string  `json:"fecha_hora,omitempty"`
}

func movementFromRecord(rec airtable.Record) Movement {
	return Movement{
		ID:           rec.ID,
		Item:         optStringList(rec.Fields, "item"),
		Tipo:         optString(rec.Fields, "tipo"),
		CantidadBase: optFloat(rec.Fields, "cantidad_base"),
		FechaHora:    optString(rec.Fields, "fecha_hora"),
	}
}

func (m Movement) OccurredAt() *time.Time {
	return parseTimestamp(m.FechaHora)
}

func (m Movement) IsOut() bool {
	return m.Tipo != nil && *m.Tipo == "OUT"
}

// Sale is a point-of-sale ticket line.
type Sale struct {
	ID         string   `json:"id"`
	Producto   *string  `json:"Producto,omitempty"`
	Cantidad   *float64 `json:"Cantidad,omitempty"`
	TotalVenta *float64 `json:"Total Venta,omitempty"`
	FechaYHora *string  `json:"Fecha y Hora,omitempty"`
}

func saleFromRecord(rec airtable.Record) Sale {
	return Sale{
		ID:         rec.ID,
		Producto:   optString(rec.Fields, "Producto"),
		Cantidad:   optFloat(rec.Fields, "Cantidad"),
		TotalVenta: optFloat(rec.Fields, "Total Venta"),
		FechaYHora: optString(rec.Fields, "Fecha y Hora"),
	}
}

func (s Sale) OccurredAt() *time.Time {
	return parseTimestamp(s.FechaYHora)
}

// Reservation is a table booking.
type Reservation struct {
	ID              string  `json:"id"`
	Folio           *string `json:"ID,omitempty"`
	Fecha           *string `json:"fecha,omitempty"`
	Hora            *string `json:"hora,omitempty"`
	Nombre          *string `json:"nombre,omitempty"`
	Personas        *int    `json:"personas,omitempty"`
	Telefono        *string `json:"telefono,omitempty"`
	OcasionEspecial *string `json:"ocasion_especial,omitempty"`
	Observaciones   *string `json:"observaciones (Discapacidades),omitempty"`
	AnticipoPagado  *bool   `json:"anticipo_pagado,omitempty"`
	Estado          *string `json:"estado,omitempty"`
}

func reservationFromRecord(rec airtable.Record) Reservation {
	return Reservation{
		ID:              rec.ID,
		Folio:           optString(rec.Fields, "ID"),
		Fecha:           optString(rec.Fields, "fecha"),
		Hora:            optString(rec.Fields, "hora"),
		Nombre:          optString(rec.Fields, "nombre"),
		Personas:        optInt(rec.Fields, "personas"),
		Telefono:        optString(rec.Fields, "telefono"),
		OcasionEspecial: optString(rec.Fields, "ocasion_especial"),
		Observaciones:   optString(rec.Fields, "observaciones (Discapacidades)"),
		AnticipoPagado:  optBool(rec.Fields, "anticipo_pagado"),
		Estado:          optString(rec.Fields, "estado"),
	}
}

func (r Reservation) Date() *time.Time {
	return parseTimestamp(r.Fecha)
}

func (r Reservation) EstadoIs(estado string) bool {
	return r.Estado != nil && strings.EqualFold(strings.TrimSpace(*r.Estado), estado)
}

// Order is a delivery order.
type Order struct {
	ID         string   `json:"id"`
	PedidoID   *float64 `json:"Pedido ID,omitempty"`
	Nombre     *string  `json:"Nombre,omitempty"`
	Telefono   *string  `json:"Telefono,omitempty"`
	Fecha      *string  `json:"Fecha,omitempty"`
	Ubicacion  *string  `json:"Ubicación,omitempty"`
	MontoTotal *float64 `json:"Monto Total,omitempty"`
	Alimentos  *string  `json:"Alimentos,omitempty"`
	MetodoPago *string  `json:"Metodo de Pago,omitempty"`
	Estado     *string  `json:"Estado,omitempty"`
}

func orderFromRecord(rec airtable.Record) Order {
	return Order{
		ID:         rec.ID,
		PedidoID:   optFloat(rec.Fields, "Pedido ID"),
		Nombre:     optString(rec.Fields, "Nombre"),
		Telefono:   optString(rec.Fields, "Telefono"),
		Fecha:      optString(rec.Fields, "Fecha"),
		Ubicacion:  optString(rec.Fields, "Ubicación"),
		MontoTotal: optFloat(rec.Fields, "Monto Total"),
		Alimentos:  optString(rec.Fields, "Alimentos"),
		MetodoPago: optString(rec.Fields, "Metodo de Pago"),
		Estado:     optString(rec.Fields, "Estado"),
	}
}

func (o Order) Date() *time.Time {
	return parseTimestamp(o.Fecha)
}

func (o Order) IsPending() bool {
	return o.Estado != nil && strings.EqualFold(strings.TrimSpace(*o.Estado), "pendiente")
}

// Task is a staff task.
type Task struct {
	ID                string   `json:"id"`
	Tarea             *string  `json:"Tarea,omitempty"`
	Descripcion       *string  `json:"Descripción,omitempty"`
	Responsable       []string `json:"Responsable,omitempty"`
	FechaLimite       *string  `json:"Fecha Limite,omitempty"`
	FechaFinalizacion *string  `json:"Fecha de finalización,omitempty"`
	Estado            *string  `json:"Estado,omitempty"`
	Prioridad         *string  `json:"Prioridad,omitempty"`
	Activa            *bool    `json:"Activa,omitempty"`
}

func taskFromRecord(rec airtable.Record) Task {
	return Task{
		ID:                rec.ID,
		Tarea:             optString(rec.Fields, "Tarea"),
		Descripcion:       optString(rec.Fields, "Descripción"),
		Responsable:       optStringList(rec.Fields, "Responsable"),
		FechaLimite:       optString(rec.Fields, "Fecha Limite"),
		FechaFinalizacion: optString(rec.Fields, "Fecha de finalización"),
		Estado:            optString(rec.Fields, "Estado"),
		Prioridad:         optString(rec.Fields, "Prioridad"),
		Activa:            optBool(rec.Fields, "Activa"),
	}
}

func (t Task) Deadline() *time.Time {
	return parseTimestamp(t.FechaLimite)
}

func (t Task) IsActive() bool {
	return t.Activa != nil && *t.Activa
}

func (t Task) IsCompleted() bool {
	return t.Estado != nil && strings.EqualFold(strings.TrimSpace(*t.Estado), "completada")
}

func (t Task) IsNotStarted() bool {
	return t.Estado != nil && strings.EqualFold(strings.TrimSpace(*t.Estado), "sin empezar")
}

// IsOverdue: the deadline has passed and the task was never completed. Tasks
// without a deadline are never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	deadline := t.Deadline()
	return deadline != nil && deadline.Before(now) && !t.IsCompleted()
}

// User is a staff member; the dashboard only lists them (assignment targets
// for tasks). Cosmetic, no auth semantics.
type User struct {
	ID       string  `json:"id"`
	Nombre   *string `json:"Nombre,omitempty"`
	Rol      *string `json:"Rol,omitempty"`
	Email    *string `json:"Email,omitempty"`
	Telefono *string `json:"Telefono,omitempty"`
}

func userFromRecord(rec airtable.Record) User {
	return User{
		ID:       rec.ID,
		Nombre:   optString(rec.Fields, "Nombre"),
		Rol:      optString(rec.Fields, "Rol"),
		Email:    optString(rec.Fields, "Email"),
		Telefono: optString(rec.Fields, "Telefono"),
	}
}
