// Package kpis computes the dashboard's aggregate metrics. Six collections
// are fetched concurrently per request; there is no cache and no state
// between requests.
package kpis

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/dsalazar-dev/restoops-backend/internal/daterange"
	"github.com/dsalazar-dev/restoops-backend/internal/records"
	"github.com/dsalazar-dev/restoops-backend/pkg/config"
)

// Source provides the collection snapshots the aggregator reads.
// records.Service satisfies it.
type Source interface {
	ListItems(ctx context.Context) ([]records.Item, error)
	ListMovements(ctx context.Context) ([]records.Movement, error)
	ListSales(ctx context.Context) ([]records.Sale, error)
	ListReservations(ctx context.Context) ([]records.Reservation, error)
	ListOrders(ctx context.Context) ([]records.Order, error)
	ListTasks(ctx context.Context) ([]records.Task, error)
}

type Service interface {
	Query(ctx context.Context, req QueryRequest) (*Summary, error)
}

type service struct {
	source Source
	cfg    config.KPIConfig
}

func NewService(source Source, cfg config.KPIConfig) Service {
	return &service{source: source, cfg: cfg}
}

// Query fetches all six collections in parallel and aggregates them. The
// first failed read cancels the remaining fetches and fails the whole
// request; there are no partial results.
func (s *service) Query(ctx context.Context, req QueryRequest) (*Summary, error) {
	var (
		items        []records.Item
		movements    []records.Movement
		sales        []records.Sale
		reservations []records.Reservation
		orders       []records.Order
		tasks        []records.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.source.ListItems(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		movements, err = s.source.ListMovements(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.source.ListSales(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = s.source.ListReservations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.source.ListOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.source.ListTasks(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{
		Inventario: aggregateInventory(items, movements, req.Window),
		Ventas:     aggregateSales(sales, req.Window),
		Reservas:   s.aggregateReservations(reservations, req.Window),
		Pedidos:    s.aggregateOrders(orders, req.Window, req.Now),
		Tareas:     aggregateTasks(tasks, req.Now),
	}, nil
}

func aggregateInventory(items []records.Item, movements []records.Movement, window daterange.Range) InventorySummary {
	var out InventorySummary
	for _, item := range items {
		if item.IsActive() {
			out.ItemsActivos++
		}
		if item.IsLowStock() {
			out.ItemsBajoStock++
		}
	}
	for _, m := range movements {
		if !window.Covers(m.OccurredAt()) {
			continue
		}
		out.Movimientos++
		if m.IsOut() && m.CantidadBase != nil {
			out.Consumo += *m.CantidadBase
		}
	}
	return out
}

func aggregateSales(sales []records.Sale, window daterange.Range) SalesSummary {
	var out SalesSummary
	total := decimal.Zero
	for _, sale := range sales {
		if !window.Covers(sale.OccurredAt()) {
			continue
		}
		out.Count++
		if sale.TotalVenta != nil {
			total = total.Add(decimal.NewFromFloat(*sale.TotalVenta))
		}
		if sale.Cantidad != nil {
			out.ProductosVendidos += *sale.Cantidad
		}
	}
	out.TotalVendido = total.InexactFloat64()
	if out.Count > 0 {
		out.TicketPromedio = total.
			Div(decimal.NewFromInt(int64(out.Count))).
			Round(2).
			InexactFloat64()
	}
	return out
}

// aggregateReservations windows by booking date unless the scope is "all":
// reservations are forward-looking, so some operators prefer counting every
// booking regardless of the selected range.
func (s *service) aggregateReservations(reservations []records.Reservation, window daterange.Range) ReservationsSummary {
	var out ReservationsSummary
	for _, r := range reservations {
		if s.cfg.ReservationsScope != config.ScopeAll && !window.Covers(r.Date()) {
			continue
		}
		out.Count++
		if r.Personas != nil {
			out.PersonasTotal += *r.Personas
		}
		if r.EstadoIs("confirmada") {
			out.Confirmadas++
		}
		if r.EstadoIs("pendiente") {
			out.Pendientes++
		}
	}
	return out
}

// aggregateOrders has two rules. Windowed: everything follows the selected
// range. Month: count and total cover the current calendar month, and the
// pending counter takes undated or future-dated pending orders only, so
// stale pending orders from past days stop inflating the card.
func (s *service) aggregateOrders(orders []records.Order, window daterange.Range, now time.Time) OrdersSummary {
	var out OrdersSummary
	total := decimal.Zero

	monthScope := s.cfg.OrdersScope == config.ScopeMonth
	if monthScope {
		window = daterange.MonthToDate(now)
	}
	today := daterange.Midnight(now)

	for _, o := range orders {
		inWindow := window.Covers(o.Date())
		if inWindow {
			out.Count++
			if o.MontoTotal != nil {
				total = total.Add(decimal.NewFromFloat(*o.MontoTotal))
			}
		}
		if !o.IsPending() {
			continue
		}
		if monthScope {
			if date := o.Date(); date == nil || !date.Before(today) {
				out.Pendientes++
			}
		} else if inWindow {
			out.Pendientes++
		}
	}
	out.TotalPedidos = total.InexactFloat64()
	return out
}

// aggregateTasks ignores the date window entirely; task KPIs are about the
// current backlog, not the selected range.
func aggregateTasks(tasks []records.Task, now time.Time) TasksSummary {
	var out TasksSummary
	for _, t := range tasks {
		if t.IsActive() {
			out.Activas++
		}
		if t.IsNotStarted() {
			out.Pendientes++
		}
		if t.IsCompleted() {
			out.Completadas++
		}
		if t.IsOverdue(now) {
			out.Vencidas++
		}
	}
	return out
}
