package records

import (
	"context"

	"github.com/dsalazar-dev/restoops-backend/pkg/airtable"
	pkgerrors "github.com/dsalazar-dev/restoops-backend/pkg/errors"
	"github.com/dsalazar-dev/restoops-backend/pkg/logger"
)

// Fields is a sparse partial-update payload: only the keys present reach the
// store; absent optional fields are omitted, never nulled.
type Fields = map[string]any

// Store is the slice of the record-store client this package needs.
type Store interface {
	List(ctx context.Context, table string, opts airtable.ListOptions) ([]airtable.Record, error)
	Create(ctx context.Context, table string, fields map[string]any) (*airtable.Record, error)
	Update(ctx context.Context, table, recordID string, fields map[string]any) (*airtable.Record, error)
	Delete(ctx context.Context, table, recordID string) (*airtable.DeletedRecord, error)
}

// Service is the full collection surface. Sales, movements, and users are
// read-only; items use a dedicated toggle instead of delete.
type Service interface {
	ListItems(ctx context.Context) ([]Item, error)
	CreateItem(ctx context.Context, fields Fields) (*Item, error)
	UpdateItem(ctx context.Context, recordID string, fields Fields) (*Item, error)
	SetItemActive(ctx context.Context, recordID string, active bool) (*Item, error)

	ListMovements(ctx context.Context) ([]Movement, error)
	ListSales(ctx context.Context) ([]Sale, error)
	ListUsers(ctx context.Context) ([]User, error)

	ListReservations(ctx context.Context) ([]Reservation, error)
	CreateReservation(ctx context.Context, fields Fields) (*Reservation, error)
	UpdateReservation(ctx context.Context, recordID string, fields Fields) (*Reservation, error)
	DeleteReservation(ctx context.Context, recordID string) (*airtable.DeletedRecord, error)

	ListOrders(ctx context.Context) ([]Order, error)
	CreateOrder(ctx context.Context, fields Fields) (*Order, error)
	UpdateOrder(ctx context.Context, recordID string, fields Fields) (*Order, error)
	DeleteOrder(ctx context.Context, recordID string) (*airtable.DeletedRecord, error)

	ListTasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, fields Fields) (*Task, error)
	UpdateTask(ctx context.Context, recordID string, fields Fields) (*Task, error)
	DeleteTask(ctx context.Context, recordID string) (*airtable.DeletedRecord, error)
}

type service struct {
	store Store
	logg  *logger.Logger
}

func NewService(store Store, logg *logger.Logger) Service {
	return &service{store: store, logg: logg}
}

// Canonical listing sorts, matching what the dashboard tables expect.
var (
	itemSort        = []airtable.Sort{{Field: "nombre", Direction: "asc"}}
	movementSort    = []airtable.Sort{{Field: "fecha_hora", Direction: "desc"}}
	saleSort        = []airtable.Sort{{Field: "Fecha y Hora", Direction: "desc"}}
	reservationSort = []airtable.Sort{{Field: "fecha", Direction: "desc"}}
	orderSort       = []airtable.Sort{{Field: "Fecha", Direction: "desc"}}
	taskSort        = []airtable.Sort{{Field: "Fecha Limite", Direction: "asc"}}
)

func (s *service) ListItems(ctx context.Context) ([]Item, error) {
	recs, err := s.store.List(ctx, TableItems, airtable.ListOptions{Sort: itemSort})
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(recs))
	for _, rec := range recs {
		items = append(items, itemFromRecord(rec))
	}
	return items, nil
}

func (s *service) CreateItem(ctx context.Context, fields Fields) (*Item, error) {
	rec, err := s.store.Create(ctx, TableItems, fields)
	if err != nil {
		return nil, err
	}
	item := itemFromRecord(*rec)
	return &item, nil
}

func (s *service) UpdateItem(ctx context.Context, recordID string, fields Fields) (*Item, error) {
	if err := requireRecordID(recordID); err != nil {
		return nil, err
	}
	rec, err := s.store.Update(ctx, TableItems, recordID, fields)
	if err != nil {
		return nil, err
	}
	item := itemFromRecord(*rec)
	return &item, nil
}

func (s *service) SetItemActive(ctx context.Context, recordID string, active bool) (*Item, error) {
	return s.UpdateItem(ctx, recordID, Fields{"activo": active})
}

func (s *service) ListMovements(ctx context.Context) ([]Movement, error) {
	recs, err := s.store.List(ctx, TableMovements, airtable.ListOptions{Sort: movementSort})
	if err != nil {
		return nil, err
	}
	movements := make([]Movement, 0, len(recs))
	for _, rec := range recs {
		movements = append(movements, movementFromRecord(rec))
	}
	return movements, nil
}

func (s *service) ListSales(ctx context.Context) ([]Sale, error) {
	recs, err := s.store.List(ctx, TableSales, airtable.ListOptions{Sort: saleSort})
	if err != nil {
		return nil, err
	}
	sales := make([]Sale, 0, len(recs))
	for _, rec := range recs {
		sales = append(sales, saleFromRecord(rec))
	}
	return sales, nil
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	recs, err := s.store.List(ctx, TableUsers, airtable.ListOptions{})
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, userFromRecord(rec))
	}
	return users, nil
}

func (s *service) ListReservations(ctx context.Context) ([]Reservation, error) {
	recs, err := s.store.List(ctx, TableReservations, airtable.ListOptions{Sort: reservationSort})
	if err != nil {
		return nil, err
	}
	reservations := make([]Reservation, 0, len(recs))
	for _, rec := range recs {
		reservations = append(reservations, reservationFromRecord(rec))
	}
	return reservations, nil
}

func (s *service) CreateReservation(ctx context.Context, fields Fields) (*Reservation, error) {
	rec, err := s.store.Create(ctx, TableReservations, fields)
	if err != nil {
		return nil, err
	}
	reservation := reservationFromRecord(*rec)
	return &reservation, nil
}

func (s *service) UpdateReservation(ctx context.Context, recordID string, fields Fields) (*Reservation, error) {
	if err := requireRecordID(recordID); err != nil {
		return nil, err
	}
	rec, err := s.store.Update(ctx, TableReservations, recordID, fields)
	if err != nil {
		return nil, err
	}
	reservation := reservationFromRecord(*rec)
	return &reservation, nil
}

func (s *service) DeleteReservation(ctx context.Context, recordID string) (*airtable.DeletedRecord, error) {
	if err := requireRecordID(recordID); err != nil {
		return nil, err
	}
	return s.store.Delete(ctx, TableReservations, recordID)
}

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	recs, err := s.store.List(ctx, TableOrders, airtable.ListOptions{Sort: orderSort})
	if err != nil {
		return nil, err
	}
	orders := make([]Order, 0, len(recs))
	for _, rec := range recs {
		orders = append(orders, orderFromRecord(rec))
	}
	return orders, nil
}

func (s *service) CreateOrder(ctx context.Context, fields Fields) (*Order, error) {
	rec, err := s.store.Create(ctx, TableOrders, fields)
	if err != nil {
		return nil, err
	}
	order := orderFromRecord(*rec)
	return &order, nil
}

func (s *service) UpdateOrder(ctx context.Context, recordID string, fields Fields) (*Order, error) {
	if err := requireRecordID(recordID); err != nil {
		return nil, err
	}
	rec, err := s.store.Update(ctx, TableOrders, recordID, fields)
	if err != nil {
		return nil, err
	}
	order := orderFromRecord(*rec)
	return &order, nil
}

func (s *service) DeleteOrder(ctx context.Context, recordID string) (*airtable.DeletedRecord, error) {
	if err := requireRecordID(recordID); err != nil {
		return nil, err
	}
	return s.store.Delete(ctx, TableOrders, recordID)
}

func (s *service) ListTasks(ctx context.Context) ([]Task, error) {
	recs, err := s.store.List(ctx, TableTasks, airtable.ListOptions{Sort: taskSort})
	if err != nil {
		return nil, err
	}
	tasks := make([]Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, taskFromRecord(rec))
	}
	return tasks, nil
}

func (s *service) CreateTask(ctx context.Context, fields Fields) (*Task, error) {
	rec, err := s.store.Create(ctx, TableTasks, fields)
	if err != nil {
		return nil, err
	}
	task := taskFromRecord(*rec)
	return &task, nil
}

func (s *service) UpdateTask(ctx context.Context, recordID string, fields Fields) (*Task, error) {
	if err := requireRecordID(recordID); err != nil {
		return nil, err
	}
	rec, err := s.store.Update(ctx, TableTasks, recordID, fields)
	if err != nil {
		return nil, err
	}
	task := taskFromRecord(*rec)
	return &task, nil
}

func (s *service) DeleteTask(ctx context.Context, recordID string) (*airtable.DeletedRecord, error) {
	if err := requireRecordID(recordID); err != nil {
		return nil, err
	}
	return s.store.Delete(ctx, TableTasks, recordID)
}

func requireRecordID(recordID string) error {
	if recordID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "recordId is required")
	}
	return nil
}
