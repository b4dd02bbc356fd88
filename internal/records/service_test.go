package records

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dsalazar-dev/restoops-backend/pkg/airtable"
	pkgerrors "github.com/dsalazar-dev/restoops-backend/pkg/errors"
	"github.com/dsalazar-dev/restoops-backend/pkg/logger"
)

type fakeStore struct {
	listTable  string
	listOpts   airtable.ListOptions
	listResult []airtable.Record

	createTable  string
	createFields map[string]any

	updateTable  string
	updateID     string
	updateFields map[string]any

	deleteTable string
	deleteID    string

	calls int
	err   error
}

func (f *fakeStore) List(ctx context.Context, table string, opts airtable.ListOptions) ([]airtable.Record, error) {
	f.calls++
	f.listTable = table
	f.listOpts = opts
	return f.listResult, f.err
}

func (f *fakeStore) Create(ctx context.Context, table string, fields map[string]any) (*airtable.Record, error) {
	f.calls++
	f.createTable = table
	f.createFields = fields
	if f.err != nil {
		return nil, f.err
	}
	return &airtable.Record{ID: "recNew", Fields: fields}, nil
}

func (f *fakeStore) Update(ctx context.Context, table, recordID string, fields map[string]any) (*airtable.Record, error) {
	f.calls++
	f.updateTable = table
	f.updateID = recordID
	f.updateFields = fields
	if f.err != nil {
		return nil, f.err
	}
	return &airtable.Record{ID: recordID, Fields: fields}, nil
}

func (f *fakeStore) Delete(ctx context.Context, table, recordID string) (*airtable.DeletedRecord, error) {
	f.calls++
	f.deleteTable = table
	f.deleteID = recordID
	if f.err != nil {
		return nil, f.err
	}
	return &airtable.DeletedRecord{ID: recordID, Deleted: true}, nil
}

func newTestService(store *fakeStore) Service {
	return NewService(store, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
}

func TestListItemsSortsByName(t *testing.T) {
	store := &fakeStore{listResult: []airtable.Record{
		{ID: "rec1", Fields: map[string]any{"nombre": "Aceite", "activo": true}},
	}}
	svc := newTestService(store)

	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Aceite", *items[0].Nombre)

	require.Equal(t, TableItems, store.listTable)
	require.Equal(t, []airtable.Sort{{Field: "nombre", Direction: "asc"}}, store.listOpts.Sort)
}

func TestListMovementsNewestFirst(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	_, err := svc.ListMovements(context.Background())
	require.NoError(t, err)
	require.Equal(t, TableMovements, store.listTable)
	require.Equal(t, []airtable.Sort{{Field: "fecha_hora", Direction: "desc"}}, store.listOpts.Sort)
}

func TestCreateOrderPassesSparseFields(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	order, err := svc.CreateOrder(context.Background(), Fields{
		"Nombre":      "Ana",
		"Monto Total": 250.5,
	})
	require.NoError(t, err)
	require.Equal(t, "recNew", order.ID)
	require.Equal(t, TableOrders, store.createTable)
	require.Len(t, store.createFields, 2)
}

func TestUpdateRequiresRecordID(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	_, err := svc.UpdateOrder(context.Background(), "", Fields{"Estado": "Entregado"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
	require.Zero(t, store.calls, "no store call may happen without an id")

	_, err = svc.DeleteTask(context.Background(), "")
	require.Error(t, err)
	require.Zero(t, store.calls)
}

func TestSetItemActiveTogglesSingleField(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	item, err := svc.SetItemActive(context.Background(), "recItem", false)
	require.NoError(t, err)
	require.Equal(t, "recItem", item.ID)
	require.Equal(t, TableItems, store.updateTable)
	require.Equal(t, map[string]any{"activo": false}, store.updateFields)
}

func TestDeleteReservation(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	deleted, err := svc.DeleteReservation(context.Background(), "recRes")
	require.NoError(t, err)
	require.True(t, deleted.Deleted)
	require.Equal(t, TableReservations, store.deleteTable)
	require.Equal(t, "recRes", store.deleteID)
}
