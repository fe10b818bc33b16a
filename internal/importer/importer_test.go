package importer

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gamestash/ebayimport/internal/errlog"
	"github.com/gamestash/ebayimport/internal/store"
)

// fakeStore records every write so tests can assert on exactly what the
// importers persisted. Error queues are popped one per call; a nil entry
// (or an empty queue) means success.
type fakeStore struct {
	shipments []store.InsertShipmentParams
	sales     []saleRec
	items     []store.InsertSaleItemParams
	costs     map[int64]int64

	shipmentErrs []error
	saleErrs     []error
	itemErrs     []error
	findErr      error
	updateErr    error

	nextID int64
}

type saleRec struct {
	id     int64
	params store.InsertSaleParams
}

func newFakeStore() *fakeStore {
	return &fakeStore{costs: make(map[int64]int64), nextID: 100}
}

func pop(errs *[]error) error {
	if len(*errs) == 0 {
		return nil
	}
	err := (*errs)[0]
	*errs = (*errs)[1:]
	return err
}

func (f *fakeStore) InsertShipment(_ context.Context, arg store.InsertShipmentParams) (int64, error) {
	if err := pop(&f.shipmentErrs); err != nil {
		return 0, err
	}
	f.nextID++
	f.shipments = append(f.shipments, arg)
	return f.nextID, nil
}

func (f *fakeStore) InsertSale(_ context.Context, arg store.InsertSaleParams) (int64, error) {
	if err := pop(&f.saleErrs); err != nil {
		return 0, err
	}
	f.nextID++
	f.sales = append(f.sales, saleRec{id: f.nextID, params: arg})
	return f.nextID, nil
}

func (f *fakeStore) InsertSaleItem(_ context.Context, arg store.InsertSaleItemParams) error {
	if err := pop(&f.itemErrs); err != nil {
		return err
	}
	f.items = append(f.items, arg)
	return nil
}

func (f *fakeStore) FindSaleID(_ context.Context, marketplace, platformSaleID string) (int64, bool, error) {
	if f.findErr != nil {
		return 0, false, f.findErr
	}
	// First match in insertion order, mirroring the lowest-id query.
	for _, s := range f.sales {
		if s.params.Marketplace == marketplace && s.params.PlatformSaleID == platformSaleID {
			return s.id, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeStore) SetShippingCost(_ context.Context, saleID int64, cents int64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.costs[saleID] = cents
	return nil
}

func (f *fakeStore) InTx(ctx context.Context, fn func(q store.Querier) error) error {
	return fn(f)
}

// newTestImporter wires an Importer to a fake store and an in-memory error
// log, returning the buffer so tests can assert on logged lines.
func newTestImporter(t *testing.T, st Store) (*Importer, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(st, errlog.New(buf), logger), buf
}

func errlogLines(buf *bytes.Buffer) []string {
	s := strings.TrimRight(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
