package search

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mercato-shop/mercato-backend/models"
)

// fakeStore records the predicates it receives and serves pages from an
// in-memory slice, in stored order (sorting is the store's job and is not
// re-implemented here).
type fakeStore struct {
	mu    sync.Mutex
	items []models.Product

	findErr  error
	countErr error

	findFilter  bson.M
	countFilter bson.M
	findSort    bson.D
	findSkip    int64
	findLimit   int64

	countBlocksUntilCancel bool
}

func (f *fakeStore) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Product, error) {
	f.mu.Lock()
	f.findFilter = filter
	f.findSort = sort
	f.findSkip = skip
	f.findLimit = limit
	f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}

	start := int(skip)
	if start > len(f.items) {
		start = len(f.items)
	}
	end := start + int(limit)
	if end > len(f.items) {
		end = len(f.items)
	}
	return f.items[start:end], nil
}

func (f *fakeStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	f.mu.Lock()
	f.countFilter = filter
	f.mu.Unlock()

	if f.countBlocksUntilCancel {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.items)), nil
}

func ascendingPriceProducts(n int) []models.Product {
	items := make([]models.Product, n)
	for i := range items {
		items[i] = models.Product{Title: fmt.Sprintf("item-%03d", i+1), Price: float64(i + 1)}
	}
	return items
}

func TestExecuteReturnsWindowedEnvelope(t *testing.T) {
	store := &fakeStore{items: ascendingPriceProducts(120)}
	spec := FilterSpec{Category: "c1", PriceRange: PriceRange{Min: floatPtr(10), Max: floatPtr(100)}, Sort: SortPriceAsc, Page: "2"}

	envelope, err := Run(context.Background(), store, spec)
	require.NoError(t, err)

	assert.Equal(t, int64(120), envelope.Total)
	assert.Equal(t, 2, envelope.Page)
	assert.Equal(t, int64(3), envelope.TotalPages)
	require.Len(t, envelope.Results, 50)
	assert.Equal(t, 51.0, envelope.Results[0].Price)
	assert.Equal(t, 100.0, envelope.Results[49].Price)

	assert.Equal(t, int64(50), store.findSkip)
	assert.Equal(t, int64(50), store.findLimit)
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, store.findSort)
}

func TestExecutePassesSamePredicateToFindAndCount(t *testing.T) {
	store := &fakeStore{items: ascendingPriceProducts(3)}
	spec := FilterSpec{HotDeals: true, Brand: "acme", SearchQuery: "blue shoes"}

	_, err := Run(context.Background(), store, spec)
	require.NoError(t, err)

	require.NotNil(t, store.findFilter)
	assert.Equal(t, store.findFilter, store.countFilter)
	// Not just equal values: both operations must see the same translated
	// predicate, translated once.
	assert.Equal(t,
		reflect.ValueOf(store.findFilter).Pointer(),
		reflect.ValueOf(store.countFilter).Pointer(),
	)
	assert.Equal(t, bson.M{"$search": "blue shoes"}, store.findFilter["$text"])
}

func TestExecuteFailsWholeCallOnFindError(t *testing.T) {
	findErr := errors.New("connection reset")
	store := &fakeStore{findErr: findErr, countBlocksUntilCancel: true}

	envelope, err := Execute(context.Background(), store, Query{}, nil, Paginate("1"))
	require.ErrorIs(t, err, findErr)
	assert.Nil(t, envelope)
}

func TestExecuteFailsWholeCallOnCountError(t *testing.T) {
	countErr := errors.New("cursor timeout")
	store := &fakeStore{items: ascendingPriceProducts(5), countErr: countErr}

	envelope, err := Execute(context.Background(), store, Query{}, nil, Paginate("1"))
	require.ErrorIs(t, err, countErr)
	assert.Nil(t, envelope)
}

func TestExecuteEmptyResult(t *testing.T) {
	store := &fakeStore{}

	envelope, err := Execute(context.Background(), store, Query{}, nil, Paginate(""))
	require.NoError(t, err)
	assert.Empty(t, envelope.Results)
	assert.Equal(t, int64(0), envelope.Total)
	assert.Equal(t, 1, envelope.Page)
	assert.Equal(t, int64(0), envelope.TotalPages)
}

func TestExecutePageBeyondEnd(t *testing.T) {
	store := &fakeStore{items: ascendingPriceProducts(10)}

	envelope, err := Execute(context.Background(), store, Query{}, nil, Paginate("4"))
	require.NoError(t, err)
	assert.Empty(t, envelope.Results)
	assert.Equal(t, int64(10), envelope.Total)
	assert.Equal(t, 4, envelope.Page)
	assert.Equal(t, int64(1), envelope.TotalPages)
}
