package search

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	"github.com/mercato-shop/mercato-backend/models"
)

// ProductStore is the slice of store capability the executor needs: a
// windowed find and a count over the same predicate.
type ProductStore interface {
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Product, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// Envelope is the terminal page shape returned to the handler.
type Envelope struct {
	Results    []models.Product `json:"results"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int64            `json:"totalPages"`
}

// Execute runs the paginated find and the total count concurrently. Both
// operations receive the same translated predicate value, so the count always
// reflects the same filter as the page. Either failure fails the whole call
// and cancels the sibling operation through the group context; a partial
// envelope is never returned.
func Execute(ctx context.Context, store ProductStore, q Query, sortSpec SortSpec, window PageWindow) (*Envelope, error) {
	filter := q.ToBSON()

	var (
		results []models.Product
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, err = store.Find(gctx, filter, sortSpec.ToBSON(), window.Skip, window.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = store.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Envelope{
		Results:    results,
		Total:      total,
		Page:       window.Page,
		TotalPages: (total + window.Limit - 1) / window.Limit,
	}, nil
}

// Run is the whole pipeline: compile, resolve sort and window, execute.
func Run(ctx context.Context, store ProductStore, spec FilterSpec) (*Envelope, error) {
	return Execute(ctx, store, Compile(spec), ResolveSort(spec.Sort), Paginate(spec.Page))
}
