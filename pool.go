package schedula

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/archivista/schedula/model"
)

// ProcessAll runs Process over a batch of documents with at most parallelism
// of them in flight at once; parallelism <= 0 means one task per document.
// Documents are independent, so no locking is needed beyond the join.
//
// Results are returned in input order. A document that yields no output has
// a nil Result; its warnings are preserved. One document's failure never
// prevents processing of the others.
func (p *Processor) ProcessAll(ctx context.Context, docs []*model.Document, parallelism int) ([]*model.Result, [][]Warning) {
	results := make([]*model.Result, len(docs))
	warnings := make([][]Warning, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			results[i], warnings[i] = p.Process(ctx, doc)
			return nil
		})
	}
	// Tasks never return errors; Wait is only the join point.
	_ = g.Wait()

	return results, warnings
}
