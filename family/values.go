package family

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Values evaluates every function at every grid point and returns the
// sample matrix (nPoints, nFunctions): entry (j, i) is fns[i] applied to
// grid row j.
func Values(fns []PointFunc, points *mat.Dense) *mat.Dense {
	rows, _ := points.Dims()
	values := mat.NewDense(rows, len(fns), nil)
	for j := 0; j < rows; j++ {
		point := points.RawRowView(j)
		for i, fn := range fns {
			values.Set(j, i, fn(point))
		}
	}
	return values
}

// ValuesContext is Values with the grid rows partitioned across up to
// workers goroutines. Every cell is an independent pure evaluation, so the
// result is identical to Values.
//
// workers <= 1 falls back to the serial path and never returns an error
// other than ctx's.
func ValuesContext(ctx context.Context, fns []PointFunc, points *mat.Dense, workers int) (*mat.Dense, error) {
	rows, _ := points.Dims()
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Values(fns, points), nil
	}

	values := mat.NewDense(rows, len(fns), nil)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (rows + workers - 1) / workers
	for start := 0; start < rows; start += chunk {
		start, end := start, min(start+chunk, rows)
		g.Go(func() error {
			for j := start; j < end; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				point := points.RawRowView(j)
				for i, fn := range fns {
					// Row ranges are disjoint, so concurrent Set is safe.
					values.Set(j, i, fn(point))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
