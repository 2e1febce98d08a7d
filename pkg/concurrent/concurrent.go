package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Span is a half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Split cuts [0, n) into at most parts contiguous spans of near equal length.
// Spans never overlap and together cover every index exactly once.
func Split(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	spans := make([]Span, 0, parts)
	size, rest := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < rest {
			hi++
		}
		spans = append(spans, Span{Lo: lo, Hi: hi})
		lo = hi
	}
	return spans
}

// Chunks runs action once per span of Split(n, workers), each in its own goroutine.
// It waits for all goroutines to finish and returns the first error encountered.
// The context passed to action is canceled as soon as one action fails.
func Chunks(ctx context.Context, n, workers int, action func(ctx context.Context, span Span) error) error {
	errGroup, ctx := errgroup.WithContext(ctx)
	for _, span := range Split(n, workers) {
		errGroup.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return action(ctx, span)
		})
	}
	return errGroup.Wait()
}
