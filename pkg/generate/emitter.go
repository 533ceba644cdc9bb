package generate

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Emitter writes samples drawn from a distribution as "label,value" lines,
// the input format of the summarize pipeline.
type Emitter struct {
	Label string
	Dist  Distribution

	// Limiter throttles emission to simulate a live stream. Nil means emit
	// as fast as the writer accepts.
	Limiter *rate.Limiter
}

// Emit writes count samples to w, advancing the distribution once per
// sample. It returns early if ctx is canceled while waiting on the limiter.
func (e *Emitter) Emit(ctx context.Context, w io.Writer, count uint64) error {
	for i := uint64(0); i < count; i++ {
		if e.Limiter != nil {
			if err := e.Limiter.Wait(ctx); err != nil {
				return errors.Wrap(err, "sample emission interrupted")
			}
		}

		if _, err := fmt.Fprintf(w, "%s,%v\n", e.Label, e.Dist.Get()); err != nil {
			return errors.Wrapf(err, "cannot write sample %d", i)
		}
		e.Dist.Advance()
	}
	return nil
}
