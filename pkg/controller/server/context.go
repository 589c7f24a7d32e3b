package server

import (
	"context"

	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

// DetachContext returns a context that is not cancelled with ctx but carries
// over its logging values. Documentation runs use it so a closed connection
// does not abort a run half way through.
func DetachContext(ctx context.Context) context.Context {
	detached := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(detached, ctx)
}
