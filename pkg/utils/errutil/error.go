package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

// HandleError logs err and reports it to Sentry with the goerr values as
// extras. Canceled requests are only logged.
func HandleError(ctx context.Context, msg string, err error) {
	if errors.Is(err, context.Canceled) {
		logging.From(ctx).Warn(msg, "error", err)
		return
	}

	// Sending error to Sentry
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if reqID, ok := logging.RequestID(ctx); ok {
			scope.SetTag("request_id", string(reqID))
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
