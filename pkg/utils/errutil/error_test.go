package errutil_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/utils/errutil"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

func newCtx(t *testing.T) (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := gt.R1(logging.New("json", "info", &buf)).NoError(t)
	_, ctx := logging.CtxRequestID(logging.With(context.Background(), logger))
	return ctx, &buf
}

func TestHandleError(t *testing.T) {
	t.Run("goerr with values", func(t *testing.T) {
		ctx, buf := newCtx(t)
		err := goerr.Wrap(errors.New("boom"), "failed to store documentation", goerr.V("repo", "octo/hello"))

		errutil.HandleError(ctx, "generation failed", err)

		gt.S(t, buf.String()).Contains(`"level":"ERROR"`)
		gt.S(t, buf.String()).Contains("generation failed")
	})

	t.Run("canceled request is a warning", func(t *testing.T) {
		ctx, buf := newCtx(t)
		err := goerr.Wrap(context.Canceled, "client went away")

		errutil.HandleError(ctx, "generation canceled", err)

		gt.S(t, buf.String()).Contains(`"level":"WARN"`)
		gt.S(t, buf.String()).NotContains(`"level":"ERROR"`)
	})

	t.Run("nil error", func(t *testing.T) {
		ctx, _ := newCtx(t)

		// Should not panic
		errutil.HandleError(ctx, "test message", nil)
	})
}
