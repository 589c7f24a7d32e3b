package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/repository"
	"github.com/sujeethshingade/docster/pkg/utils/errutil"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

const (
	statusSuccess  = "success"
	statusError    = "error"
	statusRedirect = "redirect"
)

const maxRequestBody = 1 << 20

type response map[string]any

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The body is JSON encoded or produced by the exporter
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, body response) {
	raw, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusInternalServerError, []byte(`{"status":"error","message":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, response{
		"status":  statusError,
		"message": msg,
	})
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrValidationFailed),
		errors.Is(err, types.ErrNotAFile),
		errors.Is(err, types.ErrNotADirectory),
		errors.Is(err, types.ErrNotUTF8),
		errors.Is(err, repository.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrRepositoryNotFound),
		errors.Is(err, types.ErrNoDocumentation),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrLLMUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with the status of err. Client errors carry the error
// message, server errors are reported and answered with a generic message.
func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	code := errorStatus(err)

	switch {
	case code == http.StatusServiceUnavailable:
		logging.From(ctx).Warn(msg, slog.Any("error", err))
		writeMessage(w, code, "LLM service is unavailable, please try again later")

	case code >= http.StatusInternalServerError:
		errutil.HandleError(ctx, msg, err)
		writeMessage(w, code, "internal server error")

	default:
		logging.From(ctx).Info(msg, slog.Any("error", err))
		writeMessage(w, code, err.Error())
	}
}

func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "failed to read request body", goerr.V("error", err.Error()))
	}
	if len(body) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "missing request data")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid JSON body", goerr.V("error", err.Error()))
	}
	return nil
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) types.GitHubToken {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return ""
	}
	return types.GitHubToken(strings.TrimSpace(token))
}

func repoNameFromPath(r *http.Request) types.RepoName {
	return types.RepoName(chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "repo"))
}
