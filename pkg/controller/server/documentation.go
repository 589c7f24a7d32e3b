package server

import (
	"context"
	"mime"
	"net/http"
	"strings"

	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

// generateRequest draws the flow diagram unless with_diagram is false.
type generateRequest struct {
	RepoName    types.RepoName `json:"repo_name"`
	WithDiagram *bool          `json:"with_diagram"`
}

func (x *generateRequest) withDiagram() bool {
	return x.WithDiagram == nil || *x.WithDiagram
}

func (x *handler) generateDocumentation(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, "invalid generate request", err)
		return
	}
	if req.RepoName == "" {
		writeMessage(w, http.StatusBadRequest, "Repository name is required")
		return
	}

	token := bearerToken(r)
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, "GitHub authentication required. Please connect to GitHub first.")
		return
	}

	ctx := DetachContext(r.Context())
	if x.cfg.generationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.cfg.generationTimeout)
		defer cancel()
	}

	result, err := x.uc.GenerateDocumentation(ctx, &model.GenerateDocumentationInput{
		RepoName:    req.RepoName,
		Token:       token,
		WithDiagram: req.withDiagram(),
	})
	if err != nil {
		writeError(r.Context(), w, "failed to generate documentation", err)
		return
	}

	skipped := result.Skipped
	if skipped == nil {
		skipped = []*model.SkippedFile{}
	}

	writeJSON(w, http.StatusOK, response{
		"status":        statusSuccess,
		"message":       "Documentation generated successfully",
		"documentation": result.Documentation,
		"skipped":       skipped,
	})
}

func (x *handler) getDocumentation(w http.ResponseWriter, r *http.Request) {
	doc, err := x.uc.GetDocumentation(r.Context(), repoNameFromPath(r))
	if err != nil {
		writeError(r.Context(), w, "failed to get documentation", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"status":        statusSuccess,
		"documentation": doc,
	})
}

type exportRequest struct {
	RepoName types.RepoName `json:"repo_name"`
	Format   string         `json:"format"`
}

// exportDocumentation reads repo_name and format from the query on GET and
// from the form or a JSON body on POST. format defaults to pdf.
func (x *handler) exportDocumentation(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if r.Method == http.MethodPost && isJSON(r) {
		if err := decodeJSON(r, &req); err != nil {
			writeError(r.Context(), w, "invalid export request", err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid form data")
			return
		}
		req.RepoName = types.RepoName(r.Form.Get("repo_name"))
		req.Format = r.Form.Get("format")
	}

	repoName := req.RepoName
	if repoName == "" {
		writeMessage(w, http.StatusBadRequest, "Repository name is required")
		return
	}

	format := types.ExportFormat(strings.ToLower(req.Format))
	if format == "" {
		format = types.ExportFormatPDF
	}
	if err := format.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, "Unsupported format. Supported formats: pdf, docx")
		return
	}

	result, err := x.uc.ExportDocumentation(r.Context(), &model.ExportDocumentationInput{
		RepoName: repoName,
		Format:   format,
	})
	if err != nil {
		writeError(r.Context(), w, "failed to export documentation", err)
		return
	}

	w.Header().Set("Content-Type", result.MimeType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": result.FileName,
	}))
	safeWrite(w, http.StatusOK, result.Data)
}

type fileDocumentationRequest struct {
	RepoName types.RepoName `json:"repo_name"`
	FilePath string         `json:"file_path"`
}

func (x *handler) generateFileDocumentation(w http.ResponseWriter, r *http.Request) {
	var req fileDocumentationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, "invalid file documentation request", err)
		return
	}
	if req.RepoName == "" || req.FilePath == "" {
		writeMessage(w, http.StatusBadRequest, "Repository name and file path are required")
		return
	}

	token := bearerToken(r)
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, "GitHub authentication required. Please connect to GitHub first.")
		return
	}

	doc, err := x.uc.GenerateFileDocumentation(r.Context(), &model.GenerateFileDocumentationInput{
		RepoName: req.RepoName,
		Token:    token,
		FilePath: req.FilePath,
	})
	if err != nil {
		writeError(r.Context(), w, "failed to generate file documentation", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"status":        statusSuccess,
		"documentation": doc,
	})
}
