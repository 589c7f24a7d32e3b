package server

import (
	"net/http"
	"strings"

	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

type queryRequest struct {
	RepoName types.RepoName `json:"repo_name"`
	Question string         `json:"question"`
}

func (x *handler) query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, "invalid query request", err)
		return
	}
	if req.RepoName == "" || strings.TrimSpace(req.Question) == "" {
		writeMessage(w, http.StatusBadRequest, "Repository name and question are required")
		return
	}

	conv, err := x.uc.AnswerQuestion(r.Context(), &model.AnswerQuestionInput{
		RepoName: req.RepoName,
		Question: req.Question,
	})
	if err != nil {
		writeError(r.Context(), w, "failed to answer question", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"status":   statusSuccess,
		"response": conv,
	})
}

type updateRequest struct {
	RepoName   types.RepoName `json:"repo_name"`
	FilePath   string         `json:"file_path"`
	Suggestion string         `json:"suggestion"`
}

func (x *handler) requestUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, "invalid update request", err)
		return
	}
	if req.RepoName == "" || req.FilePath == "" || req.Suggestion == "" {
		writeMessage(w, http.StatusBadRequest, "Repository name, file path, and suggestion are required")
		return
	}
	if bearerToken(r) == "" {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	result, err := x.uc.RequestDocumentationUpdate(r.Context(), &model.RequestUpdateInput{
		RepoName:   req.RepoName,
		FilePath:   req.FilePath,
		Suggestion: req.Suggestion,
	})
	if err != nil {
		writeError(r.Context(), w, "failed to request documentation update", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"status":   statusSuccess,
		"response": result,
	})
}

type contextRequest struct {
	RepoName types.RepoName `json:"repo_name"`
	Query    string         `json:"query"`
}

func (x *handler) getContext(w http.ResponseWriter, r *http.Request) {
	var req contextRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, "invalid context request", err)
		return
	}
	if req.RepoName == "" || req.Query == "" {
		writeMessage(w, http.StatusBadRequest, "Repository name and query are required")
		return
	}

	docContext, err := x.uc.GetContext(r.Context(), req.RepoName, req.Query)
	if err != nil {
		writeError(r.Context(), w, "failed to get context", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"status":  statusSuccess,
		"context": docContext,
	})
}

func (x *handler) history(w http.ResponseWriter, r *http.Request) {
	convs, err := x.uc.ListConversations(r.Context(), repoNameFromPath(r))
	if err != nil {
		writeError(r.Context(), w, "failed to list conversations", err)
		return
	}
	if convs == nil {
		convs = []*model.Conversation{}
	}

	writeJSON(w, http.StatusOK, response{
		"status":        statusSuccess,
		"conversations": convs,
	})
}
