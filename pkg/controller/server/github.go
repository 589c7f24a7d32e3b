package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

func (x *handler) connectGitHub(w http.ResponseWriter, r *http.Request) {
	authURL, err := x.uc.GitHubAuthURL(r.Context(), uuid.NewString())
	if err != nil {
		writeError(r.Context(), w, "failed to build GitHub authorization URL", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"status": statusRedirect,
		"url":    authURL,
	})
}

// gitHubCallback exchanges the OAuth code and sends the browser back to the
// frontend. The token travels in the URL fragment so it never reaches server
// access logs.
func (x *handler) gitHubCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeMessage(w, http.StatusBadRequest, "No code provided")
		return
	}

	token, err := x.uc.GitHubCallback(r.Context(), code)
	if err != nil {
		writeError(r.Context(), w, "failed to exchange GitHub code", err)
		return
	}

	fragment := url.Values{"token": {string(token)}}.Encode()
	target := strings.TrimRight(x.cfg.frontendURL, "/") + "/github/connected#" + fragment
	http.Redirect(w, r, target, http.StatusFound)
}

func (x *handler) listRepositories(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	repos, err := x.uc.ListGitHubRepositories(r.Context(), token)
	if err != nil {
		writeError(r.Context(), w, "failed to list repositories", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"status":       statusSuccess,
		"repositories": repos,
	})
}

func (x *handler) getRepository(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	detail, err := x.uc.GetGitHubRepository(r.Context(), token, repoNameFromPath(r))
	if err != nil {
		writeError(r.Context(), w, "failed to get repository", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"status":     statusSuccess,
		"repository": detail,
	})
}
