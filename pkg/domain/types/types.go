package types

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type (
	GitHubToken        string
	OAuthClientID      string
	OAuthClientSecret  string
	LLMAPIKey          string
	RequestID          string
	ExportFormat       string
	ContentKind        string
	TreeEntryType      string
	RepoName           string
	FilePath           string
	LLMProvider        string
	StorageBackendName string
)

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatDOCX ExportFormat = "docx"
)

const (
	ContentKindFile      ContentKind = "file"
	ContentKindDirectory ContentKind = "directory"
)

const (
	TreeEntryFile      TreeEntryType = "file"
	TreeEntryDirectory TreeEntryType = "directory"
)

const (
	LLMProviderGemini LLMProvider = "gemini"
	LLMProviderOllama LLMProvider = "ollama"
)

const (
	StorageFilesystem StorageBackendName = "fs"
	StorageMemory     StorageBackendName = "memory"
	StorageFirestore  StorageBackendName = "firestore"
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x OAuthClientSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x OAuthClientSecret) String() string {
	return "***********"
}

func (x LLMAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x LLMAPIKey) String() string {
	return "***********"
}

var ptnRepoSegment = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// Validate checks that the name is "owner/repo" with two GitHub-safe segments.
func (x RepoName) Validate() error {
	parts := strings.Split(string(x), "/")
	if len(parts) != 2 {
		return goerr.Wrap(ErrValidationFailed, "repository name must be owner/repo", goerr.V("repo_name", x))
	}

	for _, p := range parts {
		if !ptnRepoSegment.MatchString(p) || p == "." || p == ".." {
			return goerr.Wrap(ErrValidationFailed, "invalid repository name", goerr.V("repo_name", x))
		}
	}

	return nil
}

// Owner returns the part before the slash. Call Validate first.
func (x RepoName) Owner() string {
	owner, _, _ := strings.Cut(string(x), "/")
	return owner
}

// Name returns the part after the slash. Call Validate first.
func (x RepoName) Name() string {
	_, name, _ := strings.Cut(string(x), "/")
	return name
}

// StorageKey maps the repository name to a single path segment. The mapping
// is injective, so "a_b/c" and "a/b_c" never share a key.
func (x RepoName) StorageKey() string {
	return url.PathEscape(string(x))
}

// ExportFileName is the attachment name used for exports, e.g.
// "octo_hello_documentation.pdf".
func (x RepoName) ExportFileName(format ExportFormat) string {
	return strings.ReplaceAll(string(x), "/", "_") + "_documentation." + string(format)
}

func (x RepoName) String() string {
	return string(x)
}

func (x ExportFormat) Validate() error {
	switch x {
	case ExportFormatPDF, ExportFormatDOCX:
		return nil
	default:
		return goerr.Wrap(ErrValidationFailed, "unsupported export format", goerr.V("format", x))
	}
}

func (x ExportFormat) MimeType() string {
	switch x {
	case ExportFormatPDF:
		return "application/pdf"
	case ExportFormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

func (x LLMProvider) Validate() error {
	switch x {
	case LLMProviderGemini, LLMProviderOllama:
		return nil
	default:
		return goerr.Wrap(ErrInvalidOption, "unsupported LLM provider", goerr.V("provider", x))
	}
}
