package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

type GenerateDocumentationInput struct {
	RepoName    types.RepoName
	Token       types.GitHubToken
	WithDiagram bool
}

func (x *GenerateDocumentationInput) Validate() error {
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is required")
	}
	if err := x.RepoName.Validate(); err != nil {
		return err
	}
	if x.Token == "" {
		return goerr.Wrap(types.ErrUnauthorized, "GitHub token is required")
	}
	return nil
}

type GenerateFileDocumentationInput struct {
	RepoName types.RepoName
	Token    types.GitHubToken
	FilePath string
}

func (x *GenerateFileDocumentationInput) Validate() error {
	if x.RepoName == "" || x.FilePath == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name and file path are required")
	}
	if err := x.RepoName.Validate(); err != nil {
		return err
	}
	if err := validateFilePath(x.FilePath); err != nil {
		return err
	}
	if x.Token == "" {
		return goerr.Wrap(types.ErrUnauthorized, "GitHub token is required")
	}
	return nil
}

type AnswerQuestionInput struct {
	RepoName types.RepoName
	Question string
}

func (x *AnswerQuestionInput) Validate() error {
	if x.RepoName == "" || strings.TrimSpace(x.Question) == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name and question are required")
	}
	return x.RepoName.Validate()
}

type RequestUpdateInput struct {
	RepoName   types.RepoName
	FilePath   string
	Suggestion string
}

func (x *RequestUpdateInput) Validate() error {
	if x.RepoName == "" || x.FilePath == "" || x.Suggestion == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name, file path and suggestion are required")
	}
	if err := x.RepoName.Validate(); err != nil {
		return err
	}
	return validateFilePath(x.FilePath)
}

type ExportDocumentationInput struct {
	RepoName types.RepoName
	Format   types.ExportFormat
}

func (x *ExportDocumentationInput) Validate() error {
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is required")
	}
	if err := x.RepoName.Validate(); err != nil {
		return err
	}
	return x.Format.Validate()
}

func validateFilePath(p string) error {
	if strings.HasPrefix(p, "/") {
		return goerr.Wrap(types.ErrValidationFailed, "file path must be relative", goerr.V("file_path", p))
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return goerr.Wrap(types.ErrValidationFailed, "file path must not contain '..'", goerr.V("file_path", p))
		}
	}
	return nil
}
