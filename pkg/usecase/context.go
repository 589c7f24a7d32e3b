package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/repository"
)

// NoDocumentationContext is returned as context when nothing is stored for
// the repository.
const NoDocumentationContext = "No documentation available for this repository."

// GetContext builds the text handed to the LLM when answering query. It
// always starts with the repository header and then adds every file whose
// path or documentation contains one of the query words.
func (x *UseCase) GetContext(ctx context.Context, name types.RepoName, query string) (string, error) {
	if err := name.Validate(); err != nil {
		return "", err
	}

	doc, err := x.clients.DocumentRepository().GetDocumentation(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NoDocumentationContext, nil
		}
		return "", err
	}

	return buildContext(doc, query), nil
}

func buildContext(doc *model.RepositoryDocumentation, query string) string {
	parts := []string{
		"Repository: " + doc.Repository.Name,
		"Description: " + doc.Repository.Description,
		"Summary: " + doc.Repository.Summary,
	}

	keywords := strings.Fields(strings.ToLower(query))
	for _, f := range doc.Files {
		if matchesAny(strings.ToLower(f.FilePath), keywords) || matchesAny(strings.ToLower(f.Documentation), keywords) {
			parts = append(parts, "File: "+f.FilePath, f.Documentation)
		}
	}

	return strings.Join(parts, "\n\n")
}

func matchesAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
