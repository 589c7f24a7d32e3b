package usecase

import (
	"context"

	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

func (x *UseCase) GetDocumentation(ctx context.Context, name types.RepoName) (*model.RepositoryDocumentation, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}
	return x.clients.DocumentRepository().GetDocumentation(ctx, name)
}

// ExportDocumentation renders the stored documentation as Markdown and
// converts it to the requested format.
func (x *UseCase) ExportDocumentation(ctx context.Context, input *model.ExportDocumentationInput) (*model.ExportResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc, err := x.clients.DocumentRepository().GetDocumentation(ctx, input.RepoName)
	if err != nil {
		return nil, err
	}

	data, err := x.clients.Exporter().Export(ctx, RenderMarkdown(doc), input.Format)
	if err != nil {
		return nil, err
	}

	return &model.ExportResult{
		FileName: input.RepoName.ExportFileName(input.Format),
		MimeType: input.Format.MimeType(),
		Data:     data,
	}, nil
}
