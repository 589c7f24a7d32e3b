package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/domain/mock"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/infra"
	"github.com/sujeethshingade/docster/pkg/repository"
	"github.com/sujeethshingade/docster/pkg/repository/memory"
	"github.com/sujeethshingade/docster/pkg/usecase"
)

func TestExportDocumentation(t *testing.T) {
	ctx := testContext()
	repo := memory.New()
	doc := newStoredDocumentation()
	gt.NoError(t, repo.PutDocumentation(ctx, doc, usecase.RenderMarkdown(doc)))

	exporter := &mock.ExporterMock{
		ExportFunc: func(ctx context.Context, markdown string, format types.ExportFormat) ([]byte, error) {
			return []byte("binary:" + string(format)), nil
		},
	}
	uc := usecase.New(infra.New(
		infra.WithDocumentRepository(repo),
		infra.WithExporter(exporter),
	))

	t.Run("pdf", func(t *testing.T) {
		result := gt.R1(uc.ExportDocumentation(ctx, &model.ExportDocumentationInput{
			RepoName: testRepoName,
			Format:   types.ExportFormatPDF,
		})).NoError(t)

		gt.V(t, result.FileName).Equal("octo_hello_documentation.pdf")
		gt.V(t, result.MimeType).Equal("application/pdf")
		gt.V(t, string(result.Data)).Equal("binary:pdf")

		calls := exporter.ExportCalls()
		gt.V(t, calls[len(calls)-1].Markdown).Equal(usecase.RenderMarkdown(doc))
	})

	t.Run("docx", func(t *testing.T) {
		result := gt.R1(uc.ExportDocumentation(ctx, &model.ExportDocumentationInput{
			RepoName: testRepoName,
			Format:   types.ExportFormatDOCX,
		})).NoError(t)
		gt.V(t, result.FileName).Equal("octo_hello_documentation.docx")
	})

	t.Run("unsupported format is rejected before reading the store", func(t *testing.T) {
		before := len(exporter.ExportCalls())
		_, err := uc.ExportDocumentation(ctx, &model.ExportDocumentationInput{
			RepoName: testRepoName,
			Format:   "html",
		})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(exporter.ExportCalls())).Equal(before)
	})

	t.Run("missing documentation", func(t *testing.T) {
		_, err := uc.ExportDocumentation(ctx, &model.ExportDocumentationInput{
			RepoName: "octo/other",
			Format:   types.ExportFormatPDF,
		})
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestGetDocumentation(t *testing.T) {
	ctx := testContext()
	repo := memory.New()
	gt.NoError(t, repo.PutDocumentation(ctx, newStoredDocumentation(), "md"))
	uc := usecase.New(infra.New(infra.WithDocumentRepository(repo)))

	doc := gt.R1(uc.GetDocumentation(ctx, testRepoName)).NoError(t)
	gt.V(t, len(doc.Files)).Equal(3)

	_, err := uc.GetDocumentation(ctx, "octo/other")
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = uc.GetDocumentation(ctx, "../etc")
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}
