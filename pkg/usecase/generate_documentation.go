package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
	"github.com/sujeethshingade/docster/pkg/utils/retry"
	"golang.org/x/sync/errgroup"
)

// GenerateDocumentation walks the repository, documents every important file
// and stores the result. Failures of a single file are reported in Skipped and
// do not fail the run. Nothing is stored when the run fails.
func (x *UseCase) GenerateDocumentation(ctx context.Context, input *model.GenerateDocumentationInput) (*model.GenerationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh, err := x.clients.GitHub().New(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	user, err := gh.GetAuthenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	repo, err := gh.GetRepository(ctx, input.RepoName)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithAttrs(ctx, slog.String("repo", input.RepoName.String()))
	logger := logging.From(ctx)
	logger.Info("start generating documentation", slog.String("user", user.Login))

	structure, err := buildTree(ctx, gh, input.RepoName, "")
	if err != nil {
		return nil, err
	}

	summary, err := x.summarizeRepository(ctx, repo, structure)
	if err != nil {
		return nil, err
	}

	paths, err := listImportantFiles(ctx, gh, input.RepoName, "")
	if err != nil {
		return nil, err
	}
	logger.Debug("selected important files", slog.Int("count", len(paths)))

	results := x.documentFiles(ctx, gh, input.RepoName, paths)

	// Keyed by the requested name. GitHub may report another spelling.
	doc := &model.RepositoryDocumentation{
		Repository: model.RepositoryInfo{
			Name:        repo.Name,
			Owner:       repo.OwnerLogin,
			URL:         repo.URL,
			Description: repo.Description,
			Summary:     summary,
		},
		Files:       []*model.FileDocumentation{},
		GeneratedAt: logging.CtxTime(ctx),
		Key:         input.RepoName,
	}

	var skipped []*model.SkippedFile
	var sources []*analyzedFile
	for _, r := range results {
		if r.content != nil {
			sources = append(sources, &analyzedFile{File: r.path, Content: r.content})
		}
		if r.err != nil {
			logger.Warn("skip file", slog.String("path", r.path), slog.Any("error", r.err))
			skipped = append(skipped, &model.SkippedFile{FilePath: r.path, Reason: skipReason(r.err)})
			continue
		}
		doc.Files = append(doc.Files, r.doc)
	}

	if input.WithDiagram {
		doc.Diagrams = &model.Diagrams{
			Flow: x.generateDiagram(ctx, repo.Name, structure, sources),
		}
	}

	if err := x.clients.DocumentRepository().PutDocumentation(ctx, doc, RenderMarkdown(doc)); err != nil {
		return nil, err
	}

	logger.Info("documentation generated",
		slog.Int("files", len(doc.Files)),
		slog.Int("skipped", len(skipped)),
	)

	return &model.GenerationResult{
		Documentation: doc,
		Skipped:       skipped,
	}, nil
}

// GenerateFileDocumentation documents one file without storing it.
func (x *UseCase) GenerateFileDocumentation(ctx context.Context, input *model.GenerateFileDocumentationInput) (*model.FileDocumentation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh, err := x.clients.GitHub().New(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	doc, _, err := x.documentFile(ctx, gh, input.RepoName, input.FilePath)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

type fileResult struct {
	path    string
	doc     *model.FileDocumentation
	content *string
	err     error
}

// documentFiles runs documentFile for every path with at most
// fileConcurrency files in flight. Results keep the order of paths.
func (x *UseCase) documentFiles(ctx context.Context, gh interfaces.GitHub, repo types.RepoName, paths []string) []*fileResult {
	results := make([]*fileResult, len(paths))

	var eg errgroup.Group
	eg.SetLimit(x.fileConcurrency)
	for i, p := range paths {
		eg.Go(func() error {
			doc, content, err := x.documentFile(ctx, gh, repo, p)
			results[i] = &fileResult{path: p, doc: doc, content: content, err: err}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// documentFile fetches one file and asks the LLM to document it. The decoded
// content is returned even when the LLM fails so it can feed the diagram.
func (x *UseCase) documentFile(ctx context.Context, gh interfaces.GitHub, repo types.RepoName, filePath string) (*model.FileDocumentation, *string, error) {
	contents, err := gh.GetContents(ctx, repo, filePath)
	if err != nil {
		return nil, nil, err
	}
	if !contents.IsFile() {
		return nil, nil, goerr.Wrap(types.ErrNotAFile, "path is not a file", goerr.V("path", filePath))
	}
	if !utf8.Valid(contents.File.Data) {
		return nil, nil, goerr.Wrap(types.ErrNotUTF8, "file is not UTF-8 text", goerr.V("path", filePath))
	}
	code := string(contents.File.Data)

	prompt, err := x.prompts.render(PromptCode, codePrompt{FilePath: filePath, Code: code})
	if err != nil {
		return nil, &code, err
	}

	text, err := x.generate(ctx, prompt)
	if err != nil {
		return nil, &code, goerr.Wrap(err, "failed to document file", goerr.V("path", filePath))
	}

	return &model.FileDocumentation{
		FilePath:      filePath,
		Documentation: text,
		GeneratedAt:   logging.CtxTime(ctx),
	}, &code, nil
}

func (x *UseCase) summarizeRepository(ctx context.Context, repo *model.GitHubRepository, structure []*model.TreeEntry) (string, error) {
	raw, err := json.MarshalIndent(structure, "", "  ")
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal repository structure")
	}

	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	prompt, err := x.prompts.render(PromptSummary, summaryPrompt{
		Name:        repo.Name,
		Description: repo.Description,
		Language:    repo.Language,
		Topics:      topics,
		Structure:   string(raw),
	})
	if err != nil {
		return "", err
	}

	summary, err := x.generate(ctx, prompt)
	if err != nil {
		return "", goerr.Wrap(err, "failed to summarize repository", goerr.V("repo", repo.FullName))
	}
	return summary, nil
}

// generate sends prompt to the LLM through the retry policy. Exhaustion is
// reported as ErrLLMUnavailable while keeping the last cause.
func (x *UseCase) generate(ctx context.Context, prompt string) (string, error) {
	text, err := retry.Do(ctx, x.retry, func(ctx context.Context) (string, error) {
		return x.clients.LLM().Generate(ctx, prompt)
	})
	if err != nil {
		return "", goerr.Wrap(errors.Join(types.ErrLLMUnavailable, err), "LLM request failed")
	}
	return text, nil
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, types.ErrNotAFile):
		return "path is a directory"
	case errors.Is(err, types.ErrNotUTF8):
		return "content is not UTF-8 text"
	case errors.Is(err, types.ErrLLMUnavailable):
		return "documentation generation failed"
	default:
		return "failed to fetch file"
	}
}
