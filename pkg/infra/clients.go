package infra

import (
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
)

type Clients struct {
	github       interfaces.GitHubFactory
	githubOAuth  interfaces.GitHubOAuth
	llm          interfaces.LLM
	exporter     interfaces.Exporter
	documentRepo interfaces.DocumentRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubFactory {
	return x.github
}
func (x *Clients) GitHubOAuth() interfaces.GitHubOAuth {
	return x.githubOAuth
}
func (x *Clients) LLM() interfaces.LLM {
	return x.llm
}
func (x *Clients) Exporter() interfaces.Exporter {
	return x.exporter
}
func (x *Clients) DocumentRepository() interfaces.DocumentRepository {
	return x.documentRepo
}

func WithGitHub(factory interfaces.GitHubFactory) Option {
	return func(x *Clients) {
		x.github = factory
	}
}

func WithGitHubOAuth(oauth interfaces.GitHubOAuth) Option {
	return func(x *Clients) {
		x.githubOAuth = oauth
	}
}

func WithLLM(llm interfaces.LLM) Option {
	return func(x *Clients) {
		x.llm = llm
	}
}

func WithExporter(exporter interfaces.Exporter) Option {
	return func(x *Clients) {
		x.exporter = exporter
	}
}

func WithDocumentRepository(repo interfaces.DocumentRepository) Option {
	return func(x *Clients) {
		x.documentRepo = repo
	}
}
