package usecase

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	PromptCode     = "code"
	PromptSummary  = "summary"
	PromptQuestion = "question"
	PromptDiagram  = "diagram"
)

var promptNames = []string{PromptCode, PromptSummary, PromptQuestion, PromptDiagram}

var promptFuncs = template.FuncMap{
	"join": strings.Join,
}

// Prompts holds the parsed templates used to build LLM requests.
type Prompts struct {
	templates map[string]*template.Template
}

var defaultPrompts = mustParsePrompts()

func mustParsePrompts() *Prompts {
	p, err := ParsePrompts(nil)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePrompts parses the embedded templates, replacing any whose name is a
// key of overrides. Unknown override names are rejected.
func ParsePrompts(overrides map[string]string) (*Prompts, error) {
	known := make(map[string]bool, len(promptNames))
	for _, name := range promptNames {
		known[name] = true
	}
	for name := range overrides {
		if !known[name] {
			return nil, goerr.Wrap(types.ErrInvalidOption, "unknown prompt name", goerr.V("name", name))
		}
	}

	p := &Prompts{templates: make(map[string]*template.Template, len(promptNames))}
	for _, name := range promptNames {
		text, ok := overrides[name]
		if !ok {
			raw, err := templateFS.ReadFile("templates/" + name + ".tmpl")
			if err != nil {
				return nil, goerr.Wrap(err, "failed to read embedded prompt", goerr.V("name", name))
			}
			text = string(raw)
		}

		tmpl, err := template.New(name).Funcs(promptFuncs).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse prompt", goerr.V("name", name), goerr.V("error", err.Error()))
		}
		p.templates[name] = tmpl
	}

	return p, nil
}

func (x *Prompts) render(name string, data any) (string, error) {
	tmpl, ok := x.templates[name]
	if !ok {
		return "", goerr.New("prompt not found", goerr.V("name", name))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render prompt", goerr.V("name", name))
	}
	return buf.String(), nil
}

type codePrompt struct {
	FilePath string
	Code     string
}

type summaryPrompt struct {
	Name        string
	Description string
	Language    string
	Topics      []string
	Structure   string
}

type questionPrompt struct {
	Context  string
	Question string
}

type diagramPrompt struct {
	Analysis string
}
