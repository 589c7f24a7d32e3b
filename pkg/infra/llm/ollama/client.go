package ollama

import (
	"context"
	"net/url"
	"strings"

	"github.com/JexSrs/go-ollama"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

const (
	DefaultHost  = "http://localhost:11434"
	DefaultModel = "llama3"

	systemPrompt = "You are an expert software engineer who writes clear technical documentation."
)

// Client talks to a local Ollama server.
type Client struct {
	client *ollama.Ollama
	model  string
}

var _ interfaces.LLM = (*Client)(nil)

func New(host, model string) (*Client, error) {
	if host == "" {
		host = DefaultHost
	}
	if model == "" {
		model = DefaultModel
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid Ollama host", goerr.V("host", host), goerr.V("cause", err.Error()))
	}

	return &Client{
		client: ollama.New(*u),
		model:  model,
	}, nil
}

type result struct {
	text string
	err  error
}

// Generate runs a non-streaming completion. The underlying library does not
// take a context, so cancellation only stops waiting for the answer.
func (x *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ch := make(chan result, 1)

	go func() {
		res, err := x.client.Generate(
			x.client.Generate.WithModel(x.model),
			x.client.Generate.WithSystem(systemPrompt),
			x.client.Generate.WithPrompt(prompt),
		)
		if err != nil {
			ch <- result{err: goerr.Wrap(err, "failed to call Ollama generate", goerr.V("model", x.model))}
			return
		}
		if !res.Done {
			ch <- result{err: goerr.New("Ollama response is not complete", goerr.V("model", x.model))}
			return
		}

		text := strings.TrimSpace(res.Response)
		if text == "" {
			ch <- result{err: goerr.New("Ollama returned empty response", goerr.V("model", x.model))}
			return
		}
		ch <- result{text: text}
	}()

	select {
	case <-ctx.Done():
		return "", goerr.Wrap(ctx.Err(), "Ollama generate cancelled")
	case r := <-ch:
		return r.text, r.err
	}
}
