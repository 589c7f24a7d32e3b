package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
	"github.com/sujeethshingade/docster/pkg/utils/safe"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultTimeout = 120 * time.Second

	defaultTemperature     = 0.1
	defaultTopP            = 0.95
	defaultMaxOutputTokens = 2048
)

// DefaultModels are tried in order; the first one the API knows is kept.
var DefaultModels = []string{"gemini-2.0-flash", "gemini-1.5-flash"}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     types.LLMAPIKey
	models     []string
	current    atomic.Int32
}

var _ interfaces.LLM = (*Client)(nil)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithModels replaces the model fallback list.
func WithModels(models ...string) Option {
	return func(x *Client) {
		if len(models) > 0 {
			x.models = models
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(apiKey types.LLMAPIKey, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Gemini API key is empty")
	}

	client := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		models:     DefaultModels,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

var errModelNotFound = goerr.New("model not found")

// Generate sends prompt as a single user turn and returns the concatenated text
// of the first candidate.
func (x *Client) Generate(ctx context.Context, prompt string) (string, error) {
	for i := int(x.current.Load()); i < len(x.models); i++ {
		text, err := x.generate(ctx, x.models[i], prompt)
		if err == nil {
			if int(x.current.Load()) != i {
				x.current.Store(int32(i))
			}
			return text, nil
		}

		if !errors.Is(err, errModelNotFound) || i == len(x.models)-1 {
			return "", err
		}
		logging.From(ctx).Warn("Gemini model is not available, falling back",
			slog.String("model", x.models[i]),
			slog.String("next", x.models[i+1]),
		)
	}

	return "", goerr.Wrap(types.ErrLLMUnavailable, "no Gemini model is available")
}

func (x *Client) generate(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     defaultTemperature,
			TopP:            defaultTopP,
			MaxOutputTokens: defaultMaxOutputTokens,
		},
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal Gemini request")
	}

	endpoint := x.baseURL + "/v1beta/models/" + url.PathEscape(model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create Gemini request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", string(x.apiKey))

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to send Gemini request", goerr.V("model", model))
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read Gemini response", goerr.V("model", model))
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.Unmarshal(raw, &apiErr)
		if resp.StatusCode == http.StatusNotFound {
			return "", goerr.Wrap(errModelNotFound, "Gemini model not found",
				goerr.V("model", model),
				goerr.V("message", apiErr.Error.Message),
			)
		}
		return "", goerr.New("Gemini API error",
			goerr.V("model", model),
			goerr.V("status", resp.StatusCode),
			goerr.V("message", apiErr.Error.Message),
		)
	}

	var result generateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", goerr.Wrap(err, "failed to decode Gemini response", goerr.V("model", model))
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", goerr.New("prompt was blocked by Gemini", goerr.V("reason", result.PromptFeedback.BlockReason))
	}
	if len(result.Candidates) == 0 {
		return "", goerr.New("Gemini returned no candidates", goerr.V("model", model))
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", goerr.New("Gemini returned empty text",
			goerr.V("model", model),
			goerr.V("finish_reason", result.Candidates[0].FinishReason),
		)
	}

	return sb.String(), nil
}
