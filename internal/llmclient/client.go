// Package llmclient wraps the OpenAI Responses API behind a small
// completion interface. Missing credentials and request failures surface as
// sentinel reply text rather than errors, so callers can classify them with
// the same insufficiency heuristic they apply to any other reply.
package llmclient

// #region imports
import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// #endregion

// #region sentinels

// Sentinel prefixes marking an unavailable backend. These are reply text,
// not errors: the dispatcher's insufficiency heuristic treats them like any
// other low-information reply.
const (
	NoKeyMessage    = "OPENAI_API_KEY not set. Provide a key in the session settings or set the environment variable to enable model responses."
	requestFailed   = "LLM request failed"
	noKeyIndicator  = "OPENAI_API_KEY not set"
	failedIndicator = "LLM request failed"
)

// Unavailable reports whether reply text is one of the backend-unavailable
// sentinels rather than a real completion.
func Unavailable(text string) bool {
	return strings.Contains(text, noKeyIndicator) || strings.Contains(text, failedIndicator)
}

// #endregion

// #region backend

// Backend performs one completion call. The production implementation talks
// to OpenAI; tests inject a stub.
type Backend interface {
	Complete(ctx context.Context, apiKey, system, user string) (string, error)
}

type openaiBackend struct {
	model     string
	maxTokens int64
}

func (b openaiBackend) Complete(ctx context.Context, apiKey, system, user string) (string, error) {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	input := make(responses.ResponseInputParam, 0, 2)
	if system != "" {
		input = append(input, responses.ResponseInputItemParamOfMessage(system, responses.EasyInputMessageRoleSystem))
	}
	input = append(input, responses.ResponseInputItemParamOfMessage(user, responses.EasyInputMessageRoleUser))

	resp, err := client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           shared.ResponsesModel(b.model),
		Input:           responses.ResponseNewParamsInputUnion{OfInputItemList: input},
		MaxOutputTokens: openai.Int(b.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("responses api: %w", err)
	}
	return strings.TrimSpace(resp.OutputText()), nil
}

// #endregion

// #region client

const (
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 400
)

// Client issues completions through a configured backend. Credentials are
// passed per call and never stored; a key given at the call site wins over
// the OPENAI_API_KEY environment variable.
type Client struct {
	backend Backend
}

// New builds a client against the OpenAI backend. The model defaults to
// gpt-4o-mini and can be overridden with LLM_MODEL.
func New() *Client {
	model := defaultModel
	if v := os.Getenv("LLM_MODEL"); v != "" {
		model = v
	}
	return &Client{backend: openaiBackend{model: model, maxTokens: defaultMaxTokens}}
}

// NewWithBackend creates a Client with an injected backend implementation.
// Used for testing without real API calls.
func NewWithBackend(b Backend) *Client {
	return &Client{backend: b}
}

// Complete runs one system+user completion. Unlike Ask it propagates
// failures as errors, for callers that handle them structurally.
func (c *Client) Complete(ctx context.Context, apiKey, system, user string) (string, error) {
	key := apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return "", fmt.Errorf("no api key configured")
	}
	return c.backend.Complete(ctx, key, system, user)
}

// Ask runs one completion and always returns text: a missing key or a
// failed request comes back as sentinel reply text (see Unavailable).
func (c *Client) Ask(ctx context.Context, prompt, apiKey string) string {
	key := apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return NoKeyMessage
	}
	text, err := c.backend.Complete(ctx, key, "", prompt)
	if err != nil {
		return fmt.Sprintf("%s: %v", requestFailed, err)
	}
	return text
}

// #endregion
