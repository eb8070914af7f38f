// Package suggest asks a Google Gen AI model to propose a base colour for
// a textual prompt ("a calm nordic winter morning"), which then feeds the
// harmony generator like any hand-picked hex value.
package suggest

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/genai"

	"github.com/jmylchreest/huegen/internal/colour"
)

// DefaultModel is the text model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Options configures a suggestion request.
type Options struct {
	Model   string
	Backend string // "gemini-api" (default) or "vertex-ai"
	Logger  hclog.Logger
}

// hexInText finds the first 6-digit hex colour in a model response.
var hexInText = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)

// Suggest returns a base colour for prompt as a canonical "#RRGGBB"
// string. The Gemini API backend requires GOOGLE_API_KEY.
func Suggest(ctx context.Context, prompt string, opts Options) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt must not be empty")
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	client, err := newClient(ctx, opts.Backend)
	if err != nil {
		return "", err
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	instruction := "You pick one colour that best evokes a description. " +
		"Respond with exactly one 6-digit hex colour code like #1A2B3C and nothing else."

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType:  "text/plain",
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
	}

	logger.Debug("requesting colour suggestion", "model", model, "prompt", prompt)
	response, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("colour suggestion failed: %w", err)
	}

	text := response.Text()
	match := hexInText.FindString(text)
	if match == "" {
		return "", fmt.Errorf("model returned no hex colour (got %q)", strings.TrimSpace(text))
	}

	canonical, ok := colour.CanonicalHex(match)
	if !ok {
		return "", fmt.Errorf("model returned an unusable colour %q", match)
	}
	logger.Debug("model suggested colour", "hex", canonical)
	return canonical, nil
}

// newClient builds a Gen AI client for the chosen backend.
func newClient(ctx context.Context, backend string) (*genai.Client, error) {
	clientConfig := &genai.ClientConfig{}

	if backend == "vertex-ai" {
		clientConfig.Backend = genai.BackendVertexAI
	} else {
		clientConfig.Backend = genai.BackendGeminiAPI
	}

	if clientConfig.Backend == genai.BackendGeminiAPI {
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required\nGet one at: https://aistudio.google.com/api-keys")
		}
		clientConfig.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}
	return client, nil
}
