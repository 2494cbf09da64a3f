package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sakif/codepocket/internal/apperror"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"

	// Explanations are meant for a description field, so the response is
	// capped short.
	explainMaxTokens = 200
)

// Gemini calls Google's Generative Language REST API.
//
// The API surface we need is a single endpoint (models/{model}:generateContent)
// with a small JSON body, so the client is a bare net/http POST — no SDK.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

var _ Assistant = (*Gemini)(nil)

// NewGemini returns an Assistant backed by the Gemini API, or Disabled when
// apiKey is empty. Callers can treat the result uniformly.
func NewGemini(apiKey string) Assistant {
	if apiKey == "" {
		return Disabled{}
	}
	return &Gemini{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Request/response shapes for generateContent. Only the fields we use.
type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens  int    `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Explain asks for a short documentation paragraph describing the code.
func (g *Gemini) Explain(ctx context.Context, code, language string) (string, error) {
	prompt := fmt.Sprintf(
		"Explain what this %s code does in a short, concise paragraph for a developer's documentation: \n\n%s",
		language, code,
	)
	text, err := g.generate(ctx, geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{MaxOutputTokens: explainMaxTokens},
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// SuggestTags asks for 3-5 keyword tags, returned by the model as a JSON
// array of strings. A response that isn't a parseable array degrades to an
// empty list rather than an error — the editor just shows no suggestions.
func (g *Gemini) SuggestTags(ctx context.Context, code string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Suggest 3-5 keywords or tags for this code snippet. Return as a JSON array of strings: \n\n%s",
		code,
	)
	text, err := g.generate(ctx, geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, err
	}

	var tags []string
	if err := json.Unmarshal([]byte(text), &tags); err != nil {
		return []string{}, nil
	}
	return tags, nil
}

// generate performs one generateContent call and returns the first candidate's
// text. Every failure mode collapses to ErrUnavailable — callers never see
// transport details, only "the feature didn't work this time".
func (g *Gemini) generate(ctx context.Context, reqBody geminiRequest) (string, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("assist: marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.baseURL, g.model, url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assist: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", apperror.Unavailable("AI assist")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperror.Unavailable("AI assist")
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperror.Unavailable("AI assist")
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", apperror.Unavailable("AI assist")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
