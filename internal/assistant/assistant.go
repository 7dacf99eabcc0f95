// Package assistant wraps the Chef Bot text-completion service. The contract
// is deliberately loose: free text in, free text out, and any failure turns
// into a friendly fallback string rather than an error, because the chat UI
// has nothing useful to do with a stack trace.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mtarza13/FlavorDash/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"
)

const (
	fallbackNoKey = "I'm sorry, I'm having trouble connecting to my brain (API Key missing)."
	fallbackEmpty = "I couldn't come up with a tasty answer right now."
	fallbackError = "Oops! I burned the toast. Please try asking again later."
)

const systemInstruction = `You are "Chef Bot", a friendly and knowledgeable AI assistant for a food delivery app called FlavorDash.
Your goal is to help users choose food, explain ingredients, suggest pairings, or give fun food facts.
Keep your answers concise (under 100 words), appetizing, and helpful.

Current App Context (Menu items available):
%s`

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Chef Bot client. An empty apiKey is allowed; Complete
// then answers with the not-configured fallback.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Request/response shapes for the generateContent endpoint, trimmed to the
// fields we use.
type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Complete asks Chef Bot for a reply to userMessage, given a textual snapshot
// of the current menu. It never fails; every error path returns a fallback
// string.
func (c *Client) Complete(ctx context.Context, userMessage, catalogContext string) string {
	if c.apiKey == "" {
		return fallbackNoKey
	}

	if catalogContext == "" {
		catalogContext = "No specific context provided."
	}

	reqBody := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: fmt.Sprintf(systemInstruction, catalogContext)}}},
		Contents:          []content{{Parts: []part{{Text: userMessage}}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		slog.Error("Assistant request encode failed", "error", err)
		return fallbackError
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		slog.Error("Assistant request build failed", "error", err)
		return fallbackError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("Assistant call failed", "error", err)
		return fallbackError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		slog.Error("Assistant call rejected", "status", resp.StatusCode, "body", string(body))
		return fallbackError
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		slog.Error("Assistant response decode failed", "error", err)
		return fallbackError
	}

	text := out.text()
	if text == "" {
		return fallbackEmpty
	}
	return text
}

func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}

// CatalogContext renders the menu snapshot handed to Chef Bot, one line per
// product.
func CatalogContext(products []models.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s ($%.2f) - %s", p.Name, p.Price, p.Description))
	}
	return strings.Join(lines, "\n")
}
