// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package explain asks a hosted language model for a prose analysis of a
// conic. It is optional: the rest of the module works without it.
package explain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/gogpu/conic"
)

// User-facing replies returned by Explain.
const (
	MsgMissingKey = "API Key missing. Cannot fetch analysis."
	MsgFailure    = "An error occurred while communicating with the AI service."
	MsgEmpty      = "No analysis generated."
)

const systemInstruction = "You are a helpful mathematics tutor specializing in geometry and linear algebra."

var (
	// ErrMissingKey is returned when the client has no API key.
	ErrMissingKey = errors.New("explain: missing API key")

	// ErrEmptyResponse is returned when the service answers without text.
	ErrEmptyResponse = errors.New("explain: empty response")
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger. The default is conic.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// Client calls the generateContent endpoint. Each call is independent; a
// Client is safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

// New returns a client for cfg.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: cfg.Timeout}
	}
	if c.log == nil {
		c.log = conic.Logger()
	}
	return c
}

// Prompt builds the request text for c.
func Prompt(c conic.Coefficients) string {
	var b strings.Builder
	b.WriteString("Analyze the conic section defined by the equation:\n")
	fmt.Fprintf(&b, "%vx^2 + %vxy + %vy^2 + %vx + %vy + %v = 0.\n\n",
		c.A11, c.A12, c.A22, c.B1, c.B2, c.C)
	b.WriteString("Please provide a structured analysis in Markdown format:\n")
	b.WriteString("1. **Classification**: Identify if it is an Ellipse, Hyperbola, Parabola, or a degenerate case.\n")
	b.WriteString("2. **Rotation**: Explain how to eliminate the xy term (if present) using the rotation angle formula tan(2θ) = B / (A - C). Calculate the angle.\n")
	b.WriteString("3. **Standard Form**: Provide the approximate standard form equation after rotation and translation.\n")
	b.WriteString("4. **Key Features**: Mention center, vertices, or foci if applicable.\n\n")
	b.WriteString("Keep the response concise and mathematically precise. Use LaTeX formatting for math equations (e.g., $x^2$).\n")
	return b.String()
}

// newGenAI builds a Gemini API client bound to the configured endpoint and
// HTTP client.
func (c *Client) newGenAI(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     c.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.http,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: c.cfg.Endpoint,
		},
	})
}

// Generate performs one generateContent call and returns the generated text.
func (c *Client) Generate(ctx context.Context, coeffs conic.Coefficients) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingKey
	}

	client, err := c.newGenAI(ctx)
	if err != nil {
		return "", fmt.Errorf("explain: new client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(Prompt(coeffs)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(c.cfg.Temperature)),
	})
	if err != nil {
		return "", fmt.Errorf("explain: generate content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Explain is Generate with every failure mapped to a user-facing message.
func (c *Client) Explain(ctx context.Context, coeffs conic.Coefficients) string {
	text, err := c.Generate(ctx, coeffs)
	switch {
	case err == nil:
		return text
	case errors.Is(err, ErrMissingKey):
		c.log.Warn("explain: missing API key")
		return MsgMissingKey
	case errors.Is(err, ErrEmptyResponse):
		return MsgEmpty
	default:
		c.log.Warn("explain: request failed", "err", err)
		return MsgFailure
	}
}
