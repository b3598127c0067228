// Package generator implements the optional model-backed brief path: it asks
// a DeepSeek chat model for a schema-conforming JSON report and falls back to
// the deterministic assembler on any failure. Callers always receive a valid
// report plus a provenance note; failures are never propagated.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/marketbrief/marketbrief/internal/assembler"
	"github.com/marketbrief/marketbrief/internal/config"
	"github.com/marketbrief/marketbrief/internal/models"
)

// Engine identifies which path produced a report.
type Engine string

const (
	EngineDeterministic Engine = "deterministic"
	EngineModel         Engine = "model"
	EngineFallback      Engine = "fallback"
)

// Provenance discloses which path produced a report and why. It is display
// metadata, never a failure signal.
type Provenance struct {
	Engine Engine `json:"engine"`
	Model  string `json:"model,omitempty"`
	Note   string `json:"note"`
}

// ChatCompleter is the slice of the OpenAI-compatible client surface the
// generator depends on.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator produces briefs, preferring the configured model and degrading
// to the deterministic assembler.
type Generator struct {
	cfg    config.DeepSeekConfig
	client ChatCompleter
	logger *slog.Logger
}

// New constructs a Generator. When the DeepSeek key is absent no client is
// created and every call takes the deterministic path.
func New(cfg config.DeepSeekConfig, logger *slog.Logger) *Generator {
	var client ChatCompleter
	if cfg.Enabled() {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		clientConfig.BaseURL = cfg.BaseURL
		client = openai.NewClientWithConfig(clientConfig)
	}
	return &Generator{cfg: cfg, client: client, logger: logger}
}

// NewWithClient constructs a Generator around an externally supplied
// completer. Used by tests and custom transports.
func NewWithClient(cfg config.DeepSeekConfig, client ChatCompleter, logger *slog.Logger) *Generator {
	return &Generator{cfg: cfg, client: client, logger: logger}
}

// Deterministic builds a brief through the rule-based engine only.
func (g *Generator) Deterministic(input models.EventInput) (models.Report, Provenance) {
	return assembler.Build(input), Provenance{
		Engine: EngineDeterministic,
		Note:   "Deterministic rule-based template.",
	}
}

// Generate attempts the model-backed path and falls back to the deterministic
// engine on any failure, appending one disclosure line to the fallback
// report's summary insights.
func (g *Generator) Generate(ctx context.Context, input models.EventInput) (models.Report, Provenance) {
	if !g.cfg.Enabled() || g.client == nil {
		return assembler.Build(input), Provenance{
			Engine: EngineDeterministic,
			Note:   "DeepSeek disabled; using rule-based template.",
		}
	}

	report, err := g.callModel(ctx, input)
	if err != nil {
		g.logger.Warn("model generation failed, reverting to deterministic engine",
			"model", g.cfg.Model,
			"error", err)

		fallback := assembler.Build(input)
		fallback.SummaryInsights = append(fallback.SummaryInsights,
			"LLM generation unavailable—displaying deterministic template output for review.")
		return fallback, Provenance{
			Engine: EngineFallback,
			Model:  g.cfg.Model,
			Note:   fmt.Sprintf("DeepSeek request failed (%v); reverted to rule-based template.", err),
		}
	}

	g.logger.Info("model generation succeeded",
		"model", g.cfg.Model,
		"opportunities", len(report.Opportunities))

	return report, Provenance{
		Engine: EngineModel,
		Model:  g.cfg.Model,
		Note:   fmt.Sprintf("DeepSeek (%s) response.", g.cfg.Model),
	}
}

func (g *Generator) callModel(ctx context.Context, input models.EventInput) (models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	started := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserMessage(input)},
		},
	})
	if err != nil {
		return models.Report{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.Report{}, fmt.Errorf("no completion choices returned from model %s", g.cfg.Model)
	}

	g.logger.Debug("received model response",
		"model", g.cfg.Model,
		"duration_ms", time.Since(started).Milliseconds(),
		"content_length", len(resp.Choices[0].Message.Content))

	payload, ok := ExtractJSONObject(resp.Choices[0].Message.Content)
	if !ok {
		return models.Report{}, errors.New("model response did not contain a JSON object")
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return models.Report{}, fmt.Errorf("decode model JSON: %w", err)
	}

	return NormalizeReport(doc, input, time.Now().UTC()), nil
}
