// Package llm is the AI enrichment gateway: summarization and
// sentiment/topic classification over an OpenAI-compatible completion API.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsweaver/pkg/config"
	"github.com/umputun/newsweaver/pkg/domain"
)

// Enricher calls an OpenAI-compatible LLM for article enrichment
type Enricher struct {
	client *openai.Client
	config config.LLMConfig
}

// system prompts, defaults overridable via config
const defaultClassifyPrompt = `You are an expert content analyst. Analyze the article and determine its sentiment and primary topic.

The sentiment must be exactly one of: positive, negative, neutral.
The topic should be a single, general category like Technology, Science, Business, Health, Sports, Politics, or Entertainment.

Respond with a JSON object of the form {"sentiment": "...", "topic": "..."} and nothing else.`

const defaultSummaryPrompt = `You are a concise news editor. Summarize the article content in 3-5 sentences.
Write directly about the subject matter, never use phrases like "The article discusses" or "This piece covers".
Write the summary in the same language as the article content.`

// NewEnricher creates an enricher from LLM configuration
func NewEnricher(cfg config.LLMConfig) *Enricher {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	if cfg.ClassifyPrompt == "" {
		cfg.ClassifyPrompt = defaultClassifyPrompt
	}
	if cfg.SummaryPrompt == "" {
		cfg.SummaryPrompt = defaultSummaryPrompt
	}

	return &Enricher{client: openai.NewClientWithConfig(clientConfig), config: cfg}
}

// Summarize produces a summary of the given sanitized content.
// Single attempt, any remote failure is reported as *SummarizationError.
func (e *Enricher) Summarize(ctx context.Context, content string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: float32(e.config.Temperature),
		MaxTokens:   e.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: e.config.SummaryPrompt},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &SummarizationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &SummarizationError{Err: fmt.Errorf("no response from llm")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Classify determines sentiment and topic for an article. The sentiment is
// validated against the closed enum, the topic stays free text.
// Single attempt, any failure is reported as *ClassificationError.
func (e *Enricher) Classify(ctx context.Context, title, content string) (domain.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	prompt := fmt.Sprintf("Title: %s\nContent: %s", title, content)

	req := openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: float32(e.config.Temperature),
		MaxTokens:   e.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: e.config.ClassifyPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	if e.config.UseJSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return domain.Classification{}, &ClassificationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return domain.Classification{}, &ClassificationError{Err: fmt.Errorf("no response from llm")}
	}

	result, err := parseClassification(resp.Choices[0].Message.Content)
	if err != nil {
		return domain.Classification{}, &ClassificationError{Err: err}
	}
	return result, nil
}

// parseClassification extracts the {sentiment, topic} object from the LLM
// response, tolerating surrounding prose when JSON mode is off
func parseClassification(content string) (domain.Classification, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return domain.Classification{}, fmt.Errorf("no json object found in response")
	}

	var parsed struct {
		Sentiment string `json:"sentiment"`
		Topic     string `json:"topic"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return domain.Classification{}, fmt.Errorf("failed to parse json response: %w", err)
	}

	sentiment := domain.Sentiment(strings.ToLower(strings.TrimSpace(parsed.Sentiment)))
	if !domain.ValidSentiment(sentiment) {
		return domain.Classification{}, fmt.Errorf("invalid sentiment %q in response", parsed.Sentiment)
	}

	topic := strings.TrimSpace(parsed.Topic)
	if topic == "" {
		return domain.Classification{}, fmt.Errorf("empty topic in response")
	}

	return domain.Classification{Sentiment: sentiment, Topic: topic}, nil
}
