package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/localization"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Client talks to the Groq OpenAI-compatible API for both speech-to-text
// and chat completion. Construct it once at startup and share it; it is
// read-only after construction.
type Client struct {
	http         *resty.Client
	chatModel    string
	whisperModel string
	breaker      *gobreaker.CircuitBreaker
	log          *zap.Logger
}

// Config for the Groq client. Zero model values get sensible defaults.
type Config struct {
	APIKey       string
	BaseURL      string
	ChatModel    string
	WhisperModel string
	Timeout      time.Duration
}

// NewClient creates a Groq API client.
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: API key cannot be empty")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = "llama-3.3-70b-versatile"
	}
	if cfg.WhisperModel == "" {
		cfg.WhisperModel = "whisper-large-v3"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "groq-chat",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		Timeout: 30 * time.Second,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Client{
		http:         httpClient,
		chatModel:    cfg.ChatModel,
		whisperModel: cfg.WhisperModel,
		breaker:      breaker,
		log:          log,
	}, nil
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe sends audio bytes to the speech endpoint and returns the raw
// transcript. token selects the upload extension; language biases
// recognition accuracy but does not restrict the spoken language.
func (c *Client) Transcribe(ctx context.Context, data []byte, token string, language localization.Language) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", "audio."+token, bytes.NewReader(data)).
		SetFormData(map[string]string{
			"model":           c.whisperModel,
			"language":        string(language),
			"response_format": "json",
		}).
		Post("/audio/transcriptions")
	if err != nil {
		return "", &ProviderError{Op: OpTranscribe, Err: err}
	}
	if resp.IsError() {
		return "", &ProviderError{Op: OpTranscribe, StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var out transcriptionResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", &ProviderError{Op: OpTranscribe, Err: fmt.Errorf("parse response: %w", err)}
	}
	return out.Text, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate runs one chat completion with the given system instruction and
// user content. Low temperature favors deterministic, grounded answers.
// Calls go through a circuit breaker; there are no retries, failures
// surface immediately.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	body := chatRequest{
		Model: c.chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
		MaxTokens:   512,
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post("/chat/completions")
		if err != nil {
			return nil, &ProviderError{Op: OpGenerate, Err: err}
		}
		if resp.IsError() {
			return nil, &ProviderError{Op: OpGenerate, StatusCode: resp.StatusCode(), Body: string(resp.Body())}
		}

		var out chatResponse
		if err := json.Unmarshal(resp.Body(), &out); err != nil {
			return nil, &ProviderError{Op: OpGenerate, Err: fmt.Errorf("parse response: %w", err)}
		}
		if len(out.Choices) == 0 {
			return nil, &ProviderError{Op: OpGenerate, Err: fmt.Errorf("response contains no choices")}
		}
		return out.Choices[0].Message.Content, nil
	})
	if err != nil {
		if _, ok := err.(*ProviderError); !ok {
			// gobreaker's own open/too-many-requests errors
			err = &ProviderError{Op: OpGenerate, Err: err}
		}
		return "", err
	}

	return result.(string), nil
}
