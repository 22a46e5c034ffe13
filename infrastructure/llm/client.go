package llm

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"golang.org/x/time/rate"

	"github.com/Sensei3747/Market-Intelligence/internal/config"
	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

// Options controla a geração de texto e o limite de chamadas
type Options struct {
	MaxTokens     int
	Temperature   float64
	Timeout       time.Duration
	RatePerMinute int
}

// Client envolve um llms.Model do langchaingo com limite de taxa e timeout
type Client struct {
	model   llms.Model
	limiter *rate.Limiter
	options Options
}

// NewGemini cria o cliente do Gemini a partir da configuração
func NewGemini(ctx context.Context, cfg config.LLM, chat config.Chat) (*Client, error) {
	model, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.GoogleAPIKey),
		googleai.WithDefaultModel(cfg.Model),
		googleai.WithDefaultMaxTokens(cfg.MaxTokens),
		googleai.WithDefaultTemperature(cfg.Temperature),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating gemini client")
	}

	log.L.WithField("model", cfg.Model).Info("llm: gemini client configured")

	return NewClient(model, Options{
		MaxTokens:     cfg.MaxTokens,
		Temperature:   cfg.Temperature,
		Timeout:       cfg.Timeout,
		RatePerMinute: chat.RatePerMinute,
	}), nil
}

func NewClient(model llms.Model, options Options) *Client {
	limit := rate.Inf
	burst := 1
	if options.RatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(options.RatePerMinute))
		burst = options.RatePerMinute
	}

	return &Client{
		model:   model,
		limiter: rate.NewLimiter(limit, burst),
		options: options,
	}
}

// Generate envia um prompt único. Acima do limite devolve domain.ErrChatRateLimited sem chamar o modelo.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.limiter.Allow() {
		return "", domain.ErrChatRateLimited
	}

	if c.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.Timeout)
		defer cancel()
	}

	var callOptions []llms.CallOption
	if c.options.MaxTokens > 0 {
		callOptions = append(callOptions, llms.WithMaxTokens(c.options.MaxTokens))
	}
	callOptions = append(callOptions, llms.WithTemperature(c.options.Temperature))

	started := time.Now()
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, callOptions...)
	if err != nil {
		return "", errors.Wrap(err, "generating content")
	}

	log.ForContext(ctx).WithField("duration_ms", time.Since(started).Milliseconds()).Debug("llm: content generated")

	return strings.TrimSpace(reply), nil
}
