package insighting

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
	"github.com/Sensei3747/Market-Intelligence/pkg/utils"
)

const ChatNotConfiguredReply = "AI chat is not configured. Please ensure your `GOOGLE_API_KEY` is set correctly."

const chatPromptTemplate = `You are a marketing analyst AI. A user has asked a question about their marketing data.
Answer the user's query based on the data provided below.

User Query: "%s"

High-Level Marketing Data Summary:
%s

Platform Performance Breakdown:
%s

Provide a concise and helpful answer to the user's query based on the provided data.
`

// ChatPrompt embute o resumo e o desempenho por plataforma em JSON
func ChatPrompt(question string, stats domain.SummaryStats, performances []domain.PlatformPerformance) string {
	return fmt.Sprintf(chatPromptTemplate, question, utils.PrettyJson(stats), utils.PrettyJson(performances))
}

// Answer consulta o modelo. Falhas do modelo viram texto de resposta; apenas o limite
// de requisições e o cancelamento do contexto são devolvidos como erro.
func Answer(ctx context.Context, generator TextGenerator, question string, stats domain.SummaryStats, performances []domain.PlatformPerformance) (string, error) {
	if generator == nil {
		return ChatNotConfiguredReply, nil
	}

	reply, err := generator.Generate(ctx, ChatPrompt(question, stats, performances))
	if err != nil {
		if errors.Is(err, domain.ErrChatRateLimited) || errors.Is(err, context.Canceled) {
			return "", err
		}

		log.ForContext(ctx).WithError(err).Error("insighting: text generation failed")
		return fmt.Sprintf("An error occurred while communicating with the AI: %v", err), nil
	}

	return reply, nil
}
