package handler

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/apiErrors"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const maxChatBodyBytes = 16 << 10

// SendChatMessage recebe a pergunta, chama o assistente e devolve a resposta com o ID da conversa
func SendChatMessage(service Chatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.ChatRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBodyBytes)).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", err.Error())
			return
		}

		request.Message = strings.TrimSpace(request.Message)
		if err := validate.Struct(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid chat request", validationDetails(err))
			return
		}

		response, err := service.Send(r.Context(), request, filterQuery(r))
		if err != nil {
			writeUsecaseError(w, r, "chat", err)
			return
		}

		log.ForContext(r.Context()).WithField("conversation_id", response.ConversationID).Info("chat: message answered")

		writeJSON(w, r, http.StatusOK, response)
	})
}

func GetConversation(service Chatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		conversation, err := service.Conversation(id)
		if err != nil {
			writeUsecaseError(w, r, "chat", err)
			return
		}

		writeJSON(w, r, http.StatusOK, conversation)
	})
}

func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["request"] = err.Error()
		return details
	}
	for _, fieldErr := range validationErrors {
		details[strings.ToLower(fieldErr.Field())] = fieldErr.Tag()
	}
	return details
}
