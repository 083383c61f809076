package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/message"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http/response"
)

type MessageHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MessageHandlerImpl struct {
	messageService message.MessageService
}

func NewMessageHandler(messageService message.MessageService) MessageHandler {
	return &MessageHandlerImpl{messageService: messageService}
}

// Send implements MessageHandler.
func (m *MessageHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	var sendReq message.SendMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&sendReq); err != nil {
		slog.Error("Send message decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := m.messageService.Send(r.Context(), sendReq)
	if err != nil {
		slog.Error("Send message service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Message sent successfully", created)
}

// List implements MessageHandler.
func (m *MessageHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	messages, err := m.messageService.List(r.Context())
	if err != nil {
		slog.Error("List messages service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, messages)
}

// UpdateStatus implements MessageHandler.
func (m *MessageHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "id")

	var statusReq message.UpdateMessageStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("UpdateStatus message decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := m.messageService.UpdateStatus(r.Context(), messageID, statusReq)
	if err != nil {
		slog.Error("UpdateStatus message service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Message status updated", updated)
}

// Delete implements MessageHandler.
func (m *MessageHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "id")

	if err := m.messageService.Delete(r.Context(), messageID); err != nil {
		slog.Error("Delete message service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Message deleted successfully", nil)
}
