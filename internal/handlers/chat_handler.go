// File: internal/handlers/chat_handler.go
package handlers

import (
    "encoding/json"
    "net/http"

    "github.com/gorilla/mux"

    "github.com/iyunix/pharma-assist/internal/middleware"
    "github.com/iyunix/pharma-assist/internal/services"
    "github.com/iyunix/pharma-assist/internal/services/chat"
)

// ChatHandler exposes the chat turn endpoint and thread management.
type ChatHandler struct {
    chatService *services.ChatService
    logger      services.Logger
}

func NewChatHandler(chatService *services.ChatService, logger services.Logger) *ChatHandler {
    return &ChatHandler{chatService: chatService, logger: logger}
}

type chatRequest struct {
    ThreadID string `json:"threadId"`
    Message  string `json:"message"`
}

// SendMessage handles POST /api/chat.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
    userID, ok := middleware.UserIDFromContext(r.Context())
    if !ok {
        writeError(w, http.StatusUnauthorized, "unauthorized")
        return
    }

    var req chatRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    result, err := h.chatService.SendMessage(r.Context(), userID, req.ThreadID, req.Message)
    if err != nil {
        h.writeChatError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, result)
}

type createThreadRequest struct {
    Title string `json:"title"`
}

// CreateThread handles POST /api/thread.
func (h *ChatHandler) CreateThread(w http.ResponseWriter, r *http.Request) {
    userID, ok := middleware.UserIDFromContext(r.Context())
    if !ok {
        writeError(w, http.StatusUnauthorized, "unauthorized")
        return
    }

    var req createThreadRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    thread, err := h.chatService.CreateThread(r.Context(), userID, req.Title)
    if err != nil {
        h.writeChatError(w, err)
        return
    }
    writeJSON(w, http.StatusCreated, thread)
}

// ListThreads handles GET /api/thread.
func (h *ChatHandler) ListThreads(w http.ResponseWriter, r *http.Request) {
    userID, ok := middleware.UserIDFromContext(r.Context())
    if !ok {
        writeError(w, http.StatusUnauthorized, "unauthorized")
        return
    }

    threads, err := h.chatService.GetUserThreads(r.Context(), userID)
    if err != nil {
        h.writeChatError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, threads)
}

type threadMessageRequest struct {
    Message string `json:"message"`
}

// SendMessageToThread handles POST /api/thread/{threadId}/messages, the
// thread-addressed form of the chat endpoint.
func (h *ChatHandler) SendMessageToThread(w http.ResponseWriter, r *http.Request) {
    userID, ok := middleware.UserIDFromContext(r.Context())
    if !ok {
        writeError(w, http.StatusUnauthorized, "unauthorized")
        return
    }

    var req threadMessageRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    result, err := h.chatService.SendMessage(r.Context(), userID, mux.Vars(r)["threadId"], req.Message)
    if err != nil {
        h.writeChatError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, result)
}

// GetThreadMessages handles GET /api/thread/{threadId}.
func (h *ChatHandler) GetThreadMessages(w http.ResponseWriter, r *http.Request) {
    userID, ok := middleware.UserIDFromContext(r.Context())
    if !ok {
        writeError(w, http.StatusUnauthorized, "unauthorized")
        return
    }

    threadID := mux.Vars(r)["threadId"]
    messages, err := h.chatService.GetThreadMessages(r.Context(), userID, threadID)
    if err != nil {
        h.writeChatError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, messages)
}

// DeleteThread handles DELETE /api/thread/{threadId}.
func (h *ChatHandler) DeleteThread(w http.ResponseWriter, r *http.Request) {
    userID, ok := middleware.UserIDFromContext(r.Context())
    if !ok {
        writeError(w, http.StatusUnauthorized, "unauthorized")
        return
    }

    threadID := mux.Vars(r)["threadId"]
    if err := h.chatService.DeleteThread(r.Context(), userID, threadID); err != nil {
        h.writeChatError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// writeChatError maps service errors onto HTTP statuses without leaking
// storage internals to the client.
func (h *ChatHandler) writeChatError(w http.ResponseWriter, err error) {
    if chat.IsNotFound(err) {
        writeError(w, http.StatusNotFound, "thread not found")
        return
    }
    if chatErr, ok := err.(*chat.ChatError); ok && chatErr.Type == chat.ErrTypeValidation {
        writeError(w, http.StatusBadRequest, chatErr.Message)
        return
    }
    h.logger.Error("chat request failed", "error", err.Error())
    writeError(w, http.StatusInternalServerError, "internal server error")
}
