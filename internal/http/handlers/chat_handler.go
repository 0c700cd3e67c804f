// Chat HTTP handlers.
//
// This file exposes REST endpoints for coaching chats:
//   - POST   /chats               (create, optional first message)
//   - GET    /chats               (list, ETag support)
//   - GET    /chats/{id}          (read with messages)
//   - POST   /chats/{id}/message  (post a message, Idempotency-Key aware)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/services"
)

//
// DTOs
//

// CreateChatRequest is the JSON payload for creating a chat.
type CreateChatRequest struct {
	// Title optionally sets the chat title; the first message names untitled chats.
	Title string `json:"title" binding:"max=255" example:"Switching to data science"`
	// ChatMode defaults to standard; enhanced requires a premium account.
	ChatMode string `json:"chatMode" binding:"omitempty,chatmode" example:"standard"`
	// FirstMessage is posted right away when non-empty.
	FirstMessage string `json:"firstMessage" binding:"max=8000" example:"How do I switch to data science?"`
}

// PostMessageRequest is the JSON payload for posting a chat message.
type PostMessageRequest struct {
	Content string `json:"content" binding:"required,notblank,max=8000" example:"Which certifications matter?"`
	// ChatMode switches the chat's mode for this and later turns.
	ChatMode string `json:"chatMode" binding:"omitempty,chatmode" example:"enhanced"`
}

//
// Handlers
//

// CreateChat godoc
// @ID          createChat
// @Summary     Create a new chat
// @Description Creates a chat for the session user. A firstMessage is answered by the AI before the chat is returned.
// @Tags        Chats
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       body  body  handlers.CreateChatRequest  true  "Create chat payload"
//
// @Success     201  {object}  domain.Chat
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     403  {object}  handlers.ErrorResponse  "Premium required"
// @Failure     500  {object}  handlers.ErrorResponse  "AI service failure"
// @Router      /chats [post]
func (h *Handlers) CreateChat(c *gin.Context) {
	var req CreateChatRequest
	if !bindJSON(c, &req) {
		return
	}
	ch, err := h.chats.Create(c.Request.Context(), userID(c), services.ChatInput{
		Title:        req.Title,
		ChatMode:     req.ChatMode,
		FirstMessage: req.FirstMessage,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, ch)
}

// ListChats godoc
// @ID          listChats
// @Summary     List chats
// @Description Returns the session user's chats. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Chats
// @Produce     json
// @Security    SessionCookie
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"  example(W/\"chats:1:2:1700000000\")
//
// @Success     200  {array}   domain.Chat
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Failure     401  {object}  handlers.ErrorResponse  "Not authenticated"
// @Router      /chats [get]
func (h *Handlers) ListChats(c *gin.Context) {
	uid := userID(c)
	if h.notModified(c, "chats", "", uid) {
		return
	}
	out, err := h.chats.List(c.Request.Context(), uid)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(out))
}

// GetChat godoc
// @ID          getChat
// @Summary     Get a chat with its messages
// @Tags        Chats
// @Produce     json
// @Security    SessionCookie
//
// @Param       id  path  int  true  "Chat ID"  minimum(1)
//
// @Success     200  {object}  domain.Chat
// @Failure     404  {object}  handlers.ErrorResponse  "Chat not found"
// @Router      /chats/{id} [get]
func (h *Handlers) GetChat(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	ch, err := h.chats.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ch)
}

// PostMessage godoc
// @ID          postChatMessage
// @Summary     Post a message to a chat
// @Description Appends the user's message and the AI reply, then returns the chat. Retrying with the same Idempotency-Key replays the first response without calling the AI again.
// @Tags        Chats
// @Accept      json
// @Produce     json
// @Security    SessionCookie
//
// @Param       id               path    int                          true   "Chat ID"  minimum(1)
// @Param       Idempotency-Key  header  string                       false  "Retry key (8-128 chars)"
// @Param       body             body    handlers.PostMessageRequest  true   "Message"
//
// @Success     200  {object}  domain.Chat
// @Header      200  {string}  Idempotency-Replayed  "true when the response is a replay"
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed or bad idempotency key"
// @Failure     403  {object}  handlers.ErrorResponse  "Premium required"
// @Failure     404  {object}  handlers.ErrorResponse  "Chat not found"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "AI service failure"
// @Router      /chats/{id}/message [post]
func (h *Handlers) PostMessage(c *gin.Context) {
	id, valid := idParam(c)
	if !valid {
		return
	}
	var req PostMessageRequest
	if !bindJSON(c, &req) {
		return
	}
	ch, err := h.chats.PostMessage(c.Request.Context(), userID(c), id, req.Content, req.ChatMode)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ch)
}
