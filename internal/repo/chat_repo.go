// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Chat model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a chat is not found, functions return ErrNotFound
//     (an alias of gorm.ErrRecordNotFound).
//   - On DB errors the raw gorm error is propagated.
//
// Usage:
//
//	chat, err := repo.GetChat(ctx, db, id)
//	if errors.Is(err, repo.ErrNotFound) {
//	    // handle missing
//	} else if err != nil {
//	    // handle DB failure
//	}
package repo

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateChat inserts a new chat. A nil message list is stored as [].
func CreateChat(ctx context.Context, db *gorm.DB, c *domain.Chat) (*domain.Chat, error) {
	if c.Messages == nil {
		c.Messages = datatypes.JSONSlice[domain.ChatMessage]{}
	}
	return create(ctx, db, c)
}

// GetChat fetches a chat by id, or ErrNotFound.
func GetChat(ctx context.Context, db *gorm.DB, id uint) (*domain.Chat, error) {
	return getByID[domain.Chat](ctx, db, id)
}

// ListChatsByUser returns the user's chats in insertion order.
func ListChatsByUser(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Chat, error) {
	return listByUser[domain.Chat](ctx, db, userID)
}

// UpdateChat shallow-merges fields onto the chat. Passing "messages"
// replaces the whole transcript.
func UpdateChat(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.Chat, error) {
	return updateByID[domain.Chat](ctx, db, id, fields)
}
