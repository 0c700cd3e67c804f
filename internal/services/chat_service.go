// Package services – ChatService
//
// This file implements ChatService, which owns coaching conversations. It
// creates chats, enforces ownership, and appends the user message and the
// assistant reply to the transcript. The enhanced mode is reserved for premium
// users.
//
// Title handling: a chat created without a title gets "New chat"; the first
// user message replaces such a placeholder with a title derived from it.
//
// Observability: PostMessage is OpenTelemetry-instrumented with chat and user
// identifiers.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"
)

const (
	// default titles we consider placeholders, eligible for auto-generation
	defaultTitleNew      = "New chat"
	defaultTitleUntitled = "Untitled"

	// historyTurns caps how many prior messages are replayed to the AI.
	historyTurns = 20
)

// ChatInput carries a new chat. A non-empty FirstMessage is posted right away.
type ChatInput struct {
	Title        string
	ChatMode     string
	FirstMessage string
}

// ChatService manages coaching chats.
type ChatService struct {
	DB *gorm.DB
	AI ai.Completer

	// TitleMaxLen caps stored titles by rune length.
	TitleMaxLen int
	// TitleLocale drives title casing; Und means English.
	TitleLocale language.Tag

	now func() time.Time
}

// NewChatService constructs a ChatService with sane defaults for title handling.
func NewChatService(db *gorm.DB, c ai.Completer) *ChatService {
	return &ChatService{
		DB:          db,
		AI:          c,
		TitleMaxLen: 60,
		TitleLocale: language.Und,
		now:         time.Now,
	}
}

func (s *ChatService) clock() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// Create inserts a new chat owned by userID. When in.FirstMessage is set the
// assistant is asked first and the chat is stored with both messages; an AI
// failure stores nothing.
func (s *ChatService) Create(ctx context.Context, userID uint, in ChatInput) (*domain.Chat, error) {
	mode := in.ChatMode
	if mode == "" {
		mode = domain.ChatModeStandard
	}
	if mode == domain.ChatModeEnhanced {
		if err := s.requirePremium(ctx, userID); err != nil {
			return nil, err
		}
	}

	title := normalizeTitle(in.Title)
	if title == "" {
		title = defaultTitleNew
	}
	chat := &domain.Chat{
		UserID:   userID,
		Title:    s.clip(title),
		ChatMode: mode,
	}

	if first := strings.TrimSpace(in.FirstMessage); first != "" {
		sent := s.clock()
		reply, err := s.ask(ctx, mode, first, nil)
		if err != nil {
			return nil, err
		}
		chat.Messages = s.exchange(first, sent, reply)
		if s.shouldAutoTitle(chat.Title) {
			if gen := s.generateTitleFromPrompt(first); gen != "" {
				chat.Title = s.clip(gen)
			}
		}
	}

	var out *domain.Chat
	err := repo.Batch(ctx, s.DB, func(tx *gorm.DB) error {
		var err error
		out, err = repo.CreateChat(ctx, tx, chat)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return out, nil
}

// List returns the user's chats in creation order.
func (s *ChatService) List(ctx context.Context, userID uint) ([]domain.Chat, error) {
	return repo.ListChatsByUser(ctx, s.DB, userID)
}

// Get returns one of the user's chats.
func (s *ChatService) Get(ctx context.Context, userID, id uint) (*domain.Chat, error) {
	c, err := repo.GetChat(ctx, s.DB, id)
	if err != nil {
		return nil, notFound("get chat", err)
	}
	if c.UserID != userID {
		return nil, ErrNotFound
	}
	return c, nil
}

// PostMessage sends content to the assistant and appends both the user
// message and the reply to the chat. An empty mode keeps the chat's mode;
// the enhanced mode requires a premium account. Nothing is appended when the
// AI call fails.
func (s *ChatService) PostMessage(ctx context.Context, userID, chatID uint, content, mode string) (*domain.Chat, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "PostMessage",
		trace.WithAttributes(
			attribute.Int("chat.id", int(chatID)),
			attribute.Int("user.id", int(userID)),
		),
	)
	defer span.End()

	content = strings.TrimSpace(content)
	chat, err := s.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = chat.ChatMode
	}
	if mode == domain.ChatModeEnhanced {
		if err := s.requirePremium(ctx, userID); err != nil {
			return nil, err
		}
	}
	span.SetAttributes(attribute.String("chat.mode", mode))

	sent := s.clock()
	reply, err := s.ask(ctx, mode, content, chat.Messages)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	// Re-read inside the batch so concurrent posts to the same chat append
	// instead of overwriting each other.
	var out *domain.Chat
	err = repo.Batch(ctx, s.DB, func(tx *gorm.DB) error {
		cur, err := repo.GetChat(ctx, tx, chatID)
		if err != nil {
			return err
		}
		msgs := append([]domain.ChatMessage{}, cur.Messages...)
		msgs = append(msgs, s.exchange(content, sent, reply)...)
		fields := map[string]any{
			"messages":  datatypes.JSONSlice[domain.ChatMessage](msgs),
			"chat_mode": mode,
		}
		if s.shouldAutoTitle(cur.Title) {
			if gen := s.generateTitleFromPrompt(content); gen != "" {
				fields["title"] = s.clip(gen)
			}
		}
		out, err = repo.UpdateChat(ctx, tx, chatID, fields)
		return err
	})
	if err != nil {
		return nil, notFound("append chat messages", err)
	}
	return out, nil
}

// ask requests the assistant's reply to content given the prior transcript.
func (s *ChatService) ask(ctx context.Context, mode, content string, prior []domain.ChatMessage) (string, error) {
	reply, err := s.AI.Complete(ctx, ai.Request{
		Purpose: "chat",
		System:  systemChat(mode),
		Prompt:  content,
		Mode:    mode,
		History: history(prior, historyTurns),
	})
	if err != nil {
		return "", upstream("chat reply", err)
	}
	return reply, nil
}

// exchange is the user message sent at sent followed by the reply.
func (s *ChatService) exchange(content string, sent time.Time, reply string) datatypes.JSONSlice[domain.ChatMessage] {
	return datatypes.JSONSlice[domain.ChatMessage]{
		{Role: domain.RoleUser, Content: content, Timestamp: sent},
		{Role: domain.RoleAssistant, Content: reply, Timestamp: s.clock()},
	}
}

func (s *ChatService) requirePremium(ctx context.Context, userID uint) error {
	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		return notFound("get user", err)
	}
	if !u.IsPremium {
		return ErrPremiumRequired
	}
	return nil
}

// history converts the last n transcript entries into AI turns.
func history(msgs []domain.ChatMessage, n int) []ai.Message {
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	out := make([]ai.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ai.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

// clip truncates a chat title to the configured maximum rune length.
func (s *ChatService) clip(title string) string {
	max := s.TitleMaxLen
	if max <= 0 {
		max = 60
	}
	if utf8.RuneCountInString(title) > max {
		return string([]rune(title)[:max])
	}
	return title
}

// shouldAutoTitle reports whether the current title is a placeholder.
func (s *ChatService) shouldAutoTitle(current string) bool {
	t := strings.TrimSpace(strings.ToLower(current))
	return t == "" || t == strings.ToLower(defaultTitleNew) || t == strings.ToLower(defaultTitleUntitled)
}

// generateTitleFromPrompt derives a concise title from the prompt.
func (s *ChatService) generateTitleFromPrompt(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return ""
	}
	toks := titleWordRE.FindAllString(strings.ToLower(prompt), -1)
	if len(toks) == 0 {
		return ""
	}

	titleCaser := cases.Title(s.titleLocale())
	out := make([]string, 0, 8)
	for _, w := range toks {
		if _, skip := titleStopWords[w]; skip {
			continue
		}
		out = append(out, titleCaser.String(w))
		if len(out) >= 8 {
			break
		}
	}
	return strings.Join(out, " ")
}

// titleLocale returns the configured locale for casing or English if unset.
func (s *ChatService) titleLocale() language.Tag {
	if s.TitleLocale == language.Und {
		return language.English
	}
	return s.TitleLocale
}

// normalizeTitle trims whitespace and collapses multiple spaces to one.
func normalizeTitle(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

var (
	// whitespaceRE collapses consecutive whitespace to a single space.
	whitespaceRE = regexp.MustCompile(`\s+`)

	// Unicode letters with optional trailing numbers (e.g., "web3").
	titleWordRE = regexp.MustCompile(`[\p{L}]+[\p{N}]*`)
)

// Minimal English stop-words set for compact titles.
var titleStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "to": {}, "in": {},
	"is": {}, "are": {}, "for": {}, "on": {}, "with": {}, "by": {}, "from": {},
	"at": {}, "as": {}, "that": {}, "this": {}, "it": {}, "be": {}, "was": {}, "were": {},
	"i": {}, "my": {}, "me": {}, "how": {}, "can": {}, "do": {}, "should": {}, "what": {},
}
