// Package bot wires the Telegram transport to the wizard engine and the
// plain menu handlers.
package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/campuslink/campuslink-bot/internal/config"
	"github.com/campuslink/campuslink-bot/internal/storage"
	"github.com/campuslink/campuslink-bot/internal/telegram"
	"github.com/campuslink/campuslink-bot/internal/wizard"
)

// maxDocumentSize bounds inbound uploads (Telegram bots cap at 20 MB anyway).
const maxDocumentSize = 15 * 1024 * 1024

// Bot is the main Telegram bot struct with DI
type Bot struct {
	api    *tgbotapi.BotAPI
	sender telegram.MessageSender
	router *Router
	http   *http.Client
}

// New creates a new Bot with full dependency injection.
func New(cfg *config.Config, store storage.Store, engine *wizard.Controller) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	slog.Info("Authorized", "username", api.Self.UserName)

	sender := telegram.NewSender(api)
	router := NewRouter(sender, store, engine, cfg.AdminChatIDs)

	return &Bot{
		api:    api,
		sender: sender,
		router: router,
		http:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// RegisterCommands registers bot commands with Telegram
func (b *Bot) RegisterCommands() error {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Main menu"},
		{Command: "profile", Description: "Complete your profile"},
		{Command: "submit", Description: "Submit course content"},
		{Command: "path", Description: "Your personal path"},
		{Command: "goal", Description: "Add a goal to your path"},
		{Command: "task", Description: "Add a task to a goal"},
		{Command: "artifact", Description: "Attach an artifact"},
		{Command: "opportunities", Description: "Industry opportunities"},
		{Command: "mysubmissions", Description: "Your submissions"},
		{Command: "support", Description: "Contact support"},
		{Command: "cancel", Description: "Cancel the current wizard"},
	}

	cfg := tgbotapi.NewSetMyCommands(commands...)
	_, err := b.api.Request(cfg)
	if err != nil {
		return err
	}

	slog.Info("Registered bot commands", "count", len(commands))
	return nil
}

// Run starts the bot and processes updates until context is cancelled
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	slog.Info("Bot started, waiting for messages")

	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutting down bot")
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				slog.Warn("Updates channel closed, stopping bot")
				return
			}
			msg := update.Message
			if msg == nil || msg.From == nil {
				continue
			}
			b.handleMessage(ctx, msg)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	ev, err := b.toEvent(msg)
	if err != nil {
		slog.Warn("Dropping inbound document", "chat_id", msg.Chat.ID, "error", err)
		b.sender.SendPlain(msg.Chat.ID, "Could not read that file, please send it again.")
		return
	}

	slog.Info("Message received", "chat_id", msg.Chat.ID, "username", msg.From.UserName,
		"has_doc", ev.Doc != nil)

	b.router.Route(ctx, msg, ev)
}

// toEvent converts a Telegram message into a wizard event, downloading the
// document payload when one is attached.
func (b *Bot) toEvent(msg *tgbotapi.Message) (wizard.Event, error) {
	if msg.Document == nil {
		return wizard.Event{Text: msg.Text}, nil
	}

	doc := msg.Document
	if doc.FileSize > maxDocumentSize {
		return wizard.Event{}, fmt.Errorf("document too large: %d bytes", doc.FileSize)
	}

	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: doc.FileID})
	if err != nil {
		return wizard.Event{}, err
	}

	resp, err := b.http.Get(file.Link(b.api.Token))
	if err != nil {
		return wizard.Event{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return wizard.Event{}, fmt.Errorf("file download: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return wizard.Event{}, err
	}
	if len(data) > maxDocumentSize {
		return wizard.Event{}, fmt.Errorf("document too large")
	}

	return wizard.Event{
		Doc: &wizard.Document{
			Name: doc.FileName,
			MIME: doc.MimeType,
			Data: data,
		},
	}, nil
}
