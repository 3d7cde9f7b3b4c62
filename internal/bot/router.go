package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/campuslink/campuslink-bot/internal/storage"
	"github.com/campuslink/campuslink-bot/internal/telegram"
	"github.com/campuslink/campuslink-bot/internal/wizard"
)

// menuAliases maps the decorated main-menu buttons to their commands, so a
// tapped button and a typed command take the same path.
var menuAliases = map[string]string{
	"👤 My Profile":       "/profile",
	"📤 Submit Content":   "/submit",
	"🧭 My Path":          "/path",
	"📚 Opportunities":    "/opportunities",
	"🗂 My Submissions":   "/mysubmissions",
	"🆘 Support":          "/support",
}

// Engine is the wizard entry point consumed by the router.
type Engine interface {
	Start(ctx context.Context, actorID int64, username string, kind wizard.Kind) wizard.Reply
	HandleEvent(ctx context.Context, actorID int64, ev wizard.Event) wizard.Outcome
	Active(actorID int64) bool
}

// Router dispatches inbound events: the wizard engine gets the first look,
// and only unhandled events fall through to the plain menu handlers.
type Router struct {
	sender     telegram.MessageSender
	store      storage.Store
	engine     Engine
	adminChats []int64
}

// NewRouter creates a new Router
func NewRouter(sender telegram.MessageSender, store storage.Store, engine Engine, adminChats []int64) *Router {
	return &Router{
		sender:     sender,
		store:      store,
		engine:     engine,
		adminChats: adminChats,
	}
}

// Route normalizes the event, offers it to the wizard engine, and falls back
// to menu dispatch when the engine did not handle it.
func (r *Router) Route(ctx context.Context, msg *tgbotapi.Message, ev wizard.Event) {
	chatID := msg.Chat.ID

	if ev.Doc == nil {
		ev.Text = wizard.Normalize(ev.Text)
		if cmd, ok := menuAliases[ev.Text]; ok {
			ev.Text = cmd
		}
	}

	if outcome := r.engine.HandleEvent(ctx, chatID, ev); outcome.Handled {
		r.sendReply(chatID, outcome.Reply)
		return
	}

	if ev.Doc != nil {
		r.sender.SendPlain(chatID, "Start a submission with /submit before sending a file.")
		return
	}

	r.routeCommand(ctx, msg, ev.Text)
}

func (r *Router) routeCommand(ctx context.Context, msg *tgbotapi.Message, text string) {
	chatID := msg.Chat.ID
	username := msg.From.UserName

	cmd, args, _ := strings.Cut(text, " ")
	switch cmd {
	case "/start":
		r.handleStart(chatID, msg.From.FirstName)
	case "/profile":
		r.sendReply(chatID, r.engine.Start(ctx, chatID, username, wizard.KindProfile))
	case "/submit":
		r.sendReply(chatID, r.engine.Start(ctx, chatID, username, wizard.KindSubmission))
	case "/path":
		r.handlePath(ctx, chatID, username)
	case "/goal":
		r.handleGoal(ctx, chatID, username)
	case "/task":
		r.handleTask(ctx, chatID, username)
	case "/artifact":
		r.sendReply(chatID, r.engine.Start(ctx, chatID, username, wizard.KindArtifact))
	case "/opportunities":
		r.handleOpportunities(ctx, chatID)
	case "/mysubmissions":
		r.handleMySubmissions(ctx, chatID)
	case "/support":
		r.handleSupport(ctx, chatID, args)
	case "/cancel", "cancel":
		// An active wizard consumes the cancel token before it reaches here.
		r.sender.SendPlain(chatID, "Nothing to cancel.")
	default:
		r.sender.SendPlain(chatID, "Unknown command. Use /start for the menu.")
	}
}

func (r *Router) sendReply(chatID int64, reply wizard.Reply) {
	if reply.Text == "" {
		return
	}
	switch {
	case len(reply.Keyboard) > 0:
		r.sender.SendKeyboard(chatID, reply.Text, reply.Keyboard)
	case reply.Clear:
		r.sender.ClearKeyboard(chatID, reply.Text)
	default:
		r.sender.SendPlain(chatID, reply.Text)
	}
}
