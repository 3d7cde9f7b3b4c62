package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/campuslink/campuslink-bot/internal/storage"
	"github.com/campuslink/campuslink-bot/internal/telegram"
	"github.com/campuslink/campuslink-bot/internal/wizard"
)

func (r *Router) handleStart(chatID int64, firstName string) {
	greeting := "Welcome to CampusLink!"
	if firstName != "" {
		greeting = "Welcome to CampusLink, " + firstName + "!"
	}
	text := greeting + "\n" +
		"Share course content, browse opportunities, and build your personal path."

	rows := telegram.Columns([]string{
		"👤 My Profile", "📤 Submit Content",
		"🧭 My Path", "📚 Opportunities",
		"🗂 My Submissions", "🆘 Support",
	}, 2)
	r.sender.SendKeyboard(chatID, text, rows)
}

// handlePath shows the actor's path, or starts onboarding when none exists.
func (r *Router) handlePath(ctx context.Context, chatID int64, username string) {
	path, err := r.store.GetPathByActor(ctx, chatID)
	if err != nil {
		slog.Error("Failed to load path", "chat_id", chatID, "error", err)
		r.sender.SendPlain(chatID, "Something went wrong, please try again.")
		return
	}
	if path == nil {
		r.sendReply(chatID, r.engine.Start(ctx, chatID, username, wizard.KindOnboarding))
		return
	}

	goals, err := r.store.ListGoalsByActor(ctx, chatID)
	if err != nil {
		slog.Error("Failed to load goals", "chat_id", chatID, "error", err)
		r.sender.SendPlain(chatID, "Something went wrong, please try again.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Your path towards: %s\n", path.TargetRole)
	fmt.Fprintf(&sb, "Focus: %s\n", strings.Join(path.Interests, ", "))
	fmt.Fprintf(&sb, "%d h/week on %s\n\n", path.WeeklyHours, strings.Join(path.FreeDays, ", "))
	if len(goals) == 0 {
		sb.WriteString("No goals yet. Add one with /goal.")
	} else {
		sb.WriteString("Goals:\n")
		for _, g := range goals {
			fmt.Fprintf(&sb, "• %s (%d weeks)\n", g.Title, g.DeadlineWeeks)
		}
	}
	r.sender.SendPlain(chatID, sb.String())
}

func (r *Router) handleGoal(ctx context.Context, chatID int64, username string) {
	path, err := r.store.GetPathByActor(ctx, chatID)
	if err != nil {
		slog.Error("Failed to load path", "chat_id", chatID, "error", err)
		r.sender.SendPlain(chatID, "Something went wrong, please try again.")
		return
	}
	if path == nil {
		r.sender.SendPlain(chatID, "Create your path first with /path.")
		return
	}
	r.sendReply(chatID, r.engine.Start(ctx, chatID, username, wizard.KindGoal))
}

func (r *Router) handleTask(ctx context.Context, chatID int64, username string) {
	goals, err := r.store.ListGoalsByActor(ctx, chatID)
	if err != nil {
		slog.Error("Failed to load goals", "chat_id", chatID, "error", err)
		r.sender.SendPlain(chatID, "Something went wrong, please try again.")
		return
	}
	if len(goals) == 0 {
		r.sender.SendPlain(chatID, "Add a goal first with /goal.")
		return
	}
	r.sendReply(chatID, r.engine.Start(ctx, chatID, username, wizard.KindTask))
}

func (r *Router) handleOpportunities(ctx context.Context, chatID int64) {
	opps, err := r.store.ListOpportunities(ctx, true)
	if err != nil {
		slog.Error("Failed to list opportunities", "chat_id", chatID, "error", err)
		r.sender.SendPlain(chatID, "Something went wrong, please try again.")
		return
	}
	if len(opps) == 0 {
		r.sender.SendPlain(chatID, "No open opportunities right now. Check back later!")
		return
	}

	var sb strings.Builder
	sb.WriteString(telegram.Bold("Open opportunities") + "\n\n")
	for _, o := range opps {
		entry := telegram.Bold(o.Title) + "\n"
		if o.Company != "" {
			entry += telegram.EscapeMarkdownV2(o.Company) + "\n"
		}
		if o.Link != "" {
			entry += telegram.EscapeMarkdownV2(o.Link) + "\n"
		}
		entry += "\n"
		if sb.Len()+len(entry) > telegram.MaxMessageLength {
			sb.WriteString(telegram.EscapeMarkdownV2("(more not shown)"))
			break
		}
		sb.WriteString(entry)
	}
	r.sender.SendMarkdown(chatID, sb.String())
}

func (r *Router) handleMySubmissions(ctx context.Context, chatID int64) {
	subs, err := r.store.ListSubmissionsByActor(ctx, chatID)
	if err != nil {
		slog.Error("Failed to list submissions", "chat_id", chatID, "error", err)
		r.sender.SendPlain(chatID, "Something went wrong, please try again.")
		return
	}
	if len(subs) == 0 {
		r.sender.SendPlain(chatID, "You have no submissions yet. Share content with /submit.")
		return
	}

	var sb strings.Builder
	sb.WriteString("Your submissions:\n")
	for _, s := range subs {
		line := fmt.Sprintf("• %s (%s, %s): %s\n", s.Title, s.Kind, s.Course, s.Status)
		if sb.Len()+len(line) > telegram.MaxMessageLength {
			sb.WriteString("(more not shown)")
			break
		}
		sb.WriteString(line)
	}
	r.sender.SendPlain(chatID, sb.String())
}

// handleSupport captures a one-message support ticket and alerts the admin
// chats.
func (r *Router) handleSupport(ctx context.Context, chatID int64, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		r.sender.SendPlain(chatID, "Describe your issue in one message: /support <your message>")
		return
	}

	ticket := &storage.Ticket{
		ID:      uuid.NewString(),
		ActorID: chatID,
		Message: message,
	}
	if err := r.store.InsertTicket(ctx, ticket); err != nil {
		slog.Error("Failed to create ticket", "chat_id", chatID, "error", err)
		r.sender.SendPlain(chatID, "Could not create the ticket, please try again.")
		return
	}

	r.sender.SendPlain(chatID, "Ticket created. We will get back to you.")
	for _, admin := range r.adminChats {
		r.sender.SendPlain(admin, fmt.Sprintf("New support ticket from %d:\n%s", chatID, message))
	}
}
