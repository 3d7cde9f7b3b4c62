package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/campuslink/campuslink-bot/internal/files"
	"github.com/campuslink/campuslink-bot/internal/storage"
	"github.com/campuslink/campuslink-bot/internal/telegram"
)

const msgFinishFirst = "Please finish or cancel the current wizard first (send " + labelCancel + ")."

// Controller is the single entry point of the wizard engine. It owns the
// session store and interprets the step catalogs; the bot feeds it one
// normalized event at a time and renders the returned reply.
type Controller struct {
	sessions *SessionStore
	catalogs map[Kind]*Catalog
	store    storage.Store
	persist  *persister
	upload   *uploadAdapter
}

// New creates the engine with its collaborators.
func New(store storage.Store, fileStore files.Store, sessionTTL time.Duration) *Controller {
	return &Controller{
		sessions: NewSessionStore(sessionTTL),
		catalogs: newCatalogs(store),
		store:    store,
		persist:  &persister{store: store},
		upload:   &uploadAdapter{files: fileStore},
	}
}

// StartSweep begins periodic eviction of idle sessions.
func (c *Controller) StartSweep(ctx context.Context, interval time.Duration) {
	c.sessions.StartSweep(ctx, interval)
}

// Active reports whether the actor has any wizard in progress.
func (c *Controller) Active(actorID int64) bool {
	return c.sessions.Any(actorID) != nil
}

// Start opens a new session for the given kind and returns the first prompt.
// An actor can have at most one wizard open: starting a second kind while any
// other is active is rejected explicitly rather than silently overlapping.
func (c *Controller) Start(ctx context.Context, actorID int64, username string, kind Kind) Reply {
	if existing := c.sessions.Any(actorID); existing != nil {
		return Reply{Text: fmt.Sprintf("You already have a %s wizard in progress. %s", existing.Kind, msgFinishFirst)}
	}

	catalog, ok := c.catalogs[kind]
	if !ok {
		return Reply{Text: "Unknown wizard."}
	}

	actorCtx := ActorContext{Username: username}
	user, err := c.store.GetUser(ctx, actorID)
	if err != nil {
		slog.Error("Failed to load actor profile", "actor_id", actorID, "error", err)
		return Reply{Text: "Something went wrong, please try again."}
	}
	if user != nil {
		actorCtx.FullName = user.FullName
		actorCtx.Faculty = user.Faculty
		actorCtx.Track = user.Track
		actorCtx.Term = user.Term
	}

	sess := newSession(actorID, kind, actorCtx)
	c.sessions.Set(sess)
	reply, err := c.renderStep(ctx, sess, catalog)
	if err != nil {
		// A session whose first prompt never rendered would block every
		// wizard for this actor until cancel or TTL.
		c.sessions.Delete(actorID, kind)
	}
	return reply
}

// HandleEvent processes one inbound event for an actor. When no session is
// active the event is not handled and the caller's plain-menu dispatch takes
// over. Every handled path produces exactly one reply.
func (c *Controller) HandleEvent(ctx context.Context, actorID int64, ev Event) Outcome {
	sess := c.sessions.Any(actorID)
	if sess == nil {
		return Outcome{Handled: false}
	}
	catalog := c.catalogs[sess.Kind]
	step := catalog.Steps[sess.StepIndex]

	text := Normalize(ev.Text)

	// Cancellation wins over everything, including pending uploads.
	if ev.Doc == nil && text == tokenCancel {
		c.sessions.Delete(actorID, sess.Kind)
		return handled(Reply{Text: "Cancelled.", Clear: true})
	}

	// A wizard in progress intercepts global menu commands.
	if ev.Doc == nil && strings.HasPrefix(text, "/") {
		return handled(Reply{Text: msgFinishFirst})
	}

	if ev.Doc != nil {
		return c.handleDocument(ctx, sess, catalog, step, ev.Doc)
	}

	if step.Multi {
		return c.handleMulti(ctx, sess, catalog, step, text)
	}

	if step.PageSize > 0 && (text == tokenPrev || text == tokenNext) {
		return c.handlePageNav(ctx, sess, catalog, step, text)
	}

	if step.Validate == ValidateConfirm {
		return c.handleConfirm(ctx, sess, catalog, step, text)
	}

	// Optional file steps can be skipped by text even though their real
	// input is a document.
	if step.Validate == ValidateFile && !step.Required && skipKeywords[strings.ToLower(text)] {
		sess.Answers[step.Key] = nil
		return handled(c.advance(ctx, sess, catalog))
	}

	options, err := catalog.options(ctx, step, sess)
	if err != nil {
		slog.Error("Failed to resolve step options", "kind", sess.Kind, "step", step.Key, "error", err)
		return handled(Reply{Text: "Something went wrong, please try again."})
	}

	res := validateInput(step, text, options)
	if !res.ok {
		return handled(Reply{Text: res.message})
	}

	c.setAnswer(sess, catalog, step, res.value)
	return handled(c.advance(ctx, sess, catalog))
}

func handled(r Reply) Outcome {
	return Outcome{Handled: true, Reply: r}
}

// handleDocument routes an inbound file through the external step adapter.
// The session is mutated only after the upload succeeded.
func (c *Controller) handleDocument(ctx context.Context, sess *Session, catalog *Catalog, step Step, doc *Document) Outcome {
	if step.Validate != ValidateFile {
		return handled(Reply{Text: "A file is not expected at this step."})
	}

	ref, msg := c.upload.handleDocument(ctx, sess, doc)
	if msg != "" {
		return handled(Reply{Text: msg})
	}

	sess.Answers[step.Key] = ref
	return handled(c.advance(ctx, sess, catalog))
}

// handleMulti toggles an option in or out of the step's selection set, or
// finalizes the step on the done marker. Toggling never advances the step.
func (c *Controller) handleMulti(ctx context.Context, sess *Session, catalog *Catalog, step Step, text string) Outcome {
	options, err := catalog.options(ctx, step, sess)
	if err != nil {
		slog.Error("Failed to resolve step options", "kind", sess.Kind, "step", step.Key, "error", err)
		return handled(Reply{Text: "Something went wrong, please try again."})
	}

	if text == tokenDone {
		selected := sess.selectedList(step.Key, options)
		if len(selected) == 0 {
			return handled(Reply{Text: "Select at least one option first."})
		}
		sess.Answers[step.Key] = selected
		return handled(c.advance(ctx, sess, catalog))
	}

	for _, opt := range options {
		if text != opt {
			continue
		}
		set := sess.selection(step.Key)
		set[opt] = !set[opt]
		// Mirror the selection into answers so observers always see the
		// current set; the done marker freezes it.
		sess.Answers[step.Key] = sess.selectedList(step.Key, options)
		c.sessions.Touch(sess)
		reply, _ := c.renderStep(ctx, sess, catalog)
		return handled(reply)
	}

	return handled(Reply{Text: "Please choose one of the options on the keyboard."})
}

// handlePageNav moves the page cursor for a paged step. Navigation mutates
// only uiState; requesting next at the last page (or prev at the first) is a
// no-op.
func (c *Controller) handlePageNav(ctx context.Context, sess *Session, catalog *Catalog, step Step, text string) Outcome {
	options, err := catalog.options(ctx, step, sess)
	if err != nil {
		slog.Error("Failed to resolve step options", "kind", sess.Kind, "step", step.Key, "error", err)
		return handled(Reply{Text: "Something went wrong, please try again."})
	}

	view := paginate(options, step.PageSize, sess.UI.Pages[step.Key])
	page := view.Page
	switch text {
	case tokenNext:
		if view.HasNext {
			page++
		}
	case tokenPrev:
		if view.HasPrev {
			page--
		}
	}
	sess.UI.Pages[step.Key] = page
	c.sessions.Touch(sess)
	reply, _ := c.renderStep(ctx, sess, catalog)
	return handled(reply)
}

// handleConfirm finalizes the wizard. The persister's guard can still refuse
// (e.g. missing upload); on guard pass the session is deleted whether the
// write succeeds or not, and the actor is told to start over on failure.
func (c *Controller) handleConfirm(ctx context.Context, sess *Session, catalog *Catalog, step Step, text string) Outcome {
	if text != tokenConfirm {
		res := validateInput(step, text, nil)
		return handled(Reply{Text: res.message})
	}

	if msg := c.persist.guard(sess); msg != "" {
		return handled(Reply{Text: msg})
	}

	c.sessions.Delete(sess.ActorID, sess.Kind)
	if err := c.persist.persist(ctx, sess); err != nil {
		slog.Error("Wizard persistence failed", "actor_id", sess.ActorID, "kind", sess.Kind, "error", err)
		return handled(Reply{Text: "Saving failed, please start over.", Clear: true})
	}
	return handled(Reply{Text: c.persist.doneMessage(sess.Kind), Clear: true})
}

// setAnswer stores a validated value and resets the page cursor of every
// later step, so changing a branch answer restarts its dependents at page 0.
func (c *Controller) setAnswer(sess *Session, catalog *Catalog, step Step, value any) {
	sess.Answers[step.Key] = value
	idx := catalog.stepIndexOf(step.Key)
	for i := idx + 1; i < catalog.Len(); i++ {
		delete(sess.UI.Pages, catalog.Steps[i].Key)
	}
}

// advance moves to the next step and renders its prompt.
func (c *Controller) advance(ctx context.Context, sess *Session, catalog *Catalog) Reply {
	sess.StepIndex++
	c.sessions.Touch(sess)
	reply, _ := c.renderStep(ctx, sess, catalog)
	return reply
}

// renderStep builds the prompt and keyboard for the session's current step.
// The reply is always usable; the error reports an options-resolution failure
// for callers that must react to it (the reply then carries the generic
// failure message).
func (c *Controller) renderStep(ctx context.Context, sess *Session, catalog *Catalog) (Reply, error) {
	step := catalog.Steps[sess.StepIndex]

	header := fmt.Sprintf("Step %d/%d: %s", sess.StepIndex+1, catalog.Len(), step.Prompt)

	if step.Validate == ValidateConfirm {
		return Reply{
			Text:     header + "\n\n" + c.summary(sess, catalog),
			Keyboard: [][]string{{labelConfirm, labelCancel}},
		}, nil
	}

	options, err := catalog.options(ctx, step, sess)
	if err != nil {
		slog.Error("Failed to resolve step options", "kind", sess.Kind, "step", step.Key, "error", err)
		return Reply{Text: "Something went wrong, please try again."}, err
	}

	var rows [][]string
	text := header

	switch {
	case step.Multi:
		labels := make([]string, len(options))
		set := sess.UI.Selections[step.Key]
		for i, opt := range options {
			labels[i] = decorate(opt, set[opt])
		}
		rows = telegram.Columns(labels, 2)
		rows = append(rows, []string{labelDone, labelCancel})
		if selected := sess.selectedList(step.Key, options); len(selected) > 0 {
			text += "\nSelected: " + strings.Join(selected, ", ")
		} else {
			text += "\nSelected: (none)"
		}

	case step.Validate == ValidateEnum:
		view := paginate(options, step.PageSize, sess.UI.Pages[step.Key])
		sess.UI.Pages[step.Key] = view.Page
		rows = telegram.Columns(view.Items, 2)
		var nav []string
		if view.HasPrev {
			nav = append(nav, labelPrev)
		}
		if view.HasNext {
			nav = append(nav, labelNext)
		}
		if len(nav) > 0 {
			rows = append(rows, nav)
			text += fmt.Sprintf("\nPage %d/%d", view.Page+1, view.TotalPages)
		}
		rows = append(rows, cancelRow(step))

	default:
		rows = append(rows, cancelRow(step))
	}

	return Reply{Text: text, Keyboard: rows}, nil
}

func cancelRow(step Step) []string {
	if !step.Required {
		return []string{labelSkip, labelCancel}
	}
	return []string{labelCancel}
}

// summary lists the collected answers for the confirm prompt.
func (c *Controller) summary(sess *Session, catalog *Catalog) string {
	var sb strings.Builder
	for _, step := range catalog.Steps {
		if step.Validate == ValidateConfirm {
			continue
		}
		v, ok := sess.Answers[step.Key]
		if !ok || v == nil {
			continue
		}
		sb.WriteString("• " + step.Key + ": " + formatAnswer(v) + "\n")
	}
	if sb.Len() == 0 {
		return "(nothing to save)"
	}
	return sb.String()
}

func formatAnswer(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return fmt.Sprintf("%d", val)
	case []string:
		return strings.Join(val, ", ")
	case []ScoredSkill:
		parts := make([]string, len(val))
		for i, sk := range val {
			parts[i] = fmt.Sprintf("%s:%d", sk.Name, sk.Score)
		}
		return strings.Join(parts, ", ")
	case files.Ref:
		return val.Link
	}
	return fmt.Sprintf("%v", v)
}
