package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/campuslink/campuslink-bot/internal/files"
	"github.com/campuslink/campuslink-bot/internal/storage"
)

// persister performs the terminal write for a confirmed wizard. It is invoked
// only from the confirm step after guards pass; the caller deletes the session
// afterwards whether the write succeeded or not.
type persister struct {
	store storage.Store
}

// guard returns a user-facing message when the session must not be persisted
// yet, or "" when persistence may proceed.
func (p *persister) guard(sess *Session) string {
	switch sess.Kind {
	case KindSubmission:
		if _, ok := sess.Answers["file"].(files.Ref); !ok {
			return "The document upload is still missing. Send the PDF file before confirming."
		}
	case KindArtifact:
		_, hasFile := sess.Answers["file"].(files.Ref)
		link := answerString(sess, "link")
		if !hasFile && link == "" {
			return "Add a link or upload a file before confirming."
		}
	}
	return ""
}

// persist writes the confirmed answers for the session's kind.
func (p *persister) persist(ctx context.Context, sess *Session) error {
	switch sess.Kind {
	case KindProfile:
		return p.persistProfile(ctx, sess)
	case KindSubmission:
		return p.persistSubmission(ctx, sess)
	case KindOnboarding:
		return p.persistOnboarding(ctx, sess)
	case KindGoal:
		return p.persistGoal(ctx, sess)
	case KindTask:
		return p.persistTask(ctx, sess)
	case KindArtifact:
		return p.persistArtifact(ctx, sess)
	}
	return fmt.Errorf("unknown wizard kind %q", sess.Kind)
}

// doneMessage is the completion text sent after a successful persist.
func (p *persister) doneMessage(kind Kind) string {
	switch kind {
	case KindProfile:
		return "Profile saved. You can update it any time with /profile."
	case KindSubmission:
		return "Submitted! Your content is now waiting for review."
	case KindOnboarding:
		return "Your path is ready. Add goals with /goal and tasks with /task."
	case KindGoal:
		return "Goal added."
	case KindTask:
		return "Task added."
	case KindArtifact:
		return "Artifact saved."
	}
	return "Done."
}

func (p *persister) persistProfile(ctx context.Context, sess *Session) error {
	u := &storage.User{
		ActorID:   sess.ActorID,
		Username:  sess.Context.Username,
		FullName:  answerString(sess, "fullName"),
		Faculty:   answerString(sess, "faculty"),
		Track:     answerString(sess, "track"),
		Term:      answerInt(sess, "term"),
		Interests: answerStrings(sess, "interests"),
		LinkedIn:  answerString(sess, "linkedin"),
	}
	if skills, ok := sess.Answers["skills"].([]ScoredSkill); ok {
		for _, sk := range skills {
			u.Skills = append(u.Skills, storage.Skill{Name: sk.Name, Score: sk.Score})
		}
	}
	return p.store.UpsertUser(ctx, u)
}

func (p *persister) persistSubmission(ctx context.Context, sess *Session) error {
	ref, _ := sess.Answers["file"].(files.Ref)
	sub := &storage.Submission{
		ID:          uuid.NewString(),
		ActorID:     sess.ActorID,
		Title:       answerString(sess, "title"),
		Kind:        answerString(sess, "kind"),
		Course:      answerString(sess, "course"),
		Term:        answerInt(sess, "term"),
		Description: answerString(sess, "description"),
		FileID:      ref.ID,
		FileLink:    ref.Link,
		FileMIME:    ref.MIME,
		Status:      "pending",
	}
	if err := p.store.InsertSubmission(ctx, sub); err != nil {
		return err
	}
	return p.store.InsertNotification(ctx, &storage.Notification{
		ID:      uuid.NewString(),
		Type:    "submission",
		Title:   "New submission: " + sub.Title,
		Message: fmt.Sprintf("%s (%s) for %s, term %d", sub.Title, sub.Kind, sub.Course, sub.Term),
		Payload: map[string]any{
			"submission_id": sub.ID,
			"actor_id":      sub.ActorID,
			"file_link":     sub.FileLink,
		},
	})
}

func (p *persister) persistOnboarding(ctx context.Context, sess *Session) error {
	return p.store.InsertPath(ctx, &storage.Path{
		ID:          uuid.NewString(),
		ActorID:     sess.ActorID,
		TargetRole:  answerString(sess, "targetRole"),
		Interests:   answerStrings(sess, "interests"),
		WeeklyHours: answerInt(sess, "weeklyHours"),
		FreeDays:    answerStrings(sess, "freeDays"),
	})
}

func (p *persister) persistGoal(ctx context.Context, sess *Session) error {
	return p.store.InsertGoal(ctx, &storage.Goal{
		ID:            uuid.NewString(),
		ActorID:       sess.ActorID,
		Title:         answerString(sess, "title"),
		Metric:        answerString(sess, "metric"),
		DeadlineWeeks: answerInt(sess, "deadlineWeeks"),
	})
}

func (p *persister) persistTask(ctx context.Context, sess *Session) error {
	goalTitle := answerString(sess, "goal")
	goals, err := p.store.ListGoalsByActor(ctx, sess.ActorID)
	if err != nil {
		return err
	}
	goalID := ""
	for _, g := range goals {
		if g.Title == goalTitle {
			goalID = g.ID
			break
		}
	}
	if goalID == "" {
		return fmt.Errorf("goal %q not found", goalTitle)
	}
	return p.store.InsertTask(ctx, &storage.Task{
		ID:            uuid.NewString(),
		GoalID:        goalID,
		ActorID:       sess.ActorID,
		Title:         answerString(sess, "title"),
		EstimateHours: answerInt(sess, "estimateHours"),
	})
}

func (p *persister) persistArtifact(ctx context.Context, sess *Session) error {
	ref, _ := sess.Answers["file"].(files.Ref)
	return p.store.InsertArtifact(ctx, &storage.Artifact{
		ID:       uuid.NewString(),
		ActorID:  sess.ActorID,
		Title:    answerString(sess, "title"),
		Link:     answerString(sess, "link"),
		Tags:     answerStrings(sess, "tags"),
		FileID:   ref.ID,
		FileMIME: ref.MIME,
	})
}

// Answer accessors tolerate missing and skipped (nil) values.

func answerString(sess *Session, key string) string {
	v, _ := sess.Answers[key].(string)
	return v
}

func answerInt(sess *Session, key string) int {
	v, _ := sess.Answers[key].(int)
	return v
}

func answerStrings(sess *Session, key string) []string {
	switch v := sess.Answers[key].(type) {
	case []string:
		return v
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}
