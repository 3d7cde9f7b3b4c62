package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/campuslink/campuslink-bot/internal/files"
)

// uploadAdapter wraps steps whose valid input is a document rather than text.
// The step advances only after the external upload succeeds; every failure
// path leaves the session exactly as it was so the actor can retry.
type uploadAdapter struct {
	files files.Store
}

// handleDocument validates and uploads an inbound document for the current
// step. On success it returns the stored reference; otherwise a user-facing
// rejection message. The session is not mutated here.
func (a *uploadAdapter) handleDocument(ctx context.Context, sess *Session, doc *Document) (files.Ref, string) {
	if !isPDF(doc) {
		return files.Ref{}, "Only PDF files are accepted. Please send a .pdf document."
	}

	ref, err := a.files.Upload(ctx, doc.Data, doc.Name, doc.MIME, uploadDir(sess))
	if err != nil {
		slog.Error("File upload failed", "actor_id", sess.ActorID, "kind", sess.Kind, "error", err)
		return files.Ref{}, "Upload failed, please send the file again."
	}
	return ref, ""
}

func isPDF(doc *Document) bool {
	if strings.EqualFold(doc.MIME, "application/pdf") {
		return true
	}
	return strings.EqualFold(path.Ext(doc.Name), ".pdf")
}

// uploadDir derives the deterministic destination folder from the session:
// wizard kind, the submission's own answers where present, and the actor
// profile snapshot taken at session start.
func uploadDir(sess *Session) string {
	switch sess.Kind {
	case KindSubmission:
		kind, _ := sess.Answers["kind"].(string)
		course, _ := sess.Answers["course"].(string)
		term, _ := sess.Answers["term"].(int)
		if term == 0 {
			term = sess.Context.Term
		}
		return path.Join("submissions", orUnsorted(kind), orUnsorted(course),
			fmt.Sprintf("term-%d", term), fmt.Sprintf("%d", sess.ActorID))
	case KindArtifact:
		return path.Join("artifacts", orUnsorted(sess.Context.Track), fmt.Sprintf("%d", sess.ActorID))
	default:
		return path.Join(string(sess.Kind), fmt.Sprintf("%d", sess.ActorID))
	}
}

func orUnsorted(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unsorted"
	}
	return s
}
