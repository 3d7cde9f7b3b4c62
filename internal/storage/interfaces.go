package storage

import "context"

// Store is defined here rather than in bot/ or wizard/ so both can import it
// without coupling bot <-> wizard.

// Store is the persistence contract for the whole application.
type Store interface {
	UserStore
	SubmissionStore
	PathStore
	OpportunityStore
	TicketStore
	Notifier
}

// UserStore covers profile reads and writes.
type UserStore interface {
	GetUser(ctx context.Context, actorID int64) (*User, error)
	UpsertUser(ctx context.Context, u *User) error
	CountUsers(ctx context.Context) (int, error)
}

// SubmissionStore covers content submissions.
type SubmissionStore interface {
	InsertSubmission(ctx context.Context, s *Submission) error
	ListSubmissions(ctx context.Context, status string) ([]Submission, error)
	ListSubmissionsByActor(ctx context.Context, actorID int64) ([]Submission, error)
	UpdateSubmissionStatus(ctx context.Context, id, status string) error
}

// PathStore covers the personal path planner records.
type PathStore interface {
	InsertPath(ctx context.Context, p *Path) error
	GetPathByActor(ctx context.Context, actorID int64) (*Path, error)
	InsertGoal(ctx context.Context, g *Goal) error
	ListGoalsByActor(ctx context.Context, actorID int64) ([]Goal, error)
	InsertTask(ctx context.Context, t *Task) error
	InsertArtifact(ctx context.Context, a *Artifact) error
	CountPaths(ctx context.Context) (int, error)
}

// OpportunityStore covers industry postings.
type OpportunityStore interface {
	InsertOpportunity(ctx context.Context, o *Opportunity) error
	ListOpportunities(ctx context.Context, activeOnly bool) ([]Opportunity, error)
}

// TicketStore covers support tickets.
type TicketStore interface {
	InsertTicket(ctx context.Context, t *Ticket) error
	ListTickets(ctx context.Context, status string) ([]Ticket, error)
	UpdateTicketStatus(ctx context.Context, id, status string) error
}

// Notifier records admin-facing notifications.
type Notifier interface {
	InsertNotification(ctx context.Context, n *Notification) error
}
