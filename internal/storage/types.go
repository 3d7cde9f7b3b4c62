// Package storage defines the domain records and the persistence contracts
// consumed by the bot, the wizard engine and the admin API.
package storage

import "time"

// User is a student profile keyed by the Telegram chat ID.
type User struct {
	ActorID   int64
	Username  string
	FullName  string
	Faculty   string
	Track     string
	Term      int
	Skills    []Skill
	Interests []string
	LinkedIn  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Skill is a self-assessed skill with a 1-10 score.
type Skill struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Submission is student-submitted course content awaiting review.
type Submission struct {
	ID          string
	ActorID     int64
	Title       string
	Kind        string // notes, summary, slides, exam
	Course      string
	Term        int
	Description string
	FileID      string
	FileLink    string
	FileMIME    string
	Status      string // pending, approved, rejected
	CreatedAt   time.Time
}

// Notification is an admin-facing event record.
type Notification struct {
	ID        string
	Type      string
	Title     string
	Message   string
	Payload   map[string]any
	Read      bool
	CreatedAt time.Time
}

// Path is a personal learning path created by the onboarding wizard.
type Path struct {
	ID          string
	ActorID     int64
	TargetRole  string
	Interests   []string
	WeeklyHours int
	FreeDays    []string
	CreatedAt   time.Time
}

// Goal belongs to an actor's path.
type Goal struct {
	ID            string
	ActorID       int64
	Title         string
	Metric        string
	DeadlineWeeks int
	CreatedAt     time.Time
}

// Task belongs to a goal.
type Task struct {
	ID            string
	GoalID        string
	ActorID       int64
	Title         string
	EstimateHours int
	Status        string // open, done
	CreatedAt     time.Time
}

// Artifact is a piece of evidence attached to a path (link or uploaded file).
type Artifact struct {
	ID        string
	ActorID   int64
	Title     string
	Link      string
	Tags      []string
	FileID    string
	FileMIME  string
	CreatedAt time.Time
}

// Opportunity is an industry posting shown to students.
type Opportunity struct {
	ID        string
	Title     string
	Company   string
	Details   string
	Link      string
	Active    bool
	CreatedAt time.Time
}

// Ticket is a support request captured from the bot.
type Ticket struct {
	ID        string
	ActorID   int64
	Message   string
	Status    string // open, closed
	CreatedAt time.Time
}

// DashboardStats aggregates counts for the admin dashboard.
type DashboardStats struct {
	Users               int `json:"users"`
	PendingSubmissions  int `json:"pending_submissions"`
	OpenTickets         int `json:"open_tickets"`
	ActiveOpportunities int `json:"active_opportunities"`
	Paths               int `json:"paths"`
}
