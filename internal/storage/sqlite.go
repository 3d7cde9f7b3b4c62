package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	actor_id   INTEGER PRIMARY KEY,
	username   TEXT NOT NULL DEFAULT '',
	full_name  TEXT NOT NULL DEFAULT '',
	faculty    TEXT NOT NULL DEFAULT '',
	track      TEXT NOT NULL DEFAULT '',
	term       INTEGER NOT NULL DEFAULT 0,
	skills     TEXT NOT NULL DEFAULT '[]',
	interests  TEXT NOT NULL DEFAULT '[]',
	linkedin   TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS submissions (
	id          TEXT PRIMARY KEY,
	actor_id    INTEGER NOT NULL,
	title       TEXT NOT NULL,
	kind        TEXT NOT NULL,
	course      TEXT NOT NULL,
	term        INTEGER NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	file_id     TEXT NOT NULL DEFAULT '',
	file_link   TEXT NOT NULL DEFAULT '',
	file_mime   TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'pending',
	created_at  TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	type       TEXT NOT NULL,
	title      TEXT NOT NULL,
	message    TEXT NOT NULL,
	payload    TEXT NOT NULL DEFAULT '{}',
	read       INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS paths (
	id           TEXT PRIMARY KEY,
	actor_id     INTEGER NOT NULL,
	target_role  TEXT NOT NULL,
	interests    TEXT NOT NULL DEFAULT '[]',
	weekly_hours INTEGER NOT NULL,
	free_days    TEXT NOT NULL DEFAULT '[]',
	created_at   TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS goals (
	id             TEXT PRIMARY KEY,
	actor_id       INTEGER NOT NULL,
	title          TEXT NOT NULL,
	metric         TEXT NOT NULL DEFAULT '',
	deadline_weeks INTEGER NOT NULL,
	created_at     TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	id             TEXT PRIMARY KEY,
	goal_id        TEXT NOT NULL,
	actor_id       INTEGER NOT NULL,
	title          TEXT NOT NULL,
	estimate_hours INTEGER NOT NULL,
	status         TEXT NOT NULL DEFAULT 'open',
	created_at     TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS artifacts (
	id         TEXT PRIMARY KEY,
	actor_id   INTEGER NOT NULL,
	title      TEXT NOT NULL,
	link       TEXT NOT NULL DEFAULT '',
	tags       TEXT NOT NULL DEFAULT '[]',
	file_id    TEXT NOT NULL DEFAULT '',
	file_mime  TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS opportunities (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	company    TEXT NOT NULL DEFAULT '',
	details    TEXT NOT NULL DEFAULT '',
	link       TEXT NOT NULL DEFAULT '',
	active     INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS tickets (
	id         TEXT PRIMARY KEY,
	actor_id   INTEGER NOT NULL,
	message    TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'open',
	created_at TIMESTAMP NOT NULL
);
`

// SQLite implements Store on a local sqlite database (pure-Go driver).
type SQLite struct {
	db *sql.DB
}

// Open opens (and bootstraps) the database at path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// modernc sqlite does not tolerate concurrent writers on one connection pool
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) GetUser(ctx context.Context, actorID int64) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT actor_id, username, full_name, faculty, track, term,
		skills, interests, linkedin, created_at, updated_at FROM users WHERE actor_id = ?`, actorID)

	var u User
	var skills, interests string
	err := row.Scan(&u.ActorID, &u.Username, &u.FullName, &u.Faculty, &u.Track, &u.Term,
		&skills, &interests, &u.LinkedIn, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(skills), &u.Skills); err != nil {
		u.Skills = nil
	}
	if err := json.Unmarshal([]byte(interests), &u.Interests); err != nil {
		u.Interests = nil
	}
	return &u, nil
}

func (s *SQLite) UpsertUser(ctx context.Context, u *User) error {
	skills, err := json.Marshal(u.Skills)
	if err != nil {
		return err
	}
	interests, err := json.Marshal(u.Interests)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `INSERT INTO users
		(actor_id, username, full_name, faculty, track, term, skills, interests, linkedin, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(actor_id) DO UPDATE SET
			username = excluded.username,
			full_name = excluded.full_name,
			faculty = excluded.faculty,
			track = excluded.track,
			term = excluded.term,
			skills = excluded.skills,
			interests = excluded.interests,
			linkedin = excluded.linkedin,
			updated_at = excluded.updated_at`,
		u.ActorID, u.Username, u.FullName, u.Faculty, u.Track, u.Term,
		string(skills), string(interests), u.LinkedIn, now, now)
	return err
}

func (s *SQLite) CountUsers(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (s *SQLite) InsertSubmission(ctx context.Context, sub *Submission) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO submissions
		(id, actor_id, title, kind, course, term, description, file_id, file_link, file_mime, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.ActorID, sub.Title, sub.Kind, sub.Course, sub.Term,
		sub.Description, sub.FileID, sub.FileLink, sub.FileMIME, sub.Status, time.Now().UTC())
	return err
}

func (s *SQLite) ListSubmissions(ctx context.Context, status string) ([]Submission, error) {
	query := `SELECT id, actor_id, title, kind, course, term, description,
		file_id, file_link, file_mime, status, created_at FROM submissions`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	return s.scanSubmissions(ctx, query, args...)
}

func (s *SQLite) ListSubmissionsByActor(ctx context.Context, actorID int64) ([]Submission, error) {
	return s.scanSubmissions(ctx, `SELECT id, actor_id, title, kind, course, term, description,
		file_id, file_link, file_mime, status, created_at FROM submissions
		WHERE actor_id = ? ORDER BY created_at DESC`, actorID)
}

func (s *SQLite) scanSubmissions(ctx context.Context, query string, args ...any) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.ActorID, &sub.Title, &sub.Kind, &sub.Course, &sub.Term,
			&sub.Description, &sub.FileID, &sub.FileLink, &sub.FileMIME, &sub.Status, &sub.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *SQLite) UpdateSubmissionStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE submissions SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return err
}

func (s *SQLite) InsertNotification(ctx context.Context, n *Notification) error {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO notifications (id, type, title, message, payload, read, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?)`,
		n.ID, n.Type, n.Title, n.Message, string(payload), time.Now().UTC())
	return err
}

func (s *SQLite) InsertPath(ctx context.Context, p *Path) error {
	interests, err := json.Marshal(p.Interests)
	if err != nil {
		return err
	}
	days, err := json.Marshal(p.FreeDays)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO paths (id, actor_id, target_role, interests, weekly_hours, free_days, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ActorID, p.TargetRole, string(interests), p.WeeklyHours, string(days), time.Now().UTC())
	return err
}

func (s *SQLite) GetPathByActor(ctx context.Context, actorID int64) (*Path, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, actor_id, target_role, interests, weekly_hours, free_days, created_at
		FROM paths WHERE actor_id = ? ORDER BY created_at DESC LIMIT 1`, actorID)

	var p Path
	var interests, days string
	err := row.Scan(&p.ID, &p.ActorID, &p.TargetRole, &interests, &p.WeeklyHours, &days, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(interests), &p.Interests); err != nil {
		p.Interests = nil
	}
	if err := json.Unmarshal([]byte(days), &p.FreeDays); err != nil {
		p.FreeDays = nil
	}
	return &p, nil
}

func (s *SQLite) InsertGoal(ctx context.Context, g *Goal) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO goals (id, actor_id, title, metric, deadline_weeks, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.ActorID, g.Title, g.Metric, g.DeadlineWeeks, time.Now().UTC())
	return err
}

func (s *SQLite) ListGoalsByActor(ctx context.Context, actorID int64) ([]Goal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, actor_id, title, metric, deadline_weeks, created_at
		FROM goals WHERE actor_id = ? ORDER BY created_at`, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.ActorID, &g.Title, &g.Metric, &g.DeadlineWeeks, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *SQLite) InsertTask(ctx context.Context, t *Task) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO tasks (id, goal_id, actor_id, title, estimate_hours, status, created_at)
		VALUES (?, ?, ?, ?, ?, 'open', ?)`,
		t.ID, t.GoalID, t.ActorID, t.Title, t.EstimateHours, time.Now().UTC())
	return err
}

func (s *SQLite) InsertArtifact(ctx context.Context, a *Artifact) error {
	tags, err := json.Marshal(a.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO artifacts (id, actor_id, title, link, tags, file_id, file_mime, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.ActorID, a.Title, a.Link, string(tags), a.FileID, a.FileMIME, time.Now().UTC())
	return err
}

func (s *SQLite) CountPaths(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM paths`)
}

func (s *SQLite) InsertOpportunity(ctx context.Context, o *Opportunity) error {
	active := 0
	if o.Active {
		active = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO opportunities (id, title, company, details, link, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Title, o.Company, o.Details, o.Link, active, time.Now().UTC())
	return err
}

func (s *SQLite) ListOpportunities(ctx context.Context, activeOnly bool) ([]Opportunity, error) {
	query := `SELECT id, title, company, details, link, active, created_at FROM opportunities`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Opportunity
	for rows.Next() {
		var o Opportunity
		var active int
		if err := rows.Scan(&o.ID, &o.Title, &o.Company, &o.Details, &o.Link, &active, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Active = active == 1
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *SQLite) InsertTicket(ctx context.Context, t *Ticket) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO tickets (id, actor_id, message, status, created_at)
		VALUES (?, ?, ?, 'open', ?)`,
		t.ID, t.ActorID, t.Message, time.Now().UTC())
	return err
}

func (s *SQLite) ListTickets(ctx context.Context, status string) ([]Ticket, error) {
	query := `SELECT id, actor_id, message, status, created_at FROM tickets`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ticket
	for rows.Next() {
		var t Ticket
		if err := rows.Scan(&t.ID, &t.ActorID, &t.Message, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLite) UpdateTicketStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tickets SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("ticket %s not found", id)
	}
	return err
}

// Dashboard aggregates the counters shown on the admin dashboard.
func (s *SQLite) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	var err error
	if stats.Users, err = s.CountUsers(ctx); err != nil {
		return nil, err
	}
	if stats.PendingSubmissions, err = s.count(ctx, `SELECT COUNT(*) FROM submissions WHERE status = 'pending'`); err != nil {
		return nil, err
	}
	if stats.OpenTickets, err = s.count(ctx, `SELECT COUNT(*) FROM tickets WHERE status = 'open'`); err != nil {
		return nil, err
	}
	if stats.ActiveOpportunities, err = s.count(ctx, `SELECT COUNT(*) FROM opportunities WHERE active = 1`); err != nil {
		return nil, err
	}
	if stats.Paths, err = s.CountPaths(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *SQLite) count(ctx context.Context, query string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, query).Scan(&n)
	return n, err
}
