// Package repository provides PostgreSQL persistence for scored leads.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Lead is a persisted scoring record. The table is append-only; records
// are never updated after insert.
type Lead struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	InitialScore  int    `json:"initial_score"`
	RerankedScore int    `json:"reranked_score"`
	IntentLevel   string `json:"intent_level"`
	Comments      string `json:"comments"`
	CreatedAt     string `json:"created_at"`
}

// Stats aggregates the stored lead records.
type Stats struct {
	TotalLeads           int64
	AverageInitialScore  float64
	AverageRerankedScore float64
	IntentDistribution   map[string]int64
}

// Repo implements lead persistence with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Insert stores a scored lead and returns its generated ID.
func (r *Repo) Insert(ctx context.Context, lead Lead) (int64, error) {
	query := `
		INSERT INTO leads (email, phone, initial_score, reranked_score, intent_level, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		lead.Email, lead.Phone, lead.InitialScore, lead.RerankedScore, lead.IntentLevel, lead.Comments,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert lead: %w", err)
	}

	return id, nil
}

// List retrieves all stored leads, newest first.
func (r *Repo) List(ctx context.Context) ([]Lead, error) {
	query := `
		SELECT id, email, phone, initial_score, reranked_score, intent_level, comments, created_at
		FROM leads
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		var lead Lead
		var createdAt time.Time
		if err := rows.Scan(
			&lead.ID, &lead.Email, &lead.Phone, &lead.InitialScore, &lead.RerankedScore,
			&lead.IntentLevel, &lead.Comments, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		lead.CreatedAt = createdAt.Format(time.RFC3339)
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	return leads, nil
}

// Count returns the number of stored leads.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return count, nil
}

// GetStats aggregates totals, score averages, and the intent-level
// distribution in two queries.
func (r *Repo) GetStats(ctx context.Context) (Stats, error) {
	stats := Stats{IntentDistribution: make(map[string]int64)}

	summary := `
		SELECT COUNT(*),
		       COALESCE(AVG(initial_score), 0),
		       COALESCE(AVG(reranked_score), 0)
		FROM leads`
	err := r.pool.QueryRow(ctx, summary).Scan(
		&stats.TotalLeads, &stats.AverageInitialScore, &stats.AverageRerankedScore,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("lead stats summary: %w", err)
	}

	distribution := `
		SELECT intent_level, COUNT(*)
		FROM leads
		GROUP BY intent_level`
	rows, err := r.pool.Query(ctx, distribution)
	if err != nil {
		return Stats{}, fmt.Errorf("lead stats distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var count int64
		if err := rows.Scan(&level, &count); err != nil {
			return Stats{}, fmt.Errorf("scan intent distribution: %w", err)
		}
		stats.IntentDistribution[level] = count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("lead stats distribution: %w", err)
	}

	return stats, nil
}
