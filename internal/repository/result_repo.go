package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"archetype-quiz/internal/domain"
)

type ResultRepository interface {
	Save(ctx context.Context, result domain.QuizResult) error
	GetBySessionID(ctx context.Context, sessionID string) (domain.QuizResult, error)
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

func (r *PgResultRepository) Save(ctx context.Context, result domain.QuizResult) error {
	const query = `
		INSERT INTO quiz_results (id, session_id, answers, scores, archetype_id, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id)
		DO UPDATE SET
			answers = EXCLUDED.answers,
			scores = EXCLUDED.scores,
			archetype_id = EXCLUDED.archetype_id,
			confidence = EXCLUDED.confidence,
			created_at = EXCLUDED.created_at
	`

	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		result.ID,
		result.SessionID,
		answers,
		scoresToVector(result.Scores),
		result.ArchetypeID,
		result.Confidence,
		result.CreatedAt,
	)
	return err
}

func (r *PgResultRepository) GetBySessionID(ctx context.Context, sessionID string) (domain.QuizResult, error) {
	const query = `
		SELECT id, session_id, answers, scores, archetype_id, confidence, created_at
		FROM quiz_results
		WHERE session_id = $1
	`

	var (
		result  domain.QuizResult
		answers []byte
		scores  pgvector.Vector
	)
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&result.ID,
		&result.SessionID,
		&answers,
		&scores,
		&result.ArchetypeID,
		&result.Confidence,
		&result.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.QuizResult{}, err
	}
	if err != nil {
		return domain.QuizResult{}, err
	}

	if err := json.Unmarshal(answers, &result.Answers); err != nil {
		return domain.QuizResult{}, err
	}
	result.Scores = vectorToScores(scores)
	return result, nil
}

// scoresToVector serializa los puntajes como vector(4) en el orden canónico
// structure, motivation, cognitive, task.
func scoresToVector(s domain.AxisScores) pgvector.Vector {
	return pgvector.NewVector([]float32{
		float32(s.Structure),
		float32(s.Motivation),
		float32(s.Cognitive),
		float32(s.Task),
	})
}

func vectorToScores(v pgvector.Vector) domain.AxisScores {
	raw := v.Slice()
	if len(raw) != 4 {
		return domain.AxisScores{}
	}
	return domain.AxisScores{
		Structure:  int(raw[0]),
		Motivation: int(raw[1]),
		Cognitive:  int(raw[2]),
		Task:       int(raw[3]),
	}
}
