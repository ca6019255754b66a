package domain

import "time"

// QuizResult es el registro persistido de un quiz completado: respuestas,
// puntajes y arquetipo resuelto para una sesión.
type QuizResult struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"session_id"`
	Answers     AnswerSet  `json:"answers"`
	Scores      AxisScores `json:"scores"`
	ArchetypeID string     `json:"archetype_id"`
	Confidence  float64    `json:"confidence"`
	CreatedAt   time.Time  `json:"created_at"`
}
