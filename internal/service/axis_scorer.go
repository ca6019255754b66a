package service

import (
	"math"

	"archetype-quiz/internal/domain"
)

// AxisScorer reduce un AnswerSet a los cuatro puntajes 0-100. Función pura:
// mismo set de respuestas, mismos puntajes, sin estado ni I/O.
type AxisScorer struct{}

// DefaultAxisScorer permite uso directo sin instanciar.
var DefaultAxisScorer = AxisScorer{}

// ComputeAxisScores promedia las contribuciones normalizadas [-1, 1] de las
// preguntas respondidas de cada eje y reescala al rango 0-100. Un eje sin
// respuestas queda en 50 (punto neutro) para que los puntajes sean siempre
// válidos con sets parciales (variantes quick-scan).
func (AxisScorer) ComputeAxisScores(answers domain.AnswerSet, bank []domain.Question) domain.AxisScores {
	sums := map[domain.Axis]float64{}
	counts := map[domain.Axis]int{}

	for _, q := range bank {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		contribution, ok := questionContribution(q, value)
		if !ok {
			continue
		}
		sums[q.Axis] += contribution
		counts[q.Axis]++
	}

	return domain.AxisScores{
		Structure:  axisScore(sums, counts, domain.AxisStructure),
		Motivation: axisScore(sums, counts, domain.AxisMotivation),
		Cognitive:  axisScore(sums, counts, domain.AxisCognitive),
		Task:       axisScore(sums, counts, domain.AxisTask),
	}
}

// questionContribution convierte la respuesta cruda en una contribución
// firmada en [-1, 1]. Respuestas fuera de rango se descartan.
func questionContribution(q domain.Question, value int) (float64, bool) {
	switch q.Type {
	case domain.QuestionTypeLikert:
		// Escala 1-5: distancia al punto medio (3), normalizada a [-1, 1].
		if value < 1 || value > 5 {
			return 0, false
		}
		c := float64(value-3) / 2
		if q.Reverse {
			c = -c
		}
		return c, true
	case domain.QuestionTypeScenario, domain.QuestionTypeBinary:
		if value < 0 || value >= len(q.Contributions) {
			return 0, false
		}
		return q.Contributions[value], true
	}
	return 0, false
}

func axisScore(sums map[domain.Axis]float64, counts map[domain.Axis]int, axis domain.Axis) int {
	n := counts[axis]
	if n == 0 {
		return 50
	}
	mean := sums[axis] / float64(n)
	// Reescala de [-1, 1] a [0, 100], redondeo half-up.
	score := int(math.Floor((mean+1)/2*100 + 0.5))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
