package service

import (
	"testing"

	"archetype-quiz/internal/domain"
)

func likertQ(id string, axis domain.Axis, reverse bool) domain.Question {
	return domain.Question{ID: id, Axis: axis, Type: domain.QuestionTypeLikert, Reverse: reverse}
}

func TestComputeAxisScores_NeutralDefaultWithoutAnswers(t *testing.T) {
	scores := DefaultAxisScorer.ComputeAxisScores(domain.AnswerSet{}, QuestionBank())
	expected := domain.AxisScores{Structure: 50, Motivation: 50, Cognitive: 50, Task: 50}
	if scores != expected {
		t.Fatalf("expected all-neutral scores, got %+v", scores)
	}
}

func TestComputeAxisScores_LikertExtremesAndMidpoint(t *testing.T) {
	bank := []domain.Question{likertQ("q1", domain.AxisStructure, false)}

	cases := []struct {
		value int
		want  int
	}{
		{value: 5, want: 100},
		{value: 4, want: 75},
		{value: 3, want: 50},
		{value: 2, want: 25},
		{value: 1, want: 0},
	}
	for _, tc := range cases {
		scores := DefaultAxisScorer.ComputeAxisScores(domain.AnswerSet{"q1": tc.value}, bank)
		if scores.Structure != tc.want {
			t.Fatalf("likert value %d: expected %d, got %d", tc.value, tc.want, scores.Structure)
		}
	}
}

func TestComputeAxisScores_ReverseScoringFlipsSign(t *testing.T) {
	bank := []domain.Question{likertQ("q1", domain.AxisMotivation, true)}

	scores := DefaultAxisScorer.ComputeAxisScores(domain.AnswerSet{"q1": 5}, bank)
	if scores.Motivation != 0 {
		t.Fatalf("expected reverse-scored 5 to land at 0, got %d", scores.Motivation)
	}
	scores = DefaultAxisScorer.ComputeAxisScores(domain.AnswerSet{"q1": 1}, bank)
	if scores.Motivation != 100 {
		t.Fatalf("expected reverse-scored 1 to land at 100, got %d", scores.Motivation)
	}
}

func TestComputeAxisScores_ScenarioUsesConfiguredContributions(t *testing.T) {
	bank := []domain.Question{{
		ID:            "sc1",
		Axis:          domain.AxisTask,
		Type:          domain.QuestionTypeScenario,
		Options:       []string{"a", "b", "c", "d"},
		Contributions: []float64{1, 0.4, -0.4, -1},
	}}

	scores := DefaultAxisScorer.ComputeAxisScores(domain.AnswerSet{"sc1": 1}, bank)
	if scores.Task != 70 {
		t.Fatalf("expected contribution 0.4 to score 70, got %d", scores.Task)
	}
	scores = DefaultAxisScorer.ComputeAxisScores(domain.AnswerSet{"sc1": 3}, bank)
	if scores.Task != 0 {
		t.Fatalf("expected contribution -1 to score 0, got %d", scores.Task)
	}
}

func TestComputeAxisScores_RoundsHalfUp(t *testing.T) {
	bank := []domain.Question{
		likertQ("q1", domain.AxisCognitive, false),
		likertQ("q2", domain.AxisCognitive, false),
	}
	// Contribuciones 0.5 y 0 → media 0.25 → 62.5, redondea a 63.
	scores := DefaultAxisScorer.ComputeAxisScores(domain.AnswerSet{"q1": 4, "q2": 3}, bank)
	if scores.Cognitive != 63 {
		t.Fatalf("expected 62.5 to round half-up to 63, got %d", scores.Cognitive)
	}
}

func TestComputeAxisScores_IgnoresOutOfRangeValues(t *testing.T) {
	bank := []domain.Question{
		likertQ("q1", domain.AxisStructure, false),
		{
			ID:            "sc1",
			Axis:          domain.AxisStructure,
			Type:          domain.QuestionTypeScenario,
			Options:       []string{"a", "b"},
			Contributions: []float64{1, -1},
		},
	}
	scores := DefaultAxisScorer.ComputeAxisScores(domain.AnswerSet{"q1": 9, "sc1": 7}, bank)
	if scores.Structure != 50 {
		t.Fatalf("expected out-of-range answers to be ignored (neutral 50), got %d", scores.Structure)
	}
}

func TestComputeAxisScores_Deterministic(t *testing.T) {
	bank := QuestionBank()
	answers := domain.AnswerSet{
		"st-plan-day": 5, "st-wing-it": 2, "st-messy-desk": 1, "st-calendar": 0,
		"mo-consistency": 4, "mo-deadline-rush": 3, "mo-new-project": 2, "mo-streaks": 1,
		"co-deep-dive": 2, "co-many-tabs": 4, "co-learning": 3, "co-finish-books": 1,
		"ta-single-task": 1, "ta-juggle": 5, "ta-interruption": 3, "ta-todo-list": 1,
	}
	first := DefaultAxisScorer.ComputeAxisScores(answers, bank)
	second := DefaultAxisScorer.ComputeAxisScores(answers, bank)
	if first != second {
		t.Fatalf("expected identical scores across calls, got %+v and %+v", first, second)
	}
	if !first.Valid() {
		t.Fatalf("expected scores in range, got %+v", first)
	}
}

func TestComputeAxisScores_PartialSetOnlyAffectsAnsweredAxes(t *testing.T) {
	bank := QuestionBank()
	// Quick-scan: solo un eje respondido, el resto queda neutro.
	scores := DefaultAxisScorer.ComputeAxisScores(domain.AnswerSet{"st-plan-day": 5}, bank)
	if scores.Structure != 100 {
		t.Fatalf("expected structure 100, got %d", scores.Structure)
	}
	if scores.Motivation != 50 || scores.Cognitive != 50 || scores.Task != 50 {
		t.Fatalf("expected unanswered axes at 50, got %+v", scores)
	}
}
