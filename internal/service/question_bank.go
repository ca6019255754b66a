package service

import "archetype-quiz/internal/domain"

// QuestionBank devuelve el cuestionario estático del assessment. Cuatro
// preguntas por eje: dos likert (una reverse), un escenario y una binaria.
// El orden es el orden de presentación.
func QuestionBank() []domain.Question {
	return []domain.Question{
		// Eje Structure: planificación vs. improvisación.
		{
			ID:   "st-plan-day",
			Axis: domain.AxisStructure,
			Type: domain.QuestionTypeLikert,
			Text: "I plan my day in advance and mostly stick to the schedule.",
		},
		{
			ID:      "st-wing-it",
			Axis:    domain.AxisStructure,
			Type:    domain.QuestionTypeLikert,
			Text:    "I prefer to wing it and decide what to do in the moment.",
			Reverse: true,
		},
		{
			ID:   "st-messy-desk",
			Axis: domain.AxisStructure,
			Type: domain.QuestionTypeScenario,
			Text: "Your workspace right now is...",
			Options: []string{
				"Everything labeled and in its place",
				"Tidy enough, a few loose piles",
				"Organized chaos only I understand",
				"A disaster zone, honestly",
			},
			Contributions: []float64{1, 0.4, -0.4, -1},
		},
		{
			ID:            "st-calendar",
			Axis:          domain.AxisStructure,
			Type:          domain.QuestionTypeBinary,
			Text:          "Do you keep a calendar you actually check?",
			Options:       []string{"Yes", "No"},
			Contributions: []float64{0.8, -0.8},
		},

		// Eje Motivation: disciplina sostenida vs. ráfagas de impulso.
		{
			ID:   "mo-consistency",
			Axis: domain.AxisMotivation,
			Type: domain.QuestionTypeLikert,
			Text: "I keep working toward a goal even when the initial excitement fades.",
		},
		{
			ID:      "mo-deadline-rush",
			Axis:    domain.AxisMotivation,
			Type:    domain.QuestionTypeLikert,
			Text:    "I only really get moving when a deadline is breathing down my neck.",
			Reverse: true,
		},
		{
			ID:   "mo-new-project",
			Axis: domain.AxisMotivation,
			Type: domain.QuestionTypeScenario,
			Text: "Three weeks into a new project, you usually...",
			Options: []string{
				"Are still on pace, same routine as week one",
				"Slowed down but keep showing up",
				"Drift unless something re-hooks me",
				"Have already started something newer",
			},
			Contributions: []float64{1, 0.5, -0.5, -1},
		},
		{
			ID:            "mo-streaks",
			Axis:          domain.AxisMotivation,
			Type:          domain.QuestionTypeBinary,
			Text:          "Do streaks and habit chains motivate you?",
			Options:       []string{"Yes", "No"},
			Contributions: []float64{0.6, -0.6},
		},

		// Eje Cognitive: profundidad analítica vs. exploración de novedad.
		{
			ID:   "co-deep-dive",
			Axis: domain.AxisCognitive,
			Type: domain.QuestionTypeLikert,
			Text: "I enjoy going deep on one problem for hours without switching.",
		},
		{
			ID:      "co-many-tabs",
			Axis:    domain.AxisCognitive,
			Type:    domain.QuestionTypeLikert,
			Text:    "My mind jumps between ideas faster than I can write them down.",
			Reverse: true,
		},
		{
			ID:   "co-learning",
			Axis: domain.AxisCognitive,
			Type: domain.QuestionTypeScenario,
			Text: "When learning something new, you...",
			Options: []string{
				"Work through one resource front to back",
				"Pick a main resource plus side reading",
				"Skim many sources and connect the dots",
				"Learn by poking at it until it clicks",
			},
			Contributions: []float64{1, 0.4, -0.4, -1},
		},
		{
			ID:            "co-finish-books",
			Axis:          domain.AxisCognitive,
			Type:          domain.QuestionTypeBinary,
			Text:          "Do you usually finish the books you start?",
			Options:       []string{"Yes", "No"},
			Contributions: []float64{0.7, -0.7},
		},

		// Eje Task: foco en una cosa vs. dispersión entre varias.
		{
			ID:   "ta-single-task",
			Axis: domain.AxisTask,
			Type: domain.QuestionTypeLikert,
			Text: "I work on one task at a time until it is done.",
		},
		{
			ID:      "ta-juggle",
			Axis:    domain.AxisTask,
			Type:    domain.QuestionTypeLikert,
			Text:    "I feel most productive juggling several things at once.",
			Reverse: true,
		},
		{
			ID:   "ta-interruption",
			Axis: domain.AxisTask,
			Type: domain.QuestionTypeScenario,
			Text: "A message pops up mid-task. You...",
			Options: []string{
				"Ignore it until the task is finished",
				"Glance, then return to the task",
				"Answer it and drift back eventually",
				"Follow it wherever it leads",
			},
			Contributions: []float64{1, 0.5, -0.5, -1},
		},
		{
			ID:            "ta-todo-list",
			Axis:          domain.AxisTask,
			Type:          domain.QuestionTypeBinary,
			Text:          "Do you finish most items on your daily list?",
			Options:       []string{"Yes", "No"},
			Contributions: []float64{0.8, -0.8},
		},
	}
}
