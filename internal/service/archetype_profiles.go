package service

import "archetype-quiz/internal/domain"

// ArchetypeProfiles devuelve los seis arquetipos canónicos con sus puntos de
// referencia en el espacio de 4 ejes y su lista curada de herramientas.
// Configuración estática; el orden de la slice no importa para el resolver.
func ArchetypeProfiles() []domain.ArchetypeProfile {
	return []domain.ArchetypeProfile{
		{
			ID:               "structured-achiever",
			Name:             "Structured Achiever",
			Tagline:          "Systems first, results follow.",
			Reference:        domain.AxisScores{Structure: 85, Motivation: 75, Cognitive: 35, Task: 30},
			RecommendedTools: []string{"notion", "todoist", "rize"},
		},
		{
			ID:               "strategic-planner",
			Name:             "Strategic Planner",
			Tagline:          "Sees the whole board before moving a piece.",
			Reference:        domain.AxisScores{Structure: 75, Motivation: 40, Cognitive: 80, Task: 45},
			RecommendedTools: []string{"notion", "obsidian", "motion"},
		},
		{
			ID:               "anxious-perfectionist",
			Name:             "Anxious Perfectionist",
			Tagline:          "High standards, higher stakes.",
			Reference:        domain.AxisScores{Structure: 70, Motivation: 30, Cognitive: 40, Task: 75},
			RecommendedTools: []string{"todoist", "forest", "freedom"},
		},
		{
			ID:               "chaotic-creative",
			Name:             "Chaotic Creative",
			Tagline:          "The mess is the method.",
			Reference:        domain.AxisScores{Structure: 25, Motivation: 70, Cognitive: 75, Task: 55},
			RecommendedTools: []string{"obsidian", "milanote", "toggl"},
		},
		{
			ID:               "novelty-seeker",
			Name:             "Novelty Seeker",
			Tagline:          "Momentum lives in the new.",
			Reference:        domain.AxisScores{Structure: 30, Motivation: 80, Cognitive: 55, Task: 40},
			RecommendedTools: []string{"trello", "habitica", "forest"},
		},
		{
			ID:               "flexible-improviser",
			Name:             "Flexible Improviser",
			Tagline:          "Adapts faster than plans break.",
			Reference:        domain.AxisScores{Structure: 40, Motivation: 50, Cognitive: 50, Task: 50},
			RecommendedTools: []string{"things", "toggl", "trello"},
		},
	}
}

// ProfileByID busca un arquetipo por id. Devuelve false si no existe.
func ProfileByID(profiles []domain.ArchetypeProfile, id string) (domain.ArchetypeProfile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return domain.ArchetypeProfile{}, false
}
