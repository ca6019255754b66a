package service

import "archetype-quiz/internal/domain"

// ToolCatalog devuelve la tabla estática de herramientas, indexada por id.
func ToolCatalog() map[string]domain.ToolInfo {
	return map[string]domain.ToolInfo{
		"notion": {
			ID:      "notion",
			Name:    "Notion",
			Tagline: "All-in-one workspace",
			Why:     "One home for docs, databases and dashboards keeps a structured system from fragmenting.",
			URL:     "https://notion.so",
		},
		"todoist": {
			ID:      "todoist",
			Name:    "Todoist",
			Tagline: "Task manager that stays out of the way",
			Why:     "Natural-language capture plus recurring tasks make the daily list frictionless.",
			URL:     "https://todoist.com",
		},
		"obsidian": {
			ID:      "obsidian",
			Name:    "Obsidian",
			Tagline: "Networked notes on local files",
			Why:     "Linked notes mirror how associative thinkers actually store ideas.",
			URL:     "https://obsidian.md",
		},
		"trello": {
			ID:      "trello",
			Name:    "Trello",
			Tagline: "Visual boards for anything",
			Why:     "Low-ceremony boards survive the moment a rigid system would get abandoned.",
			URL:     "https://trello.com",
		},
		"toggl": {
			ID:      "toggl",
			Name:    "Toggl Track",
			Tagline: "One-click time tracking",
			Why:     "Seeing where hours really go beats arguing with yourself about it.",
			URL:     "https://toggl.com",
		},
		"forest": {
			ID:      "forest",
			Name:    "Forest",
			Tagline: "Stay focused, grow a tree",
			Why:     "A gentle, visual cost for breaking focus works better than willpower.",
			URL:     "https://forestapp.cc",
		},
		"freedom": {
			ID:      "freedom",
			Name:    "Freedom",
			Tagline: "Block distractions everywhere",
			Why:     "Removing the option to drift is kinder than punishing the drift.",
			URL:     "https://freedom.to",
		},
		"motion": {
			ID:      "motion",
			Name:    "Motion",
			Tagline: "AI calendar that plans your day",
			Why:     "Auto-scheduling absorbs the planning overhead a strategist enjoys but rarely finishes.",
			URL:     "https://usemotion.com",
		},
		"milanote": {
			ID:      "milanote",
			Name:    "Milanote",
			Tagline: "Boards for creative projects",
			Why:     "Spatial canvases let messy ideas stay messy until they are ready.",
			URL:     "https://milanote.com",
		},
		"habitica": {
			ID:      "habitica",
			Name:    "Habitica",
			Tagline: "Gamified habit tracking",
			Why:     "Turning routines into a game keeps novelty inside the system instead of outside it.",
			URL:     "https://habitica.com",
		},
		"rize": {
			ID:      "rize",
			Name:    "Rize",
			Tagline: "Automatic time tracking coach",
			Why:     "Passive tracking closes the loop between intention and actual hours.",
			URL:     "https://rize.io",
		},
		"things": {
			ID:      "things",
			Name:    "Things",
			Tagline: "Elegant personal task manager",
			Why:     "A calm, minimal list suits people who resent heavyweight systems.",
			URL:     "https://culturedcode.com/things",
		},
	}
}

// ToolAliases devuelve la tabla ordenada de aliases. El orden es un
// requisito de correctitud: patrones largos/específicos (URLs, nombres
// compuestos) antes que palabras sueltas. Los nombres que colisionan con
// palabras comunes del inglés (Notion, Forest, Freedom, Motion, Things) se
// matchean solo case-sensitive; el resto es case-insensitive.
func ToolAliases() []domain.ToolMentionAlias {
	return []domain.ToolMentionAlias{
		{Pattern: "notion.so", ToolID: "notion"},
		{Pattern: "todoist.com", ToolID: "todoist"},
		{Pattern: "obsidian.md", ToolID: "obsidian"},
		{Pattern: "forestapp.cc", ToolID: "forest"},
		{Pattern: "usemotion.com", ToolID: "motion"},
		{Pattern: "culturedcode.com/things", ToolID: "things"},
		{Pattern: "Toggl Track", ToolID: "toggl"},
		{Pattern: "milanote", ToolID: "milanote"},
		{Pattern: "habitica", ToolID: "habitica"},
		{Pattern: "obsidian", ToolID: "obsidian"},
		{Pattern: "todoist", ToolID: "todoist"},
		{Pattern: "trello", ToolID: "trello"},
		{Pattern: "toggl", ToolID: "toggl"},
		{Pattern: "rize", ToolID: "rize"},
		{Pattern: "Notion", ToolID: "notion", CaseSensitive: true},
		{Pattern: "Forest", ToolID: "forest", CaseSensitive: true},
		{Pattern: "Freedom", ToolID: "freedom", CaseSensitive: true},
		{Pattern: "Motion", ToolID: "motion", CaseSensitive: true},
		{Pattern: "Things", ToolID: "things", CaseSensitive: true},
	}
}
