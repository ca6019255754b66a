package domain

// ToolInfo describe una herramienta del catálogo estático, indexada por id.
type ToolInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Why     string `json:"why"`
	URL     string `json:"url,omitempty"`
}

// ToolMentionAlias asocia un patrón textual con un tool id. El orden de la
// tabla de aliases importa: patrones largos y específicos van antes que los
// cortos que podrían dar falsos positivos.
type ToolMentionAlias struct {
	Pattern       string `json:"pattern"`
	ToolID        string `json:"tool_id"`
	CaseSensitive bool   `json:"case_sensitive"`
}

// InsertionMap mapea índice de bloque → tool ids mencionados por primera vez
// en ese bloque. Mapa disperso: bloques sin menciones no aparecen. Cada tool
// id aparece a lo sumo una vez en todo el mapa de una sección.
type InsertionMap map[int][]string
