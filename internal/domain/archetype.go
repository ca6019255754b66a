package domain

const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// ArchetypeProfile es el punto de referencia de un arquetipo en el espacio
// de 4 ejes, más su contenido curado. Configuración estática.
type ArchetypeProfile struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Tagline          string     `json:"tagline"`
	Reference        AxisScores `json:"reference"`
	RecommendedTools []string   `json:"recommended_tools"`
}

// ArchetypeResult es la salida del resolver para un snapshot de respuestas.
type ArchetypeResult struct {
	Primary         ArchetypeProfile   `json:"primary"`
	Secondary       []ArchetypeProfile `json:"secondary,omitempty"`
	Confidence      float64            `json:"confidence"`
	ConfidenceLevel string             `json:"confidence_level"`
}
