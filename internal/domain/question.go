package domain

// Axis identifica una de las cuatro dimensiones psicológicas del quiz.
type Axis string

const (
	AxisStructure  Axis = "structure"  // Orden vs. Caos
	AxisMotivation Axis = "motivation" // Disciplina vs. Impulso
	AxisCognitive  Axis = "cognitive"  // Profundidad vs. Novedad
	AxisTask       Axis = "task"       // Enfoque vs. Dispersión
)

const (
	QuestionTypeLikert   = "likert"
	QuestionTypeScenario = "scenario"
	QuestionTypeBinary   = "binary"
)

// Question es una pregunta inmutable del banco, definida en build time.
type Question struct {
	ID      string   `json:"id"`
	Axis    Axis     `json:"axis"`
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
	// Reverse invierte el signo de la contribución en preguntas likert
	// (puntuar alto empuja hacia el extremo bajo del eje). Es metadata
	// explícita por pregunta, nunca se infiere del enunciado.
	Reverse bool `json:"reverse,omitempty"`
	// Contributions define la contribución [-1, 1] de cada opción para
	// preguntas scenario/binary; el índice corresponde a Options.
	Contributions []float64 `json:"contributions,omitempty"`
}

// AnswerSet mapea question id → valor elegido (1-5 en likert, índice de
// opción en scenario/binary). Crece de forma monotónica; solo un retake
// explícito lo reemplaza.
type AnswerSet map[string]int
