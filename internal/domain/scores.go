package domain

// AxisScores agrupa los cuatro puntajes normalizados 0-100. Es un valor
// derivado: se recalcula a partir del AnswerSet, nunca se edita a mano.
type AxisScores struct {
	Structure  int `json:"structure"`
	Motivation int `json:"motivation"`
	Cognitive  int `json:"cognitive"`
	Task       int `json:"task"`
}

// Get devuelve el puntaje del eje indicado.
func (s AxisScores) Get(axis Axis) int {
	switch axis {
	case AxisStructure:
		return s.Structure
	case AxisMotivation:
		return s.Motivation
	case AxisCognitive:
		return s.Cognitive
	case AxisTask:
		return s.Task
	}
	return 0
}

// Vector devuelve los puntajes como punto en el espacio de 4 ejes, en el
// orden canónico structure, motivation, cognitive, task.
func (s AxisScores) Vector() [4]float64 {
	return [4]float64{
		float64(s.Structure),
		float64(s.Motivation),
		float64(s.Cognitive),
		float64(s.Task),
	}
}

// Valid indica si los cuatro puntajes están dentro de 0-100. Entradas fuera
// de rango son un error de programación del caller, no un caso de runtime.
func (s AxisScores) Valid() bool {
	for _, v := range s.Vector() {
		if v < 0 || v > 100 {
			return false
		}
	}
	return true
}
