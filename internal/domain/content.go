package domain

import "strings"

// ContentBlock es un bloque de contenido renderizable del playbook. Los
// campos opcionales (Items, Steps, Traits) modelan las variantes de shape
// del contenido en lugar de probar propiedades ad hoc.
type ContentBlock struct {
	Type    string   `json:"type"`
	Heading string   `json:"heading,omitempty"`
	Body    string   `json:"body,omitempty"`
	Items   []string `json:"items,omitempty"`
	Steps   []string `json:"steps,omitempty"`
	Traits  []string `json:"traits,omitempty"`
}

// SearchableText aplana el bloque a un solo texto buscable: prosa más el
// texto de listas, pasos y rasgos anidados. Función pura.
func (b ContentBlock) SearchableText() string {
	parts := make([]string, 0, 2+len(b.Items)+len(b.Steps)+len(b.Traits))
	if b.Heading != "" {
		parts = append(parts, b.Heading)
	}
	if b.Body != "" {
		parts = append(parts, b.Body)
	}
	parts = append(parts, b.Items...)
	parts = append(parts, b.Steps...)
	parts = append(parts, b.Traits...)
	return strings.Join(parts, "\n")
}
