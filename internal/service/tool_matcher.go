package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"archetype-quiz/internal/domain"
)

// ToolMatcher encuentra menciones de herramientas conocidas dentro de
// bloques de contenido y devuelve los puntos de inserción para anotaciones
// inline. Puro sobre sus entradas: catálogo y aliases se inyectan en el
// constructor, el estado "visto" vive por llamada.
type ToolMatcher struct {
	catalog map[string]domain.ToolInfo
	aliases []domain.ToolMentionAlias
}

func NewToolMatcher(catalog map[string]domain.ToolInfo, aliases []domain.ToolMentionAlias) *ToolMatcher {
	return &ToolMatcher{catalog: catalog, aliases: aliases}
}

// FindInsertionPoints escanea los bloques en orden y devuelve, por índice de
// bloque, los tool ids mencionados por primera vez en la sección. Solo
// califican ids presentes en recommendedTools y en el catálogo; la primera
// mención gana y el id queda excluido de los bloques siguientes, lo que hace
// al resultado idempotente frente a re-renders.
func (m *ToolMatcher) FindInsertionPoints(blocks []domain.ContentBlock, recommendedTools []string) domain.InsertionMap {
	recommended := make(map[string]struct{}, len(recommendedTools))
	for _, id := range recommendedTools {
		recommended[id] = struct{}{}
	}

	result := domain.InsertionMap{}
	seen := map[string]struct{}{}

	for i, block := range blocks {
		text := block.SearchableText()
		if text == "" {
			continue
		}
		var found []string
		// Los aliases se recorren en el orden fijo de prioridad de la tabla.
		for _, alias := range m.aliases {
			if _, ok := seen[alias.ToolID]; ok {
				continue
			}
			if _, ok := recommended[alias.ToolID]; !ok {
				continue
			}
			if _, ok := m.catalog[alias.ToolID]; !ok {
				continue
			}
			if containsWholeWord(text, alias.Pattern, alias.CaseSensitive) {
				seen[alias.ToolID] = struct{}{}
				found = append(found, alias.ToolID)
			}
		}
		if len(found) > 0 {
			result[i] = found
		}
	}
	return result
}

// containsWholeWord busca pattern como substring con chequeo de límite de
// palabra: el carácter anterior y el posterior al match no pueden ser
// alfanuméricos ("notion" no matchea dentro de "notions").
func containsWholeWord(text, pattern string, caseSensitive bool) bool {
	if pattern == "" {
		return false
	}
	haystack, needle := text, pattern
	if !caseSensitive {
		haystack = strings.ToLower(text)
		needle = strings.ToLower(pattern)
	}

	for from := 0; from < len(haystack); {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(needle)
		if !alphanumericBefore(haystack, start) && !alphanumericAt(haystack, end) {
			return true
		}
		from = start + 1
	}
	return false
}

func alphanumericBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func alphanumericAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
