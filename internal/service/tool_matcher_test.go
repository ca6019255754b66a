package service

import (
	"reflect"
	"testing"

	"archetype-quiz/internal/domain"
)

func newTestMatcher() *ToolMatcher {
	return NewToolMatcher(ToolCatalog(), ToolAliases())
}

func textBlock(body string) domain.ContentBlock {
	return domain.ContentBlock{Type: "paragraph", Body: body}
}

func TestFindInsertionPoints_CaseSensitiveAliasIgnoresGenericUse(t *testing.T) {
	m := newTestMatcher()
	recommended := []string{"notion"}

	// Uso genérico en minúsculas: no debe matchear el alias case-sensitive.
	result := m.FindInsertionPoints([]domain.ContentBlock{
		textBlock("I love the notion that work matters"),
	}, recommended)
	if len(result) != 0 {
		t.Fatalf("expected no matches for generic 'notion', got %+v", result)
	}

	result = m.FindInsertionPoints([]domain.ContentBlock{
		textBlock("I use Notion daily"),
	}, recommended)
	if !reflect.DeepEqual(result, domain.InsertionMap{0: {"notion"}}) {
		t.Fatalf("expected Notion match in block 0, got %+v", result)
	}
}

func TestFindInsertionPoints_WordBoundary(t *testing.T) {
	m := newTestMatcher()

	result := m.FindInsertionPoints([]domain.ContentBlock{
		textBlock("Their Notions about productivity differ"),
	}, []string{"notion"})
	if len(result) != 0 {
		t.Fatalf("expected no match inside 'Notions', got %+v", result)
	}

	result = m.FindInsertionPoints([]domain.ContentBlock{
		textBlock("Todoista is not a thing, but (Todoist) is."),
	}, []string{"todoist"})
	if !reflect.DeepEqual(result, domain.InsertionMap{0: {"todoist"}}) {
		t.Fatalf("expected parenthesized Todoist to match, got %+v", result)
	}
}

func TestFindInsertionPoints_FirstMentionWinsAcrossBlocks(t *testing.T) {
	m := newTestMatcher()
	blocks := []domain.ContentBlock{
		textBlock("Nothing to see here"),
		textBlock("Start with Todoist for capture"),
		textBlock("Later, Todoist can hold your someday list"),
	}

	result := m.FindInsertionPoints(blocks, []string{"todoist"})
	if !reflect.DeepEqual(result, domain.InsertionMap{1: {"todoist"}}) {
		t.Fatalf("expected single mention at block 1, got %+v", result)
	}
}

func TestFindInsertionPoints_OneEntryPerToolWithinBlock(t *testing.T) {
	m := newTestMatcher()
	// Dos aliases del mismo tool en el mismo bloque: una sola entrada.
	blocks := []domain.ContentBlock{
		textBlock("Grab Todoist from todoist.com today"),
	}

	result := m.FindInsertionPoints(blocks, []string{"todoist"})
	if !reflect.DeepEqual(result, domain.InsertionMap{0: {"todoist"}}) {
		t.Fatalf("expected one entry for todoist, got %+v", result)
	}
}

func TestFindInsertionPoints_FiltersByRecommendedTools(t *testing.T) {
	m := newTestMatcher()
	blocks := []domain.ContentBlock{
		textBlock("Trello boards pair well with Toggl timers"),
	}

	result := m.FindInsertionPoints(blocks, []string{"toggl"})
	if !reflect.DeepEqual(result, domain.InsertionMap{0: {"toggl"}}) {
		t.Fatalf("expected only recommended toggl, got %+v", result)
	}

	result = m.FindInsertionPoints(blocks, nil)
	if len(result) != 0 {
		t.Fatalf("expected empty map without recommended tools, got %+v", result)
	}
}

func TestFindInsertionPoints_SearchesNestedListText(t *testing.T) {
	m := newTestMatcher()
	blocks := []domain.ContentBlock{
		{
			Type:    "checklist",
			Heading: "Morning setup",
			Items:   []string{"Review calendar", "Add tasks to Todoist"},
			Steps:   []string{"Open Obsidian and jot three lines"},
		},
	}

	result := m.FindInsertionPoints(blocks, []string{"todoist", "obsidian"})
	if !reflect.DeepEqual(result, domain.InsertionMap{0: {"obsidian", "todoist"}}) {
		t.Fatalf("expected both tools found in nested text, got %+v", result)
	}
}

func TestFindInsertionPoints_DropsToolsMissingFromCatalog(t *testing.T) {
	aliases := []domain.ToolMentionAlias{
		{Pattern: "ghostapp", ToolID: "ghost"},
	}
	m := NewToolMatcher(ToolCatalog(), aliases)

	result := m.FindInsertionPoints([]domain.ContentBlock{
		textBlock("ghostapp is mentioned but not in the catalog"),
	}, []string{"ghost"})
	if len(result) != 0 {
		t.Fatalf("expected mention of uncatalogued tool to be dropped, got %+v", result)
	}
}

func TestFindInsertionPoints_Idempotent(t *testing.T) {
	m := newTestMatcher()
	blocks := []domain.ContentBlock{
		textBlock("Plan in Notion, capture in Todoist"),
		textBlock("Track time with Toggl"),
	}
	recommended := []string{"notion", "todoist", "toggl"}

	first := m.FindInsertionPoints(blocks, recommended)
	second := m.FindInsertionPoints(blocks, recommended)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical maps across re-renders, got %+v vs %+v", first, second)
	}
}
