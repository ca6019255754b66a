package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"archetype-quiz/internal/domain"
)

// NoteCache es la caché local persistente de notas. Se lee y escribe como un
// solo mapa por namespace (un namespace por arquetipo), de modo que cada
// escritura es atómica a granularidad de "todas las notas de este arquetipo".
type NoteCache interface {
	Load(namespace string) (map[string]domain.NoteEntry, error)
	Save(namespace string, notes map[string]domain.NoteEntry) error
}

type memoryNoteCache struct {
	mu    sync.Mutex
	items map[string]map[string]domain.NoteEntry
}

// NewMemoryNoteCache devuelve una caché en memoria, útil para tests y para
// degradar cuando no hay redis configurado.
func NewMemoryNoteCache() NoteCache {
	return &memoryNoteCache{
		items: make(map[string]map[string]domain.NoteEntry),
	}
}

func (c *memoryNoteCache) Load(namespace string) (map[string]domain.NoteEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored, ok := c.items[namespace]
	out := make(map[string]domain.NoteEntry, len(stored))
	if !ok {
		return out, nil
	}
	for k, v := range stored {
		out[k] = v
	}
	return out, nil
}

func (c *memoryNoteCache) Save(namespace string, notes map[string]domain.NoteEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := make(map[string]domain.NoteEntry, len(notes))
	for k, v := range notes {
		copied[k] = v
	}
	c.items[namespace] = copied
	return nil
}

type redisNoteCache struct {
	client *redis.Client
	prefix string
}

// NewRedisNoteCache devuelve una caché respaldada en redis; el mapa completo
// del namespace se guarda como un blob JSON bajo una sola key.
func NewRedisNoteCache(client *redis.Client) NoteCache {
	if client == nil {
		return nil
	}
	return &redisNoteCache{
		client: client,
		prefix: "notes:",
	}
}

func (c *redisNoteCache) Load(namespace string) (map[string]domain.NoteEntry, error) {
	if strings.TrimSpace(namespace) == "" {
		return map[string]domain.NoteEntry{}, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.prefix+namespace).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]domain.NoteEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	var notes map[string]domain.NoteEntry
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = map[string]domain.NoteEntry{}
	}
	return notes, nil
}

func (c *redisNoteCache) Save(namespace string, notes map[string]domain.NoteEntry) error {
	if strings.TrimSpace(namespace) == "" {
		return nil
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+namespace, raw, 0).Err()
}
