package domain

import "time"

// Estados de sincronización de una nota por sección.
const (
	NoteStatusClean   = "clean"
	NoteStatusDirty   = "dirty"
	NoteStatusSyncing = "syncing"
	NoteStatusError   = "error"
)

// NoteEntry es la nota libre de una sección del playbook. Dirty=true
// significa que el contenido local todavía no fue confirmado por el store
// remoto; ese contenido nunca se pisa con lecturas remotas viejas.
type NoteEntry struct {
	SectionID string    `json:"section_id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
	RemoteID  string    `json:"remote_id,omitempty"`
	Dirty     bool      `json:"dirty"`
}
