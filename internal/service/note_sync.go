package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"archetype-quiz/internal/domain"
	"archetype-quiz/internal/notestore"
)

// CancelFunc cancela una tarea demorada pendiente.
type CancelFunc func()

// Scheduler abstrae el timer de debounce como tarea demorada cancelable,
// inyectado para que los tests avancen tiempo virtual en forma determinista.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

type timerScheduler struct{}

// NewTimerScheduler devuelve el scheduler real basado en time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// NoteSyncEngine mantiene las notas por sección con persistencia local-first
// y sincronización debounced al store remoto. La caché local es la fuente de
// verdad de lo que ve el usuario; el remoto es eventualmente consistente.
// Cada sección tiene su propio timer y estado: editar una nunca bloquea el
// sync de otra.
type NoteSyncEngine struct {
	mu            sync.Mutex
	notes         map[string]*noteState
	cache         NoteCache
	remote        notestore.RemoteStore
	sched         Scheduler
	debounce      time.Duration
	namespace     string
	authenticated bool
	logger        *zap.Logger
	nowFn         func() time.Time
	syncTimeout   time.Duration

	// saveMu serializa las escrituras a la caché local fuera del lock
	// principal; los números de generación descartan snapshots viejos que
	// lleguen tarde.
	saveMu   sync.Mutex
	saveGen  uint64
	savedGen uint64
}

type noteState struct {
	entry  domain.NoteEntry
	status string
	cancel CancelFunc
	// rev crece con cada edición; el ack remoto solo limpia dirty si la
	// revisión sincronizada sigue siendo la vigente.
	rev int
}

// NewNoteSyncEngine construye el engine y precarga las notas del namespace
// desde la caché local. Sin remote o sin credencial queda en modo local-only:
// nada se sincroniza, todo se sigue persistiendo localmente.
func NewNoteSyncEngine(
	cache NoteCache,
	remote notestore.RemoteStore,
	sched Scheduler,
	debounce time.Duration,
	namespace string,
	authenticated bool,
	logger *zap.Logger,
) *NoteSyncEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sched == nil {
		sched = NewTimerScheduler()
	}
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	e := &NoteSyncEngine{
		notes:         make(map[string]*noteState),
		cache:         cache,
		remote:        remote,
		sched:         sched,
		debounce:      debounce,
		namespace:     namespace,
		authenticated: authenticated && remote != nil,
		logger:        logger,
		nowFn:         func() time.Time { return time.Now().UTC() },
		syncTimeout:   10 * time.Second,
	}
	e.loadFromCache()
	return e
}

func (e *NoteSyncEngine) loadFromCache() {
	if e.cache == nil {
		return
	}
	stored, err := e.cache.Load(e.namespace)
	if err != nil {
		// Storage local roto: degradación silenciosa, la memoria manda.
		e.logger.Warn("note cache load failed", zap.Error(err))
		return
	}
	for sectionID, entry := range stored {
		status := domain.NoteStatusClean
		if entry.Dirty {
			status = domain.NoteStatusDirty
		}
		e.notes[sectionID] = &noteState{entry: entry, status: status}
	}
}

// Edit registra una edición local: reemplaza el contenido, marca dirty,
// refresca updatedAt y reinicia el timer de debounce de la sección.
func (e *NoteSyncEngine) Edit(sectionID, content string) {
	e.mu.Lock()
	state, ok := e.notes[sectionID]
	if !ok {
		state = &noteState{entry: domain.NoteEntry{SectionID: sectionID}}
		e.notes[sectionID] = state
	}
	state.entry.Content = content
	state.entry.Dirty = true
	state.entry.UpdatedAt = e.nowFn()
	state.rev++
	if state.status != domain.NoteStatusSyncing {
		state.status = domain.NoteStatusDirty
	}
	if state.cancel != nil {
		state.cancel()
		state.cancel = nil
	}
	if e.authenticated {
		state.cancel = e.sched.Schedule(e.debounce, func() {
			e.syncSection(sectionID)
		})
	}
	snapshot, gen := e.snapshotLocked()
	e.mu.Unlock()
	e.saveSnapshot(snapshot, gen)
}

// Flush cancela el timer pendiente de la sección y dispara el sync ya mismo
// (por ejemplo al navegar fuera de la página).
func (e *NoteSyncEngine) Flush(sectionID string) {
	e.mu.Lock()
	if state, ok := e.notes[sectionID]; ok && state.cancel != nil {
		state.cancel()
		state.cancel = nil
	}
	e.mu.Unlock()
	e.syncSection(sectionID)
}

// FlushAll dispara el sync inmediato de todas las secciones con cambios.
func (e *NoteSyncEngine) FlushAll() {
	e.mu.Lock()
	ids := make([]string, 0, len(e.notes))
	for sectionID, state := range e.notes {
		if state.cancel != nil {
			state.cancel()
			state.cancel = nil
		}
		ids = append(ids, sectionID)
	}
	e.mu.Unlock()
	for _, id := range ids {
		e.syncSection(id)
	}
}

// ApplyRemote mezcla una actualización originada en el remoto (misma nota
// editada en otro dispositivo). El contenido local dirty siempre gana sobre
// lecturas remotas viejas: solo se mezcla cuando la copia local está limpia.
func (e *NoteSyncEngine) ApplyRemote(sectionID, remoteID, content string) {
	e.mu.Lock()
	state, ok := e.notes[sectionID]
	if !ok {
		state = &noteState{entry: domain.NoteEntry{SectionID: sectionID}}
		e.notes[sectionID] = state
	}
	if state.entry.Dirty {
		e.mu.Unlock()
		return
	}
	state.entry.Content = content
	state.entry.RemoteID = remoteID
	state.entry.UpdatedAt = e.nowFn()
	state.status = domain.NoteStatusClean
	snapshot, gen := e.snapshotLocked()
	e.mu.Unlock()
	e.saveSnapshot(snapshot, gen)
}

// Get devuelve la nota de una sección y su estado de sync.
func (e *NoteSyncEngine) Get(sectionID string) (domain.NoteEntry, string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	state, ok := e.notes[sectionID]
	if !ok {
		return domain.NoteEntry{}, "", false
	}
	return state.entry, state.status, true
}

// Snapshot devuelve una copia de todas las notas cargadas.
func (e *NoteSyncEngine) Snapshot() map[string]domain.NoteEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]domain.NoteEntry, len(e.notes))
	for sectionID, state := range e.notes {
		out[sectionID] = state.entry
	}
	return out
}

// syncSection intenta sincronizar una sección. El llamado remoto corre fuera
// del lock; el estado syncing garantiza a lo sumo un intento en vuelo por
// sección.
func (e *NoteSyncEngine) syncSection(sectionID string) {
	e.mu.Lock()
	state, ok := e.notes[sectionID]
	if !ok || !e.authenticated || !state.entry.Dirty ||
		state.status == domain.NoteStatusSyncing || state.entry.Content == "" {
		// Notas vacías nunca se sincronizan: no hace falta registro remoto
		// para contenido en blanco.
		e.mu.Unlock()
		return
	}
	state.status = domain.NoteStatusSyncing
	rev := state.rev
	content := state.entry.Content
	remoteID := state.entry.RemoteID
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), e.syncTimeout)
	defer cancel()

	var err error
	newRemoteID := remoteID
	if remoteID == "" {
		newRemoteID, err = e.remote.CreateNote(ctx, sectionID, content)
	} else {
		err = e.remote.UpdateNote(ctx, remoteID, content)
	}

	e.mu.Lock()
	if err != nil {
		// El contenido queda en memoria y en la caché con dirty=true: nada
		// se pierde, una edición o retry posterior vuelve a intentar.
		state.status = domain.NoteStatusError
		e.logger.Warn("note sync failed",
			zap.String("section_id", sectionID),
			zap.Error(err),
		)
	} else {
		state.entry.RemoteID = newRemoteID
		if state.rev == rev {
			state.entry.Dirty = false
			state.status = domain.NoteStatusClean
		} else {
			// Hubo una edición mientras el sync estaba en vuelo: sigue dirty.
			// Si el timer de esa edición ya disparó, chocó contra el estado
			// syncing y se perdió, así que acá se reprograma el sync de cola.
			state.status = domain.NoteStatusDirty
			if state.cancel != nil {
				state.cancel()
			}
			state.cancel = e.sched.Schedule(e.debounce, func() {
				e.syncSection(sectionID)
			})
		}
	}
	snapshot, gen := e.snapshotLocked()
	e.mu.Unlock()
	e.saveSnapshot(snapshot, gen)
}

// snapshotLocked copia el mapa de notas del namespace bajo el lock principal
// y le asigna un número de generación. Requiere e.mu tomado.
func (e *NoteSyncEngine) snapshotLocked() (map[string]domain.NoteEntry, uint64) {
	e.saveGen++
	snapshot := make(map[string]domain.NoteEntry, len(e.notes))
	for sectionID, state := range e.notes {
		snapshot[sectionID] = state.entry
	}
	return snapshot, e.saveGen
}

// saveSnapshot escribe el snapshot en la caché local sin tomar el lock
// principal: una caché lenta no frena ediciones ni syncs de otras secciones.
// Snapshots que llegan fuera de orden se descartan por generación. Errores de
// storage se degradan en silencio: la memoria sigue siendo autoritativa para
// la sesión actual.
func (e *NoteSyncEngine) saveSnapshot(snapshot map[string]domain.NoteEntry, gen uint64) {
	if e.cache == nil {
		return
	}
	e.saveMu.Lock()
	defer e.saveMu.Unlock()
	if gen <= e.savedGen {
		return
	}
	if err := e.cache.Save(e.namespace, snapshot); err != nil {
		e.logger.Debug("note cache save failed", zap.Error(err))
		return
	}
	e.savedGen = gen
}
