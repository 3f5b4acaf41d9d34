package smartnotes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo keeps notes in process memory. Used by the CLI and in tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	notes map[string]SmartNote
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		notes: make(map[string]SmartNote),
	}
}

func (r *MemoryRepo) Add(_ context.Context, note *SmartNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[note.ID] = cloneNote(*note)
	return nil
}

func (r *MemoryRepo) Get(_ context.Context, id string) (*SmartNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	note, ok := r.notes[id]
	if !ok {
		return nil, ErrNoteNotFound
	}
	clone := cloneNote(note)
	return &clone, nil
}

func (r *MemoryRepo) Update(_ context.Context, note *SmartNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[note.ID]; !ok {
		return ErrNoteNotFound
	}
	r.notes[note.ID] = cloneNote(*note)
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

func (r *MemoryRepo) List(context.Context) ([]SmartNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	notes := make([]SmartNote, 0, len(r.notes))
	for _, n := range r.notes {
		notes = append(notes, cloneNote(n))
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].Ts == notes[j].Ts {
			return notes[i].ID < notes[j].ID
		}
		return notes[i].Ts > notes[j].Ts
	})
	return notes, nil
}

func cloneNote(n SmartNote) SmartNote {
	n.Events = append(make([]Event, 0, len(n.Events)), n.Events...)
	if n.Attachments != nil {
		n.Attachments = append(make([]Attachment, 0, len(n.Attachments)), n.Attachments...)
	}
	return n
}
