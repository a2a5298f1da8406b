package repo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pressroom/src/core/domain"
	"pressroom/src/core/ports"
)

// MemoryConfig wires a MemoryStore to one entity type. Everything the store
// needs to know about the entity is injected here, so the same contract
// tests run against this store and the Postgres adapters interchangeably.
type MemoryConfig[E any] struct {
	// Label names the entity in user-facing messages, e.g. "Article".
	Label string

	// Fields maps wire field names to value accessors used for filtering
	// and sorting. Must include "createdAt" for the default sort.
	Fields map[string]func(E) any

	// Text lists the fields matched by Filter.Query.
	Text []string

	// Unique lists fields enforced unique (case-insensitive).
	Unique []string

	// Apply merges a patch into an entity.
	Apply func(*E, domain.Patch)

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// MemoryStore is a generic, concurrency-safe in-memory Repository
// implementation. It backs tests and database-less runs.
type MemoryStore[E any, PE interface {
	*E
	ports.Record
}] struct {
	mu    sync.RWMutex
	cfg   MemoryConfig[E]
	items []E
}

// NewMemoryStore constructs an empty store from the given configuration.
func NewMemoryStore[E any, PE interface {
	*E
	ports.Record
}](cfg MemoryConfig[E]) *MemoryStore[E, PE] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &MemoryStore[E, PE]{cfg: cfg}
}

func (s *MemoryStore[E, PE]) List(ctx context.Context, filter domain.Filter, page domain.PageRequest) (*ports.Page[E], error) {
	_ = ctx

	s.mu.RLock()
	filtered := make([]E, 0, len(s.items))
	for _, e := range s.items {
		if s.matches(e, filter) {
			filtered = append(filtered, e)
		}
	}
	s.mu.RUnlock()

	s.sortEntities(filtered, filter)

	req := page.Normalize()
	meta := domain.NewPageMeta(req.Page, req.Limit, len(filtered))

	start := req.Offset()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + req.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return &ports.Page[E]{Data: filtered[start:end], Meta: meta}, nil
}

func (s *MemoryStore[E, PE]) Get(ctx context.Context, id string) (*E, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		e := s.items[i]
		if PE(&e).EntityID() == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore[E, PE]) Create(ctx context.Context, entity E) (*E, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.uniqueConflict(entity, -1); err != nil {
		return nil, err
	}

	e := entity
	PE(&e).SetIdentity(s.cfg.NewID(), s.cfg.Now())
	s.items = append(s.items, e)

	out := e
	return &out, nil
}

func (s *MemoryStore[E, PE]) Update(ctx context.Context, id string, patch domain.Patch) (*E, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		e := s.items[i]
		if PE(&e).EntityID() != id {
			continue
		}
		if s.cfg.Apply != nil {
			s.cfg.Apply(&e, patch)
		}
		if err := s.uniqueConflict(e, i); err != nil {
			return nil, err
		}
		PE(&e).Touch(s.cfg.Now())
		s.items[i] = e

		out := e
		return &out, nil
	}
	return nil, nil
}

// uniqueConflict scans for another record holding one of the entity's unique
// field values, case-insensitively. skip excludes the record being updated;
// pass -1 on create. Callers must hold the write lock.
func (s *MemoryStore[E, PE]) uniqueConflict(entity E, skip int) error {
	for _, field := range s.cfg.Unique {
		accessor, ok := s.cfg.Fields[field]
		if !ok {
			continue
		}
		want := strings.ToLower(fmt.Sprint(accessor(entity)))
		for i, existing := range s.items {
			if i == skip {
				continue
			}
			if strings.ToLower(fmt.Sprint(accessor(existing))) == want {
				return domain.NewValidation(
					fmt.Sprintf("%s with this %s already exists", s.cfg.Label, field),
					map[string]any{field: accessor(entity)},
				)
			}
		}
	}
	return nil
}

func (s *MemoryStore[E, PE]) Delete(ctx context.Context, id string) (*E, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		e := s.items[i]
		if PE(&e).EntityID() != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return &e, nil
	}
	return nil, nil
}

// Health always succeeds; there is no backend to lose.
func (s *MemoryStore[E, PE]) Health(ctx context.Context) error {
	_ = ctx
	return nil
}

func (s *MemoryStore[E, PE]) matches(e E, filter domain.Filter) bool {
	if q := strings.ToLower(filter.Query); q != "" {
		hit := false
		for _, field := range s.cfg.Text {
			accessor, ok := s.cfg.Fields[field]
			if !ok {
				continue
			}
			if v, ok := accessor(e).(string); ok && strings.Contains(strings.ToLower(v), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	for _, cond := range filter.Conditions {
		accessor, ok := s.cfg.Fields[cond.Field]
		if !ok {
			// Unknown filter fields never match anything.
			return false
		}
		value := accessor(e)

		switch cond.Op {
		case domain.OpEquals:
			if fmt.Sprint(value) != cond.Value {
				return false
			}
		case domain.OpContains:
			v, ok := value.(string)
			if !ok || !strings.Contains(strings.ToLower(v), strings.ToLower(cond.Value)) {
				return false
			}
		case domain.OpRange:
			t, ok := value.(time.Time)
			if !ok {
				return false
			}
			if cond.From != nil && t.Before(*cond.From) {
				return false
			}
			if cond.To != nil && t.After(*cond.To) {
				return false
			}
		}
	}
	return true
}

func (s *MemoryStore[E, PE]) sortEntities(entities []E, filter domain.Filter) {
	field := filter.SortBy
	order := filter.SortOrder
	if field == "" {
		// Default: newest first.
		field = "createdAt"
		order = domain.SortDesc
	}
	accessor, ok := s.cfg.Fields[field]
	if !ok {
		return
	}

	sort.SliceStable(entities, func(i, j int) bool {
		cmp := compareValues(accessor(entities[i]), accessor(entities[j]))
		if order == domain.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv)
	case time.Time:
		bv, _ := b.(time.Time)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	case int:
		bv, _ := b.(int)
		return av - bv
	}
	return 0
}
