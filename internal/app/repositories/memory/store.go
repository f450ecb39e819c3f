// Package memory is an in-process implementation of the catalog repositories.
// It backs the memory driver and the service and controller tests.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
)

type pair struct {
	left, right int64
}

// state is copy-on-write: stored structs are never mutated in place, so a
// snapshot only needs fresh maps.
type state struct {
	nextID     map[string]int64
	topics     map[int64]*models.Topic
	courses    map[int64]*models.Course
	professors map[int64]*models.Professor
	clubs      map[int64]*models.Club
	resources  map[models.ResourceKind]map[int64]*models.Resource
	joins      map[string]map[pair]struct{}
}

func newState() state {
	st := state{
		nextID:     map[string]int64{},
		topics:     map[int64]*models.Topic{},
		courses:    map[int64]*models.Course{},
		professors: map[int64]*models.Professor{},
		clubs:      map[int64]*models.Club{},
		resources:  map[models.ResourceKind]map[int64]*models.Resource{},
		joins:      map[string]map[pair]struct{}{},
	}
	for _, kind := range models.ResourceKinds() {
		st.resources[kind] = map[int64]*models.Resource{}
	}
	for _, rel := range repositories.Relations() {
		st.joins[rel.Table] = map[pair]struct{}{}
	}
	return st
}

func (st state) clone() state {
	out := state{
		nextID:     maps.Clone(st.nextID),
		topics:     maps.Clone(st.topics),
		courses:    maps.Clone(st.courses),
		professors: maps.Clone(st.professors),
		clubs:      maps.Clone(st.clubs),
		resources:  make(map[models.ResourceKind]map[int64]*models.Resource, len(st.resources)),
		joins:      make(map[string]map[pair]struct{}, len(st.joins)),
	}
	for k, v := range st.resources {
		out.resources[k] = maps.Clone(v)
	}
	for k, v := range st.joins {
		out.joins[k] = maps.Clone(v)
	}
	return out
}

// Store holds the whole catalog in memory
type Store struct {
	mu   sync.RWMutex
	data state

	// txMu is held by every writer outside a transaction and by a top level
	// transaction until it commits or rolls back
	txMu sync.Mutex

	sessions atomic.Int64
	down     atomic.Bool
	now      func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		data: newState(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// SetAvailable toggles whether the store answers. An unavailable store fails
// every call with apperrors.ErrStorageUnavailable.
func (s *Store) SetAvailable(available bool) {
	s.down.Store(!available)
}

// OpenSessions returns the number of sessions not yet released
func (s *Store) OpenSessions() int {
	return int(s.sessions.Load())
}

func (s *Store) check() error {
	if s.down.Load() {
		return fmt.Errorf("%w: memory store is offline", apperrors.ErrStorageUnavailable)
	}
	return nil
}

// Ping reports whether the store answers
func (s *Store) Ping(context.Context) error {
	return s.check()
}

// OpenSession counts the session until release is called
func (s *Store) OpenSession(ctx context.Context) (context.Context, func(), error) {
	if err := s.check(); err != nil {
		return ctx, func() {}, err
	}
	s.sessions.Add(1)
	var once sync.Once
	return ctx, func() { once.Do(func() { s.sessions.Add(-1) }) }, nil
}

type txKey struct{}

// tx is the private working copy of one transaction
type tx struct {
	st state
}

func txFrom(ctx context.Context) (*tx, bool) {
	t, ok := ctx.Value(txKey{}).(*tx)
	return t, ok
}

// read runs fn against the state visible to ctx. Outside a transaction that
// is the committed state.
func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if err := s.check(); err != nil {
		return err
	}
	if t, ok := txFrom(ctx); ok {
		return fn(&t.st)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.data)
}

// write runs fn against the state visible to ctx. Outside a transaction the
// change commits at once and waits for any open transaction to finish first.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := s.check(); err != nil {
		return err
	}
	if t, ok := txFrom(ctx); ok {
		return fn(&t.st)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// WithTransaction runs fn against a private copy of the store and publishes
// it only when fn returns nil. Nothing fn writes is visible to other callers
// before then. Nested calls act as savepoints.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := s.check(); err != nil {
		return err
	}

	t := &tx{}
	parent, nested := txFrom(ctx)
	if nested {
		t.st = parent.st.clone()
	} else {
		s.txMu.Lock()
		defer s.txMu.Unlock()
		s.mu.RLock()
		t.st = s.data.clone()
		s.mu.RUnlock()
	}

	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		return err
	}

	if nested {
		parent.st = t.st
		return nil
	}
	s.mu.Lock()
	s.data = t.st
	s.mu.Unlock()
	return nil
}

func (st *state) newID(table string) int64 {
	st.nextID[table]++
	return st.nextID[table]
}

// exists reports whether table holds id
func (st *state) exists(table string, id int64) bool {
	switch table {
	case "topics":
		_, ok := st.topics[id]
		return ok
	case "courses":
		_, ok := st.courses[id]
		return ok
	case "professors":
		_, ok := st.professors[id]
		return ok
	case "clubs":
		_, ok := st.clubs[id]
		return ok
	}
	for _, kind := range models.ResourceKinds() {
		if kind.Table() == table {
			_, ok := st.resources[kind][id]
			return ok
		}
	}
	return false
}

// NewRepositories wires every repository to s
func NewRepositories(s *Store) *repositories.Repositories {
	return &repositories.Repositories{
		Topics:     &topicRepository{s: s},
		Courses:    &courseRepository{s: s},
		Professors: &professorRepository{s: s},
		Clubs:      &clubRepository{s: s},
		Resources:  &resourceRepository{s: s},

		TopicCourses:     &associationRepository{s: s, rel: repositories.TopicCourses},
		TopicClubs:       &associationRepository{s: s, rel: repositories.TopicClubs},
		TopicProfessors:  &associationRepository{s: s, rel: repositories.TopicProfessors},
		CoursePrereqs:    &associationRepository{s: s, rel: repositories.CoursePrereqs},
		ProfessorCourses: &associationRepository{s: s, rel: repositories.ProfessorCourses},

		Tx:       s,
		Sessions: s,
	}
}
