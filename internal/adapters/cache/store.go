// Package cache implements the in-memory key-addressed snapshot store the
// mutation engine edits optimistically.
//
// Every key carries a generation counter. A background refetch captures
// the generation it started under and discards its result if the key was
// cancelled or overwritten in the meantime; that is the only serialization
// between optimistic writes and in-flight fetches, matching the
// last-write-wins policy of the store.
package cache

import (
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

type entry struct {
	value  any // []domain.Recipe for list keys, domain.Recipe for detail keys
	digest uint64
}

type flight struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// Store implements ports.CacheStore. The recipe service is its source of
// truth for background refetches.
type Store struct {
	source ports.RecipeService
	logger ports.Logger

	mu      sync.Mutex
	entries map[domain.Key]entry
	gens    map[domain.Key]uint64
	flights map[domain.Key]*flight
	subs    map[domain.Key]map[int]func()
	nextSub int

	group singleflight.Group
	wg    sync.WaitGroup
}

// New creates an empty Store backed by source.
func New(source ports.RecipeService, logger ports.Logger) *Store {
	return &Store{
		source:  source,
		logger:  logger,
		entries: make(map[domain.Key]entry),
		gens:    make(map[domain.Key]uint64),
		flights: make(map[domain.Key]*flight),
		subs:    make(map[domain.Key]map[int]func()),
	}
}

// List returns a copy of the list entry at key, if present.
func (s *Store) List(key domain.Key) ([]domain.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	list, ok := e.value.([]domain.Recipe)
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// SetList replaces the list entry at key.
func (s *Store) SetList(key domain.Key, items []domain.Recipe) {
	s.mu.Lock()
	notify := s.setLocked(key, slices.Clone(items))
	s.mu.Unlock()
	runAll(notify)
}

// MutateList applies fn to a copy of the list entry at key. A missing
// entry stays missing; optimistic edits never conjure entries the UI
// never fetched.
func (s *Store) MutateList(key domain.Key, fn func([]domain.Recipe) []domain.Recipe) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	list, ok := e.value.([]domain.Recipe)
	if !ok {
		s.mu.Unlock()
		return
	}
	notify := s.setLocked(key, fn(slices.Clone(list)))
	s.mu.Unlock()
	runAll(notify)
}

// Detail returns the detail entry at key, if present.
func (s *Store) Detail(key domain.Key) (domain.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return domain.Recipe{}, false
	}
	r, ok := e.value.(domain.Recipe)
	return r, ok
}

// SetDetail replaces (or seeds) the detail entry at key.
func (s *Store) SetDetail(key domain.Key, r domain.Recipe) {
	s.mu.Lock()
	notify := s.setLocked(key, r)
	s.mu.Unlock()
	runAll(notify)
}

// Remove drops the entry at key entirely.
func (s *Store) Remove(key domain.Key) {
	s.mu.Lock()
	var notify []func()
	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		notify = s.subscribersLocked(key)
	}
	s.mu.Unlock()
	runAll(notify)
}

// CategoryKeys lists the per-category keys currently cached.
func (s *Store) CategoryKeys() []domain.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []domain.Key
	for k := range s.entries {
		if k.IsCategory() {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// CancelInFlight aborts any background fetch for key and bumps the key's
// generation so an already-completed stale result is discarded on arrival.
func (s *Store) CancelInFlight(key domain.Key) {
	s.mu.Lock()
	s.gens[key]++
	if f, ok := s.flights[key]; ok {
		f.cancel()
		delete(s.flights, key)
	}
	s.mu.Unlock()
}

// Invalidate marks the entry at key stale by dropping its value. Callers
// pair it with Refetch for eventual repopulation.
func (s *Store) Invalidate(key domain.Key) {
	s.Remove(key)
}

// Refetch schedules a background fetch of key from the source of truth.
// It never blocks. Concurrent refetches of the same key share one fetch.
// Failures are logged and swallowed so reconciliation work can never mask
// a mutation's own result.
func (s *Store) Refetch(key domain.Key) {
	s.mu.Lock()
	gen := s.gens[key]
	f, ok := s.flights[key]
	if !ok {
		ctx, cancel := context.WithCancel(context.Background())
		f = &flight{ctx: ctx, cancel: cancel}
		s.flights[key] = f
	}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.refetch(f.ctx, key, gen)
	}()
}

func (s *Store) refetch(ctx context.Context, key domain.Key, gen uint64) {
	// The generation is part of the flight key: a refetch scheduled after
	// CancelInFlight must not coalesce with the cancelled fetch.
	value, err, _ := s.group.Do(key.String()+"@"+strconv.FormatUint(gen, 10), func() (any, error) {
		defer s.clearFlight(key)
		return s.fetch(ctx, key)
	})
	if err != nil {
		if ctx.Err() == nil && s.logger != nil {
			s.logger.Error(zerr.With(zerr.Wrap(err, "background refetch failed"), "key", key.String()))
		}
		return
	}

	s.mu.Lock()
	var notify []func()
	if s.gens[key] == gen && ctx.Err() == nil {
		notify = s.setLocked(key, value)
	}
	s.mu.Unlock()
	runAll(notify)
}

func (s *Store) fetch(ctx context.Context, key domain.Key) (any, error) {
	switch {
	case key.IsDetail():
		return s.source.GetRecipe(ctx, key.RecipeID())
	case key.IsCategory():
		list, err := s.source.ListRecipes(ctx, key.Category())
		return list, err
	default:
		list, err := s.source.ListRecipes(ctx, "")
		return list, err
	}
}

func (s *Store) clearFlight(key domain.Key) {
	s.mu.Lock()
	delete(s.flights, key)
	s.mu.Unlock()
}

// Subscribe registers fn to run after the entry at key changes content.
// Writes that leave the entry's digest unchanged do not notify.
func (s *Store) Subscribe(key domain.Key, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	if s.subs[key] == nil {
		s.subs[key] = make(map[int]func())
	}
	s.subs[key][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[key], id)
	}
}

// setLocked stores value at key and returns the subscribers to notify, or
// nil when the content digest is unchanged. Caller holds s.mu.
func (s *Store) setLocked(key domain.Key, value any) []func() {
	d := digest(value)
	prev, existed := s.entries[key]
	s.entries[key] = entry{value: value, digest: d}
	if existed && prev.digest == d {
		return nil
	}
	return s.subscribersLocked(key)
}

func (s *Store) subscribersLocked(key domain.Key) []func() {
	fns := make([]func(), 0, len(s.subs[key]))
	for _, fn := range s.subs[key] {
		fns = append(fns, fn)
	}
	return fns
}

func digest(value any) uint64 {
	data, err := json.Marshal(value)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

func runAll(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

var _ ports.CacheStore = (*Store)(nil)
