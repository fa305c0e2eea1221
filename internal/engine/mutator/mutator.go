// Package mutator implements the optimistic-update protocol shared by all
// recipe write operations.
//
// Every mutation follows the same one-shot state machine: cancel competing
// background fetches, snapshot the affected cache entries, apply the
// expected effect locally, perform the network call, then either reconcile
// the cache with the server's authoritative response or roll back to the
// snapshot. Background refetches dispatched at the end are fire-and-forget;
// their failures never mask the mutation's own result.
package mutator

import (
	"context"
	"time"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
)

// SaveRequest describes one create or update mutation. A nil RecipeID means
// create; Image, when present, is uploaded before the recipe write and its
// public URL overrides any URL already on the input.
type SaveRequest struct {
	RecipeID string
	Recipe   domain.RecipeInput
	Image    *domain.ImageFile
}

// IsCreate reports whether the request creates a new recipe.
func (r SaveRequest) IsCreate() bool {
	return r.RecipeID == ""
}

// Mutator orchestrates optimistic mutations against the cache store.
type Mutator struct {
	cache    ports.CacheStore
	service  ports.RecipeService
	uploader ports.ImageUploader

	now       func() time.Time
	newTempID func() string
}

// New creates a Mutator backed by the given cache, service and uploader.
func New(cache ports.CacheStore, service ports.RecipeService, uploader ports.ImageUploader) *Mutator {
	return &Mutator{
		cache:     cache,
		service:   service,
		uploader:  uploader,
		now:       time.Now,
		newTempID: domain.NewTempID,
	}
}

// snapshot is the mutation context captured before the optimistic edit. It
// is consumed exactly once, by either the success or the failure path.
type snapshot struct {
	list    []domain.Recipe
	hasList bool

	detail    domain.Recipe
	hasDetail bool

	// category keys scrubbed by a delete; repaired on rollback.
	scrubbed []domain.Key

	tempID   string
	consumed bool
}

// DeleteRecipe optimistically removes id from the cached lists, then issues
// the delete against the service. An identifier absent from the cache, or an
// empty cache, is not an error: the service call is issued regardless.
func (m *Mutator) DeleteRecipe(ctx context.Context, id string) error {
	listKey := domain.ListKey()
	m.cache.CancelInFlight(listKey)

	snap := &snapshot{}
	snap.list, snap.hasList = m.cache.List(listKey)

	// When the snapshot tells us the recipe's category, scrub that one
	// entry; without a snapshot the category is unknown and every cached
	// category entry is scrubbed defensively.
	for _, key := range m.categoriesToScrub(snap, id) {
		m.cache.CancelInFlight(key)
		m.cache.MutateList(key, withoutID(id))
		snap.scrubbed = append(snap.scrubbed, key)
	}
	m.cache.MutateList(listKey, withoutID(id))

	if err := m.service.DeleteRecipe(ctx, id); err != nil {
		m.rollbackDelete(snap, listKey)
		return err
	}
	snap.consumed = true

	m.cache.Remove(domain.DetailKey(id))
	m.cache.Refetch(listKey)
	return nil
}

func (m *Mutator) rollbackDelete(snap *snapshot, listKey domain.Key) {
	if snap.consumed {
		return
	}
	snap.consumed = true

	if snap.hasList {
		m.cache.SetList(listKey, snap.list)
	}
	m.cache.Refetch(listKey)

	// Scrubbed category entries were never snapshotted; drop them and let
	// the background fetch repopulate.
	for _, key := range snap.scrubbed {
		m.cache.Invalidate(key)
		m.cache.Refetch(key)
	}
}

// SaveRecipe creates or updates a recipe with optimistic cache feedback.
// The image, if any, is uploaded after the optimistic edit but before the
// recipe write; an upload failure rolls back and the recipe endpoint is
// never called.
func (m *Mutator) SaveRecipe(ctx context.Context, req SaveRequest) (domain.Recipe, error) {
	if err := req.Recipe.Validate(); err != nil {
		return domain.Recipe{}, err
	}
	if req.IsCreate() {
		return m.create(ctx, req)
	}
	return m.update(ctx, req)
}

func (m *Mutator) create(ctx context.Context, req SaveRequest) (domain.Recipe, error) {
	listKey := domain.ListKey()
	m.cache.CancelInFlight(listKey)

	snap := &snapshot{tempID: m.newTempID()}
	snap.list, snap.hasList = m.cache.List(listKey)

	placeholder := req.Recipe.Placeholder(snap.tempID, m.now())
	m.cache.MutateList(listKey, func(list []domain.Recipe) []domain.Recipe {
		return append([]domain.Recipe{placeholder}, list...)
	})
	m.cache.SetDetail(domain.DetailKey(snap.tempID), placeholder)

	in := req.Recipe
	if req.Image != nil {
		url, err := m.uploader.Upload(ctx, *req.Image)
		if err != nil {
			m.rollbackCreate(snap, listKey)
			return domain.Recipe{}, err
		}
		in.ImageURL = url
	}

	created, err := m.service.CreateRecipe(ctx, in)
	if err != nil {
		m.rollbackCreate(snap, listKey)
		return domain.Recipe{}, err
	}
	snap.consumed = true

	m.cache.MutateList(listKey, replaceID(snap.tempID, created))
	m.cache.Remove(domain.DetailKey(snap.tempID))
	m.cache.SetDetail(domain.DetailKey(created.ID), created)
	m.cache.Refetch(listKey)
	m.refetchCategories(created.Category)
	return created, nil
}

func (m *Mutator) rollbackCreate(snap *snapshot, listKey domain.Key) {
	if snap.consumed {
		return
	}
	snap.consumed = true

	m.cache.MutateList(listKey, withoutID(snap.tempID))
	m.cache.Remove(domain.DetailKey(snap.tempID))
	m.cache.Refetch(listKey)
}

func (m *Mutator) update(ctx context.Context, req SaveRequest) (domain.Recipe, error) {
	listKey := domain.ListKey()
	detailKey := domain.DetailKey(req.RecipeID)
	m.cache.CancelInFlight(listKey)
	m.cache.CancelInFlight(detailKey)

	snap := &snapshot{}
	snap.list, snap.hasList = m.cache.List(listKey)
	snap.detail, snap.hasDetail = m.cache.Detail(detailKey)

	oldCategory := m.cachedCategory(snap, req.RecipeID)

	m.cache.MutateList(listKey, func(list []domain.Recipe) []domain.Recipe {
		for i, r := range list {
			if r.ID == req.RecipeID {
				list[i] = req.Recipe.MergeInto(r)
			}
		}
		return list
	})
	if snap.hasDetail {
		m.cache.SetDetail(detailKey, req.Recipe.MergeInto(snap.detail))
	}

	in := req.Recipe
	if req.Image != nil {
		url, err := m.uploader.Upload(ctx, *req.Image)
		if err != nil {
			m.rollbackUpdate(snap, listKey, detailKey)
			return domain.Recipe{}, err
		}
		in.ImageURL = url
	}

	updated, err := m.service.UpdateRecipe(ctx, req.RecipeID, in)
	if err != nil {
		m.rollbackUpdate(snap, listKey, detailKey)
		return domain.Recipe{}, err
	}
	snap.consumed = true

	m.cache.MutateList(listKey, replaceID(req.RecipeID, updated))
	m.cache.SetDetail(detailKey, updated)
	m.cache.Refetch(listKey)
	m.refetchCategories(oldCategory, updated.Category)
	return updated, nil
}

func (m *Mutator) rollbackUpdate(snap *snapshot, listKey, detailKey domain.Key) {
	if snap.consumed {
		return
	}
	snap.consumed = true

	if snap.hasList {
		m.cache.SetList(listKey, snap.list)
	}
	if snap.hasDetail {
		m.cache.SetDetail(detailKey, snap.detail)
	}
	m.cache.Refetch(listKey)
	if snap.hasDetail {
		m.cache.Refetch(detailKey)
	}
}

// categoriesToScrub resolves which per-category entries a delete must edit.
func (m *Mutator) categoriesToScrub(snap *snapshot, id string) []domain.Key {
	if category := m.cachedCategory(snap, id); category != "" {
		key := domain.CategoryKey(category)
		for _, cached := range m.cache.CategoryKeys() {
			if cached == key {
				return []domain.Key{key}
			}
		}
		return nil
	}
	return m.cache.CategoryKeys()
}

// cachedCategory looks id up in the snapshotted list entry.
func (m *Mutator) cachedCategory(snap *snapshot, id string) domain.Category {
	for _, r := range snap.list {
		if r.ID == id {
			return r.Category
		}
	}
	return ""
}

// refetchCategories schedules background fetches for the cached category
// entries touched by a reconciled mutation.
func (m *Mutator) refetchCategories(categories ...domain.Category) {
	cached := m.cache.CategoryKeys()
	seen := make(map[domain.Key]bool, len(categories))
	for _, c := range categories {
		if c == "" {
			continue
		}
		key := domain.CategoryKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		for _, k := range cached {
			if k == key {
				m.cache.Refetch(key)
				break
			}
		}
	}
}

func withoutID(id string) func([]domain.Recipe) []domain.Recipe {
	return func(list []domain.Recipe) []domain.Recipe {
		out := list[:0]
		for _, r := range list {
			if r.ID != id {
				out = append(out, r)
			}
		}
		return out
	}
}

func replaceID(id string, r domain.Recipe) func([]domain.Recipe) []domain.Recipe {
	return func(list []domain.Recipe) []domain.Recipe {
		for i, item := range list {
			if item.ID == id {
				list[i] = r
			}
		}
		return list
	}
}
