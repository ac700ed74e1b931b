package repository

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

// --------------------------------------------------
// Generic entity store
// --------------------------------------------------

// EntityStore covers the plain storage contract shared by every
// entity: create, get by domain id, filtered list, shallow partial
// update, delete. The domain id IS the primary key; no storage-internal
// row id ever crosses this boundary.
type EntityStore[T any] struct {
	db     *gorm.DB
	entity string // lowercase name used in not-found errors
}

func NewEntityStore[T any](db *gorm.DB, entity string) *EntityStore[T] {
	return &EntityStore[T]{db: db, entity: entity}
}

func (s *EntityStore[T]) Create(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *EntityStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var rec T
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(s.entity)
		}
		return nil, err
	}
	return &rec, nil
}

// List applies conds as an equality conjunction. Empty conds list all.
func (s *EntityStore[T]) List(ctx context.Context, conds map[string]any, limit int) ([]T, error) {
	q := s.db.WithContext(ctx).Model(new(T))
	if len(conds) > 0 {
		q = q.Where(conds)
	}

	var recs []T
	if err := q.Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// UpdatePartial applies a shallow field merge: top-level keys overwrite,
// nested objects are replaced whole, absent keys stay untouched. Keys
// follow the entity's JSON field names.
func (s *EntityStore[T]) UpdatePartial(ctx context.Context, id string, fields map[string]any) (*T, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := mergeFields(rec, fields)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_update")
	}

	if err := s.db.WithContext(ctx).Save(merged).Error; err != nil {
		return nil, err
	}
	return merged, nil
}

// mergeFields overlays fields onto rec at the top level and decodes
// into a fresh record. Decoding into rec itself would let
// encoding/json merge map-typed columns entry by entry instead of
// replacing them whole.
func mergeFields[T any](rec *T, fields map[string]any) (*T, error) {
	base, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(base, &m); err != nil {
		return nil, err
	}
	for k, v := range fields {
		m[k] = v
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EntityStore[T]) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(s.entity)
	}
	return nil
}
