// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"fmt"

	"blogcms/internal/database"
	"blogcms/internal/models"
	"blogcms/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entity is implemented by every persisted model. TableName identifies the table
// and doubles as the label for logs, metrics and spans; GetID returns the primary key.
type Entity interface {
	TableName() string
	GetID() uint
}

// Fields is a partial update: column name to new value. Columns not present keep
// their stored value.
type Fields map[string]any

// ConstraintError is returned when a write is rejected by a unique index. It
// matches models.ErrConflict under errors.Is.
type ConstraintError struct {
	Table  string
	Column string
	Err    error
}

func (e *ConstraintError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("unique constraint violated on %s.%s: %v", e.Table, e.Column, e.Err)
	}
	return fmt.Sprintf("unique constraint violated on %s: %v", e.Table, e.Err)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{models.ErrConflict, e.Err}
}

// Repository implements get, list, create, update and delete for one entity type.
// Every write runs in its own transaction; a missing row is reported as (nil, nil).
type Repository[T Entity] struct {
	db       *gorm.DB
	table    string
	preloads []string
	logger   *observability.RepoLogger
	metrics  *observability.DatabaseMetrics
}

// NewRepository creates a Repository for T. The named associations are preloaded on
// every read, including the entity returned from writes.
func NewRepository[T Entity](db *gorm.DB, preloads ...string) *Repository[T] {
	var zero T
	table := zero.TableName()
	return &Repository[T]{
		db:       db,
		table:    table,
		preloads: preloads,
		logger:   observability.NewRepoLogger(table),
		metrics:  observability.NewDatabaseMetrics(table),
	}
}

// DB returns the underlying connection for extension queries.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// Table returns the table name managed by this repository.
func (r *Repository[T]) Table() string {
	return r.table
}

func (r *Repository[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		db = db.Preload(p)
	}
	return db
}

// begin starts the span and latency timer shared by every operation.
func (r *Repository[T]) begin(ctx context.Context, op string) (context.Context, func(err error, absent bool)) {
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, r.db.Dialector.Name(), op, r.table)
	done := r.metrics.TrackQuery(op)
	return ctx, func(err error, absent bool) {
		done()
		switch {
		case err == nil && absent:
			r.metrics.CountOutcome(op, observability.OutcomeAbsent)
		case err == nil:
			r.metrics.CountOutcome(op, observability.OutcomeOK)
		case errors.Is(err, models.ErrConflict):
			r.metrics.CountOutcome(op, observability.OutcomeConflict)
			r.logger.LogConflict(ctx, op, err)
		default:
			r.metrics.CountOutcome(op, observability.OutcomeError)
			r.logger.LogError(ctx, err, op)
			span.SetError(err)
		}
		span.End()
	}
}

// translate converts a unique index violation into a ConstraintError and wraps
// everything else with the operation name.
func (r *Repository[T]) translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if database.IsUniqueViolation(err) {
		return &ConstraintError{Table: r.table, Column: database.ConstraintColumn(err, r.table), Err: err}
	}
	return fmt.Errorf("%s %s: %w", r.table, op, err)
}

// first loads one row matching the conditions; a missing row yields (nil, nil).
func (r *Repository[T]) first(db *gorm.DB, conds ...any) (*T, error) {
	var entity T
	err := r.withPreloads(db).First(&entity, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Get fetches an entity by primary key.
func (r *Repository[T]) Get(ctx context.Context, id uint) (entity *T, err error) {
	ctx, end := r.begin(ctx, "get")
	defer func() { end(err, entity == nil) }()

	entity, err = r.first(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, r.translate("get", err)
	}
	r.logger.LogRead(ctx, map[string]interface{}{"id": id, "found": entity != nil})
	return entity, nil
}

// FindOne fetches the first entity matching query, ordered by primary key.
// Extensions use it for lookups on unique columns.
func (r *Repository[T]) FindOne(ctx context.Context, op string, query any, args ...any) (entity *T, err error) {
	ctx, end := r.begin(ctx, op)
	defer func() { end(err, entity == nil) }()

	entity, err = r.first(r.db.WithContext(ctx).Where(query, args...))
	if err != nil {
		return nil, r.translate(op, err)
	}
	return entity, nil
}

// List returns up to limit entities after skipping skip, ordered by primary key.
// Negative arguments are treated as zero.
func (r *Repository[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	return r.ListWhere(ctx, "list", skip, limit, nil)
}

// ListWhere is List restricted by an optional condition.
func (r *Repository[T]) ListWhere(ctx context.Context, op string, skip, limit int, query any, args ...any) (items []T, err error) {
	ctx, end := r.begin(ctx, op)
	defer func() { end(err, false) }()

	skip, limit = clampPage(skip, limit)
	items = []T{}
	if limit == 0 {
		return items, nil
	}

	db := r.withPreloads(r.db.WithContext(ctx))
	if query != nil {
		db = db.Where(query, args...)
	}
	if err = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, r.translate(op, err)
	}
	return items, nil
}

func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	return skip, limit
}

// Create inserts entity, leaving associated records untouched, and returns the
// stored row with server-assigned values and preloads.
func (r *Repository[T]) Create(ctx context.Context, entity *T) (created *T, err error) {
	ctx, end := r.begin(ctx, "create")
	defer func() { end(err, false) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(entity).Error; err != nil {
			return err
		}
		var err error
		created, err = r.first(tx, (*entity).GetID())
		if err == nil && created == nil {
			err = fmt.Errorf("%s create: row vanished after insert", r.table)
		}
		return err
	})
	if err != nil {
		return nil, r.translate("create", err)
	}
	r.logger.LogCreate(ctx, map[string]interface{}{"id": (*created).GetID()})
	return created, nil
}

// Update applies fields to the entity with the given id and returns the refreshed
// row. An empty Fields performs no write and returns the current row unchanged.
func (r *Repository[T]) Update(ctx context.Context, id uint, fields Fields) (updated *T, err error) {
	ctx, end := r.begin(ctx, "update")
	defer func() { end(err, updated == nil) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.first(tx, id)
		if err != nil || current == nil {
			return err
		}
		if len(fields) == 0 {
			updated = current
			return nil
		}
		if err := tx.Model(current).Omit(clause.Associations).Updates(map[string]any(fields)).Error; err != nil {
			return err
		}
		updated, err = r.first(tx, id)
		return err
	})
	if err != nil {
		return nil, r.translate("update", err)
	}
	if updated != nil {
		r.logger.LogUpdate(ctx, map[string]interface{}{"id": id, "fields": len(fields)})
	}
	return updated, nil
}

// Delete removes the entity with the given id, letting the store cascade to
// dependent rows, and returns the row as it was before removal.
func (r *Repository[T]) Delete(ctx context.Context, id uint) (deleted *T, err error) {
	ctx, end := r.begin(ctx, "delete")
	defer func() { end(err, deleted == nil) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snapshot, err := r.first(tx, id)
		if err != nil || snapshot == nil {
			return err
		}
		var zero T
		res := tx.Delete(&zero, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = snapshot
		return nil
	})
	if err != nil {
		return nil, r.translate("delete", err)
	}
	if deleted != nil {
		r.logger.LogDelete(ctx, map[string]interface{}{"id": id})
	}
	return deleted, nil
}
