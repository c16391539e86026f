package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/store"
)

// recordsRepo es el store de desarrollo. Usa ids numéricos (int64), a
// diferencia de Postgres (uuid); los dominios tienen que tolerar ambos.
// Solo guarda las columnas que se escribieron, igual que una fila con NULLs.
type recordsRepo struct {
	mu     sync.RWMutex
	seq    int64
	tables map[store.Resource][]store.Record
	now    func() time.Time
}

func NewRecordsRepo() store.RecordStore {
	return &recordsRepo{
		tables: make(map[store.Resource][]store.Record),
		now:    time.Now,
	}
}

func (r *recordsRepo) FetchAll(ctx context.Context, res store.Resource, q store.Query) ([]store.Record, error) {
	if err := store.Validate(res, nil, q); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]store.Record, 0)
	for _, rec := range r.tables[res] {
		out = append(out, clone(rec))
	}

	if !q.Order.IsZero() {
		col := q.Order.Column
		sort.SliceStable(out, func(i, j int) bool {
			if q.Order.Descending {
				return less(out[j][col], out[i][col])
			}
			return less(out[i][col], out[j][col])
		})
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *recordsRepo) FetchByID(ctx context.Context, res store.Resource, id string) (store.Record, error) {
	if err := store.Validate(res, nil, store.Query{}); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.indexOf(res, id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	return clone(r.tables[res][i]), nil
}

func (r *recordsRepo) Insert(ctx context.Context, res store.Resource, rec store.Record) (store.Record, error) {
	if err := store.Validate(res, rec, store.Query{}); err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, errors.New("insert: empty record")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	row := clone(rec)
	row["id"] = r.seq

	now := r.now()
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = now
	}
	if store.HasColumn(res, "updated_at") {
		if _, ok := row["updated_at"]; !ok {
			row["updated_at"] = now
		}
	}

	r.tables[res] = append(r.tables[res], row)
	return clone(row), nil
}

func (r *recordsRepo) UpdateByID(ctx context.Context, res store.Resource, id string, rec store.Record) (store.Record, error) {
	if err := store.Validate(res, rec, store.Query{}); err != nil {
		return nil, err
	}
	if _, touchesID := rec["id"]; touchesID {
		return nil, errors.New("update: id is immutable")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(res, id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	row := r.tables[res][i]
	for k, v := range rec {
		row[k] = v
	}
	return clone(row), nil
}

func (r *recordsRepo) DeleteByID(ctx context.Context, res store.Resource, id string) error {
	if err := store.Validate(res, nil, store.Query{}); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(res, id)
	if !ok {
		return errs.ErrNotFound
	}
	rows := r.tables[res]
	r.tables[res] = append(rows[:i:i], rows[i+1:]...)
	return nil
}

func (r *recordsRepo) Count(ctx context.Context, res store.Resource) (int, error) {
	if err := store.Validate(res, nil, store.Query{}); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tables[res]), nil
}

// indexOf: requiere lock tomado.
func (r *recordsRepo) indexOf(res store.Resource, id string) (int, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return 0, false
	}
	for i, rec := range r.tables[res] {
		if rec["id"] == n {
			return i, true
		}
	}
	return 0, false
}

// less ordena valores del mismo tipo; nil siempre al final en ASC.
func less(a, b any) bool {
	if a == nil || b == nil {
		return a != nil && b == nil
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return !av && bv
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func clone(rec store.Record) store.Record {
	out := make(store.Record, len(rec))
	for k, v := range rec {
		if s, ok := v.([]string); ok {
			v = append([]string(nil), s...)
		}
		out[k] = v
	}
	return out
}
