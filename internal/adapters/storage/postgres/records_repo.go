package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecordsRepo implementa store.RecordStore sobre tablas con id uuid.
// Las columnas salen siempre de la whitelist de store; los valores van como $n.
type RecordsRepo struct {
	db *DB
}

func NewRecordsRepo(db *DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

var _ store.RecordStore = (*RecordsRepo)(nil)

func (r *RecordsRepo) FetchAll(ctx context.Context, res store.Resource, q store.Query) ([]store.Record, error) {
	if err := store.Validate(res, nil, q); err != nil {
		return nil, err
	}

	sb := strings.Builder{}
	sb.WriteString("SELECT " + selectList(res) + " FROM " + string(res))

	args := []any{}

	if !q.Order.IsZero() {
		dir := "ASC"
		if q.Order.Descending {
			dir = "DESC"
		}
		sb.WriteString(fmt.Sprintf(" ORDER BY %s %s", q.Order.Column, dir))
	}

	if q.Limit > 0 {
		sb.WriteString(" LIMIT $1")
		args = append(args, q.Limit)
	}

	rows, err := r.db.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	out := make([]store.Record, 0, len(maps))
	for _, m := range maps {
		out = append(out, store.Record(m))
	}
	return out, nil
}

func (r *RecordsRepo) FetchByID(ctx context.Context, res store.Resource, id string) (store.Record, error) {
	if err := store.Validate(res, nil, store.Query{}); err != nil {
		return nil, err
	}
	key, ok := parseID(id)
	if !ok {
		return nil, errs.ErrNotFound
	}

	rows, err := r.db.Pool.Query(ctx,
		"SELECT "+selectList(res)+" FROM "+string(res)+" WHERE id = $1", key)
	if err != nil {
		return nil, err
	}
	return collectOne(rows)
}

func (r *RecordsRepo) Insert(ctx context.Context, res store.Resource, rec store.Record) (store.Record, error) {
	if err := store.Validate(res, rec, store.Query{}); err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, errors.New("insert: empty record")
	}

	cols := sortedKeys(rec)
	placeholders := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for i, col := range cols {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, rec[col])
	}

	sql := "INSERT INTO " + string(res) +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")" +
		" RETURNING " + selectList(res)

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return collectOne(rows)
}

func (r *RecordsRepo) UpdateByID(ctx context.Context, res store.Resource, id string, rec store.Record) (store.Record, error) {
	if err := store.Validate(res, rec, store.Query{}); err != nil {
		return nil, err
	}
	if _, touchesID := rec["id"]; touchesID {
		return nil, errors.New("update: id is immutable")
	}
	key, ok := parseID(id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	if len(rec) == 0 {
		// nada que tocar: devolvemos el registro actual
		return r.FetchByID(ctx, res, id)
	}

	cols := sortedKeys(rec)
	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, rec[col])
	}
	args = append(args, key)

	sql := "UPDATE " + string(res) + " SET " + strings.Join(sets, ", ") +
		fmt.Sprintf(" WHERE id = $%d", len(args)) +
		" RETURNING " + selectList(res)

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return collectOne(rows)
}

func (r *RecordsRepo) DeleteByID(ctx context.Context, res store.Resource, id string) error {
	if err := store.Validate(res, nil, store.Query{}); err != nil {
		return err
	}
	key, ok := parseID(id)
	if !ok {
		return errs.ErrNotFound
	}

	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM "+string(res)+" WHERE id = $1", key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *RecordsRepo) Count(ctx context.Context, res store.Resource) (int, error) {
	if err := store.Validate(res, nil, store.Query{}); err != nil {
		return 0, err
	}
	var n int
	if err := r.db.Pool.QueryRow(ctx, "SELECT count(*) FROM "+string(res)).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func collectOne(rows pgx.Rows) (store.Record, error) {
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return store.Record(m), nil
}

func selectList(res store.Resource) string {
	return strings.Join(store.Columns(res), ", ")
}

// ids son uuid en Postgres; un id mal formado no puede existir.
func parseID(id string) (uuid.UUID, bool) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, false
	}
	return u, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
