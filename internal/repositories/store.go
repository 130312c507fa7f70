package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "travelplan/internal/config"
	"travelplan/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx so store reads can participate in a
// caller-owned transaction.
type DBTX interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// Scanner matches both *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Patch is the typed partial-update payload: only listed columns change.
type Patch interface {
	Changes() (cols []string, args []any)
}

// Filter narrows a List to rows whose field matches one of the values.
type Filter struct {
	Field  string
	Values []int64
}

// EntityInfo describes how one entity maps onto its table.
type EntityInfo[T any] struct {
	Table   string
	Kind    string   // resource name used in error messages
	Columns []string // select list, id first
	Scan    func(row Scanner) (T, error)
	Insert  func(e T) (cols []string, args []any)
	SetID   func(e *T, id int64)
}

// Store implements get/list/insert/partial-update/delete with uniform
// not-found semantics for one entity type.
type Store[T any] struct {
	DB   *sql.DB
	Info EntityInfo[T]
}

func (s Store[T]) db() DBTX {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s Store[T]) selectList() string {
	return strings.Join(s.Info.Columns, ", ")
}

// Get returns the row with the given id or a NotFoundError.
func (s Store[T]) Get(id int64) (T, error) {
	return s.getOn(s.db(), id)
}

// GetTx is Get inside a caller-owned transaction.
func (s Store[T]) GetTx(q DBTX, id int64) (T, error) {
	return s.getOn(q, id)
}

func (s Store[T]) getOn(q DBTX, id int64) (T, error) {
	var zero T
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id=? LIMIT 1`, s.selectList(), s.Info.Table)
	e, err := s.Info.Scan(q.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, domain.NotFound(s.Info.Kind, id)
	}
	if err != nil {
		return zero, err
	}
	return e, nil
}

// List returns every row, or only the rows matching the filter. An empty
// result is an empty slice, never an error.
func (s Store[T]) List(filter *Filter) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, s.selectList(), s.Info.Table)
	args := []any{}
	if filter != nil && len(filter.Values) > 0 {
		ph := strings.TrimSuffix(strings.Repeat("?,", len(filter.Values)), ",")
		query += fmt.Sprintf(` WHERE %s IN (%s)`, filter.Field, ph)
		for _, v := range filter.Values {
			args = append(args, v)
		}
	}
	query += ` ORDER BY id`

	rows, err := s.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		e, err := s.Info.Scan(rows)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Insert persists a new row and returns it with the generated id.
func (s Store[T]) Insert(e T) (T, error) {
	var zero T
	cols, args := s.Info.Insert(e)
	ph := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, s.Info.Table, strings.Join(cols, ", "), ph)

	res, err := s.db().Exec(query, args...)
	if err != nil {
		return zero, s.translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return zero, err
	}
	s.Info.SetID(&e, id)
	return e, nil
}

// UpdatePartial merges only the patch's supplied fields into the existing row
// and returns the full updated entity. NotFoundError when the id is unknown.
func (s Store[T]) UpdatePartial(id int64, patch Patch) (T, error) {
	var zero T
	existing, err := s.Get(id)
	if err != nil {
		return zero, err
	}

	cols, args := patch.Changes()
	if len(cols) == 0 {
		return existing, nil
	}

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c + "=?"
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id=?`, s.Info.Table, strings.Join(sets, ", "))
	if _, err := s.db().Exec(query, args...); err != nil {
		return zero, s.translate(err)
	}
	return s.Get(id)
}

// Delete removes the row; dependent-row cleanup is owned by the schema's
// foreign keys, not by this store.
func (s Store[T]) Delete(id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id=?`, s.Info.Table)
	res, err := s.db().Exec(query, id)
	if err != nil {
		return s.translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFound(s.Info.Kind, id)
	}
	return nil
}

// translate maps MySQL duplicate-key violations (unique email, unique
// name+country) onto the domain conflict error.
func (s Store[T]) translate(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return domain.ConflictError{Resource: s.Info.Kind, Msg: "duplicate value", Err: err}
	}
	return err
}
