package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQLCollection stores one JSON document per row:
//
//	seq BIGINT AUTO_INCREMENT  insertion order
//	id  VARCHAR(64) UNIQUE     document "id"
//	doc JSON                   the full document
//
// Filters compare the unquoted JSON value of a field against the textual
// form of the wanted value, so booleans match "true"/"false". The DSN must
// carry clientFoundRows=true so an update that changes nothing still counts
// as a match.
type MySQLCollection[T any] struct {
	db    *sql.DB
	table string
}

// NewMySQLCollection creates the backing table when it does not exist.
func NewMySQLCollection[T any](ctx context.Context, db *sql.DB, table string) (*MySQLCollection[T], error) {
	if !validField(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	q := "CREATE TABLE IF NOT EXISTS `" + table + "` (" +
		"seq BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY, " +
		"id VARCHAR(64) NOT NULL, " +
		"doc JSON NOT NULL, " +
		"UNIQUE KEY uq_" + table + "_id (id)" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"
	if _, err := db.ExecContext(ctx, q); err != nil {
		return nil, fmt.Errorf("create table %s: %w", table, err)
	}
	return &MySQLCollection[T]{db: db, table: table}, nil
}

func (m *MySQLCollection[T]) InsertOne(ctx context.Context, doc T) error {
	id, body, err := encodeRow(doc)
	if err != nil {
		return err
	}
	q := "INSERT INTO `" + m.table + "` (id, doc) VALUES (?, ?)"
	if _, err := m.db.ExecContext(ctx, q, id, body); err != nil {
		return mapMySQLError(err)
	}
	return nil
}

// InsertMany inserts all docs in one transaction.
func (m *MySQLCollection[T]) InsertMany(ctx context.Context, docs []T) (err error) {
	if len(docs) == 0 {
		return nil
	}
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	q := "INSERT INTO `" + m.table + "` (id, doc) VALUES (?, ?)"
	for _, d := range docs {
		id, body, encErr := encodeRow(d)
		if encErr != nil {
			return encErr
		}
		if _, err = tx.ExecContext(ctx, q, id, body); err != nil {
			return mapMySQLError(err)
		}
	}
	return nil
}

func (m *MySQLCollection[T]) FindOne(ctx context.Context, filter Filter) (T, error) {
	var out T
	where, args, err := whereClause(filter)
	if err != nil {
		return out, err
	}
	q := "SELECT doc FROM `" + m.table + "`" + where + " ORDER BY seq LIMIT 1"
	var raw []byte
	if err := m.db.QueryRowContext(ctx, q, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, ErrNotFound
		}
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

func (m *MySQLCollection[T]) FindMany(ctx context.Context, filter Filter, sort *Sort, limit int) ([]T, error) {
	where, args, err := whereClause(filter)
	if err != nil {
		return nil, err
	}
	order := " ORDER BY seq"
	if sort != nil {
		if !validField(sort.Field) {
			return nil, fmt.Errorf("invalid sort field %q", sort.Field)
		}
		dir := "ASC"
		if sort.Desc {
			dir = "DESC"
		}
		order = fmt.Sprintf(" ORDER BY JSON_UNQUOTE(JSON_EXTRACT(doc, '$.%s')) %s, seq %s", sort.Field, dir, dir)
	}
	q := "SELECT doc FROM `" + m.table + "`" + where + order
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := m.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MySQLCollection[T]) UpdateOne(ctx context.Context, filter Filter, set Set) error {
	if len(set) == 0 {
		_, err := m.FindOne(ctx, filter)
		return err
	}
	where, whereArgs, err := whereClause(filter)
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString("doc = JSON_SET(doc")
	args := make([]any, 0, len(set)+len(whereArgs))
	for _, k := range sortedKeys(set) {
		if !validField(k) {
			return fmt.Errorf("invalid field %q", k)
		}
		enc, err := json.Marshal(set[k])
		if err != nil {
			return fmt.Errorf("encode field %s: %w", k, err)
		}
		fmt.Fprintf(&b, ", '$.%s', CAST(? AS JSON)", k)
		args = append(args, string(enc))
	}
	b.WriteString(")")
	args = append(args, whereArgs...)

	q := "UPDATE `" + m.table + "` SET " + b.String() + where + " ORDER BY seq LIMIT 1"
	res, err := m.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MySQLCollection[T]) DeleteOne(ctx context.Context, filter Filter) error {
	where, args, err := whereClause(filter)
	if err != nil {
		return err
	}
	q := "DELETE FROM `" + m.table + "`" + where + " ORDER BY seq LIMIT 1"
	res, err := m.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Distinct reads field out of the JSON document column.
func (m *MySQLCollection[T]) Distinct(ctx context.Context, field string) ([]string, error) {
	if !validField(field) {
		return nil, fmt.Errorf("invalid field %q", field)
	}
	q := fmt.Sprintf("SELECT DISTINCT JSON_UNQUOTE(JSON_EXTRACT(doc, '$.%s')) FROM `%s` WHERE JSON_EXTRACT(doc, '$.%s') IS NOT NULL", field, m.table, field)
	rows, err := m.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (m *MySQLCollection[T]) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM `"+m.table+"`").Scan(&n)
	return n, err
}

func encodeRow(doc any) (string, []byte, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", nil, fmt.Errorf("encode document: %w", err)
	}
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return "", nil, fmt.Errorf("decode document id: %w", err)
	}
	if head.ID == "" {
		return "", nil, errors.New("document has no id")
	}
	return head.ID, body, nil
}

func whereClause(filter Filter) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}
	conds := make([]string, 0, len(filter))
	args := make([]any, 0, len(filter))
	for _, k := range sortedKeys(filter) {
		if !validField(k) {
			return "", nil, fmt.Errorf("invalid filter field %q", k)
		}
		if k == "id" {
			conds = append(conds, "id = ?")
		} else {
			conds = append(conds, fmt.Sprintf("JSON_UNQUOTE(JSON_EXTRACT(doc, '$.%s')) = ?", k))
		}
		args = append(args, filterValue(filter[k]))
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func filterValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}

func sortedKeys[M ~map[string]any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}

// mapMySQLError turns duplicate-key violations (1062) into ErrDuplicate.
func mapMySQLError(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return ErrDuplicate
	}
	return err
}
