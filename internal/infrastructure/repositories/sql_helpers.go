package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// whereBuilder collects AND-ed conditions written with '?' placeholders; call Rebind on the final query.
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

func (w *whereBuilder) add(clause string, args ...interface{}) {
	w.clauses = append(w.clauses, clause)
	w.args = append(w.args, args...)
}

func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// replaceTags rewrites the join rows for one owner inside tx.
func replaceTags(ctx context.Context, tx *sqlx.Tx, table, ownerCol string, ownerID uuid.UUID, tagIDs []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE "+ownerCol+" = $1", ownerID); err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		"INSERT INTO "+table+" ("+ownerCol+", tag_id) SELECT $1, unnest($2::uuid[]) ON CONFLICT DO NOTHING",
		ownerID, pq.Array(uuidStrings(tagIDs)))
	return err
}

type tagLink struct {
	OwnerID uuid.UUID `db:"owner_id"`
	TagID   uuid.UUID `db:"tag_id"`
}

// loadTags returns tag IDs per owner for a batch of owners.
func loadTags(ctx context.Context, q sqlx.QueryerContext, table, ownerCol string, owners []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID, len(owners))
	if len(owners) == 0 {
		return out, nil
	}
	var links []tagLink
	query := "SELECT " + ownerCol + " AS owner_id, tag_id FROM " + table + " WHERE " + ownerCol + " = ANY($1::uuid[])"
	if err := sqlx.SelectContext(ctx, q, &links, query, pq.Array(uuidStrings(owners))); err != nil {
		return nil, err
	}
	for _, l := range links {
		out[l.OwnerID] = append(out[l.OwnerID], l.TagID)
	}
	return out, nil
}

func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
