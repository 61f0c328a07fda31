package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/museum-user-api/models"
)

const (
	usersTable     = "users"
	userItemsTable = "user_items"
)

var userColumns = []string{"user_id", "user_name", "password_hash", "created_at"}

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.UserName, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func (db *DB) buildSelectUserByNameQuery(userName string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_name": userName}).
		Limit(1).
		ToSql()
}

func (db *DB) buildSelectItemsQuery(userID string, kind models.CollectionKind) (string, []any, error) {
	return db.builder.
		Select("item_id").
		From(userItemsTable).
		Where(sq.Eq{"user_id": userID, "kind": kind.String()}).
		OrderBy("added_at", "item_id").
		ToSql()
}

func (db *DB) buildInsertItemQuery(userID string, kind models.CollectionKind, itemID string, addedAt time.Time) (string, []any, error) {
	return db.builder.
		Insert(userItemsTable).
		Columns("user_id", "kind", "item_id", "added_at").
		Values(userID, kind.String(), itemID, addedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func (db *DB) buildDeleteItemQuery(userID string, kind models.CollectionKind, itemID string) (string, []any, error) {
	return db.builder.
		Delete(userItemsTable).
		Where(sq.Eq{"user_id": userID, "kind": kind.String(), "item_id": itemID}).
		ToSql()
}
