// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose drives the connection itself; every statement fails
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db, "pgx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle-ish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "00001_create_users.sql")
	assert.Contains(t, names, "00002_create_user_items.sql")
}
