// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations registered: the first statement goose issues fails
	err = Migrate(db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)

	require.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_blogs.sql"}, files)

	users, err := fs.ReadFile(embedMigrations, "00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(users), "users_email_key")
	assert.Contains(t, string(users), "users_user_name_key")
	assert.Contains(t, string(users), "-- +goose Down")
}
