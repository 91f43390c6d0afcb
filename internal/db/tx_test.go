package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE lines (id INTEGER PRIMARY KEY, text TEXT)`)
	require.NoError(t, err)
	return conn
}

func countLines(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM lines`).Scan(&n))
	return n
}

func TestWithTx_Commits(t *testing.T) {
	conn := setupTestDB(t)

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO lines (text) VALUES (?)`, "la la")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countLines(t, conn))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	conn := setupTestDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO lines (text) VALUES (?)`, "la la"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, countLines(t, conn))
}

func TestWithTx_CanceledContext(t *testing.T) {
	conn := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, conn, func(*sql.Tx) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
