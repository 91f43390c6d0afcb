package store

import (
	"context"
	"database/sql"

	"github.com/llehouerou/lrcsync/internal/db"
)

const currentSchemaVersion = 1

func initSchema(ctx context.Context, conn *sql.DB) error {
	return db.WithTx(ctx, conn, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS saved_lyrics (
				name TEXT NOT NULL,
				artists TEXT NOT NULL,
				lyric TEXT NOT NULL,
				updated_at INTEGER NOT NULL,
				PRIMARY KEY (name, artists)
			);

			CREATE INDEX IF NOT EXISTS idx_saved_lyrics_updated_at ON saved_lyrics(updated_at);
		`)
		if err != nil {
			return err
		}

		// Set initial version if not exists
		_, err = tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO schema_version (version) VALUES (?)
		`, currentSchemaVersion)
		return err
	})
}
