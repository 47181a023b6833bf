package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mentiongraph/internal/model"
)

// DB wraps a SQLite database holding a post corpus.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// :memory: databases are per-connection.
	d.SetMaxOpenConns(1)
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = d.Close()
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS posts (
	  id INTEGER PRIMARY KEY,
	  author TEXT NOT NULL,
	  text TEXT NOT NULL,
	  ts INTEGER NOT NULL,
	  nsec INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_posts_ts ON posts(ts, nsec);
	`)
	return err
}

// PutPosts inserts posts in one transaction. Posts whose id already exists
// are skipped; the number of new rows is returned.
func (d *DB) PutPosts(ctx context.Context, posts []model.Post) (int, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO posts(id, author, text, ts, nsec) VALUES(?,?,?,?,?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	inserted := 0
	for _, p := range posts {
		ts := p.Timestamp.UTC()
		res, err := stmt.ExecContext(ctx, p.ID, p.Author, p.Text, ts.Unix(), ts.Nanosecond())
		if err != nil {
			return 0, fmt.Errorf("insert post %d: %w", p.ID, err)
		}
		n, _ := res.RowsAffected()
		inserted += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// LoadPosts returns posts with timestamps in [start,end), oldest first.
// A zero start or end leaves that side unbounded.
func (d *DB) LoadPosts(ctx context.Context, start, end time.Time) ([]model.Post, error) {
	q := `SELECT id, author, text, ts, nsec FROM posts WHERE 1=1`
	var args []any
	if !start.IsZero() {
		start = start.UTC()
		q += ` AND (ts, nsec) >= (?, ?)`
		args = append(args, start.Unix(), start.Nanosecond())
	}
	if !end.IsZero() {
		end = end.UTC()
		q += ` AND (ts, nsec) < (?, ?)`
		args = append(args, end.Unix(), end.Nanosecond())
	}
	rows, err := d.sql.QueryContext(ctx, q+` ORDER BY ts, nsec, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Post
	for rows.Next() {
		var p model.Post
		var sec, nsec int64
		if err := rows.Scan(&p.ID, &p.Author, &p.Text, &sec, &nsec); err != nil {
			return nil, err
		}
		p.Timestamp = time.Unix(sec, nsec).UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountPosts returns the corpus size.
func (d *DB) CountPosts(ctx context.Context) (int, error) {
	var n int
	err := d.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}
