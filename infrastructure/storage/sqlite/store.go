// ABOUTME: SQLite article store on mattn/go-sqlite3
// ABOUTME: Articles survive restarts; content blocks are kept as a JSON column

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pamphlets-api/core/domain"
	coreerrors "pamphlets-api/core/errors"
)

const schema = `
	CREATE TABLE IF NOT EXISTS articles (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		author       TEXT NOT NULL DEFAULT '',
		genre        TEXT NOT NULL DEFAULT '',
		cover_image  TEXT NOT NULL DEFAULT '',
		source_url   TEXT NOT NULL DEFAULT '',
		published_at INTEGER NOT NULL DEFAULT 0,
		updated_at   INTEGER NOT NULL DEFAULT 0,
		content      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_articles_updated_at ON articles(updated_at);
`

const columns = "id, title, author, genre, cover_image, source_url, published_at, updated_at, content"

// Store implements interfaces.ArticleStorage on SQLite.
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore opens (creating if needed) the database at filePath.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "pamphlets.db"
	}

	db, err := sql.Open("sqlite3", filePath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, filePath: filePath}, nil
}

// Save inserts or replaces article.
func (s *Store) Save(ctx context.Context, article *domain.Article) error {
	if article == nil || article.ID == "" {
		return errors.New("article id cannot be empty")
	}

	content, err := json.Marshal(article.Content)
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO articles (`+columns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		article.ID, article.Title, article.Author, article.Genre, article.CoverImage, article.SourceURL,
		toUnix(article.PublishedAt), toUnix(article.UpdatedAt), string(content),
	)
	if err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Article, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM articles WHERE id = ?`, id)

	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

// List returns articles newest first; ties are broken by id.
func (s *Store) List(ctx context.Context, limit, offset int) ([]*domain.Article, error) {
	if limit <= 0 {
		return nil, nil
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+columns+` FROM articles ORDER BY updated_at DESC, id ASC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read article: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Stats reports the row count and database size.
func (s *Store) Stats(ctx context.Context) (map[string]interface{}, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats := map[string]interface{}{
		"total_articles": count,
		"file_path":      s.filePath,
	}

	var pageCount, pageSize int
	if err := s.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := s.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}
	return stats, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row scanner) (*domain.Article, error) {
	var (
		a                  domain.Article
		published, updated int64
		content            string
	)
	err := row.Scan(&a.ID, &a.Title, &a.Author, &a.Genre, &a.CoverImage, &a.SourceURL, &published, &updated, &content)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(content), &a.Content); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	a.PublishedAt = fromUnix(published)
	a.UpdatedAt = fromUnix(updated)
	return &a, nil
}

// Timestamps are stored as Unix nanoseconds with 0 for the zero time.
func toUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnix(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
