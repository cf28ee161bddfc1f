package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Document is one generated index document as recorded in the vault catalog.
type Document struct {
	Path        string
	Type        string
	Title       string
	Program     string
	Course      string
	Lock        string
	GeneratedAt time.Time
}

// Catalog is the sqlite-backed record of what the engine has generated. It
// powers listing and search; the documents on disk stay the source of truth.
type Catalog struct {
	db     *sql.DB
	useFTS bool
}

// Open opens or creates the catalog database.
func Open(dbPath string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.init(); err != nil {
		return nil, fmt.Errorf("initialize catalog: %w", err)
	}
	return c, nil
}

// init creates the schema. FTS5 is used when the driver supports it and
// silently skipped otherwise.
func (c *Catalog) init() error {
	c.useFTS = c.checkFTS5Support()

	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		path TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT,
		program TEXT,
		course TEXT,
		lock_state TEXT,
		generated_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_documents_type ON documents(type);
	CREATE INDEX IF NOT EXISTS idx_documents_program ON documents(program);
	CREATE INDEX IF NOT EXISTS idx_documents_course ON documents(course);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return err
	}

	if c.useFTS {
		ftsSchema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts5(
			path UNINDEXED,
			type,
			title,
			program,
			course,
			tokenize = 'porter unicode61'
		);
		`
		if _, err := c.db.Exec(ftsSchema); err != nil {
			c.useFTS = false
		}
	}
	return nil
}

func (c *Catalog) checkFTS5Support() bool {
	if _, err := c.db.Exec("CREATE VIRTUAL TABLE IF NOT EXISTS fts5_test USING fts5(content)"); err != nil {
		return false
	}
	_, _ = c.db.Exec("DROP TABLE IF EXISTS fts5_test")
	return true
}

// Record inserts or replaces a document's catalog entry.
func (c *Catalog) Record(doc Document) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if c.useFTS {
		if _, err := tx.Exec("DELETE FROM documents_fts WHERE path = ?", doc.Path); err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO documents_fts (path, type, title, program, course)
			VALUES (?, ?, ?, ?, ?)
		`, doc.Path, doc.Type, doc.Title, doc.Program, doc.Course); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO documents (path, type, title, program, course, lock_state, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.Path, doc.Type, doc.Title, doc.Program, doc.Course, doc.Lock, doc.GeneratedAt); err != nil {
		return err
	}

	return tx.Commit()
}

// Options narrows List and Search results.
type Options struct {
	Type    string
	Program string
	Course  string
	Limit   int
}

// List returns catalog entries, most recently generated first.
func (c *Catalog) List(opts *Options) ([]Document, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Limit == 0 {
		opts.Limit = 100
	}

	conditions, args := filterConditions(opts)
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT path, type, title, program, course, lock_state, generated_at
		FROM documents
		%s
		ORDER BY generated_at DESC
		LIMIT ?
	`, whereClause)
	args = append(args, opts.Limit)

	return c.scanDocuments(query, args...)
}

// Search performs a full-text search over titles and placement fields,
// falling back to LIKE matching when FTS5 is unavailable.
func (c *Catalog) Search(query string, opts *Options) ([]Document, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Limit == 0 {
		opts.Limit = 50
	}

	conditions, args := filterConditions(opts)

	if c.useFTS {
		whereClause := "WHERE documents_fts MATCH ?"
		ftsArgs := []any{query}
		for i, cond := range conditions {
			whereClause += " AND d." + cond
			ftsArgs = append(ftsArgs, args[i])
		}
		sqlQuery := fmt.Sprintf(`
			SELECT d.path, d.type, d.title, d.program, d.course, d.lock_state, d.generated_at
			FROM documents_fts
			JOIN documents d ON documents_fts.path = d.path
			%s
			ORDER BY rank
			LIMIT ?
		`, whereClause)
		ftsArgs = append(ftsArgs, opts.Limit)
		return c.scanDocuments(sqlQuery, ftsArgs...)
	}

	pattern := "%" + strings.ReplaceAll(query, " ", "%") + "%"
	conditions = append(conditions, "(title LIKE ? OR program LIKE ? OR course LIKE ?)")
	args = append(args, pattern, pattern, pattern)

	sqlQuery := fmt.Sprintf(`
		SELECT path, type, title, program, course, lock_state, generated_at
		FROM documents
		WHERE %s
		ORDER BY generated_at DESC
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)
	return c.scanDocuments(sqlQuery, args...)
}

// Remove deletes a document's catalog entry.
func (c *Catalog) Remove(path string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if c.useFTS {
		if _, err := tx.Exec("DELETE FROM documents_fts WHERE path = ?", path); err != nil {
			return err
		}
	}
	if _, err := tx.Exec("DELETE FROM documents WHERE path = ?", path); err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the catalog database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func filterConditions(opts *Options) ([]string, []any) {
	var conditions []string
	var args []any
	if opts.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, opts.Type)
	}
	if opts.Program != "" {
		conditions = append(conditions, "program = ?")
		args = append(args, opts.Program)
	}
	if opts.Course != "" {
		conditions = append(conditions, "course = ?")
		args = append(args, opts.Course)
	}
	return conditions, args
}

func (c *Catalog) scanDocuments(query string, args ...any) ([]Document, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.Path, &doc.Type, &doc.Title, &doc.Program, &doc.Course, &doc.Lock, &doc.GeneratedAt); err != nil {
			return nil, err
		}
		results = append(results, doc)
	}
	return results, rows.Err()
}
