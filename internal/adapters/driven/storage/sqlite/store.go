package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
)

// dbFileName is the database file inside the data directory.
const dbFileName = "metadata.db"

// Store is a SQLite-based storage that provides access to
// the metadata store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.smartstudy/data/metadata.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".smartstudy", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// Pragmas in the DSN apply to every pooled connection.
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SubjectStore returns a SubjectStore interface backed by this store.
func (s *Store) SubjectStore() driven.SubjectStore {
	return &subjectStore{store: s}
}

// migrate runs all pending migrations, each in its own transaction.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) applyMigration(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Subject Store ====================

// subjectStore implements driven.SubjectStore.
type subjectStore struct {
	store *Store
}

var _ driven.SubjectStore = (*subjectStore)(nil)

// Save stores or updates a subject and replaces its topic set.
func (s *subjectStore) Save(ctx context.Context, subject *domain.Subject) error {
	if subject == nil || subject.ID == "" {
		return fmt.Errorf("%w: subject ID is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	createdAt := subject.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := subject.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO subjects (id, name, difficulty, exam_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			difficulty = excluded.difficulty,
			exam_date = excluded.exam_date,
			updated_at = excluded.updated_at
	`, subject.ID, subject.Name, subject.Difficulty, subject.ExamDate.Format(domain.DateLayout),
		createdAt, updatedAt)
	if err != nil {
		return fmt.Errorf("saving subject: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM topics WHERE subject_id = ?", subject.ID); err != nil {
		return fmt.Errorf("clearing topics: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO topics (id, subject_id, name, weightage, completed, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing topic insert: %w", err)
	}
	defer stmt.Close()

	for i, topic := range subject.Topics {
		if topic.ID == "" {
			return fmt.Errorf("%w: topic %q has no ID", domain.ErrInvalidInput, topic.Name)
		}
		if _, err := stmt.ExecContext(ctx, topic.ID, subject.ID, topic.Name, topic.Weightage,
			boolToInt(topic.Completed), i); err != nil {
			return fmt.Errorf("saving topic %q: %w", topic.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing subject: %w", err)
	}
	return nil
}

// Get retrieves a subject with its topics.
func (s *subjectStore) Get(ctx context.Context, id string) (*domain.Subject, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, difficulty, exam_date, created_at, updated_at
		FROM subjects WHERE id = ?
	`, id)

	subject, err := scanSubject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	topics, err := s.topicsBySubject(ctx, "WHERE subject_id = ?", id)
	if err != nil {
		return nil, err
	}
	subject.Topics = topics[id]
	return subject, nil
}

// List returns all subjects with their topics, ordered by exam date then name.
func (s *subjectStore) List(ctx context.Context) ([]domain.Subject, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, difficulty, exam_date, created_at, updated_at
		FROM subjects
		ORDER BY exam_date, name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying subjects: %w", err)
	}
	defer rows.Close()

	var subjects []domain.Subject //nolint:prealloc // size unknown from query
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, *subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}

	topics, err := s.topicsBySubject(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range subjects {
		subjects[i].Topics = topics[subjects[i].ID]
	}
	return subjects, nil
}

// Delete removes a subject. Its topics go with it via ON DELETE CASCADE.
func (s *subjectStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM subjects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}
	return nil
}

// SetTopicCompleted updates a topic's completion flag.
func (s *subjectStore) SetTopicCompleted(ctx context.Context, topicID string, completed bool) error {
	result, err := s.store.db.ExecContext(ctx,
		"UPDATE topics SET completed = ? WHERE id = ?", boolToInt(completed), topicID)
	if err != nil {
		return fmt.Errorf("updating topic: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating topic: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// topicsBySubject loads topics grouped by subject ID, in stored order.
func (s *subjectStore) topicsBySubject(ctx context.Context, where string, args ...any) (map[string][]domain.Topic, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, subject_id, name, weightage, completed
		FROM topics `+where+`
		ORDER BY subject_id, position
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying topics: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.Topic)
	for rows.Next() {
		var topic domain.Topic
		var subjectID string
		var completed int
		if err := rows.Scan(&topic.ID, &subjectID, &topic.Name, &topic.Weightage, &completed); err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}
		topic.Completed = completed != 0
		grouped[subjectID] = append(grouped[subjectID], topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topics: %w", err)
	}
	return grouped, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubject(row rowScanner) (*domain.Subject, error) {
	var subject domain.Subject
	var examDate string
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&subject.ID, &subject.Name, &subject.Difficulty, &examDate,
		&createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}

	date, err := domain.ParseDate(examDate)
	if err != nil {
		return nil, fmt.Errorf("subject %s: %w", subject.ID, err)
	}
	subject.ExamDate = date
	if createdAt.Valid {
		subject.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		subject.UpdatedAt = updatedAt.Time
	}
	return &subject, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
