package lesson

import (
	"context"
	"database/sql"

	"github.com/barbian-academy/backend/internal/domain"
	"github.com/barbian-academy/backend/internal/infrastructure/driver"
)

// SQLRepository serves the lesson catalog out of the course database.
// The catalog is authored content, the repository seeds it from the
// embedded tables on startup
type SQLRepository struct {
	Conn driver.ITransactionalDB
}

var _ domain.LessonRepository = &SQLRepository{}

func NewSQLRepository(Conn driver.ITransactionalDB) *SQLRepository {
	return &SQLRepository{Conn}
}

// EnsureSchema create the lesson table if this is a fresh database
func (repo *SQLRepository) EnsureSchema(ctx context.Context) error {
	_, err := repo.Conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS lesson(
	id INT PRIMARY KEY,
	phase INT NOT NULL,
	title VARCHAR(255) NOT NULL,
	task VARCHAR(255) NOT NULL,
	duration VARCHAR(32) NOT NULL
)`)
	return err
}

// Seed load the embedded catalog into the lesson table. Runs in one
// transaction and skips work when the table is already populated.
// Queries use $n placeholders, the mysql adapter rewrites them
func (repo *SQLRepository) Seed(ctx context.Context) error {
	tx, err := repo.Conn.BeginTx(ctx, &driver.TxOptions{
		Isolation: sql.LevelRepeatableRead,
	})
	if err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, `SELECT COUNT(*) FROM lesson`)
	if err != nil {
		tx.Rollback(ctx)
		return err
	}
	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			rows.Close()
			tx.Rollback(ctx)
			return err
		}
	}
	rows.Close()

	if count == len(catalog) {
		return tx.Commit(ctx)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM lesson`); err != nil {
		tx.Rollback(ctx)
		return err
	}
	for _, entry := range catalog {
		_, err := tx.ExecContext(ctx, `INSERT INTO lesson(id, phase, title, task, duration)
	VALUES($1,$2,$3,$4,$5)`, entry.ID, entry.Phase, entry.Title, entry.Task, entry.Duration)
		if err != nil {
			tx.Rollback(ctx)
			return err
		}
	}
	return tx.Commit(ctx)
}

func (repo *SQLRepository) GetByID(ctx context.Context, id int) (*domain.LessonModel, error) {
	rows, err := repo.Conn.QueryContext(ctx, `SELECT id, phase, title, task, duration
	FROM lesson WHERE id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		entry := new(domain.LessonModel)
		if err := rows.Scan(&entry.ID, &entry.Phase, &entry.Title, &entry.Task, &entry.Duration); err != nil {
			return nil, err
		}
		return entry, nil
	}
	return nil, nil
}

func (repo *SQLRepository) ListByPhase(ctx context.Context, phase int) ([]*domain.LessonModel, error) {
	rows, err := repo.Conn.QueryContext(ctx, `SELECT id, phase, title, task, duration
	FROM lesson WHERE phase=$1 ORDER BY id ASC`, phase)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.LessonModel
	for rows.Next() {
		entry := new(domain.LessonModel)
		if err := rows.Scan(&entry.ID, &entry.Phase, &entry.Title, &entry.Task, &entry.Duration); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, nil
}

// ListPhases phase metadata is static, no table backs it
func (repo *SQLRepository) ListPhases(ctx context.Context) ([]*domain.PhaseModel, error) {
	return phases, nil
}
