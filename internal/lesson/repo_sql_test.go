package lesson

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/barbian-academy/backend/internal/infrastructure/driver"
)

// recordingConn captures every statement so tests can check the SQL
// dialect stays driver neutral
type recordingConn struct {
	statements []string
	countRows  int
}

var _ driver.ITransactionalDB = &recordingConn{}

func (c *recordingConn) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	c.statements = append(c.statements, query)
	return nil, nil
}

func (c *recordingConn) QueryContext(ctx context.Context, query string, args ...interface{}) (driver.ISQLRows, error) {
	c.statements = append(c.statements, query)
	return &countRows{count: c.countRows}, nil
}

func (c *recordingConn) BeginTx(ctx context.Context, opts *driver.TxOptions) (driver.ITransactionalDB, error) {
	return c, nil
}

func (c *recordingConn) Commit(ctx context.Context) error   { return nil }
func (c *recordingConn) Rollback(ctx context.Context) error { return nil }
func (c *recordingConn) Close(ctx context.Context) error    { return nil }
func (c *recordingConn) Ping() error                        { return nil }

type countRows struct {
	count int
	read  bool
}

func (r *countRows) Next() bool {
	if r.read {
		return false
	}
	r.read = true
	return true
}

func (r *countRows) Scan(dest ...interface{}) error {
	*dest[0].(*int) = r.count
	return nil
}

func (r *countRows) Close() error { return nil }

func TestSeedUsesDriverNeutralSQL(t *testing.T) {
	conn := &recordingConn{}
	repo := NewSQLRepository(conn)

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	if err := repo.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if len(conn.statements) < 3 {
		t.Fatalf("expected schema, count and insert statements, got %d", len(conn.statements))
	}
	for _, stmt := range conn.statements {
		if strings.Contains(stmt, "?") {
			t.Errorf("statement carries a mysql-only placeholder: %q", stmt)
		}
		if strings.Contains(stmt, "REPLACE INTO") {
			t.Errorf("statement carries mysql-only REPLACE INTO: %q", stmt)
		}
	}

	inserts := 0
	for _, stmt := range conn.statements {
		if strings.Contains(stmt, "INSERT INTO lesson") {
			inserts++
			if !strings.Contains(stmt, "$1") {
				t.Errorf("insert missing $n placeholders: %q", stmt)
			}
		}
	}
	if inserts != len(catalog) {
		t.Errorf("inserts = %d, want one per catalog entry (%d)", inserts, len(catalog))
	}
}

func TestSeedSkipsPopulatedTable(t *testing.T) {
	conn := &recordingConn{countRows: len(catalog)}
	repo := NewSQLRepository(conn)

	if err := repo.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	for _, stmt := range conn.statements {
		if strings.Contains(stmt, "INSERT") || strings.Contains(stmt, "DELETE") {
			t.Errorf("populated table must not be rewritten, got %q", stmt)
		}
	}
}

func TestLookupQueriesUseDollarPlaceholders(t *testing.T) {
	conn := &recordingConn{}
	repo := NewSQLRepository(conn)

	repo.GetByID(context.Background(), 7)
	repo.ListByPhase(context.Background(), 2)

	for _, stmt := range conn.statements {
		if strings.Contains(stmt, "WHERE") && !driver.DollarPlaceholderPattern.MatchString(stmt) {
			t.Errorf("lookup missing $n placeholder: %q", stmt)
		}
		if strings.Contains(stmt, "?") {
			t.Errorf("lookup carries a mysql-only placeholder: %q", stmt)
		}
	}
}
