package mocks

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
)

// noopDriver is a database/sql driver whose connections support beginning,
// committing and rolling back transactions but nothing else. It lets code
// built around store.RunInTransaction run in unit tests where the statements
// themselves are served by mock stores.
type noopDriver struct{}

func (noopDriver) Open(name string) (driver.Conn, error) { return &noopConn{}, nil }

type noopConn struct{}

func (*noopConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("noop driver does not support statements")
}
func (*noopConn) Close() error              { return nil }
func (*noopConn) Begin() (driver.Tx, error) { return noopTx{}, nil }

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

var registerNoopDriver sync.Once

// NewMockDB returns a *sql.DB backed by the no-op driver. Transactions
// begin, commit and roll back without touching a real database.
func NewMockDB() *sql.DB {
	registerNoopDriver.Do(func() {
		sql.Register("noopdb", noopDriver{})
	})

	db, err := sql.Open("noopdb", "")
	if err != nil {
		panic(err)
	}
	return db
}
