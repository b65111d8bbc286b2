package repositories

import (
	"context"

	"gorm.io/gorm"
)

// withConn runs fn on a connection checked out for this call alone. GORM
// hands the connection back to the pool on every return path, including
// errors and panics unwinding through fn.
func withConn(ctx context.Context, db *gorm.DB, fn func(conn *gorm.DB) error) error {
	return db.WithContext(ctx).Connection(fn)
}
