// Package uidscope answers "is this public identifier already taken" for one table.
// The repositories delegate their UIDExists probes here so the query text lives in one place.
package uidscope

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Exists reports whether a row with the given uid exists in table.
// The table name is quoted; it must not come from user input anyway.
func Exists(ctx context.Context, db *gorm.DB, table string, uid string) (bool, error) {
	if table == "" {
		return false, fmt.Errorf("uid scope: table name is empty")
	}

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE uid = ?)", pq.QuoteIdentifier(table))
	if err := db.WithContext(ctx).Raw(query, uid).Scan(&exists).Error; err != nil {
		return false, fmt.Errorf("uid scope %s: %w", table, err)
	}

	return exists, nil
}
