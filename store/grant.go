package store

import (
	"context"
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// GrantReadOnly gives role SELECT-only access to table using the backing
// database's privilege system. PostgreSQL syntax; identifiers are validated
// because GRANT does not accept bind parameters.
func GrantReadOnly(ctx context.Context, db *gorm.DB, table, role string) error {
	if !identifierPattern.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	if !identifierPattern.MatchString(role) {
		return fmt.Errorf("invalid role name %q", role)
	}

	stmt := fmt.Sprintf(`GRANT SELECT ON %q TO %q`, table, role)
	if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to grant select on %s to %s: %w", table, role, err)
	}
	return nil
}
