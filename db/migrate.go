// Package db holds the read model schema.
package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/go-petr/devbank/pkg/dbpkg"
)

//go:embed migration/*.sql
var migrations embed.FS

// Up applies every up migration in version order. The statements are idempotent.
func Up(ctx context.Context, db dbpkg.SQLInterface) error {
	files, err := fs.Glob(migrations, "migration/*.up.sql")
	if err != nil {
		return err
	}

	sort.Strings(files)

	for _, name := range files {
		query, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		if _, err := db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("apply %s: %w", strings.TrimPrefix(name, "migration/"), err)
		}
	}

	return nil
}
