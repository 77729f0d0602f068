package storage

import (
	"context"
	"fmt"
)

// EnsureSchema creates the catalog tables if they do not exist. Child tables
// carry ON DELETE CASCADE foreign keys, so deleting a menu removes its
// submenus and their dishes in one statement; the cache purge mirrors that.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*menuRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create menus table: %w", err)
	}

	if _, err := s.db.NewCreateTable().
		Model((*submenuRow)(nil)).
		IfNotExists().
		ForeignKey(`("menu_id") REFERENCES "menus" ("id") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return fmt.Errorf("create submenus table: %w", err)
	}

	if _, err := s.db.NewCreateTable().
		Model((*dishRow)(nil)).
		IfNotExists().
		ForeignKey(`("submenu_id") REFERENCES "submenus" ("id") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return fmt.Errorf("create dishes table: %w", err)
	}

	return nil
}

// ResetSchema drops and recreates the catalog tables. Intended for tests and
// local development only.
func (s *Store) ResetSchema(ctx context.Context) error {
	for _, model := range []any{(*dishRow)(nil), (*submenuRow)(nil), (*menuRow)(nil)} {
		if _, err := s.db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return s.EnsureSchema(ctx)
}
