package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/restokit/go-menu-cache/catalog"
)

// Store is the system of record for the menu catalog, backed by a relational
// database through bun. All derived counts are computed with aggregate joins
// so they are exact at read time; the cache layer on top only ever has to
// mirror them, never to invent them.
type Store struct {
	db *bun.DB
}

// New wraps an opened bun database.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for lifecycle management.
func (s *Store) DB() *bun.DB {
	return s.db
}

// ----- menus -----

func (s *Store) ListMenus(ctx context.Context) ([]catalog.Menu, error) {
	var rows []menuRow
	if err := s.db.NewSelect().Model(&rows).Order("m.title").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	menus := make([]catalog.Menu, 0, len(rows))
	for _, r := range rows {
		menus = append(menus, r.toEntity())
	}
	return menus, nil
}

func (s *Store) GetMenu(ctx context.Context, id uuid.UUID) (catalog.Menu, error) {
	var row menuRow
	err := s.db.NewSelect().Model(&row).Where("m.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Menu{}, catalog.NewNotFound(catalog.KindMenu)
	}
	if err != nil {
		return catalog.Menu{}, fmt.Errorf("get menu: %w", err)
	}
	return row.toEntity(), nil
}

// GetMenuWithCounts returns a menu with its live submenu and dish counts,
// computed in a single aggregate query over both child tables.
func (s *Store) GetMenuWithCounts(ctx context.Context, id uuid.UUID) (catalog.MenuWithCounts, error) {
	var row struct {
		ID            uuid.UUID `bun:"id"`
		Title         string    `bun:"title"`
		Description   string    `bun:"description"`
		SubmenusCount int       `bun:"submenus_count"`
		DishesCount   int       `bun:"dishes_count"`
	}

	err := s.db.NewSelect().
		TableExpr("menus AS m").
		ColumnExpr("m.id, m.title, m.description").
		ColumnExpr("count(DISTINCT s.id) AS submenus_count").
		ColumnExpr("count(DISTINCT d.id) AS dishes_count").
		Join("LEFT JOIN submenus AS s ON s.menu_id = m.id").
		Join("LEFT JOIN dishes AS d ON d.submenu_id = s.id").
		Where("m.id = ?", id).
		GroupExpr("m.id, m.title, m.description").
		Scan(ctx, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.MenuWithCounts{}, catalog.NewNotFound(catalog.KindMenu)
	}
	if err != nil {
		return catalog.MenuWithCounts{}, fmt.Errorf("get menu with counts: %w", err)
	}

	return catalog.MenuWithCounts{
		Menu:          catalog.Menu{ID: row.ID, Title: row.Title, Description: row.Description},
		SubmenusCount: row.SubmenusCount,
		DishesCount:   row.DishesCount,
	}, nil
}

// CreateMenu inserts a menu. A zero ID is replaced with a generated one, so
// callers may supply their own ids or defer to the store.
func (s *Store) CreateMenu(ctx context.Context, m catalog.Menu) (catalog.Menu, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	row := menuFromEntity(m)
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return catalog.Menu{}, fmt.Errorf("create menu: %w", err)
	}
	return row.toEntity(), nil
}

func (s *Store) UpdateMenu(ctx context.Context, id uuid.UUID, patch catalog.MenuPatch) (catalog.Menu, error) {
	res, err := s.db.NewUpdate().
		Model((*menuRow)(nil)).
		Set("title = ?", patch.Title).
		Set("description = ?", patch.Description).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return catalog.Menu{}, fmt.Errorf("update menu: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return catalog.Menu{}, catalog.NewNotFound(catalog.KindMenu)
	}
	return s.GetMenu(ctx, id)
}

// DeleteMenu removes a menu; the schema cascades the delete to its submenus
// and their dishes.
func (s *Store) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.NewDelete().
		Model((*menuRow)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return catalog.NewNotFound(catalog.KindMenu)
	}
	return nil
}

// ----- submenus -----

func (s *Store) ListSubmenus(ctx context.Context, menuID uuid.UUID) ([]catalog.Submenu, error) {
	var rows []submenuRow
	if err := s.db.NewSelect().Model(&rows).Where("s.menu_id = ?", menuID).Order("s.title").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list submenus: %w", err)
	}
	submenus := make([]catalog.Submenu, 0, len(rows))
	for _, r := range rows {
		submenus = append(submenus, r.toEntity())
	}
	return submenus, nil
}

func (s *Store) GetSubmenu(ctx context.Context, id uuid.UUID) (catalog.Submenu, error) {
	var row submenuRow
	err := s.db.NewSelect().Model(&row).Where("s.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Submenu{}, catalog.NewNotFound(catalog.KindSubmenu)
	}
	if err != nil {
		return catalog.Submenu{}, fmt.Errorf("get submenu: %w", err)
	}
	return row.toEntity(), nil
}

// GetSubmenuWithCounts returns a submenu with its live dish count.
func (s *Store) GetSubmenuWithCounts(ctx context.Context, id uuid.UUID) (catalog.SubmenuWithCounts, error) {
	var row struct {
		ID          uuid.UUID `bun:"id"`
		MenuID      uuid.UUID `bun:"menu_id"`
		Title       string    `bun:"title"`
		Description string    `bun:"description"`
		DishesCount int       `bun:"dishes_count"`
	}

	err := s.db.NewSelect().
		TableExpr("submenus AS s").
		ColumnExpr("s.id, s.menu_id, s.title, s.description").
		ColumnExpr("count(d.id) AS dishes_count").
		Join("LEFT JOIN dishes AS d ON d.submenu_id = s.id").
		Where("s.id = ?", id).
		GroupExpr("s.id, s.menu_id, s.title, s.description").
		Scan(ctx, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.SubmenuWithCounts{}, catalog.NewNotFound(catalog.KindSubmenu)
	}
	if err != nil {
		return catalog.SubmenuWithCounts{}, fmt.Errorf("get submenu with counts: %w", err)
	}

	return catalog.SubmenuWithCounts{
		Submenu:     catalog.Submenu{ID: row.ID, MenuID: row.MenuID, Title: row.Title, Description: row.Description},
		DishesCount: row.DishesCount,
	}, nil
}

// CreateSubmenu inserts a submenu under its menu. A foreign-key violation
// means the menu vanished, reported as ParentNotFound rather than a raw
// driver error.
func (s *Store) CreateSubmenu(ctx context.Context, sub catalog.Submenu) (catalog.Submenu, error) {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	row := submenuFromEntity(sub)
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		if isForeignKeyViolation(err) {
			return catalog.Submenu{}, catalog.NewParentNotFound(catalog.KindMenu)
		}
		return catalog.Submenu{}, fmt.Errorf("create submenu: %w", err)
	}
	return row.toEntity(), nil
}

func (s *Store) UpdateSubmenu(ctx context.Context, id uuid.UUID, patch catalog.MenuPatch) (catalog.Submenu, error) {
	res, err := s.db.NewUpdate().
		Model((*submenuRow)(nil)).
		Set("title = ?", patch.Title).
		Set("description = ?", patch.Description).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return catalog.Submenu{}, fmt.Errorf("update submenu: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return catalog.Submenu{}, catalog.NewNotFound(catalog.KindSubmenu)
	}
	return s.GetSubmenu(ctx, id)
}

// DeleteSubmenu removes a submenu; the schema cascades the delete to its dishes.
func (s *Store) DeleteSubmenu(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.NewDelete().
		Model((*submenuRow)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete submenu: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return catalog.NewNotFound(catalog.KindSubmenu)
	}
	return nil
}

// CountDishes returns the live number of dishes under a submenu. The counter
// maintenance path uses it when the submenu's cached representation is absent,
// so a decrement is never guessed at.
func (s *Store) CountDishes(ctx context.Context, submenuID uuid.UUID) (int, error) {
	count, err := s.db.NewSelect().
		Model((*dishRow)(nil)).
		Where("d.submenu_id = ?", submenuID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count dishes: %w", err)
	}
	return count, nil
}

// ----- dishes -----

func (s *Store) ListDishes(ctx context.Context, submenuID uuid.UUID) ([]catalog.Dish, error) {
	var rows []dishRow
	if err := s.db.NewSelect().Model(&rows).Where("d.submenu_id = ?", submenuID).Order("d.title").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	dishes := make([]catalog.Dish, 0, len(rows))
	for _, r := range rows {
		dishes = append(dishes, r.toEntity())
	}
	return dishes, nil
}

func (s *Store) GetDish(ctx context.Context, id uuid.UUID) (catalog.Dish, error) {
	var row dishRow
	err := s.db.NewSelect().Model(&row).Where("d.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Dish{}, catalog.NewNotFound(catalog.KindDish)
	}
	if err != nil {
		return catalog.Dish{}, fmt.Errorf("get dish: %w", err)
	}
	return row.toEntity(), nil
}

// CreateDish inserts a dish under its submenu, mapping a foreign-key
// violation to ParentNotFound for the submenu kind.
func (s *Store) CreateDish(ctx context.Context, d catalog.Dish) (catalog.Dish, error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	row := dishFromEntity(d)
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		if isForeignKeyViolation(err) {
			return catalog.Dish{}, catalog.NewParentNotFound(catalog.KindSubmenu)
		}
		return catalog.Dish{}, fmt.Errorf("create dish: %w", err)
	}
	return row.toEntity(), nil
}

func (s *Store) UpdateDish(ctx context.Context, id uuid.UUID, patch catalog.DishPatch) (catalog.Dish, error) {
	res, err := s.db.NewUpdate().
		Model((*dishRow)(nil)).
		Set("title = ?", patch.Title).
		Set("description = ?", patch.Description).
		Set("price = ?", patch.Price).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return catalog.Dish{}, fmt.Errorf("update dish: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return catalog.Dish{}, catalog.NewNotFound(catalog.KindDish)
	}
	return s.GetDish(ctx, id)
}

func (s *Store) DeleteDish(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.NewDelete().
		Model((*dishRow)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return catalog.NewNotFound(catalog.KindDish)
	}
	return nil
}
