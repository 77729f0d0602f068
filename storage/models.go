package storage

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/restokit/go-menu-cache/catalog"
)

type menuRow struct {
	bun.BaseModel `bun:"table:menus,alias:m"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description,notnull,default:''"`
}

type submenuRow struct {
	bun.BaseModel `bun:"table:submenus,alias:s"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	MenuID      uuid.UUID `bun:"menu_id,notnull,type:uuid"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description,notnull,default:''"`
}

type dishRow struct {
	bun.BaseModel `bun:"table:dishes,alias:d"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	SubmenuID   uuid.UUID `bun:"submenu_id,notnull,type:uuid"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description,notnull,default:''"`
	Price       string    `bun:"price,notnull"`
}

func (r menuRow) toEntity() catalog.Menu {
	return catalog.Menu{ID: r.ID, Title: r.Title, Description: r.Description}
}

func menuFromEntity(m catalog.Menu) menuRow {
	return menuRow{ID: m.ID, Title: m.Title, Description: m.Description}
}

func (r submenuRow) toEntity() catalog.Submenu {
	return catalog.Submenu{ID: r.ID, MenuID: r.MenuID, Title: r.Title, Description: r.Description}
}

func submenuFromEntity(s catalog.Submenu) submenuRow {
	return submenuRow{ID: s.ID, MenuID: s.MenuID, Title: s.Title, Description: s.Description}
}

func (r dishRow) toEntity() catalog.Dish {
	return catalog.Dish{ID: r.ID, SubmenuID: r.SubmenuID, Title: r.Title, Description: r.Description, Price: r.Price}
}

func dishFromEntity(d catalog.Dish) dishRow {
	return dishRow{ID: d.ID, SubmenuID: d.SubmenuID, Title: d.Title, Description: d.Description, Price: d.Price}
}
