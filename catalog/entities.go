package catalog

import "github.com/google/uuid"

// Kind identifies the three entity levels of the catalog hierarchy.
type Kind string

const (
	KindMenu    Kind = "menu"
	KindSubmenu Kind = "submenu"
	KindDish    Kind = "dish"
)

// Menu is the top level of the hierarchy. Counts are derived, see MenuWithCounts.
type Menu struct {
	ID          uuid.UUID `json:"id" msgpack:"id"`
	Title       string    `json:"title" msgpack:"title"`
	Description string    `json:"description" msgpack:"description"`
}

// MenuWithCounts is a Menu together with its derived aggregate counts.
// DishesCount sums over all dishes of all submenus of the menu.
type MenuWithCounts struct {
	Menu          `msgpack:",inline"`
	SubmenusCount int `json:"submenus_count" msgpack:"submenus_count"`
	DishesCount   int `json:"dishes_count" msgpack:"dishes_count"`
}

// Submenu belongs to exactly one Menu. MenuID is immutable after creation.
type Submenu struct {
	ID          uuid.UUID `json:"id" msgpack:"id"`
	MenuID      uuid.UUID `json:"menu_id" msgpack:"menu_id"`
	Title       string    `json:"title" msgpack:"title"`
	Description string    `json:"description" msgpack:"description"`
}

// SubmenuWithCounts is a Submenu together with its derived dish count.
type SubmenuWithCounts struct {
	Submenu     `msgpack:",inline"`
	DishesCount int `json:"dishes_count" msgpack:"dishes_count"`
}

// Dish belongs to exactly one Submenu. Price is carried as a decimal string to
// avoid float-precision drift on the wire and in storage.
type Dish struct {
	ID          uuid.UUID `json:"id" msgpack:"id"`
	SubmenuID   uuid.UUID `json:"submenu_id" msgpack:"submenu_id"`
	Title       string    `json:"title" msgpack:"title"`
	Description string    `json:"description" msgpack:"description"`
	Price       string    `json:"price" msgpack:"price"`
}

// MenuPatch carries the mutable fields of a Menu or Submenu.
type MenuPatch struct {
	Title       string
	Description string
}

// DishPatch carries the mutable fields of a Dish.
type DishPatch struct {
	Title       string
	Description string
	Price       string
}
