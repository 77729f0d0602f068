package httpapi

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var priceFormat = regexp.MustCompile(`^\d+(\.\d+)?$`)

// optionalUUID accepts an empty string or a parseable UUID.
func optionalUUID(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid UUID")
	}
	return nil
}

// menuRequest is the create/update body for menus and submenus. The id is
// optional on create; when present the server uses it instead of generating
// one.
type menuRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r menuRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.By(optionalUUID)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}

func (r menuRequest) uuid() uuid.UUID {
	if r.ID == "" {
		return uuid.Nil
	}
	id, _ := uuid.Parse(r.ID)
	return id
}

// dishRequest adds the price field, a decimal string like "12.50".
type dishRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func (r dishRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.By(optionalUUID)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
		validation.Field(&r.Price, validation.Required, validation.Match(priceFormat).Error("must be a decimal number")),
	)
}

func (r dishRequest) uuid() uuid.UUID {
	if r.ID == "" {
		return uuid.Nil
	}
	id, _ := uuid.Parse(r.ID)
	return id
}
