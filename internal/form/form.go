// Package form binds the create/edit dialog's field inputs to a draft
// product and validates them on submit. Validation failures never leave this
// package: an invalid draft is never sent to the backend.
package form

import (
	"context"
	"errors"
	"strconv"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/domain"
	apperrors "github.com/Srinath-230/e-commerce-frontend-app/pkg/errors"
	"github.com/Srinath-230/e-commerce-frontend-app/pkg/validator"
)

// Field names accepted by Bind and used as keys in the error set.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldImageURL    = "imageUrl"
)

// ProductWriter is the slice of the product store the form dispatches to.
type ProductWriter interface {
	Create(ctx context.Context, draft domain.Draft) error
	Update(ctx context.Context, id string, draft domain.Draft) error
}

// draftPayload is the validatable shape of the draft. Price is validated as
// a number, not a string; parsing the raw input happens before this struct
// is filled.
type draftPayload struct {
	Name        string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	ImageURL    string  `validate:"omitempty,url"`
}

// payloadFieldKeys maps validator field names to Bind field names.
var payloadFieldKeys = map[string]string{
	"Name":        FieldName,
	"Description": FieldDescription,
	"Price":       FieldPrice,
	"ImageURL":    FieldImageURL,
}

// Form holds the transient draft behind the create/edit dialog along with
// its per-field error set. The draft exists only while the dialog is open;
// Reset discards it.
type Form struct {
	products ProductWriter

	name        string
	description string
	rawPrice    string
	imageURL    string

	editID string
	errors map[string]string
}

// New creates a form dispatching submits to the given product writer.
func New(products ProductWriter) *Form {
	return &Form{products: products, errors: map[string]string{}}
}

// Bind updates a single draft field from raw input. Binding never validates;
// errors only appear on submit.
func (f *Form) Bind(field, value string) {
	switch field {
	case FieldName:
		f.name = value
	case FieldDescription:
		f.description = value
	case FieldPrice:
		f.rawPrice = value
	case FieldImageURL:
		f.imageURL = value
	}
}

// LoadFrom seeds the draft from an existing product for edit mode.
func (f *Form) LoadFrom(p domain.Product) {
	f.name = p.Name
	f.description = p.Description
	f.rawPrice = strconv.FormatFloat(p.Price, 'f', -1, 64)
	f.imageURL = p.ImageURL
	f.editID = p.ID
	f.errors = map[string]string{}
}

// Reset clears the draft, the error set, and edit mode. Used both for
// cancel and after a successful create.
func (f *Form) Reset() {
	f.name = ""
	f.description = ""
	f.rawPrice = ""
	f.imageURL = ""
	f.editID = ""
	f.errors = map[string]string{}
}

// Editing returns the ID of the product being edited, if any.
func (f *Form) Editing() (string, bool) {
	return f.editID, f.editID != ""
}

// Value returns the current raw value of a field.
func (f *Form) Value(field string) string {
	switch field {
	case FieldName:
		return f.name
	case FieldDescription:
		return f.description
	case FieldPrice:
		return f.rawPrice
	case FieldImageURL:
		return f.imageURL
	}
	return ""
}

// Errors returns a copy of the current field error set.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Validate checks the draft and records the field error set. An empty
// result means the draft is valid. Price is parsed as a floating-point
// number before any range check.
func (f *Form) Validate() map[string]string {
	errs := map[string]string{}

	price, priceErr := parsePrice(f.rawPrice)
	if priceErr != "" {
		errs[FieldPrice] = priceErr
	}

	payload := draftPayload{
		Name:        f.name,
		Description: f.description,
		Price:       price,
		ImageURL:    f.imageURL,
	}
	if err := validator.Validate(payload); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			for field, msg := range vErr.Fields() {
				key := payloadFieldKeys[field]
				if _, taken := errs[key]; key != "" && !taken {
					errs[key] = msg
				}
			}
		}
	}

	f.errors = errs
	return f.Errors()
}

// Submit validates the draft and, when valid, dispatches to the product
// store's create or update depending on edit mode. With any field error the
// submit aborts before the API client is ever involved and the errors stay
// visible.
func (f *Form) Submit(ctx context.Context) error {
	if errs := f.Validate(); len(errs) > 0 {
		return apperrors.InvalidInput("product form has field errors")
	}

	price, _ := parsePrice(f.rawPrice)
	draft := domain.Draft{
		Name:        f.name,
		Description: f.description,
		Price:       price,
		ImageURL:    f.imageURL,
	}

	if id, editing := f.Editing(); editing {
		return f.products.Update(ctx, id, draft)
	}
	return f.products.Create(ctx, draft)
}

// parsePrice parses the raw price input. An empty or unparseable input is a
// field error; range checks are the validator's job.
func parsePrice(raw string) (float64, string) {
	if raw == "" {
		return 0, "is required"
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, "must be a number"
	}
	return price, ""
}
