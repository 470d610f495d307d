package models

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Model carries the identity and timestamp columns shared by every record.
// Records are hard-deleted, so there is no soft-delete column.
type Model struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Model) GetID() uint {
	return m.ID
}

func (m *Model) SetID(id uint) {
	m.ID = id
}

func (m *Model) GetCreatedAt() time.Time {
	return m.CreatedAt
}

func (m *Model) SetCreatedAt(t time.Time) {
	m.CreatedAt = t
}

// FieldError describes a single failed field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	fields := make([]string, len(fe))
	for i, f := range fe {
		fields[i] = f.Field
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func checkStruct(rec any) FieldErrors {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{{Field: "", Message: err.Error()}}
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, ve := range verrs {
		out = append(out, FieldError{Field: ve.Field(), Message: fieldMessage(ve)})
	}
	return out
}

func fieldMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	default:
		return fmt.Sprintf("failed %s constraint", ve.Tag())
	}
}
