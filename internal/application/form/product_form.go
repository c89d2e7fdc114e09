// Package form implementa el controlador del formulario de producto: recolecta
// campos para crear o editar y valida antes de permitir el submit.
package form

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/commodityhub/inventory-api/internal/application/dto"
	"github.com/commodityhub/inventory-api/internal/domain/entity"
)

// validate instancia compartida; las reglas custom se registran una sola vez.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Reportar errores con el nombre del tag json, no el del campo Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank: no vacío después de recortar espacios.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// dgt0: decimal estrictamente mayor que cero.
	_ = v.RegisterValidation("dgt0", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.GreaterThan(decimal.Zero)
	})

	return v
}

// Mensajes por campo, con la redacción que la vista muestra junto al input.
var fieldMessages = map[string]string{
	"name":     "Name is required",
	"category": "Category is required",
	"sku":      "SKU is required",
	"price":    "Price must be greater than 0",
	"quantity": "Quantity cannot be negative",
	"status":   "Status is invalid",
}

// ProductForm estado del formulario: campos de trabajo más el set de errores
// por campo. Editar un campo limpia únicamente el error de ese campo.
type ProductForm struct {
	fields dto.ProductFormRequest
	errors map[string]string
}

// New formulario vacío para modo creación. Status arranca en IN_STOCK, igual
// que el formulario original.
func New() *ProductForm {
	return &ProductForm{
		fields: dto.ProductFormRequest{Status: entity.StatusInStock},
		errors: map[string]string{},
	}
}

// Load formulario precargado con un registro existente (modo edición).
func Load(p entity.Product) *ProductForm {
	return &ProductForm{
		fields: dto.ProductFormRequest{
			Name:     p.Name,
			Category: p.Category,
			SKU:      p.SKU,
			Price:    p.Price,
			Quantity: p.Quantity,
			Status:   p.Status,
		},
		errors: map[string]string{},
	}
}

// FromRequest formulario con los campos tal como llegaron del cliente.
func FromRequest(in dto.ProductFormRequest) *ProductForm {
	return &ProductForm{fields: in, errors: map[string]string{}}
}

// Setters por campo: cada uno limpia solo el error de su campo, nunca el set
// completo.

func (f *ProductForm) SetName(v string) {
	f.fields.Name = v
	delete(f.errors, "name")
}

func (f *ProductForm) SetCategory(v string) {
	f.fields.Category = v
	delete(f.errors, "category")
}

func (f *ProductForm) SetSKU(v string) {
	f.fields.SKU = v
	delete(f.errors, "sku")
}

func (f *ProductForm) SetPrice(v decimal.Decimal) {
	f.fields.Price = v
	delete(f.errors, "price")
}

func (f *ProductForm) SetQuantity(v int) {
	f.fields.Quantity = v
	delete(f.errors, "quantity")
}

func (f *ProductForm) SetStatus(v string) {
	f.fields.Status = v
	delete(f.errors, "status")
}

// Validate corre todas las reglas y repuebla el set de errores. Retorna true
// si el submit está permitido.
func (f *ProductForm) Validate() bool {
	f.errors = map[string]string{}
	err := validate.Struct(f.fields)
	if err == nil {
		return true
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		f.errors["form"] = err.Error()
		return false
	}
	for _, fe := range verrs {
		field := fe.Field()
		if msg, known := fieldMessages[field]; known {
			// El primer error por campo gana; coincide con la vista.
			if _, exists := f.errors[field]; !exists {
				f.errors[field] = msg
			}
		}
	}
	return len(f.errors) == 0
}

// Errors copia del set de errores por campo.
func (f *ProductForm) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// FieldError mensaje de error del campo, si existe.
func (f *ProductForm) FieldError(field string) (string, bool) {
	msg, ok := f.errors[field]
	return msg, ok
}

// Fields copia de los campos actuales.
func (f *ProductForm) Fields() dto.ProductFormRequest {
	return f.fields
}

// Draft convierte los campos validados en el borrador que consume el store.
func (f *ProductForm) Draft() entity.ProductDraft {
	return entity.ProductDraft{
		Name:     f.fields.Name,
		Category: f.fields.Category,
		SKU:      f.fields.SKU,
		Price:    f.fields.Price,
		Quantity: f.fields.Quantity,
		Status:   f.fields.Status,
	}
}
