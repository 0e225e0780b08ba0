package exts

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

// BindAndValidate parses the request body into out and validates it. On a
// validation failure the response carries the message of the FIRST failing
// field, read from that field's msg tag, so forms fail one message at a time.
func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err := validation.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, firstMessage(out, err))
	}

	return nil
}

func firstMessage(out any, err error) string {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return err.Error()
	}

	first := fields[0]
	typ := reflect.TypeOf(out)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if field, ok := typ.FieldByName(first.StructField()); ok {
		if msg := field.Tag.Get("msg"); len(msg) > 0 {
			return msg
		}
	}

	return first.Error()
}
