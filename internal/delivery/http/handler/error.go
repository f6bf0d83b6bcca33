package handler

import (
	"errors"
	"strconv"

	"github.com/evandrarf/quizdrill/internal/pkg/validate"
	"github.com/evandrarf/quizdrill/internal/practice"
	"github.com/gofiber/fiber/v2"
)

// httpError maps engine and usecase errors onto HTTP status codes.
func httpError(err error) error {
	var fe *validate.FieldsError
	if errors.As(err, &fe) {
		return fe
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr
	}

	code := fiber.StatusInternalServerError
	switch practice.KindOf(err) {
	case practice.KindValidation:
		code = fiber.StatusBadRequest
	case practice.KindNotFound:
		code = fiber.StatusNotFound
	case practice.KindConflict:
		code = fiber.StatusConflict
	}
	return fiber.NewError(code, err.Error())
}

func paramID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" must be a positive integer")
	}
	return uint(id), nil
}
