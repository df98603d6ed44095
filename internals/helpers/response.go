package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gerejaku_backend/internals/helpers/apperr"
)

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error Response advance (opsional), bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errs interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errs,
	})
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", errorsMap)
}

// FromAppError memetakan taksonomi apperr ke status HTTP + envelope standar.
// UpstreamError tidak pernah membocorkan detail vendor ke client.
func FromAppError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}

	switch ae.Kind {
	case apperr.Validation:
		return Error(c, fiber.StatusBadRequest, ae.Msg)
	case apperr.Auth:
		return Error(c, fiber.StatusUnauthorized, ae.Msg)
	case apperr.Signature:
		return Error(c, fiber.StatusUnauthorized, ae.Msg)
	case apperr.NotFound:
		return Error(c, fiber.StatusNotFound, ae.Msg)
	default:
		// Upstream: detail sudah dicatat di log oleh pemanggil
		return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}
