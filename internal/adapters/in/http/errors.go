package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/auth"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fail maps a domain error onto an HTTP status and writes the error body.
//
// Not-found lookups become 404, capability failures 403, credential
// failures 401, and business-rule rejections 409; anything recognizably
// caused by bad input is 400. Unrecognized errors are a 500 with a
// generic message so internals never leak to the client.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, account.ErrRoleNotAllowed):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrTokenInvalid):
		status, message = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, services.ErrStatusNotAllowed),
		errors.Is(err, commands.ErrNotOrderOwner),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrEmailAlreadyTaken),
		errors.Is(err, commands.ErrNotEmployeeAccount),
		errors.Is(err, order.ErrOrderNotCancellable),
		errors.Is(err, order.ErrOrderNotCompleted),
		errors.Is(err, order.ErrReturnAlreadyOpen),
		errors.Is(err, order.ErrReturnNotOpen),
		errors.Is(err, delivery.ErrNotAssignedEmployee),
		errors.Is(err, product.ErrInsufficientStock):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status, message = http.StatusBadRequest, err.Error()
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

// badRequest writes a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
