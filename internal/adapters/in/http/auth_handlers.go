package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// TokenResponse is returned by the sign-up and sign-in endpoints.
type TokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// SignUp handles POST /api/v1/auth/sign-up - creates a customer account
// and signs the new customer in.
func (s *Server) SignUp(ctx echo.Context) error {
	var request SignUpRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		return fail(ctx, err)
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(accountID, request.Name, request.Email, hash)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	token, err := s.tokens.Issue(accountID, account.RoleCustomer)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TokenResponse{
		Token: token,
		Role:  account.RoleCustomer.String(),
	})
}

// SignIn handles POST /api/v1/auth/sign-in - exchanges credentials for a
// bearer token.
func (s *Server) SignIn(ctx echo.Context) error {
	var request SignInRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	acct, err := s.accounts.GetByEmail(ctx.Request().Context(), request.Email)
	if err != nil {
		// Hide whether the account exists
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	if err := s.hasher.Compare(acct.PasswordHash(), request.Password); err != nil {
		return fail(ctx, err)
	}

	token, err := s.tokens.Issue(acct.ID(), acct.Role())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{
		Token: token,
		Role:  acct.Role().String(),
	})
}

// RegisterEmployee handles POST /api/v1/auth/register-employee - files an
// employee application for admin review. No account exists until an
// admin approves.
func (s *Server) RegisterEmployee(ctx echo.Context) error {
	var request RegisterEmployeeRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSubmitRegistrationCommand(kernel.NewUUID(),
		request.Name, request.Email, hash)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.submitRegistrationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}
