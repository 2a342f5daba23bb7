// Package http exposes the storefront over a JSON API. The server wires
// echo routes to command and query handlers, translating between wire
// requests and application types. Authentication is a bearer JWT; the
// acting principal is rebuilt from the token claims on every request.
package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokens   *auth.TokenService
	hasher   auth.PasswordHasher
	accounts ports.AccountRepository
	validate *validator.Validate

	// Command handlers
	registerCustomerHandler     commands.RegisterCustomerCommandHandler
	submitRegistrationHandler   commands.SubmitRegistrationCommandHandler
	approveRegistrationHandler  commands.ApproveRegistrationCommandHandler
	rejectRegistrationHandler   commands.RejectRegistrationCommandHandler
	addCartItemHandler          commands.AddCartItemCommandHandler
	removeCartItemHandler       commands.RemoveCartItemCommandHandler
	clearCartHandler            commands.ClearCartCommandHandler
	placeOrderHandler           commands.PlaceOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	requestReturnHandler        commands.RequestReturnCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	updateReturnStatusHandler   commands.UpdateReturnStatusCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler

	// Query handlers
	getCatalogHandler              queries.GetCatalogQueryHandler
	getCartHandler                 queries.GetCartQueryHandler
	getCustomerOrdersHandler       queries.GetCustomerOrdersQueryHandler
	getAdminOrdersHandler          queries.GetAdminOrdersQueryHandler
	getEmployeeDeliveriesHandler   queries.GetEmployeeDeliveriesQueryHandler
	getPendingRegistrationsHandler queries.GetPendingRegistrationsQueryHandler
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	RegisterCustomer     commands.RegisterCustomerCommandHandler
	SubmitRegistration   commands.SubmitRegistrationCommandHandler
	ApproveRegistration  commands.ApproveRegistrationCommandHandler
	RejectRegistration   commands.RejectRegistrationCommandHandler
	AddCartItem          commands.AddCartItemCommandHandler
	RemoveCartItem       commands.RemoveCartItemCommandHandler
	ClearCart            commands.ClearCartCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	RequestReturn        commands.RequestReturnCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	UpdateReturnStatus   commands.UpdateReturnStatusCommandHandler
	AssignDelivery       commands.AssignDeliveryCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler

	GetCatalog              queries.GetCatalogQueryHandler
	GetCart                 queries.GetCartQueryHandler
	GetCustomerOrders       queries.GetCustomerOrdersQueryHandler
	GetAdminOrders          queries.GetAdminOrdersQueryHandler
	GetEmployeeDeliveries   queries.GetEmployeeDeliveriesQueryHandler
	GetPendingRegistrations queries.GetPendingRegistrationsQueryHandler
}

// NewServer creates an HTTP server dispatching to the given handlers.
// accounts is used read-only by the sign-in flow.
func NewServer(
	tokens *auth.TokenService,
	hasher auth.PasswordHasher,
	accounts ports.AccountRepository,
	handlers Handlers,
) *Server {
	return &Server{
		tokens:   tokens,
		hasher:   hasher,
		accounts: accounts,
		validate: validator.New(),

		registerCustomerHandler:     handlers.RegisterCustomer,
		submitRegistrationHandler:   handlers.SubmitRegistration,
		approveRegistrationHandler:  handlers.ApproveRegistration,
		rejectRegistrationHandler:   handlers.RejectRegistration,
		addCartItemHandler:          handlers.AddCartItem,
		removeCartItemHandler:       handlers.RemoveCartItem,
		clearCartHandler:            handlers.ClearCart,
		placeOrderHandler:           handlers.PlaceOrder,
		cancelOrderHandler:          handlers.CancelOrder,
		requestReturnHandler:        handlers.RequestReturn,
		updateOrderStatusHandler:    handlers.UpdateOrderStatus,
		updateReturnStatusHandler:   handlers.UpdateReturnStatus,
		assignDeliveryHandler:       handlers.AssignDelivery,
		updateDeliveryStatusHandler: handlers.UpdateDeliveryStatus,

		getCatalogHandler:              handlers.GetCatalog,
		getCartHandler:                 handlers.GetCart,
		getCustomerOrdersHandler:       handlers.GetCustomerOrders,
		getAdminOrdersHandler:          handlers.GetAdminOrders,
		getEmployeeDeliveriesHandler:   handlers.GetEmployeeDeliveries,
		getPendingRegistrationsHandler: handlers.GetPendingRegistrations,
	}
}

// RegisterRoutes mounts the API on the echo instance. Everything under
// /api/v1 except the auth endpoints and the catalog requires a token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	v1.POST("/auth/sign-up", s.SignUp)
	v1.POST("/auth/sign-in", s.SignIn)
	v1.POST("/auth/register-employee", s.RegisterEmployee)
	v1.GET("/catalog", s.GetCatalog)

	authed := v1.Group("", echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(_ echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		// A custom KeyFunc skips echo-jwt's own signing-method check.
		SigningMethod: "HS256",
		KeyFunc:       s.tokens.KeyFunc,
	}))

	authed.GET("/cart", s.GetCart)
	authed.POST("/cart/items", s.AddCartItem)
	authed.DELETE("/cart/items/:variantId", s.RemoveCartItem)
	authed.DELETE("/cart", s.ClearCart)

	authed.POST("/orders", s.PlaceOrder)
	authed.GET("/orders", s.GetCustomerOrders)
	authed.POST("/orders/:orderId/cancel", s.CancelOrder)
	authed.POST("/orders/:orderId/return", s.RequestReturn)

	authed.GET("/admin/orders", s.GetAdminOrders)
	authed.PUT("/admin/orders/:orderId/status", s.UpdateOrderStatus)
	authed.POST("/admin/orders/:orderId/delivery", s.AssignDelivery)
	authed.PUT("/admin/orders/:orderId/return-status", s.UpdateReturnStatus)
	authed.GET("/admin/registrations", s.GetPendingRegistrations)
	authed.POST("/admin/registrations/:requestId/approve", s.ApproveRegistration)
	authed.POST("/admin/registrations/:requestId/reject", s.RejectRegistration)

	authed.GET("/deliveries", s.GetEmployeeDeliveries)
	authed.PUT("/deliveries/:deliveryId/status", s.UpdateDeliveryStatus)
}

// principal rebuilds the acting principal from the request token.
func (s *Server) principal(ctx echo.Context) (account.Principal, error) {
	token, ok := ctx.Get("user").(*jwt.Token)
	if !ok {
		return account.Principal{}, auth.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return account.Principal{}, auth.ErrTokenInvalid
	}

	return s.tokens.Principal(claims)
}

// bind decodes and validates a request body.
func (s *Server) bind(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return err
	}
	return s.validate.Struct(request)
}
