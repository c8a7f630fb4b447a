package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakeshkurk50/EndWebsite/internal/api/metrics"
	"github.com/rakeshkurk50/EndWebsite/internal/core/domain"
	"github.com/rakeshkurk50/EndWebsite/internal/core/ports"
)

// UserHandler handles HTTP requests for user registration and listing.
type UserHandler struct {
	service ports.UserService
	debug   bool
}

func NewUserHandler(service ports.UserService, debug bool) *UserHandler {
	return &UserHandler{service: service, debug: debug}
}

// Create handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	start := time.Now()

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Mobile:    req.Mobile,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		Address:   req.Address,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
	})
	if err != nil {
		metrics.RegistrationDuration.WithLabelValues("rejected").Observe(time.Since(start).Seconds())
		return h.writeRegisterError(c, err)
	}

	metrics.UsersRegisteredTotal.Inc()
	metrics.RegistrationDuration.WithLabelValues("created").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusCreated, user)
}

// writeRegisterError maps pipeline errors to a response exactly once, at
// this boundary. Raw storage-driver errors never reach the client.
func (h *UserHandler) writeRegisterError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	var dke *domain.DuplicateKeyError

	switch {
	case errors.Is(err, domain.ErrNotConnected):
		metrics.RegistrationErrorsTotal.WithLabelValues("unavailable").Inc()
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: domain.ErrNotConnected.Error()})
	case errors.As(err, &ve):
		metrics.RegistrationErrorsTotal.WithLabelValues("validation").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
	case errors.Is(err, domain.ErrUserExists):
		metrics.RegistrationErrorsTotal.WithLabelValues("conflict").Inc()
		return c.JSON(http.StatusConflict, errorResponse{Error: domain.ErrUserExists.Error()})
	case errors.As(err, &dke):
		metrics.RegistrationErrorsTotal.WithLabelValues("duplicate_key").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: dke.Error()})
	}

	metrics.RegistrationErrorsTotal.WithLabelValues("internal").Inc()
	resp := errorResponse{Error: "error creating user"}
	if h.debug {
		resp.Stack = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, resp)
}

// List handles GET /api/users.
//
// @Summary      List all users, newest first
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		metrics.ListRequestsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "error fetching users"})
	}
	if users == nil {
		users = []domain.User{}
	}
	metrics.ListRequestsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, users)
}
