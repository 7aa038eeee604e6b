package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string,full_name=string,office_address=string,phone_number=string,user_type=string} true "User registration data"
// @Success 201 {object} object{id=int,email=string,full_name=string,user_type=string,is_active=bool,created_at=string,updated_at=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary User login
// @Description Authenticate user and get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{access_token=string,token_type=string,user=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *UserHandler) LoginDoc() {}

// Me godoc
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{id=int,email=string,full_name=string,user_type=string,is_active=bool}
// @Failure 401 {object} object{error=string}
// @Router /auth/me [get]
func (h *UserHandler) MeDoc() {}

// GetUser godoc
// @Summary Get user by ID
// @Description Get a specific user's details
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{id=int,email=string,full_name=string,user_type=string,is_active=bool}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [get]
func (h *UserHandler) GetUserDoc() {}

// ListUsers godoc
// @Summary List users
// @Description List all users with pagination
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} object{id=int,email=string,full_name=string,user_type=string,is_active=bool}
// @Failure 401 {object} object{error=string}
// @Router /users [get]
func (h *UserHandler) ListUsersDoc() {}

// UpdateUser godoc
// @Summary Update user
// @Description Update a user's profile
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{email=string,password=string,full_name=string,office_address=string,phone_number=string,is_active=bool} true "Update data"
// @Success 200 {object} object{id=int,email=string,full_name=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUserDoc() {}

// DeleteUser godoc
// @Summary Delete user
// @Description Delete a user (soft delete)
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 {string} string "No Content"
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUserDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *UserHandler) HealthCheckDoc() {}
