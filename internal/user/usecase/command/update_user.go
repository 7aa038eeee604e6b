package command

import (
	"fmt"
	"time"

	"github.com/YarenOpuz/smart-stock/internal/user/domain"
	"github.com/YarenOpuz/smart-stock/pkg/auth"
)

// UpdateUserCommand lists exactly the mutable user fields
type UpdateUserCommand struct {
	ID            uint
	Email         string
	FullName      string
	OfficeAddress string
	PhoneNumber   string
	UserType      string
	IsActive      bool
	Password      string // optional, replaced only when set
}

// UpdateUserHandler handles user updates
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	// Re-validate uniqueness when the email changes
	if cmd.Email != user.Email {
		if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
			return nil, domain.ErrEmailTaken
		}
	}

	user.Email = cmd.Email
	user.FullName = cmd.FullName
	user.OfficeAddress = cmd.OfficeAddress
	user.PhoneNumber = cmd.PhoneNumber
	user.UserType = cmd.UserType
	user.IsActive = cmd.IsActive
	user.UpdatedAt = time.Now()

	if cmd.Password != "" {
		hashed, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
