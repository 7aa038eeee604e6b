package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/YarenOpuz/smart-stock/internal/user/domain"
	"github.com/YarenOpuz/smart-stock/kafka"
	"github.com/YarenOpuz/smart-stock/pkg/auth"
	"github.com/YarenOpuz/smart-stock/pkg/logger"
)

// EventPublisher publishes user lifecycle events
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, event kafka.UserRegisteredEvent) error
}

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Email         string
	Password      string
	FullName      string
	OfficeAddress string
	PhoneNumber   string
	UserType      string
}

// RegisterUserHandler handles user registration
type RegisterUserHandler struct {
	repo   domain.UserRepository
	events EventPublisher
}

// NewRegisterUserHandler creates a new register user handler.
// The publisher may be nil, in which case no events are emitted.
func NewRegisterUserHandler(repo domain.UserRepository, events EventPublisher) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo, events: events}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	// Validation
	if cmd.Email == "" || !strings.Contains(cmd.Email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	// Check if email is already registered
	if existingUser, _ := h.repo.FindByEmail(cmd.Email); existingUser != nil {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:         cmd.Email,
		Password:      hashedPassword,
		FullName:      cmd.FullName,
		OfficeAddress: cmd.OfficeAddress,
		PhoneNumber:   cmd.PhoneNumber,
		UserType:      cmd.UserType,
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if h.events != nil {
		event := kafka.UserRegisteredEvent{UserID: user.ID, Email: user.Email}
		if err := h.events.PublishUserRegistered(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Uint("user_id", user.ID).Msg("Failed to publish user registered event")
		}
	}

	return user, nil
}
