package services

import (
	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/app/repositories"
	"github.com/goldencrust/bakery/pkg/hash"
	"github.com/goldencrust/bakery/pkg/logger"
	"github.com/goldencrust/bakery/pkg/metrics"
	"github.com/goldencrust/bakery/pkg/orm"
)

// AuthService orchestrates registration, login and profile updates.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register validates the input, checks both uniqueness constraints
// (username first — its conflict message wins when both collide), hashes
// the password, and inserts the user. The insert is transactional; a
// store failure rolls back and surfaces as a single error.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, validationError("All fields are required.")
	}
	if in.Password != in.ConfirmPassword {
		return nil, validationError("Passwords do not match.")
	}

	taken, err := s.users.ExistsByUsername(in.Username)
	if err != nil {
		return nil, storeError("An error occurred during registration.", err)
	}
	if taken {
		return nil, conflictError("Username already exists. Please choose a different one.")
	}

	taken, err = s.users.ExistsByEmail(in.Email)
	if err != nil {
		return nil, storeError("An error occurred during registration.", err)
	}
	if taken {
		return nil, conflictError("Email address already registered. Please use a different one.")
	}

	digest, err := hash.Make(in.Password)
	if err != nil {
		return nil, storeError("An error occurred during registration.", err)
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: digest,
	}
	if err := s.users.Create(user); err != nil {
		logger.Error("auth: registration insert failed", "username", in.Username, "error", err)
		return nil, storeError("An error occurred during registration.", err)
	}

	logger.Info("auth: user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login authenticates a user by username or email plus password.
// Unknown identifier and wrong password fail identically.
func (s *AuthService) Login(identifier, password string) (*models.User, error) {
	user, err := s.users.FindByIdentifier(identifier)
	if err != nil {
		metrics.RecordLogin(false)
		if orm.IsNotFound(err) {
			return nil, ErrLoginFailed
		}
		return nil, storeError(ErrLoginFailed.Message, err)
	}

	if !hash.Check(password, user.PasswordHash) {
		metrics.RecordLogin(false)
		return nil, ErrLoginFailed
	}

	metrics.RecordLogin(true)
	logger.Info("auth: login", "user_id", user.ID)
	return &user, nil
}

// UpdateProfile overwrites the three optional profile fields for the
// authenticated user. Blank values clear stored data — there are no
// partial-update semantics. A failed commit rolls back and leaves the
// caller's session untouched.
func (s *AuthService) UpdateProfile(userID uint, fullName, phoneNumber, shippingAddress string) error {
	if err := s.users.UpdateProfile(userID, fullName, phoneNumber, shippingAddress); err != nil {
		logger.Error("auth: profile update failed", "user_id", userID, "error", err)
		return storeError("Error updating profile.", err)
	}
	return nil
}

// CurrentUser loads the account backing an authenticated session.
func (s *AuthService) CurrentUser(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
