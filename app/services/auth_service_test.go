package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldencrust/bakery/app/models"
	"github.com/goldencrust/bakery/app/services"
	"github.com/goldencrust/bakery/pkg/cache"
	"github.com/goldencrust/bakery/pkg/database"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{},
		&models.OrderItem{}, &models.BlogPost{},
	))
	database.DB = db
	cache.Use(cache.NewMemoryStore())
}

func register(t *testing.T, svc *services.AuthService, username, email, password string) *models.User {
	t.Helper()
	user, err := svc.Register(services.RegisterInput{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	require.NoError(t, err)
	return user
}

func TestRegisterAndLogin(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	user := register(t, svc, "alice", "alice@example.com", "S3cretBread")
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "S3cretBread", user.PasswordHash, "password must never be stored in the clear")

	byUsername, err := svc.Login("alice", "S3cretBread")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	byEmail, err := svc.Login("alice@example.com", "S3cretBread")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()
	register(t, svc, "alice", "alice@example.com", "S3cretBread")

	_, wrongPassword := svc.Login("alice", "not-the-password")
	_, unknownUser := svc.Login("nobody", "whatever")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error(),
		"a wrong password and an unknown account must produce the same message")
	assert.Equal(t, "Login unsuccessful. Please check username/email and password.", wrongPassword.Error())
}

func TestRegisterValidation(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	_, err := svc.Register(services.RegisterInput{Username: "bob"})
	require.Error(t, err)
	assert.Equal(t, "All fields are required.", err.Error())

	_, err = svc.Register(services.RegisterInput{
		Username: "bob", Email: "bob@example.com",
		Password: "one", ConfirmPassword: "two",
	})
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match.", err.Error())
}

func TestRegisterConflicts(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()
	register(t, svc, "alice", "alice@example.com", "S3cretBread")

	// Username collision, fresh email.
	_, err := svc.Register(services.RegisterInput{
		Username: "alice", Email: "other@example.com",
		Password: "pw123456", ConfirmPassword: "pw123456",
	})
	require.Error(t, err)
	assert.Equal(t, "Username already exists. Please choose a different one.", err.Error())

	// Email collision, fresh username.
	_, err = svc.Register(services.RegisterInput{
		Username: "alice2", Email: "alice@example.com",
		Password: "pw123456", ConfirmPassword: "pw123456",
	})
	require.Error(t, err)
	assert.Equal(t, "Email address already registered. Please use a different one.", err.Error())

	// Both collide: the username message wins.
	_, err = svc.Register(services.RegisterInput{
		Username: "alice", Email: "alice@example.com",
		Password: "pw123456", ConfirmPassword: "pw123456",
	})
	require.Error(t, err)
	assert.Equal(t, "Username already exists. Please choose a different one.", err.Error())
}

func TestUpdateProfileBlankFieldsOverwrite(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()
	user := register(t, svc, "alice", "alice@example.com", "S3cretBread")

	require.NoError(t, svc.UpdateProfile(user.ID, "Alice Crumb", "555-0101", "1 Bakery Lane"))

	loaded, err := svc.CurrentUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Crumb", loaded.FullName)
	assert.Equal(t, "555-0101", loaded.PhoneNumber)
	assert.Equal(t, "1 Bakery Lane", loaded.ShippingAddress)

	// Submitting blanks clears the stored values; there is no
	// keep-what-was-there fallback.
	require.NoError(t, svc.UpdateProfile(user.ID, "", "", ""))

	loaded, err = svc.CurrentUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.FullName)
	assert.Empty(t, loaded.PhoneNumber)
	assert.Empty(t, loaded.ShippingAddress)
}
