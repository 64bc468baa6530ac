package users_testing

import (
	"fmt"

	users_dto "taskhub-backend/internal/features/users/dto"
	users_models "taskhub-backend/internal/features/users/models"
	users_services "taskhub-backend/internal/features/users/services"

	"github.com/google/uuid"
)

const testUserPassword = "test-password-12345"

// CreateTestUser registers a fresh user with a unique email and
// returns its signed-in session.
func CreateTestUser() *users_dto.SignInResponseDTO {
	email := fmt.Sprintf("user-%s@test.local", uuid.NewString())

	err := users_services.GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: testUserPassword,
		Name:     "Test User",
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create test user: %v", err))
	}

	response, err := users_services.GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: testUserPassword,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to sign in test user: %v", err))
	}

	return response
}

// GetTestUserModel resolves a signed-in session back to its user row
// for tests that call services directly.
func GetTestUserModel(signIn *users_dto.SignInResponseDTO) *users_models.User {
	user, err := users_services.GetUserService().GetUserByToken(signIn.Token)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve test user: %v", err))
	}

	return user
}
