package users_services

import (
	users_repositories "taskhub-backend/internal/features/users/repositories"
)

var userService = &UserService{
	users_repositories.GetUserRepository(),
}

func GetUserService() *UserService {
	return userService
}
