package users_controllers

import (
	users_services "taskhub-backend/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	userService: users_services.GetUserService(),
	limiters:    map[string]*rate.Limiter{},
}

func GetUserController() *UserController {
	return userController
}
