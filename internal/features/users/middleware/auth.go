package users_middleware

import (
	"net/http"
	"strings"

	users_models "taskhub-backend/internal/features/users/models"
	users_services "taskhub-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// AuthMiddleware resolves the Authorization header to a user and puts
// it into the request context. Requests without a valid identity never
// reach protected handlers.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Authorization header is required"},
			)
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Authorization header must be a bearer token"},
			)
			return
		}

		user, err := userService.GetUserByToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	value, exists := ctx.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users_models.User)
	return user, ok
}
