package users_models

import (
	"time"

	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
)

func init() {
	storage.RegisterModels(&User{})
}

type User struct {
	ID             uuid.UUID `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	Email          string    `json:"email"     gorm:"column:email;not null;uniqueIndex"`
	Name           string    `json:"name"      gorm:"column:name;not null"`
	HashedPassword string    `json:"-"         gorm:"column:hashed_password;not null"`
	CreatedAt      time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
