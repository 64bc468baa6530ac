package storage

import (
	"errors"
	"os"
	"sync"

	"taskhub-backend/internal/config"
	"taskhub-backend/internal/util/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once

	registeredModels []any
)

// RegisterModels queues models for automatic schema creation when the
// process runs under `go test`. Model packages call this from init so
// tests work against an empty database.
func RegisterModels(models ...any) {
	registeredModels = append(registeredModels, models...)
}

// GetDb returns the shared database handle, connecting on first use.
func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	log := logger.GetLogger()

	gormDb, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
		TranslateError: true,
		Logger:         gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db = gormDb

	if config.GetEnv().IsTesting {
		if err := gormDb.AutoMigrate(registeredModels...); err != nil {
			log.Error("Failed to migrate test database", "error", err)
			os.Exit(1)
		}
	}
}

// Migrate creates missing tables for the given models.
func Migrate(models ...any) error {
	migrator := GetDb().Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := GetDb().AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

// IsUniqueViolation reports whether err comes from a violated
// uniqueness constraint. The losing side of two concurrent inserts
// for the same key must see this, not a generic store error.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
