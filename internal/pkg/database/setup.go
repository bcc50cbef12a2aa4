package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/runtix/runtix/app/models"
	"github.com/runtix/runtix/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

func SetupDatabase() {
	// acquire timeout is part of the DSN so a saturated pool fails fast
	// instead of queueing requests indefinitely
	acquireTimeout := env.GetEnvDuration("DB_CONN_TIMEOUT", 2*time.Second)
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%s",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
		acquireTimeout,
	)

	var err error
	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true,
			DontSupportRenameIndex:   true,
			DontSupportRenameColumn:  true,
		}), &gorm.Config{TranslateError: true})
		if err == nil {
			configurePool()

			DB.AutoMigrate(
				&models.User{},
				&models.Event{},
				&models.Registration{},
				&models.Payment{},
				&models.Rating{},
				&models.NotificationPreference{},
			)

			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// configurePool applies the bounded connection pool settings: maximum
// concurrent connections and idle eviction timeout come from env, the
// acquisition timeout is baked into the DSN above.
func configurePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Failed to access underlying sql.DB for pool config: %v", err)
		return
	}

	sqlDB.SetMaxOpenConns(env.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(env.GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxIdleTime(env.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Second))
}

// GetDB returns the shared GORM handle.
func GetDB() *gorm.DB {
	return DB
}
