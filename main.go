package main

import (
	"fmt"
	"log"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/runtix/runtix/app/controllers"
	"github.com/runtix/runtix/app/repository"
	"github.com/runtix/runtix/internal/pkg/cache"
	"github.com/runtix/runtix/internal/pkg/database"
	"github.com/runtix/runtix/internal/pkg/env"
	"github.com/runtix/runtix/internal/pkg/payment"
	"github.com/runtix/runtix/internal/pkg/reminder"
	"github.com/runtix/runtix/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "5000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	db := database.GetDB()
	repository.InitializeFactory(db)
	controllers.InitializePaymentController(
		payment.NewServiceFromDB(db, env.MustGetEnv("MIDTRANS_SERVER_KEY")),
	)

	app := fiber.New(fiber.Config{
		AppName: "Runtix API",
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Runtix API is running")
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	// daily pre-event reminder emails
	sched := reminder.NewScheduler(repository.GetGlobalFactory().GetNotificationPreferenceRepository(), nil)
	if err := sched.Start(); err != nil {
		log.Printf("Failed to start reminder scheduler: %v", err)
	}

	return app
}
