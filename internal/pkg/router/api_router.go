package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/runtix/runtix/app/controllers"
	"github.com/runtix/runtix/internal/pkg/env"
	"github.com/runtix/runtix/internal/pkg/middleware"
)

const rateLimitWindow = 15 * time.Minute

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	// one Redis storage shared by all limiters so limits hold across
	// instances; per-limiter key prefixes keep the counters apart
	storage := redis.New(redis.Config{
		Host:     env.GetEnv("CACHE_HOST", "localhost"),
		Port:     env.GetEnvInt("CACHE_PORT", 6379),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		Reset:    false,
	})

	authRequired := middleware.JWTAuthMiddleware(env.MustGetEnv("JWT_SECRET"))

	api := app.Group("/api", rateLimit(storage, "global", 100))

	// auth
	api.Post("/register-user", controllers.HandleRegisterUser)
	api.Post("/login", rateLimit(storage, "login", 5), controllers.HandleLogin)

	// events
	api.Get("/events", controllers.HandleListEvents)
	api.Post("/create-event",
		authRequired,
		middleware.RequireVerifiedOrganizer,
		rateLimit(storage, "create-event", 5),
		controllers.HandleCreateEvent)
	api.Put("/edit-event/:eventId",
		authRequired,
		middleware.RequireEventOwnership,
		controllers.HandleEditEvent)
	api.Get("/my-events/:userId", authRequired, controllers.HandleMyEvents)
	api.Get("/cities", authRequired, controllers.HandleListCities)

	// registrations
	api.Post("/register", authRequired, controllers.HandleRegisterForEvent)
	api.Get("/user/:userId/registrations", authRequired, controllers.HandleRegistrationHistory)

	// payments: the notification webhook is unauthenticated, the payload
	// signature authenticates the gateway
	api.Post("/payment",
		authRequired,
		rateLimit(storage, "payment", 10),
		controllers.HandleCreatePayment)
	api.Post("/midtrans-notification",
		rateLimit(storage, "notification", 20),
		controllers.HandleMidtransNotification)

	// certificates
	api.Get("/certificate/:registrationId", authRequired, controllers.HandleGetCertificate)

	// organizer verification (admin)
	api.Post("/verify-organizer/:userId", authRequired, middleware.RequireAdmin, controllers.HandleVerifyOrganizer)
	api.Post("/unverify-organizer/:userId", authRequired, middleware.RequireAdmin, controllers.HandleUnverifyOrganizer)

	// ratings
	api.Post("/rate-event", authRequired, controllers.HandleRateEvent)

	// notification preferences
	api.Post("/notifications/preferences", authRequired, controllers.HandleUpdateNotificationPreferences)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func rateLimit(storage fiber.Storage, prefix string, max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: rateLimitWindow,
		Storage:    storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return prefix + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again after 15 minutes",
			})
		},
	})
}
