package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	config "educrm/configs"
	"educrm/database"
	"educrm/handlers"
	"educrm/routes"
	"educrm/services"
	"educrm/storage"
)

func main() {
	db, err := database.Connect(config.Config("DATABASE_URL"))
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	avatars, err := storage.NewAvatarStorage(config.Config("CLOUDINARY_URL"))
	if err != nil {
		log.Fatalf("🔥 Failed to initialize avatar storage: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:       "EDU CRM",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app, handlers.NewAuthHandler(db))
	routes.StudentRoutes(app, handlers.NewStudentHandler(services.NewStudentService(db)))
	routes.TeacherRoutes(app, handlers.NewTeacherHandler(services.NewTeacherService(db)))
	routes.CourseRoutes(app, handlers.NewCourseHandler(services.NewCourseService(db)))
	routes.GroupRoutes(app, handlers.NewGroupHandler(services.NewGroupService(db)))
	routes.PaymentRoutes(app, handlers.NewPaymentHandler(services.NewPaymentService(db)))
	routes.DashboardRoutes(app, handlers.NewDashboardHandler(services.NewDashboardService(db)))
	routes.UploadRoutes(app, handlers.NewUploadHandler(avatars))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
