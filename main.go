package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cms/internal/handlers"
	"cms/internal/middleware"
	"cms/internal/models"
	"cms/internal/repositories"
	"cms/internal/services"
	"cms/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "") // empty: local sqlite file
	viper.SetDefault("SQLITE_PATH", "cms.db")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("TOKEN_TTL_MINUTES", 30)
	viper.SetDefault("RABBITMQ_URL", "") // empty: events disabled
	viper.SetDefault("CATEGORY_VALIDATION", "off")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	tokenTTL := time.Duration(viper.GetInt("TOKEN_TTL_MINUTES")) * time.Minute
	strictCategories := viper.GetString("CATEGORY_VALIDATION") == "strict"

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DSN"), viper.GetString("SQLITE_PATH"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Category{},
		&models.SubCategory{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, domain events disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	likeRepo := repositories.NewGORMLikeRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)

	seedCategories(categoryRepo, db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret, tokenTTL, mqClient)
	postService := services.NewPostService(postRepo, categoryRepo, strictCategories, mqClient)
	likeService := services.NewLikeService(likeRepo, postRepo, mqClient)
	categoryService := services.NewCategoryService(categoryRepo)

	// --- Handlers ---
	accountHandler := handlers.NewAccountHandler(authService)
	blogHandler := handlers.NewBlogHandler(postService)
	likeHandler := handlers.NewLikeHandler(likeService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	v1 := app.Group("/v1")
	accountHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("", middleware.AuthRequired(authService))
	accountHandler.RegisterProtectedRoutes(protected)
	blogHandler.RegisterRoutes(protected)
	likeHandler.RegisterRoutes(protected)
	categoryHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Event consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for blog events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received blog event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase connects to PostgreSQL when a DSN is configured and
// falls back to a local sqlite file otherwise. TranslateError lets
// unique-index violations surface as gorm.ErrDuplicatedKey on both
// drivers.
func openDatabase(dsn, sqlitePath string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if dsn != "" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	log.Printf("DATABASE_DSN not set, using sqlite database %s", sqlitePath)
	return gorm.Open(sqlite.Open(sqlitePath), cfg)
}

// seedCategories populates the taxonomy tables on first start so the
// strict category variant has something to validate against.
func seedCategories(repo repositories.CategoryRepository, db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	categories := map[string][]string{
		"Technology": {"Programming", "Hardware"},
		"Lifestyle":  {"Travel", "Food"},
	}
	for name, subNames := range categories {
		category := models.Category{Name: name}
		if err := repo.CreateCategory(&category); err != nil {
			log.Printf("Error seeding category %s: %v", name, err)
			continue
		}
		for _, subName := range subNames {
			sub := models.SubCategory{Name: subName, CategoryID: category.ID}
			if err := repo.CreateSubCategory(&sub); err != nil {
				log.Printf("Error seeding sub-category %s: %v", subName, err)
			}
		}
		log.Printf("Seeded category: %s (ID: %s)", name, category.ID)
	}
}
