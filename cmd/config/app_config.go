package config

import (
	"os"
	"strconv"
	"time"

	"recipehub-backend/internal/api/handlers"
	"recipehub-backend/internal/api/routes"
	"recipehub-backend/internal/middleware"
	"recipehub-backend/internal/utils"
	"recipehub-backend/internal/utils/storage"
	"recipehub-backend/pkg/activity"
	"recipehub-backend/pkg/recipe"
	"recipehub-backend/pkg/search"
	"recipehub-backend/pkg/session"
	"recipehub-backend/pkg/spoonacular"
	"recipehub-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	external := spoonacular.NewClient(
		utils.GetConfig("SPOONACULAR_URL"),
		utils.GetConfig("SPOONACULAR_API_KEY"),
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	activityRepository := activity.NewActivityRepository(db)
	searchRepository := search.NewSearchRepository(db)

	// Service
	sessionService := session.NewSessionService(
		utils.GetConfig("SESSION_SECRET"),
		configMinutes("SESSION_MINUTES", 120),
		configMinutes("ACTIVE_MINUTES", 24*60),
	)
	userService := user.NewUserService(userRepository, sessionService)
	recipeService := recipe.NewRecipeService(recipeRepository, external)
	activityService := activity.NewActivityService(activityRepository, recipeService)
	searchService := search.NewSearchService(searchRepository, external)

	// Handler
	userHandler := handlers.NewUserHandler(userService, sessionService, s3, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, activityService, s3, validator)
	searchHandler := handlers.NewSearchHandler(searchService, validator)
	activityHandler := handlers.NewActivityHandler(activityService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		SearchHandler:   searchHandler,
		ActivityHandler: activityHandler,
		Middleware:      middlewares,
		SessionService:  sessionService,
	}
	routesConfig.Setup()
	return app, nil
}

func configMinutes(key string, fallback int) time.Duration {
	minutes, err := strconv.Atoi(utils.GetConfig(key))
	if err != nil || minutes <= 0 {
		minutes = fallback
	}
	return time.Duration(minutes) * time.Minute
}
