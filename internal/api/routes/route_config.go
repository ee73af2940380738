package routes

import (
	"recipehub-backend/internal/api/handlers"
	"recipehub-backend/internal/middleware"
	"recipehub-backend/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	SearchHandler   handlers.SearchHandler
	ActivityHandler handlers.ActivityHandler
	Middleware      middleware.Middleware
	SessionService  session.SessionService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.Users()
	c.UserRecipes()
	c.GuestRoute()
}

func (c *Config) Auth() {
	c.App.Post("/register", c.UserHandler.Register)
	c.App.Post("/login", c.UserHandler.Login)
	c.App.Post("/logout", c.UserHandler.Logout)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/recipes")

	// Fixed paths are registered before the parameterised ones so ids never
	// shadow them.
	recipes.Get("/random", c.SearchHandler.Random)
	recipes.Get("/search", c.Middleware.OptionalSessionMiddleware(c.SessionService), c.SearchHandler.Search)
	recipes.Get("/filters/cuisines", c.SearchHandler.Cuisines)
	recipes.Get("/filters/diets", c.SearchHandler.Diets)
	recipes.Get("/filters/intolerances", c.SearchHandler.Intolerances)

	auth := c.Middleware.SessionMiddleware(c.SessionService)
	recipes.Get("/:userId/recipes/:recipeId/progress", auth, c.ActivityHandler.GetProgress)
	recipes.Post("/:userId/recipes/:recipeId/progress", auth, c.ActivityHandler.SaveProgress)

	recipes.Post("", auth, c.RecipeHandler.CreateFamilyRecipe)
	recipes.Get("/:recipeId/instructions", c.RecipeHandler.GetRecipeInstructions)
	recipes.Get("/:recipeId", c.Middleware.OptionalSessionMiddleware(c.SessionService), c.RecipeHandler.GetRecipeDetails)
}

func (c *Config) Users() {
	users := c.App.Group("/users")
	auth := c.Middleware.SessionMiddleware(c.SessionService)

	users.Post("/favorites", auth, c.ActivityHandler.AddFavorite)
	users.Get("/favorites", auth, c.ActivityHandler.GetFavorites)
	users.Delete("/favorites/:recipeId", auth, c.ActivityHandler.RemoveFavorite)
	users.Get("/viewed", auth, c.ActivityHandler.GetRecentlyViewed)
	users.Get("/search/last", auth, c.SearchHandler.LastSearch)
	users.Get("/me", auth, c.UserHandler.Me)
	users.Put("/me/photo", auth, c.UserHandler.UpdateProfilePic)
	users.Delete("/me/photo", auth, c.UserHandler.DeleteProfilePic)

	// Public: anyone may browse a user's family recipes.
	users.Get("/:userId/family_recipes", c.RecipeHandler.GetFamilyRecipes)
	users.Get("/:userId/search/last", auth, c.SearchHandler.LastSearch)
}

func (c *Config) UserRecipes() {
	userRecipes := c.App.Group("/userRecipes", c.Middleware.SessionMiddleware(c.SessionService))
	userRecipes.Post("", c.RecipeHandler.CreateUserRecipe)
	userRecipes.Get("", c.RecipeHandler.GetUserRecipes)
	userRecipes.Post("/photo", c.RecipeHandler.UploadRecipePhoto)
}

func (c *Config) GuestRoute() {
	c.App.Get("/alive", func(c *fiber.Ctx) error {
		return c.SendString("I'm alive")
	})
}
