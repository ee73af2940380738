package handlers

import (
	"log"

	"recipehub-backend/domain"
	"recipehub-backend/internal/api/presenters"
	"recipehub-backend/internal/middleware"
	"recipehub-backend/internal/utils/storage"
	"recipehub-backend/pkg/activity"
	"recipehub-backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	RecipeHandler interface {
		GetRecipeDetails(c *fiber.Ctx) error
		GetRecipeInstructions(c *fiber.Ctx) error
		CreateFamilyRecipe(c *fiber.Ctx) error
		GetFamilyRecipes(c *fiber.Ctx) error
		CreateUserRecipe(c *fiber.Ctx) error
		GetUserRecipes(c *fiber.Ctx) error
		UploadRecipePhoto(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService   recipe.RecipeService
		activityService activity.ActivityService
		s3              storage.AwsS3
		validator       *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, activityService activity.ActivityService, s3 storage.AwsS3, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:   recipeService,
		activityService: activityService,
		s3:              s3,
		validator:       validator,
	}
}

func (h *recipeHandler) GetRecipeDetails(c *fiber.Ctx) error {
	recipeID := c.Params("recipeId")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	detail, err := h.recipeService.GetRecipeDetails(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipeDetail, err)
	}

	// A resolved view counts toward the viewer's history.
	if userID := middleware.LoggedInUserID(c); userID != "" {
		if err := h.activityService.RecordView(c.Context(), userID, recipeID); err != nil {
			log.Printf("failed to record view for user %s: %v", userID, err)
		}
	}

	return presenters.RawResponse(c, detail, fiber.StatusOK)
}

func (h *recipeHandler) GetRecipeInstructions(c *fiber.Ctx) error {
	instructions, err := h.recipeService.GetRecipeInstructions(c.Context(), c.Params("recipeId"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetInstructions, err)
	}

	return presenters.RawResponse(c, instructions, fiber.StatusOK)
}

func (h *recipeHandler) CreateFamilyRecipe(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	req := new(domain.CreateFamilyRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidRecipeData.Error(), err)
	}

	res, err := h.recipeService.CreateFamilyRecipe(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

// GetFamilyRecipes is public; any visitor can browse a user's family recipes.
func (h *recipeHandler) GetFamilyRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetFamilyRecipes(c.Context(), c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}

	if len(recipes) == 0 {
		return presenters.NoContent(c)
	}
	return presenters.RawResponse(c, recipes, fiber.StatusOK)
}

func (h *recipeHandler) CreateUserRecipe(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	req := new(domain.CreateUserRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidRecipeData.Error(), err)
	}

	res, err := h.recipeService.CreateUserRecipe(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetUserRecipes(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	recipes, err := h.recipeService.GetUserRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}

	if len(recipes) == 0 {
		return presenters.NoContent(c)
	}
	return presenters.RawResponse(c, recipes, fiber.StatusOK)
}

func (h *recipeHandler) UploadRecipePhoto(c *fiber.Ctx) error {
	photo, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	objectKey, err := h.s3.UploadFile(uuid.New().String(), photo, "recipe-photos", storage.AllowImage...)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	res := domain.UploadPhotoResponse{PhotoURL: h.s3.GetPublicLinkKey(objectKey)}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadPhoto)
}
