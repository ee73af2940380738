package handlers

import (
	"recipehub-backend/domain"
	"recipehub-backend/internal/api/presenters"
	"recipehub-backend/internal/middleware"
	"recipehub-backend/pkg/activity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ActivityHandler interface {
		AddFavorite(c *fiber.Ctx) error
		GetFavorites(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		GetRecentlyViewed(c *fiber.Ctx) error
		GetProgress(c *fiber.Ctx) error
		SaveProgress(c *fiber.Ctx) error
	}

	activityHandler struct {
		activityService activity.ActivityService
		validator       *validator.Validate
	}
)

func NewActivityHandler(activityService activity.ActivityService, validator *validator.Validate) ActivityHandler {
	return &activityHandler{
		activityService: activityService,
		validator:       validator,
	}
}

func (h *activityHandler) AddFavorite(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	req := new(domain.FavoriteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	if err := h.activityService.MarkAsFavorite(c.Context(), userID, req.RecipeID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAddFavorite)
}

func (h *activityHandler) GetFavorites(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	favorites, err := h.activityService.GetFavoriteRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFavorites, err)
	}

	return presenters.RawResponse(c, favorites, fiber.StatusOK)
}

func (h *activityHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	if err := h.activityService.RemoveFromFavorites(c.Context(), userID, c.Params("recipeId")); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRemoveFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}

func (h *activityHandler) GetRecentlyViewed(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	viewed, err := h.activityService.GetRecentlyViewed(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetViewed, err)
	}

	return presenters.RawResponse(c, viewed, fiber.StatusOK)
}

func (h *activityHandler) GetProgress(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)
	if c.Params("userId") != userID {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrNoActiveSession.Error(), nil)
	}

	progress, err := h.activityService.GetProgress(c.Context(), userID, c.Params("recipeId"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetProgress, err)
	}

	return presenters.RawResponse(c, progress, fiber.StatusOK)
}

func (h *activityHandler) SaveProgress(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)
	if c.Params("userId") != userID {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrNoActiveSession.Error(), nil)
	}

	req := new(domain.SaveProgressRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveProgress, err)
	}

	if err := h.activityService.SetProgress(c.Context(), userID, c.Params("recipeId"), req.CompletedSteps); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSaveProgress, err)
	}

	return presenters.RawResponse(c, domain.ProgressResponse{CompletedSteps: req.CompletedSteps}, fiber.StatusOK)
}
