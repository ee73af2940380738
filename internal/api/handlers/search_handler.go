package handlers

import (
	"errors"
	"strconv"

	"recipehub-backend/domain"
	"recipehub-backend/internal/api/presenters"
	"recipehub-backend/internal/middleware"
	"recipehub-backend/pkg/search"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		Search(c *fiber.Ctx) error
		Random(c *fiber.Ctx) error
		Cuisines(c *fiber.Ctx) error
		Diets(c *fiber.Ctx) error
		Intolerances(c *fiber.Ctx) error
		LastSearch(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
		validator     *validator.Validate
	}
)

func NewSearchHandler(searchService search.SearchService, validator *validator.Validate) SearchHandler {
	return &searchHandler{
		searchService: searchService,
		validator:     validator,
	}
}

func (h *searchHandler) Search(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "5"))
	req := domain.SearchRecipesRequest{
		Query:        c.Query("query"),
		Cuisines:     c.Query("cuisines"),
		Diets:        c.Query("diets"),
		Intolerances: c.Query("intolerances"),
		Limit:        limit,
		Sort:         c.Query("sort"),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearch, err)
	}

	results, err := h.searchService.Search(c.Context(), req, middleware.LoggedInUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSearch, err)
	}

	if len(results) == 0 {
		return presenters.NoContent(c)
	}
	return presenters.RawResponse(c, results, fiber.StatusOK)
}

func (h *searchHandler) Random(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Query("number", "5"))
	if err != nil || number < 1 {
		number = 5
	}

	recipes, err := h.searchService.Random(c.Context(), number, c.Query("tags", ""))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRandom, err)
	}

	return presenters.RawResponse(c, recipes, fiber.StatusOK)
}

func (h *searchHandler) Cuisines(c *fiber.Ctx) error {
	return presenters.RawResponse(c, domain.Cuisines, fiber.StatusOK)
}

func (h *searchHandler) Diets(c *fiber.Ctx) error {
	return presenters.RawResponse(c, domain.Diets, fiber.StatusOK)
}

func (h *searchHandler) Intolerances(c *fiber.Ctx) error {
	return presenters.RawResponse(c, domain.Intolerances, fiber.StatusOK)
}

func (h *searchHandler) LastSearch(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)
	if param := c.Params("userId"); param != "" && param != userID {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrNoActiveSession.Error(), nil)
	}

	res, err := h.searchService.LastSearch(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoLastSearch) {
			return presenters.NoContent(c)
		}
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedLastSearch, err)
	}

	return presenters.RawResponse(c, res, fiber.StatusOK)
}
