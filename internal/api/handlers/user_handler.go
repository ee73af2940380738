package handlers

import (
	"log"

	"recipehub-backend/domain"
	"recipehub-backend/internal/api/presenters"
	"recipehub-backend/internal/middleware"
	"recipehub-backend/internal/utils/storage"
	"recipehub-backend/pkg/session"
	"recipehub-backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		UpdateProfilePic(c *fiber.Ctx) error
		DeleteProfilePic(c *fiber.Ctx) error
	}

	userHandler struct {
		userService    user.UserService
		sessionService session.SessionService
		s3             storage.AwsS3
		validator      *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, sessionService session.SessionService, s3 storage.AwsS3, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService:    userService,
		sessionService: sessionService,
		s3:             s3,
		validator:      validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), err.Error(), nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), err.Error(), nil)
	}

	middleware.SetSessionCookie(c, res.Token, h.sessionService.Duration())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(session.CookieName)
	if token == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrNoActiveSession.Error(), nil)
	}
	if _, err := h.sessionService.Validate(token); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrNoActiveSession.Error(), nil)
	}

	middleware.ClearSessionCookie(c)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	profile, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMe, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessGetMe)
}

// UpdateProfilePic replaces the stored object when the current picture lives
// in our bucket, otherwise uploads a fresh one.
func (h *userHandler) UpdateProfilePic(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	photo, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfilePic, err)
	}

	current, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateProfilePic, err)
	}

	var objectKey string
	if key := h.s3.GetObjectKeyFromLink(current.ProfilePic); current.ProfilePic != "" && key != current.ProfilePic {
		objectKey, err = h.s3.UpdateFile(key, photo, storage.AllowImage...)
	} else {
		objectKey, err = h.s3.UploadFile(uuid.New().String(), photo, "profile-pics", storage.AllowImage...)
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfilePic, err)
	}

	profile, err := h.userService.SetProfilePic(c.Context(), userID, h.s3.GetPublicLinkKey(objectKey))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateProfilePic, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessUpdateProfilePic)
}

func (h *userHandler) DeleteProfilePic(c *fiber.Ctx) error {
	userID := middleware.LoggedInUserID(c)

	current, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateProfilePic, err)
	}

	// Only objects in our bucket are deleted; external links are just unset.
	if key := h.s3.GetObjectKeyFromLink(current.ProfilePic); current.ProfilePic != "" && key != current.ProfilePic {
		if err := h.s3.DeleteFile(key); err != nil {
			log.Printf("failed to delete profile picture %s: %v", key, err)
		}
	}

	profile, err := h.userService.SetProfilePic(c.Context(), userID, "")
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateProfilePic, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessRemoveProfilePic)
}
