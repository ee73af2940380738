package user

import (
	"context"
	"errors"

	"recipehub-backend/domain"
	"recipehub-backend/entities"
	"recipehub-backend/pkg/session"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfile, error)
		SetProfilePic(ctx context.Context, userID, link string) (domain.UserProfile, error)
	}

	userService struct {
		userRepository UserRepository
		sessionService session.SessionService
	}
)

func NewUserService(userRepository UserRepository, sessionService session.SessionService) UserService {
	return &userService{
		userRepository: userRepository,
		sessionService: sessionService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.RegisterResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	newUser := &entities.User{
		ID:         uuid.New(),
		Username:   req.Username,
		Password:   string(hashed),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Country:    req.Country,
		Email:      req.Email,
		ProfilePic: req.ProfilePic,
	}

	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		// The unique index closes the pre-check race; a concurrent insert of
		// the same username surfaces here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrUsernameTaken
		}
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{UserID: newUser.ID.String()}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	found, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsIncorrect
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsIncorrect
	}

	token, err := s.sessionService.Generate(found.ID.String())
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		User:  toProfile(found),
		Token: token,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfile, error) {
	found, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}
	return toProfile(found), nil
}

// SetProfilePic stores the public link of the user's profile picture; an
// empty link clears it.
func (s *userService) SetProfilePic(ctx context.Context, userID, link string) (domain.UserProfile, error) {
	found, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	found.ProfilePic = link
	if err := s.userRepository.UpdateUser(ctx, found); err != nil {
		return domain.UserProfile{}, err
	}
	return toProfile(found), nil
}

func toProfile(u *entities.User) domain.UserProfile {
	return domain.UserProfile{
		ID:         u.ID.String(),
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Country:    u.Country,
		ProfilePic: u.ProfilePic,
	}
}
