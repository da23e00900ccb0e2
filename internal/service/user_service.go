package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/ecofinds/marketplace-service/config"
	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/internal/dto"
	"github.com/ecofinds/marketplace-service/internal/repository"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/ecofinds/marketplace-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) Register(ctx context.Context, payload dto.RegisterRequest) (resp dto.AuthResponse, err error) {
	if payload.Email == "" || payload.Username == "" || payload.Password == "" {
		return resp, errs.ErrClient
	}

	if len(payload.Password) < 6 {
		return resp, errs.ErrPasswordTooShort
	}

	if payload.ProfileImage != nil && !isValidImageRef(*payload.ProfileImage) {
		return resp, errs.ErrInvalidProfileImage
	}

	existing, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}
	if existing.ID != 0 {
		return resp, errs.ErrEmailAlreadyUsed
	}

	existing, err = s.repo.GetUserByUsername(ctx, payload.Username)
	if err != nil {
		return
	}
	if existing.ID != 0 {
		return resp, errs.ErrUsernameAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return resp, errs.ErrInternalServer
	}

	userEnt := domain.User{
		Email:          payload.Email,
		Username:       payload.Username,
		HashedPassword: string(hash),
		ProfileImage:   payload.ProfileImage,
	}

	id, err := s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return resp, errs.ErrInternalServer
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	return s.issueTokenPair(user)
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (resp dto.AuthResponse, err error) {
	if payload.Email == "" || payload.Password == "" {
		return resp, errs.ErrClient
	}

	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}
	if user.ID == 0 {
		return resp, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

func (s *UserServiceImpl) Refresh(ctx context.Context, refreshToken string) (resp dto.RefreshResponse, err error) {
	userID, err := utils.VerifyJWTToken(refreshToken, s.config.JWTConfig.Secret, utils.TokenTypeRefresh)
	if err != nil {
		return resp, errs.ErrUnauthorized
	}

	accessToken, err := utils.CreateJWTToken(userID, utils.TokenTypeAccess, s.config.JWTConfig.Secret, s.config.JWTConfig.AccessTokenTTL)
	if err != nil {
		log.Error().Err(err).Str("component", "Refresh").Msg("")
		return resp, errs.ErrInternalServer
	}

	resp.AccessToken = accessToken

	return
}

func (s *UserServiceImpl) GetCurrentUser(ctx context.Context, userID int64) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}
	if user.ID == 0 {
		return resp, errs.ErrUserNotFound
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID int64, payload dto.UpdateProfileRequest) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}
	if user.ID == 0 {
		return resp, errs.ErrUserNotFound
	}

	if payload.Username != nil {
		username := strings.TrimSpace(*payload.Username)
		if username == "" {
			return resp, errs.ErrUsernameEmpty
		}

		if username != user.Username {
			existing, err := s.repo.GetUserByUsername(ctx, username)
			if err != nil {
				return resp, err
			}
			if existing.ID != 0 && existing.ID != userID {
				return resp, errs.ErrUsernameAlreadyUsed
			}
		}

		user.Username = username
	}

	if payload.ProfileImage.Set {
		if payload.ProfileImage.Value != nil && !isValidImageRef(*payload.ProfileImage.Value) {
			return resp, errs.ErrInvalidProfileImage
		}
		user.ProfileImage = payload.ProfileImage.Value
	}

	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return resp, errs.ErrInternalServer
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) issueTokenPair(user domain.User) (resp dto.AuthResponse, err error) {
	accessToken, err := utils.CreateJWTToken(user.ID, utils.TokenTypeAccess, s.config.JWTConfig.Secret, s.config.JWTConfig.AccessTokenTTL)
	if err != nil {
		log.Error().Err(err).Str("component", "issueTokenPair").Msg("")
		return resp, errs.ErrInternalServer
	}

	refreshToken, err := utils.CreateJWTToken(user.ID, utils.TokenTypeRefresh, s.config.JWTConfig.Secret, s.config.JWTConfig.RefreshTokenTTL)
	if err != nil {
		log.Error().Err(err).Str("component", "issueTokenPair").Msg("")
		return resp, errs.ErrInternalServer
	}

	resp.AccessToken = accessToken
	resp.RefreshToken = refreshToken
	resp.User = toUserResponse(user)

	return
}

// isValidImageRef accepts either a bare stored filename or an http(s) URL.
func isValidImageRef(ref string) bool {
	if ref == "" {
		return true
	}
	if strings.ContainsAny(ref, " \t\n") {
		return false
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		_, err := url.ParseRequestURI(ref)
		return err == nil
	}
	return !strings.ContainsRune(ref, '/')
}
