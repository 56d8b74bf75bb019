package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"giveone/config"
	"giveone/internal/auth"
	"giveone/internal/models"
	"giveone/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists    = errors.New("email already registered")
	ErrUsernameExists = errors.New("username already taken")
	ErrInvalidCreds   = errors.New("invalid email or password")
)

type AuthService struct {
	cfg          *config.Config
	userRepo     *repository.UserRepository
	walletRepo   *repository.WalletRepository
	autopayRepo  *repository.AutopayRepository
	settingsRepo *repository.SettingsRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository, walletRepo *repository.WalletRepository, autopayRepo *repository.AutopayRepository, settingsRepo *repository.SettingsRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, walletRepo: walletRepo, autopayRepo: autopayRepo, settingsRepo: settingsRepo}
}

// Register creates the account plus its wallet, autopay config, and settings
// rows. A blank username falls back to the email local part.
func (s *AuthService) Register(firstName, lastName, username, email, password string) (*models.User, string, string, error) {
	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", "", ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	_, err = s.userRepo.GetByUsername(username)
	if err == nil {
		return nil, "", "", ErrUsernameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	u := &models.User{
		FirstName:          firstName,
		LastName:           lastName,
		Username:           username,
		Email:              email,
		PasswordHash:       string(hash),
		InviteCode:         InviteCode(email, time.Now()),
		StreakFreezeTokens: 1,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, "", "", err
	}
	if _, err := s.walletRepo.GetOrCreate(u.ID); err != nil {
		return nil, "", "", err
	}
	if _, err := s.autopayRepo.GetOrCreate(u.ID); err != nil {
		return nil, "", "", err
	}
	if _, err := s.settingsRepo.GetOrCreate(u.ID); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.tokens(u)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, refresh, err := s.tokens(u)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Username)
}

func (s *AuthService) tokens(u *models.User) (string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Username)
	if err != nil {
		return "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// InviteCode derives a shareable code from the email and signup time,
// e.g. GV1-3F9A2C.
func InviteCode(email string, at time.Time) string {
	sum := sha256.Sum256([]byte(email + "-" + at.Format("2006-01-02 15:04:05")))
	return "GV1-" + strings.ToUpper(hex.EncodeToString(sum[:])[:6])
}
