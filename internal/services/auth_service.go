package services

import (
	"github.com/hanzicards/backend/internal/config"
	"github.com/hanzicards/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer is the interface that wraps access token generation
type TokenIssuer interface {
	// GenerateAccessToken creates a signed access token for a username
	GenerateAccessToken(username string) (string, error)
}

// authService implements AuthService over the config-declared account list
type authService struct {
	accounts []config.Account
	tokens   TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(accounts []config.Account, tokens TokenIssuer, logger *zap.Logger) *authService {
	return &authService{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies a username/password pair against the configured accounts
// and issues an access token. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *authService) Login(username, password string) (*models.LoginResponse, error) {
	account := s.findAccount(username)
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(account.Username)
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Error(err))
		return nil, err
	}

	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    account.Username,
	}, nil
}

func (s *authService) findAccount(username string) *config.Account {
	for i := range s.accounts {
		if s.accounts[i].Username == username {
			return &s.accounts[i]
		}
	}
	return nil
}
