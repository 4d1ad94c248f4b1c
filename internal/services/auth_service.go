package services

import (
	"time"

	"crudboard_backend/internal/auth"
	"crudboard_backend/internal/email"
	"crudboard_backend/internal/logger"
	"crudboard_backend/internal/models"
	"crudboard_backend/internal/repositories"
	"crudboard_backend/internal/services/dto"
	"crudboard_backend/pkg/apperrors"
)

// verificationTokenTTL bounds how long an emailed verification link
// stays redeemable.
const verificationTokenTTL = 24 * time.Hour

type AuthService interface {
	Register(req *dto.SignupRequest) error
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	VerifyEmail(token string) (*dto.VerifyEmailResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	jwtSecret     []byte
	sessionTTL    time.Duration
}

// NewAuthService wires the auth flows. The signing secret is passed in
// explicitly; nothing here reads ambient globals.
func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	jwtSecret []byte,
	sessionTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		jwtSecret:     jwtSecret,
		sessionTTL:    sessionTTL,
	}
}

// Register creates an unverified user and dispatches the verification
// mail. Mail delivery is best-effort: a failed send is logged but the
// registration stands, since the account itself was created correctly.
func (s *AuthServiceImpl) Register(req *dto.SignupRequest) error {
	if req.Role == models.UserRoleAdmin {
		return apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		FirstName:    req.FirstName,
		Email:        req.Email,
		Country:      req.Country,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleUser,
		Verified:     false,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	verificationToken, err := auth.GenerateVerificationToken(user.Email, s.jwtSecret, verificationTokenTTL)
	if err != nil {
		return apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken)

	return nil
}

// Login checks credentials and issues a session token. Unknown email
// and wrong password produce the same error so responses cannot be
// used to enumerate accounts.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{Token: token}, nil
}

// VerifyEmail redeems a verification token. Redeeming an already
// verified account is a stable no-op, not an error.
func (s *AuthServiceImpl) VerifyEmail(token string) (*dto.VerifyEmailResponse, error) {
	claims, err := auth.ParseVerificationToken(token, s.jwtSecret)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByEmail(claims.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Verified {
		return &dto.VerifyEmailResponse{
			Message:         "Email already verified",
			AlreadyVerified: true,
		}, nil
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.VerifyEmailResponse{Message: "Email verified successfully"}, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendVerification(to, token); err != nil {
			// Log the address only; never the token itself
			logger.WithError(err).Error("Failed to send verification email", "email", to)
		}
	}()
}
