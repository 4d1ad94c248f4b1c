package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crudboard_backend/internal/auth"
	"crudboard_backend/internal/models"
	"crudboard_backend/internal/services/dto"
	"crudboard_backend/pkg/apperrors"
)

var serviceTestSecret = []byte("service-test-secret")

func newAuthServiceForTest() (AuthService, *fakeUserRepo, *recordingEmailProvider) {
	userRepo := newFakeUserRepo()
	mailer := &recordingEmailProvider{}
	svc := NewAuthService(userRepo, mailer, serviceTestSecret, time.Hour)
	return svc, userRepo, mailer
}

func signupReq(email string) *dto.SignupRequest {
	return &dto.SignupRequest{
		Name:      "Doe",
		FirstName: "John",
		Email:     email,
		Country:   "Nigeria",
		Password:  "secret1",
	}
}

func TestRegister_CreatesUnverifiedUserWithHashedPassword(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newAuthServiceForTest()

	require.NoError(t, svc.Register(signupReq("john@example.com")))

	user, err := userRepo.FindByEmail("john@example.com")
	require.NoError(t, err)

	assert.False(t, user.Verified)
	assert.Equal(t, models.UserRoleUser, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("secret1", user.PasswordHash))
}

func TestRegister_SendsRedeemableVerificationToken(t *testing.T) {
	t.Parallel()

	svc, _, mailer := newAuthServiceForTest()

	require.NoError(t, svc.Register(signupReq("john@example.com")))

	// Delivery happens on a separate goroutine
	require.Eventually(t, func() bool {
		_, ok := mailer.lastSend()
		return ok
	}, time.Second, 10*time.Millisecond)

	sent, _ := mailer.lastSend()
	assert.Equal(t, "john@example.com", sent.To)

	claims, err := auth.ParseVerificationToken(sent.Token, serviceTestSecret)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newAuthServiceForTest()

	req := signupReq("boss@example.com")
	req.Role = models.UserRoleAdmin

	err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)

	_, err = userRepo.FindByEmail("boss@example.com")
	assert.Error(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthServiceForTest()

	require.NoError(t, svc.Register(signupReq("john@example.com")))

	err := svc.Register(signupReq("john@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthServiceForTest()

	req := signupReq("john@example.com")
	req.Password = "12345"

	err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestLogin_IssuesTokenWithUserIDAndRole(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newAuthServiceForTest()
	require.NoError(t, svc.Register(signupReq("john@example.com")))

	resp, err := svc.Login(&dto.LoginRequest{Email: "john@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ParseToken(resp.Token, serviceTestSecret)
	require.NoError(t, err)

	user, err := userRepo.FindByEmail("john@example.com")
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.UserRoleUser, claims.Role)
}

func TestLogin_WrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthServiceForTest()
	require.NoError(t, svc.Register(signupReq("john@example.com")))

	_, errWrongPassword := svc.Login(&dto.LoginRequest{Email: "john@example.com", Password: "bad-password"})
	_, errUnknownEmail := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)

	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestVerifyEmail_MarksUserVerified(t *testing.T) {
	t.Parallel()

	svc, userRepo, _ := newAuthServiceForTest()
	require.NoError(t, svc.Register(signupReq("john@example.com")))

	token, err := auth.GenerateVerificationToken("john@example.com", serviceTestSecret, time.Hour)
	require.NoError(t, err)

	resp, err := svc.VerifyEmail(token)
	require.NoError(t, err)

	assert.Equal(t, "Email verified successfully", resp.Message)
	assert.False(t, resp.AlreadyVerified)

	user, err := userRepo.FindByEmail("john@example.com")
	require.NoError(t, err)
	assert.True(t, user.Verified)
}

func TestVerifyEmail_SecondRedemptionIsNoOp(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthServiceForTest()
	require.NoError(t, svc.Register(signupReq("john@example.com")))

	token, err := auth.GenerateVerificationToken("john@example.com", serviceTestSecret, time.Hour)
	require.NoError(t, err)

	_, err = svc.VerifyEmail(token)
	require.NoError(t, err)

	resp, err := svc.VerifyEmail(token)
	require.NoError(t, err)

	assert.Equal(t, "Email already verified", resp.Message)
	assert.True(t, resp.AlreadyVerified)
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthServiceForTest()

	_, err := svc.VerifyEmail("garbage-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthServiceForTest()
	require.NoError(t, svc.Register(signupReq("john@example.com")))

	token, err := auth.GenerateVerificationToken("john@example.com", serviceTestSecret, -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyEmail(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyEmail_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthServiceForTest()

	token, err := auth.GenerateVerificationToken("ghost@example.com", serviceTestSecret, time.Hour)
	require.NoError(t, err)

	_, err = svc.VerifyEmail(token)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
