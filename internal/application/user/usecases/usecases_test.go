package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vpndash/vpndash/internal/domain/usage"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/infrastructure/auth"
	"github.com/vpndash/vpndash/internal/infrastructure/database/databasetest"
	"github.com/vpndash/vpndash/internal/infrastructure/repository"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/db"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/services/markdown"
)

type recordingEmailService struct {
	welcome         []string
	passwordChanged []string
}

func (r *recordingEmailService) SendWelcomeEmail(to, _ string, _ time.Time) error {
	r.welcome = append(r.welcome, to)
	return nil
}

func (r *recordingEmailService) SendPasswordChangedEmail(to string) error {
	r.passwordChanged = append(r.passwordChanged, to)
	return nil
}

type fixture struct {
	users    user.Repository
	stats    usage.Repository
	hasher   user.PasswordHasher
	jwt      *auth.JWTService
	emails   *recordingEmailService
	clock    *biztime.FixedClock
	register *RegisterUseCase
	login    *LoginUseCase
}

var t0 = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := databasetest.NewSQLite(t)
	log := logger.NewNopLogger()

	f := &fixture{
		users:  repository.NewUserRepository(gdb, log),
		stats:  repository.NewUsageStatsRepository(gdb, log),
		hasher: auth.NewBcryptPasswordHasher(4),
		jwt:    auth.NewJWTService("secret", 15, 7),
		emails: &recordingEmailService{},
		clock:  biztime.NewFixedClock(t0),
	}
	policy := SubscriptionPolicy{Plan: "free", Trial: 7 * 24 * time.Hour}
	f.register = NewRegisterUseCase(f.users, f.stats, f.hasher, db.NewTransactionManager(gdb),
		f.emails, markdown.NewService(), policy, f.clock, log)
	f.login = NewLoginUseCase(f.users, f.hasher, f.jwt, f.clock, log)
	return f
}

func (f *fixture) registerUser(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := f.register.Execute(context.Background(), RegisterCommand{
		Name: "Ann", Email: email, Password: "pw1234", ConfirmPassword: "pw1234",
	})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.registerUser(t, "A@X.com")
	assert.Equal(t, "a@x.com", u.Email().String())
	assert.Equal(t, "free", u.Plan().String())
	assert.Equal(t, t0.Add(7*24*time.Hour), u.SubscriptionExpiry())
	assert.Equal(t, u.CreatedAt(), u.LastLogin())
	assert.Zero(t, u.TotalDataUsed())
	assert.Equal(t, []string{"a@x.com"}, f.emails.welcome)

	stats, err := f.stats.GetByUserID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Zero(t, stats.TodayUsage())
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{"missing name", RegisterCommand{Email: "a@x.com", Password: "pw", ConfirmPassword: "pw"}},
		{"missing confirm", RegisterCommand{Name: "Ann", Email: "a@x.com", Password: "pw"}},
		{"mismatch", RegisterCommand{Name: "Ann", Email: "a@x.com", Password: "pw1", ConfirmPassword: "pw2"}},
		{"bad email", RegisterCommand{Name: "Ann", Email: "nope", Password: "pw", ConfirmPassword: "pw"}},
		{"markup-only name", RegisterCommand{Name: "<script>x</script>", Email: "a@x.com", Password: "pw", ConfirmPassword: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.register.Execute(ctx, tt.cmd)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 400, appErr.Code)
		})
	}

	exists, err := f.users.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.registerUser(t, "a@x.com")

	_, err := f.register.Execute(context.Background(), RegisterCommand{
		Name: "Other", Email: "a@x.com", Password: "x", ConfirmPassword: "x",
	})
	assert.True(t, errors.IsConflictError(err))
	assert.Len(t, f.emails.welcome, 1)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerUser(t, "a@x.com")

	f.clock.Advance(time.Hour)
	res, err := f.login.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, u.SID(), res.User.SID())
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)

	claims, err := f.jwt.VerifyAccess(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.SID(), claims.UserSID)

	stored, err := f.users.GetBySID(ctx, u.SID())
	require.NoError(t, err)
	assert.Equal(t, t0.Add(time.Hour), stored.LastLogin())
}

func TestLogin_WrongPasswordLeavesLastLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerUser(t, "a@x.com")

	f.clock.Advance(time.Hour)
	_, err := f.login.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, 401, errors.GetAppError(err).Code)

	_, err = f.login.Execute(ctx, LoginCommand{Email: "nobody@x.com", Password: "pw1234"})
	assert.Equal(t, 401, errors.GetAppError(err).Code)

	_, err = f.login.Execute(ctx, LoginCommand{Email: "a@x.com"})
	assert.Equal(t, 400, errors.GetAppError(err).Code)

	stored, err := f.users.GetBySID(ctx, u.SID())
	require.NoError(t, err)
	assert.Equal(t, u.LastLogin(), stored.LastLogin())
}

func TestLogin_UpgradesHashCost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerUser(t, "a@x.com")

	stronger := NewLoginUseCase(f.users, auth.NewBcryptPasswordHasher(5), f.jwt, f.clock, logger.NewNopLogger())
	_, err := stronger.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "pw1234"})
	require.NoError(t, err)

	stored, err := f.users.GetBySID(ctx, u.SID())
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(stored.PasswordHash()))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	_, err = f.login.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "pw1234"})
	assert.NoError(t, err)
}

func TestRefreshToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "a@x.com")
	res, err := f.login.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "pw1234"})
	require.NoError(t, err)

	uc := NewRefreshTokenUseCase(f.users, f.jwt, auth.NoopTokenRevoker{}, logger.NewNopLogger())

	pair, err := uc.Execute(ctx, res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	_, err = uc.Execute(ctx, res.AccessToken)
	assert.True(t, errors.IsAuthError(err))

	_, err = uc.Execute(ctx, "")
	assert.Equal(t, 400, errors.GetAppError(err).Code)
}

type memoryRevoker struct {
	revoked map[string]time.Time
}

func (m *memoryRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *memoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := m.revoked[tokenID]
	return ok, nil
}

func TestLogout(t *testing.T) {
	revoker := &memoryRevoker{revoked: map[string]time.Time{}}
	uc := NewLogoutUseCase(revoker, 7*24*time.Hour, biztime.NewFixedClock(t0), logger.NewNopLogger())

	exp := t0.Add(time.Hour)
	require.NoError(t, uc.Execute(context.Background(), LogoutCommand{UserSID: "usr_1", TokenID: "jti", FamilyID: "fam", ExpiresAt: exp}))
	assert.Equal(t, exp, revoker.revoked["jti"])
	assert.Equal(t, t0.Add(7*24*time.Hour), revoker.revoked["fam"])

	require.NoError(t, uc.Execute(context.Background(), LogoutCommand{UserSID: "usr_1"}))
	assert.Len(t, revoker.revoked, 2)
}

func TestRefreshToken_Rotates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerUser(t, "a@x.com")
	res, err := f.login.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "pw1234"})
	require.NoError(t, err)

	revoker := &memoryRevoker{revoked: map[string]time.Time{}}
	uc := NewRefreshTokenUseCase(f.users, f.jwt, revoker, logger.NewNopLogger())

	pair, err := uc.Execute(ctx, res.RefreshToken)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, res.RefreshToken)
	assert.True(t, errors.IsAuthError(err))

	_, err = uc.Execute(ctx, pair.RefreshToken)
	assert.NoError(t, err)
}

func TestLogout_EndsRefresh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerUser(t, "a@x.com")
	res, err := f.login.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "pw1234"})
	require.NoError(t, err)

	access, err := f.jwt.VerifyAccess(res.AccessToken)
	require.NoError(t, err)

	revoker := &memoryRevoker{revoked: map[string]time.Time{}}
	logout := NewLogoutUseCase(revoker, f.jwt.RefreshLifetime(), f.clock, logger.NewNopLogger())
	require.NoError(t, logout.Execute(ctx, LogoutCommand{
		UserSID:   u.SID(),
		TokenID:   access.ID,
		FamilyID:  access.FamilyID,
		ExpiresAt: access.ExpiresAt.Time,
	}))

	refresh := NewRefreshTokenUseCase(f.users, f.jwt, revoker, logger.NewNopLogger())
	_, err = refresh.Execute(ctx, res.RefreshToken)
	assert.True(t, errors.IsAuthError(err))

	// a fresh login starts a new family
	again, err := f.login.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "pw1234"})
	require.NoError(t, err)
	_, err = refresh.Execute(ctx, again.RefreshToken)
	assert.NoError(t, err)
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerUser(t, "a@x.com")
	other := f.registerUser(t, "b@x.com")
	uc := NewGetProfileUseCase(f.users, logger.NewNopLogger())

	got, err := uc.Execute(ctx, GetProfileQuery{UserSID: u.SID()})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email().String())

	got, err = uc.Execute(ctx, GetProfileQuery{UserSID: u.SID(), RequestedSID: u.SID()})
	require.NoError(t, err)
	assert.Equal(t, u.SID(), got.SID())

	_, err = uc.Execute(ctx, GetProfileQuery{UserSID: u.SID(), RequestedSID: other.SID()})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(ctx, GetProfileQuery{UserSID: "usr_missing"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerUser(t, "a@x.com")
	f.registerUser(t, "b@x.com")
	uc := NewUpdateProfileUseCase(f.users, markdown.NewService(), f.clock, logger.NewNopLogger())

	name := "<b>Ann</b> Lee"
	email := "ann@x.com"
	updated, err := uc.Execute(ctx, UpdateProfileCommand{UserSID: u.SID(), Name: &name, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", updated.Name().String())

	stored, err := f.users.GetBySID(ctx, u.SID())
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", stored.Email().String())
	assert.Equal(t, "Ann Lee", stored.Name().String())

	taken := "b@x.com"
	_, err = uc.Execute(ctx, UpdateProfileCommand{UserSID: u.SID(), Email: &taken})
	assert.True(t, errors.IsConflictError(err))

	invalid := "not-an-email"
	_, err = uc.Execute(ctx, UpdateProfileCommand{UserSID: u.SID(), Email: &invalid})
	assert.Equal(t, 400, errors.GetAppError(err).Code)

	// unchanged email is not a conflict with itself
	same := "ann@x.com"
	_, err = uc.Execute(ctx, UpdateProfileCommand{UserSID: u.SID(), Email: &same})
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.registerUser(t, "a@x.com")
	uc := NewChangePasswordUseCase(f.users, f.hasher, f.emails, f.clock, logger.NewNopLogger())

	err := uc.Execute(ctx, ChangePasswordCommand{UserSID: u.SID(), OldPassword: "pw1234"})
	assert.Equal(t, 400, errors.GetAppError(err).Code)

	err = uc.Execute(ctx, ChangePasswordCommand{UserSID: u.SID(), OldPassword: "wrong", NewPassword: "new"})
	assert.Equal(t, 401, errors.GetAppError(err).Code)

	require.NoError(t, uc.Execute(ctx, ChangePasswordCommand{UserSID: u.SID(), OldPassword: "pw1234", NewPassword: "new"}))
	assert.Equal(t, []string{"a@x.com"}, f.emails.passwordChanged)

	_, err = f.login.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "pw1234"})
	assert.True(t, errors.IsAuthError(err))
	_, err = f.login.Execute(ctx, LoginCommand{Email: "a@x.com", Password: "new"})
	assert.NoError(t, err)
}
