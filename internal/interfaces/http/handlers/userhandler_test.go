package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpndash/vpndash/internal/application/user/usecases"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/interfaces/http/handlers/testutil"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type mockGetProfileUC struct {
	result *user.User
	err    error
	query  usecases.GetProfileQuery
}

func (m *mockGetProfileUC) Execute(ctx context.Context, query usecases.GetProfileQuery) (*user.User, error) {
	m.query = query
	return m.result, m.err
}

type mockUpdateProfileUC struct {
	result *user.User
	err    error
	cmd    usecases.UpdateProfileCommand
}

func (m *mockUpdateProfileUC) Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*user.User, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockChangePasswordUC struct {
	err error
	cmd usecases.ChangePasswordCommand
}

func (m *mockChangePasswordUC) Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error {
	m.cmd = cmd
	return m.err
}

func newTestUserHandler(get getProfileUseCase, update updateProfileUseCase, change changePasswordUseCase) *UserHandler {
	return NewUserHandler(get, update, change, logger.NewNopLogger())
}

func TestUserHandler_GetProfile(t *testing.T) {
	t.Run("own profile", func(t *testing.T) {
		mockUC := &mockGetProfileUC{result: createTestUser(t)}
		handler := newTestUserHandler(mockUC, nil, nil)
		c, w := testutil.NewTestContext(http.MethodGet, "/api/user/profile", nil)
		testutil.SetAuthContext(c, "usr_test123")

		handler.GetProfile(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "usr_test123", mockUC.query.UserSID)
		assert.Empty(t, mockUC.query.RequestedSID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, string(resp.Data), `"totalDataUsed":12.5`)
		assert.NotContains(t, string(resp.Data), "hash")
	})

	t.Run("query names another user", func(t *testing.T) {
		mockUC := &mockGetProfileUC{err: errors.NewNotFoundError("User not found")}
		handler := newTestUserHandler(mockUC, nil, nil)
		c, w := testutil.NewTestContext(http.MethodGet, "/api/user/profile", nil)
		testutil.SetQueryParams(c, map[string]string{"userId": "usr_other"})
		testutil.SetAuthContext(c, "usr_test123")

		handler.GetProfile(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "usr_other", mockUC.query.RequestedSID)
	})

	t.Run("not authenticated", func(t *testing.T) {
		handler := newTestUserHandler(&mockGetProfileUC{}, nil, nil)
		c, w := testutil.NewTestContext(http.MethodGet, "/api/user/profile", nil)

		handler.GetProfile(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		mockUC := &mockUpdateProfileUC{result: createTestUser(t)}
		handler := newTestUserHandler(nil, mockUC, nil)
		c, w := testutil.NewRawTestContext(http.MethodPut, "/api/user/profile", `{"name":"Bob"}`)
		testutil.SetAuthContext(c, "usr_test123")

		handler.UpdateProfile(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, mockUC.cmd.Name)
		assert.Equal(t, "Bob", *mockUC.cmd.Name)
		assert.Nil(t, mockUC.cmd.Email)
	})

	t.Run("email taken", func(t *testing.T) {
		mockUC := &mockUpdateProfileUC{err: errors.NewConflictError("Email already in use")}
		handler := newTestUserHandler(nil, mockUC, nil)
		c, w := testutil.NewRawTestContext(http.MethodPut, "/api/user/profile", `{"email":"b@x.com"}`)
		testutil.SetAuthContext(c, "usr_test123")

		handler.UpdateProfile(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := newTestUserHandler(nil, &mockUpdateProfileUC{}, nil)
		c, w := testutil.NewRawTestContext(http.MethodPut, "/api/user/profile", `{"name":`)
		testutil.SetAuthContext(c, "usr_test123")

		handler.UpdateProfile(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_ChangePassword(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"success", nil, http.StatusOK},
		{"missing field", errors.NewBadRequestError("Old and new password are required"), http.StatusBadRequest},
		{"mismatch", errors.NewUnauthorizedError("Current password is incorrect"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockChangePasswordUC{err: tt.err}
			handler := newTestUserHandler(nil, nil, mockUC)
			c, w := testutil.NewTestContext(http.MethodPost, "/api/user/change-password", ChangePasswordRequest{
				OldPassword: "old",
				NewPassword: "new",
			})
			testutil.SetAuthContext(c, "usr_test123")

			handler.ChangePassword(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "old", mockUC.cmd.OldPassword)
			assert.Equal(t, "new", mockUC.cmd.NewPassword)
		})
	}
}
