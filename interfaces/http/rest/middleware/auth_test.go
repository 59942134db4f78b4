package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	pkgerrors "storefront-backend/pkg/errors"
)

// stubUserRepo serves ByID from a fixed map; the aggregate queries are not
// used by the middleware.
type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) ByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	return user, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id string) error         { return nil }
func (s *stubUserRepo) All(ctx context.Context) ([]domain.User, error)      { return nil, nil }
func (s *stubUserRepo) Count(ctx context.Context) (int64, error)            { return 0, nil }
func (s *stubUserRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}
func (s *stubUserRepo) CountByGender(ctx context.Context, gender string) (int64, error) {
	return 0, nil
}
func (s *stubUserRepo) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	return 0, nil
}
func (s *stubUserRepo) BirthDates(ctx context.Context) ([]time.Time, error) { return nil, nil }
func (s *stubUserRepo) CreationTimes(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return nil, nil
}

var _ ports.UserRepository = (*stubUserRepo)(nil)

func adminOnlyHandler(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	repo := &stubUserRepo{users: map[string]*domain.User{
		"admin-1": {ID: "admin-1", Name: "Root", Role: domain.RoleAdmin},
		"user-1":  {ID: "user-1", Name: "Asha", Role: domain.RoleUser},
	}}
	errs := pkgerrors.NewErrorHandler(zap.NewNop(), false)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		assert.True(t, user.IsAdmin())
		w.WriteHeader(http.StatusOK)
	})

	return AdminOnly(repo, errs)(next), &reached
}

func TestAdminOnly_MissingID_Unauthorized(t *testing.T) {
	handler, reached := adminOnlyHandler(t)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard/stats", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestAdminOnly_UnknownID_Unauthorized(t *testing.T) {
	handler, reached := adminOnlyHandler(t)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard/stats?id=ghost", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestAdminOnly_NonAdmin_Forbidden(t *testing.T) {
	handler, reached := adminOnlyHandler(t)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard/stats?id=user-1", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *reached)
}

func TestAdminOnly_Admin_PassesThrough(t *testing.T) {
	handler, reached := adminOnlyHandler(t)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard/stats?id=admin-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}
