package service

import (
	"context"
	"testing"
	"time"

	"go-delivery-api/internal/model"
	"go-delivery-api/internal/repository"
	"go-delivery-api/internal/testutil"
	"go-delivery-api/pkg/jwt"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterHashesPassword(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(repository.NewUserRepo(db))
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, &RegisterUserRequest{Name: "Ana", Email: " Ana@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, user.HasHashedPassword())
	assert.True(t, user.CheckPassword("secret1"))

	_, err = svc.RegisterUser(ctx, &RegisterUserRequest{Name: "Ana 2", Email: "ana@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.RegisterUser(ctx, &RegisterUserRequest{Name: "Bob", Email: "not-an-email", Password: "secret3"})
	assert.ErrorIs(t, err, ErrBadRequest)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuthService_LoginAndMe(t *testing.T) {
	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepo(db)
	signer := jwt.NewSigner("test-secret", time.Hour)
	users := NewUserService(userRepo)
	auth := NewAuthService(userRepo, signer)
	ctx := context.Background()

	registered, err := users.RegisterUser(ctx, &RegisterUserRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	resp, err := auth.Login(ctx, "ANA@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.ID, resp.User.ID)

	claims, err := signer.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)

	_, err = auth.Login(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	me, err := auth.Me(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", me.Name)

	_, err = auth.Me(ctx, registered.ID+100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_PlaintextRowsCannotLogin(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&model.User{Name: "Legacy", Email: "legacy@example.com", Password: "plain"}).Error)

	auth := NewAuthService(repository.NewUserRepo(db), jwt.NewSigner("", 0))
	_, err := auth.Login(context.Background(), "legacy@example.com", "plain")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDashboardService_Stats(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&[]model.Product{
		{Name: "A", Price: decimal.NewFromInt(10), Stock: 2, Active: true, StoreID: uintPtr(1)},
		{Name: "B", Price: decimal.NewFromInt(5), Stock: 20, Active: false, StoreID: uintPtr(2)},
	}).Error)
	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&model.Route{Name: "R", ScheduledDate: today.Add(9 * time.Hour), StoreID: uintPtr(1)}).Error)

	svc := &dashboardService{
		dashboardRepo: repository.NewDashboardRepo(db),
		now:           func() time.Time { return today.Add(15 * time.Hour) },
	}

	stats, err := svc.GetDashboardStats(context.Background(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.ActiveProducts)
	assert.EqualValues(t, 1, stats.LowStockCount)
	assert.True(t, decimal.NewFromInt(120).Equal(stats.TotalValuation))
	assert.EqualValues(t, 1, stats.RoutesToday)

	stats, err = svc.GetDashboardStats(context.Background(), uintPtr(2))
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalProducts)
	assert.EqualValues(t, 0, stats.RoutesToday)
}
