package auth

import (
	"context"
	"testing"

	"godown-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// captureSender records the delivered OTP instead of calling a gateway.
type captureSender struct {
	mobile string
	otp    string
}

func (s *captureSender) SendOTP(ctx context.Context, mobile, otp string) error {
	s.mobile, s.otp = mobile, otp
	return nil
}

func setupService(t *testing.T) (*Service, *captureSender) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Seller{}, &models.Stockist{}, &models.User{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})

	sender := &captureSender{}
	return &Service{DB: db, Rdb: rdb, Sender: sender}, sender
}

func TestRequestOTP_InvalidMobile(t *testing.T) {
	svc, _ := setupService(t)
	for _, mobile := range []string{"", "12345", "98765432101", "98765abcde"} {
		assert.Equal(t, ErrInvalidMobile, svc.RequestOTP(context.Background(), mobile), mobile)
	}
}

func TestRequestOTP_DeliversStoredCode(t *testing.T) {
	svc, sender := setupService(t)
	require.NoError(t, svc.RequestOTP(context.Background(), "9876543210"))

	assert.Equal(t, "9876543210", sender.mobile)
	assert.Len(t, sender.otp, 6)

	stored, err := svc.Rdb.Get(context.Background(), "otp:9876543210").Result()
	require.NoError(t, err)
	assert.Equal(t, sender.otp, stored)
}

func TestRequestOTP_TestModeSkipsDelivery(t *testing.T) {
	svc, sender := setupService(t)
	svc.TestCode = "123456"
	require.NoError(t, svc.RequestOTP(context.Background(), "9876543210"))

	assert.Empty(t, sender.otp)
	stored, err := svc.Rdb.Get(context.Background(), "otp:9876543210").Result()
	require.NoError(t, err)
	assert.Equal(t, "123456", stored)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	svc, sender := setupService(t)
	require.NoError(t, svc.RequestOTP(context.Background(), "9876543210"))

	user, err := svc.VerifyOTP(context.Background(), "9876543210", "000000")
	if sender.otp == "000000" {
		t.Skip("generated code collided with the wrong-code fixture")
	}
	assert.Nil(t, user)
	assert.Equal(t, ErrInvalidOTP, err)
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.VerifyOTP(context.Background(), "", "123456")
	assert.Equal(t, ErrMissingMobileOrOTP, err)
	_, err = svc.VerifyOTP(context.Background(), "9876543210", "")
	assert.Equal(t, ErrMissingMobileOrOTP, err)
}

func TestVerifyOTP_RoundTripConsumesCode(t *testing.T) {
	svc, sender := setupService(t)
	require.NoError(t, svc.DB.Create(&models.Stockist{Name: "Bimal", Mobile: "9876543210"}).Error)

	require.NoError(t, svc.RequestOTP(context.Background(), "9876543210"))
	user, err := svc.VerifyOTP(context.Background(), "9876543210", sender.otp)
	require.NoError(t, err)
	assert.Equal(t, "Bimal", user.Name)
	assert.True(t, user.IsStockist)
	assert.False(t, user.IsSeller)
	assert.Equal(t, "user", user.Role)

	// The code is single-use.
	_, err = svc.VerifyOTP(context.Background(), "9876543210", sender.otp)
	assert.Equal(t, ErrInvalidOTP, err)
}

func TestVerifyOTP_SellerNamePreferred(t *testing.T) {
	svc, _ := setupService(t)
	svc.TestCode = "123456"
	require.NoError(t, svc.DB.Create(&models.Seller{Name: "Kumari", Mobile: "9000000001"}).Error)
	require.NoError(t, svc.DB.Create(&models.Stockist{Name: "Bimal", Mobile: "9000000001"}).Error)

	user, err := svc.VerifyOTP(context.Background(), "9000000001", "123456")
	require.NoError(t, err)
	assert.Equal(t, "Kumari", user.Name)
	assert.True(t, user.IsSeller)
	assert.True(t, user.IsStockist)
}

func TestVerifyOTP_UnknownMobileStillLogsIn(t *testing.T) {
	svc, _ := setupService(t)
	svc.TestCode = "123456"

	user, err := svc.VerifyOTP(context.Background(), "9111111111", "123456")
	require.NoError(t, err)
	assert.Equal(t, "User", user.Name)
	assert.False(t, user.IsSeller)
	assert.False(t, user.IsStockist)
}

func TestAdminLogin(t *testing.T) {
	svc, _ := setupService(t)
	admin := &models.User{Name: "Admin", Email: "admin@example.com"}
	require.NoError(t, admin.SetPassword("s3cret!pass"))
	require.NoError(t, svc.DB.Create(admin).Error)

	u, err := svc.AdminLogin(context.Background(), "admin@example.com", "s3cret!pass")
	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Name)

	_, err = svc.AdminLogin(context.Background(), "admin@example.com", "wrong")
	assert.Equal(t, ErrIncorrectPassword, err)
	_, err = svc.AdminLogin(context.Background(), "nobody@example.com", "s3cret!pass")
	assert.Equal(t, ErrInvalidEmail, err)
	_, err = svc.AdminLogin(context.Background(), "", "")
	assert.Equal(t, ErrEmailPasswordRequired, err)
}
