package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"godown-backend/internal/middleware"
	"godown-backend/internal/models"
	"godown-backend/internal/pkg/validation"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	otpPrefix = "otp:"
	otpTTL    = 5 * time.Minute
)

// Service implements mobile-number OTP login and admin password login.
// OTPs live in Redis under "otp:<mobile>" with a 5-minute TTL.
type Service struct {
	DB     *gorm.DB
	Rdb    *redis.Client
	Sender Sender

	// TestCode, when set, is accepted for any mobile and suppresses SMS
	// delivery. Used in development and staging.
	TestCode string
}

// RequestOTP validates the mobile number, stores a fresh OTP and hands it
// to the Sender. Delivery failure is logged but not fatal: the stored OTP
// stays valid so the user can retry.
func (s *Service) RequestOTP(ctx context.Context, mobile string) error {
	if !validation.IsValidMobile(mobile) {
		return ErrInvalidMobile
	}

	otp := s.TestCode
	if otp == "" {
		generated, err := generateOTP()
		if err != nil {
			return err
		}
		otp = generated
	}

	if err := s.Rdb.Set(ctx, otpPrefix+mobile, otp, otpTTL).Err(); err != nil {
		return err
	}

	if s.TestCode != "" {
		return nil
	}
	if err := s.Sender.SendOTP(ctx, mobile, otp); err != nil {
		log.Warn().Err(err).Str("mobile", mobile).Msg("OTP delivery failed; code remains valid for retry")
	}
	return nil
}

// VerifyOTP checks the submitted code and, on success, resolves the
// session user from the Seller/Stockist profiles matching the mobile.
// A mobile with no profile still gets a session (role flags both false);
// the home screen simply shows neither dashboard link.
func (s *Service) VerifyOTP(ctx context.Context, mobile, otp string) (*middleware.SessionUser, error) {
	if mobile == "" || otp == "" {
		return nil, ErrMissingMobileOrOTP
	}

	ok := s.TestCode != "" && otp == s.TestCode
	if !ok {
		stored, err := s.Rdb.Get(ctx, otpPrefix+mobile).Result()
		if err == redis.Nil || (err == nil && stored != otp) {
			return nil, ErrInvalidOTP
		}
		if err != nil && err != redis.Nil {
			return nil, err
		}
	}
	_ = s.Rdb.Del(ctx, otpPrefix+mobile).Err()

	return s.sessionUserForMobile(ctx, mobile)
}

func (s *Service) sessionUserForMobile(ctx context.Context, mobile string) (*middleware.SessionUser, error) {
	var seller models.Seller
	isSeller := true
	if err := s.DB.WithContext(ctx).Where("mobile = ?", mobile).First(&seller).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		isSeller = false
	}

	var stockist models.Stockist
	isStockist := true
	if err := s.DB.WithContext(ctx).Where("mobile = ?", mobile).First(&stockist).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		isStockist = false
	}

	// Prefer seller name, fall back to stockist, then a generic label.
	name := "User"
	if isSeller && seller.Name != "" {
		name = seller.Name
	} else if isStockist && stockist.Name != "" {
		name = stockist.Name
	}

	return &middleware.SessionUser{
		Mobile:     mobile,
		Name:       name,
		Role:       "user",
		IsSeller:   isSeller,
		IsStockist: isStockist,
	}, nil
}

// AdminLogin verifies an administrative account by email and password.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrEmailPasswordRequired
	}
	var u models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidEmail
		}
		return nil, err
	}
	if u.PasswordHash == "" || !u.CheckPassword(password) {
		return nil, ErrIncorrectPassword
	}
	return &u, nil
}

// generateOTP returns a 6-digit code from crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
