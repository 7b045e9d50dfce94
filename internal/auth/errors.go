package auth

import "errors"

var (
	ErrInvalidMobile         = errors.New("Please enter a valid 10-digit mobile number")
	ErrMissingMobileOrOTP    = errors.New("Missing mobile number or OTP")
	ErrInvalidOTP            = errors.New("Invalid OTP. Please try again")
	ErrEmailPasswordRequired = errors.New("Email and password are required")
	ErrInvalidEmail          = errors.New("Invalid Email")
	ErrIncorrectPassword     = errors.New("Incorrect Password")
	ErrNotAuthenticated      = errors.New("Not authenticated")
)
