package validation

import "regexp"

// Mobile numbers are plain 10-digit Indian numbers, no country code.
var mobileRe = regexp.MustCompile(`^[0-9]{10}$`)

// OTPs are 6 digits.
var otpRe = regexp.MustCompile(`^[0-9]{6}$`)

func IsValidMobile(mobile string) bool {
	return mobileRe.MatchString(mobile)
}

func IsValidOTP(otp string) bool {
	return otpRe.MatchString(otp)
}
