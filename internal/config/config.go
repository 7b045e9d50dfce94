package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env               string
	Port              string
	SessionSecret     string
	DatabaseURL       string
	RedisURL          string
	AllowCrossSiteDev bool
	FrontendURLSuffix string

	// OTP delivery
	Fast2SMSAPIKey string // Fast2SMS bulkV2 authorization key
	OTPTestCode    string // fixed OTP accepted in test mode; empty disables

	// Accrual tariff — changeable without a redeploy
	RentRatePerMTDay  float64 // rupees per metric ton per day of storage
	AnnualInterestPct float64 // percent per year on outstanding principal
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("RENT_RATE_PER_MT_PER_DAY", 3.334)
	viper.SetDefault("ANNUAL_INTEREST_RATE_PERCENT", 13.75)

	env := viper.GetString("APP_ENV")

	dbURL := viper.GetString("DATABASE_URL")
	if env == "production" && viper.GetString("DATABASE_URL_PROD") != "" {
		dbURL = viper.GetString("DATABASE_URL_PROD")
	}

	return &Config{
		Env:               env,
		Port:              viper.GetString("PORT"),
		SessionSecret:     viper.GetString("SESSION_SECRET"),
		DatabaseURL:       dbURL,
		RedisURL:          viper.GetString("REDIS_URL"),
		AllowCrossSiteDev: strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
		FrontendURLSuffix: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		Fast2SMSAPIKey:    viper.GetString("FAST2SMS_API_KEY"),
		OTPTestCode:       viper.GetString("OTP_TEST_CODE"),
		RentRatePerMTDay:  viper.GetFloat64("RENT_RATE_PER_MT_PER_DAY"),
		AnnualInterestPct: viper.GetFloat64("ANNUAL_INTEREST_RATE_PERCENT"),
	}, nil
}
