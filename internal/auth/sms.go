package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Sender delivers an OTP to a mobile number.
type Sender interface {
	SendOTP(ctx context.Context, mobile, otp string) error
}

// Fast2SMSClient sends OTPs through the Fast2SMS bulkV2 OTP route.
type Fast2SMSClient struct {
	httpClient *resty.Client
}

// NewFast2SMSClient builds the client; the API key goes in the
// authorization header on every request.
func NewFast2SMSClient(apiKey string) *Fast2SMSClient {
	client := resty.New().
		SetBaseURL("https://www.fast2sms.com").
		SetHeader("authorization", apiKey).
		SetTimeout(15 * time.Second)
	return &Fast2SMSClient{httpClient: client}
}

// fast2smsResponse mirrors the gateway's JSON reply.
type fast2smsResponse struct {
	Return  bool   `json:"return"`
	Message any    `json:"message"`
	Request string `json:"request_id"`
}

func (c *Fast2SMSClient) SendOTP(ctx context.Context, mobile, otp string) error {
	result := new(fast2smsResponse)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"route":            "otp",
			"variables_values": otp,
			"numbers":          mobile,
			"sender_id":        "FSTSMS",
		}).
		SetResult(result).
		Post("/dev/bulkV2")
	if err != nil {
		return fmt.Errorf("fast2sms: send otp: %w", err)
	}
	if resp.StatusCode() != http.StatusOK || !result.Return {
		log.Warn().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("fast2sms: gateway rejected OTP send")
		return fmt.Errorf("fast2sms: gateway returned status %d", resp.StatusCode())
	}
	return nil
}

// NoopSender is used in test mode: the fixed code is known, nothing is sent.
type NoopSender struct{}

func (NoopSender) SendOTP(ctx context.Context, mobile, otp string) error {
	log.Info().Str("mobile", mobile).Msg("test mode: OTP delivery skipped")
	return nil
}
