package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// RemoteProvider asks the auth provider's REST API who a token belongs to.
type RemoteProvider struct {
	client     *resty.Client
	serviceKey string
	anonKey    string
}

// RemoteOptions configures a RemoteProvider.
type RemoteOptions struct {
	BaseURL    string // provider root, e.g. https://xyz.supabase.co
	ServiceKey string // sent as apikey on user lookups
	AnonKey    string // sent as apikey on public endpoints (recover)
	Timeout    time.Duration
	RetryCount int
}

func NewRemoteProvider(opts RemoteOptions) *RemoteProvider {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetHeader("Accept", "application/json")

	anon := opts.AnonKey
	if anon == "" {
		anon = opts.ServiceKey
	}
	return &RemoteProvider{client: client, serviceKey: opts.ServiceKey, anonKey: anon}
}

type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GetUser maps any transport failure or non-2xx answer to ErrUnauthorized.
func (p *RemoteProvider) GetUser(ctx context.Context, token string) (*Caller, error) {
	var user remoteUser
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("apikey", p.serviceKey).
		SetAuthToken(token).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil || resp.IsError() || user.ID == "" {
		return nil, ErrUnauthorized
	}
	return &Caller{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// SendPasswordReset triggers the provider's recovery mail. redirectTo is
// where the link in the mail lands.
func (p *RemoteProvider) SendPasswordReset(ctx context.Context, email, redirectTo string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("apikey", p.anonKey).
		SetQueryParam("redirect_to", redirectTo).
		SetBody(map[string]string{"email": email}).
		Post("/auth/v1/recover")
	if err != nil {
		return fmt.Errorf("auth recover request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("auth recover: status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
