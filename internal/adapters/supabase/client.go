// Package supabase talks to the hosted auth provider's admin API and its
// object storage.
package supabase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/supabase-community/gotrue-go"
	storage_go "github.com/supabase-community/storage-go"

	profileports "github.com/philly/inkwell/internal/profiles/ports"
)

type Config struct {
	URL            string
	ServiceRoleKey string
	Bucket         string
}

// Client carries the service-role credentials shared by the admin and
// storage adapters.
type Client struct {
	baseURL string
	bucket  string
	auth    gotrue.Client
	storage *storage_go.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.URL, "/")
	return &Client{
		baseURL: baseURL,
		bucket:  cfg.Bucket,
		auth: gotrue.New("", cfg.ServiceRoleKey).
			WithCustomGoTrueURL(baseURL + "/auth/v1").
			WithToken(cfg.ServiceRoleKey),
		storage: storage_go.NewClient(baseURL+"/storage/v1", cfg.ServiceRoleKey, map[string]string{
			"apikey": cfg.ServiceRoleKey,
		}),
	}
}

// providerError turns the auth client's "response status code N: body"
// failures into a ProviderError. Transport errors pass through.
func providerError(err error) error {
	var status int
	text := err.Error()
	if _, scanErr := fmt.Sscanf(text, "response status code %d", &status); scanErr != nil {
		return err
	}
	body := ""
	if _, rest, ok := strings.Cut(text, ": "); ok {
		body = rest
	}
	return &profileports.ProviderError{Status: status, Message: errorMessage(status, body)}
}

// errorMessage digs the human-readable text out of a provider error body.
func errorMessage(status int, raw string) string {
	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal([]byte(raw), &body) == nil {
		for _, m := range []string{body.Msg, body.Message, body.ErrorDescription, body.Error} {
			if m != "" {
				return m
			}
		}
	}
	if text := strings.TrimSpace(raw); text != "" {
		return text
	}
	return http.StatusText(status)
}
