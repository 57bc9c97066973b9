package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a unique id per outbound request.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
// Every request leaves with a JSON Accept header and an X-Request-ID taken
// from the request context or freshly generated.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://quests.example.com/api", 10*time.Second)
//	resp, err := client.R().SetBody(req).Post("/quest_service.php")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client bound to baseURL.
// A zero timeout leaves resty's default (no timeout).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(RequestIDHeader) != "" {
				return nil
			}
			id, ok := GetRequestIDFromContext(r.Context())
			if !ok {
				id = ids.Generate()
			}
			r.SetHeader(RequestIDHeader, id)
			return nil
		})

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
