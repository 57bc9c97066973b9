package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-quest-client/models"
)

// mapResponse turns a resty response into the common envelope. Transport
// errors become ErrNetwork, non-2xx statuses and success=false become
// *RejectedError, undecodable bodies become ErrMalformedResponse.
func mapResponse(resp *resty.Response, err error) (models.Envelope, error) {
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	var env models.Envelope
	decodeErr := json.Unmarshal(resp.Body(), &env)

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		msg := strings.TrimSpace(env.Message)
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return models.Envelope{}, &RejectedError{Status: resp.StatusCode(), Message: msg}
	}

	if decodeErr != nil {
		return models.Envelope{}, malformed("decode envelope: %v", decodeErr)
	}
	if !env.Success {
		return models.Envelope{}, &RejectedError{Status: resp.StatusCode(), Message: env.Message}
	}

	return env, nil
}

func hasData(env models.Envelope) bool {
	raw := strings.TrimSpace(string(env.Data))
	return raw != "" && raw != "null"
}

// decodeData reads the whole data object as T.
func decodeData[T any](env models.Envelope) (T, error) {
	var v T
	if !hasData(env) {
		return v, malformed("missing data")
	}
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return v, malformed("decode data: %v", err)
	}
	return v, nil
}

// decodeNested reads data.<field> as a single object.
func decodeNested[T any](env models.Envelope, field string) (T, error) {
	var zero T
	if !hasData(env) {
		return zero, malformed("missing data")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(env.Data, &fields); err != nil {
		return zero, malformed("decode data: %v", err)
	}

	raw, ok := fields[field]
	if !ok || strings.TrimSpace(string(raw)) == "null" {
		return zero, malformed("missing data.%s", field)
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, malformed("decode data.%s: %v", field, err)
	}
	return v, nil
}

// decodePage reads data.<itemsField> plus the pagination fields. Absent page
// defaults to requested, absent total to 0, absent has_more to false.
func decodePage[T any](env models.Envelope, itemsField string, requested, limit int) (models.Page[T], error) {
	items, err := decodeNested[[]T](env, itemsField)
	if err != nil {
		return models.Page[T]{}, err
	}

	var meta models.PageMeta
	if err := json.Unmarshal(env.Data, &meta); err != nil {
		return models.Page[T]{}, malformed("decode page meta: %v", err)
	}

	if items == nil {
		items = []T{}
	}
	page := models.Page[T]{
		Items:           items,
		Page:            requested,
		Limit:           limit,
		CurrentUserRank: meta.CurrentUserRank,
	}
	if meta.Page != nil {
		page.Page = *meta.Page
	}
	if meta.Limit != nil {
		page.Limit = *meta.Limit
	}
	if meta.Total != nil {
		page.Total = *meta.Total
	}
	if meta.HasMore != nil {
		page.HasMore = *meta.HasMore
	}

	return page, nil
}
