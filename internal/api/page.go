package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/plateful/plateful/internal/models"
)

// decodePage normalizes the two accepted list shapes — a bare JSON array or
// an {items,total} envelope — into the canonical Page.
//
// For a bare array the total is derived from its length. An envelope with a
// missing or non-positive total also falls back to the item count. A body
// that is neither shape degrades to an empty page rather than an error; the
// response was a 2xx, so the caller treats it as "nothing there".
func decodePage[T any](data []byte) (models.Page[T], error) {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return models.Page[T]{Items: []T{}}, fmt.Errorf("decode list: %w", err)
		}
		return models.Page[T]{Items: items, Total: len(items)}, nil
	}

	var envelope struct {
		Items []T             `json:"items"`
		Total json.RawMessage `json:"total"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil || envelope.Items == nil {
		return models.Page[T]{Items: []T{}}, nil
	}

	total := len(envelope.Items)
	if len(envelope.Total) > 0 {
		var n int64
		if err := json.Unmarshal(envelope.Total, &n); err == nil && n > 0 {
			total = int(n)
		}
	}
	return models.Page[T]{Items: envelope.Items, Total: total}, nil
}

// fetchPage performs a GET returning a paginated collection in either shape.
// It is a function rather than a method because methods cannot carry type
// parameters.
func fetchPage[T any](ctx context.Context, c *Client, path string, q url.Values, fallback string) (models.Page[T], error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, path, q, nil, fallback, &raw); err != nil {
		return models.Page[T]{Items: []T{}}, err
	}
	return decodePage[T](raw)
}
