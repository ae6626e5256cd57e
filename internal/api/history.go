package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/plateful/plateful/internal/models"
)

func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	return q
}

// RecipeHistory fetches one page of the user's generated-recipe history.
func (c *Client) RecipeHistory(ctx context.Context, page, pageSize int) (models.Page[models.RecipeHistoryEntry], error) {
	return fetchPage[models.RecipeHistoryEntry](ctx, c, "/users/me/recipes/history",
		pageQuery(page, pageSize), "Failed to fetch recipe history for logged in user")
}

// DeleteRecipeHistoryEntry removes one entry from the history.
func (c *Client) DeleteRecipeHistoryEntry(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/me/recipes/history/%d", id), nil,
		nil, "Failed to delete recipe from history", nil)
}

// DownloadRecipe fetches a history entry as a file. fallbackName is used
// when the response carries no Content-Disposition filename; pass "" to get
// a generic recipe-<id>.txt.
func (c *Client) DownloadRecipe(ctx context.Context, id int64, fallbackName string) (models.Download, error) {
	if fallbackName == "" {
		fallbackName = fmt.Sprintf("recipe-%d.txt", id)
	}
	return c.doDownload(ctx, fmt.Sprintf("/users/me/recipes/history/%d/download", id),
		fallbackName, "Failed to download recipe from history")
}
