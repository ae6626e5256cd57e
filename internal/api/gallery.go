package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plateful/plateful/internal/models"
)

// UserImages fetches one page of the user's generated images.
func (c *Client) UserImages(ctx context.Context, page, pageSize int) (models.Page[models.Image], error) {
	return fetchPage[models.Image](ctx, c, "/users/me/images",
		pageQuery(page, pageSize), "Failed to retrieve user images")
}

// DownloadImage fetches an image file. The filename comes from the
// Content-Disposition header, else image-<id>.png.
func (c *Client) DownloadImage(ctx context.Context, id int64) (models.Download, error) {
	return c.doDownload(ctx, fmt.Sprintf("/users/me/images/%d/download", id),
		fmt.Sprintf("image-%d.png", id), "Failed to download image")
}

// DeleteImage removes a generated image.
func (c *Client) DeleteImage(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/me/images/%d", id), nil,
		nil, "Failed to delete image", nil)
}
