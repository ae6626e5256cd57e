package services

import (
	"context"

	"github.com/plateful/plateful/internal/models"
)

// Page sizes match what the views render per screen.
const (
	HistoryPageSize = 6
	GalleryPageSize = 18
)

// HistoryAPI is the slice of the API client the recipe history needs.
type HistoryAPI interface {
	RecipeHistory(ctx context.Context, page, pageSize int) (models.Page[models.RecipeHistoryEntry], error)
	DeleteRecipeHistoryEntry(ctx context.Context, id int64) error
}

// GalleryAPI is the slice of the API client the image gallery needs.
type GalleryAPI interface {
	UserImages(ctx context.Context, page, pageSize int) (models.Page[models.Image], error)
	DeleteImage(ctx context.Context, id int64) error
}

// NewRecipeHistory builds the paged controller over the user's recipe
// history.
func NewRecipeHistory(api HistoryAPI) *ListController[models.RecipeHistoryEntry] {
	return NewListController(
		api.RecipeHistory,
		api.DeleteRecipeHistoryEntry,
		func(e models.RecipeHistoryEntry) int64 { return e.ID },
		HistoryPageSize,
	)
}

// NewGallery builds the paged controller over the user's generated images.
func NewGallery(api GalleryAPI) *ListController[models.Image] {
	return NewListController(
		api.UserImages,
		api.DeleteImage,
		func(img models.Image) int64 { return img.ID },
		GalleryPageSize,
	)
}
