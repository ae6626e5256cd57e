package api

import (
	"context"
	"net/http"
	"net/url"
)

// ImageParams are the generation knobs for a food image. Empty fields are
// omitted from the query.
type ImageParams struct {
	Name        string
	Style       string
	Size        string
	Course      string
	Ingredients string
	DishType    string
}

func (p ImageParams) values() url.Values {
	q := url.Values{}
	setNonEmpty(q, "name", p.Name)
	setNonEmpty(q, "style", p.Style)
	setNonEmpty(q, "size", p.Size)
	setNonEmpty(q, "course", p.Course)
	setNonEmpty(q, "ingredients", p.Ingredients)
	setNonEmpty(q, "dishType", p.DishType)
	return q
}

// RecipeParams are the generation knobs for a recipe.
type RecipeParams struct {
	Ingredients         string
	Cuisine             string
	DietaryRestrictions string
}

func (p RecipeParams) values() url.Values {
	q := url.Values{}
	setNonEmpty(q, "ingredients", p.Ingredients)
	setNonEmpty(q, "cuisine", p.Cuisine)
	setNonEmpty(q, "dietaryRestrictions", p.DietaryRestrictions)
	return q
}

func setNonEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// GenerateImage asks the backend to generate a food image and returns the
// image URL as plain text.
func (c *Client) GenerateImage(ctx context.Context, p ImageParams) (string, error) {
	return c.doText(ctx, http.MethodPost, "/food-images", p.values(), "Failed to generate image")
}

// GenerateRecipe asks the backend to generate a recipe and returns its text.
func (c *Client) GenerateRecipe(ctx context.Context, p RecipeParams) (string, error) {
	return c.doText(ctx, http.MethodPost, "/recipes", p.values(), "Failed to generate recipe")
}
