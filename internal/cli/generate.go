package cli

import (
	"context"
	"fmt"

	"github.com/plateful/plateful/internal/api"
)

// Recipe asks for generation parameters and renders the generated recipe.
// The result also lands in the server-side history, so it can be saved later
// from the history browser.
func (a *App) Recipe(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	ingredients, err := a.input.Prompt("Ingredients (comma separated): ")
	if err != nil {
		return err
	}
	cuisine, err := a.input.Prompt("Cuisine (optional): ")
	if err != nil {
		return err
	}
	diet, err := a.input.Prompt("Dietary restrictions (optional): ")
	if err != nil {
		return err
	}

	printlnFn("Generating...")
	octx, cancel := a.opCtx(ctx)
	defer cancel()
	text, err := a.client.GenerateRecipe(octx, api.RecipeParams{
		Ingredients:         ingredients,
		Cuisine:             cuisine,
		DietaryRestrictions: diet,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, a.render(text))
	return nil
}

// Image asks for generation parameters and prints the resulting image URL.
// The image also lands in the gallery, from where it can be downloaded.
func (a *App) Image(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	name, err := a.input.Prompt("Dish name: ")
	if err != nil {
		return err
	}
	ingredients, err := a.input.Prompt("Ingredients (optional): ")
	if err != nil {
		return err
	}
	style, err := a.input.Prompt("Style (optional): ")
	if err != nil {
		return err
	}
	course, err := a.input.Prompt("Course (optional): ")
	if err != nil {
		return err
	}

	printlnFn("Generating...")
	octx, cancel := a.opCtx(ctx)
	defer cancel()
	url, err := a.client.GenerateImage(octx, api.ImageParams{
		Name:        name,
		Ingredients: ingredients,
		Style:       style,
		Course:      course,
	})
	if err != nil {
		return err
	}

	printlnFn("Image ready:", url)
	return nil
}
