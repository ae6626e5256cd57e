// Package services holds the client-side application state: paginated
// collections with optimistic updates, the chat session, and the auth flows.
// Each service wraps the API client and keeps the view state consistent
// across failures, so the CLI layer only renders.
package services

import (
	"context"
	"slices"

	"github.com/plateful/plateful/internal/models"
)

// PageFetcher loads one page of a collection from the backend.
type PageFetcher[T any] func(ctx context.Context, page, pageSize int) (models.Page[T], error)

// ItemDeleter removes one item by id on the backend.
type ItemDeleter func(ctx context.Context, id int64) error

// ListController keeps the state of one paginated collection: the current
// page of items, the authoritative total, and the 1-based page number.
//
// Delete is optimistic: the item disappears and the total drops before the
// request is sent, and both are restored if it fails. After a confirmed
// delete the controller steps back a page when the current one fell off the
// end, then refetches.
type ListController[T any] struct {
	fetch    PageFetcher[T]
	del      ItemDeleter
	idOf     func(T) int64
	pageSize int

	items []T
	total int
	page  int
}

// NewListController builds a controller over fetch/del. idOf extracts the
// backend id of an item; pageSize must be positive.
func NewListController[T any](fetch PageFetcher[T], del ItemDeleter, idOf func(T) int64, pageSize int) *ListController[T] {
	return &ListController[T]{
		fetch:    fetch,
		del:      del,
		idOf:     idOf,
		pageSize: pageSize,
		items:    []T{},
		page:     1,
	}
}

// Items returns the currently loaded page. The slice is owned by the
// controller; callers must not mutate it.
func (l *ListController[T]) Items() []T { return l.items }

// Total returns the collection size reported by the backend, adjusted by
// pending optimistic deletes.
func (l *ListController[T]) Total() int { return l.total }

// Page returns the current 1-based page number.
func (l *ListController[T]) Page() int { return l.page }

// TotalPages is at least 1 even for an empty collection, matching how the
// page indicator is rendered.
func (l *ListController[T]) TotalPages() int {
	pages := (l.total + l.pageSize - 1) / l.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Load fetches the current page from the backend.
func (l *ListController[T]) Load(ctx context.Context) error {
	page, err := l.fetch(ctx, l.page, l.pageSize)
	if err != nil {
		return err
	}
	l.items = page.Items
	if l.items == nil {
		l.items = []T{}
	}
	l.total = page.Total
	return nil
}

// SetPage clamps p into the valid range and loads it.
func (l *ListController[T]) SetPage(ctx context.Context, p int) error {
	if p < 1 {
		p = 1
	}
	if max := l.TotalPages(); p > max {
		p = max
	}
	l.page = p
	return l.Load(ctx)
}

// Next loads the next page; past the last page it reloads the current one.
func (l *ListController[T]) Next(ctx context.Context) error {
	return l.SetPage(ctx, l.page+1)
}

// Prev loads the previous page; on the first page it reloads it.
func (l *ListController[T]) Prev(ctx context.Context) error {
	return l.SetPage(ctx, l.page-1)
}

// Delete removes the item with the given id. An id not on the current page
// is a no-op. The removal is applied locally first and rolled back when the
// backend rejects it; the total never drops below zero.
func (l *ListController[T]) Delete(ctx context.Context, id int64) error {
	idx := -1
	for i, item := range l.items {
		if l.idOf(item) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	prevItems := slices.Clone(l.items)
	prevTotal := l.total

	l.items = append(l.items[:idx:idx], l.items[idx+1:]...)
	if l.total > 0 {
		l.total--
	}

	if err := l.del(ctx, id); err != nil {
		l.items = prevItems
		l.total = prevTotal
		return err
	}

	if l.page > l.TotalPages() {
		l.page = l.TotalPages()
	}
	return l.Load(ctx)
}
