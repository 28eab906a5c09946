package handler

import "gorm.io/gorm"

// Page bundles one page of results with its pagination metadata.
type Page[T any] struct {
	Items       []T
	TotalItems  int64
	TotalPages  int
	CurrentPage int
	PageSize    int
}

// HasNext reports whether a later page exists.
func (p *Page[T]) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p *Page[T]) HasPrev() bool {
	return p.CurrentPage > 1
}

// paginate executes a paginated query and returns the results.
func paginate[T any](db *gorm.DB, page, limit int) (*Page[T], error) {
	if limit <= 0 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}

	var totalItems int64
	if err := db.Model(new(T)).Count(&totalItems).Error; err != nil {
		return nil, err
	}

	var items []T
	offset := (page - 1) * limit
	if err := db.Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}

	return &Page[T]{
		Items:       items,
		TotalItems:  totalItems,
		TotalPages:  (int(totalItems) + limit - 1) / limit,
		CurrentPage: page,
		PageSize:    limit,
	}, nil
}
