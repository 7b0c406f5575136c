package domain

import "time"

// Category is a catalog grouping. Categories are never hard-deleted; delete
// flips the soft-delete flag and stamps DeletedAt.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Deleted     bool       `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// NewCategory builds a category ready for persistence, stamping both timestamps.
func NewCategory(name, description string) *Category {
	now := time.Now().UTC()
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Touch refreshes the update timestamp.
func (c *Category) Touch() {
	c.UpdatedAt = time.Now().UTC()
}

// SoftDelete marks the category deleted and stamps the deletion time.
func (c *Category) SoftDelete() {
	now := time.Now().UTC()
	c.Deleted = true
	c.DeletedAt = &now
	c.UpdatedAt = now
}
