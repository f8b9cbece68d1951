package search

import (
	"time"

	"gorm.io/datatypes"
)

type SearchType string

const (
	SearchTypeFunding   SearchType = "funding"
	SearchTypeDiscounts SearchType = "discounts"
)

type SavedSearch struct {
	ID         uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     uint              `json:"user_id" gorm:"index;not null"`
	SearchType SearchType        `json:"searchType" gorm:"size:32;not null"`
	Keywords   string            `json:"keywords" gorm:"size:255"`
	SearchName string            `json:"searchName" gorm:"size:255"`
	Filters    datatypes.JSONMap `json:"filters"`
	CreatedAt  time.Time         `json:"created_at"`
}

func (SavedSearch) TableName() string {
	return "saved_searches"
}

func ValidSearchType(s string) bool {
	return s == string(SearchTypeFunding) || s == string(SearchTypeDiscounts)
}
