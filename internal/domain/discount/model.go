package discount

import "time"

type DiscountOffer struct {
	ID                 uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductServiceName string     `json:"productServiceName" gorm:"size:255;not null"`
	ProviderName       string     `json:"providerName" gorm:"size:255"`
	Description        string     `json:"description" gorm:"type:text;not null"`
	DiscountDetails    string     `json:"discountDetails" gorm:"size:512;not null"`
	RedemptionInfo     string     `json:"redemptionInfo" gorm:"type:text;not null"`
	Category           string     `json:"category" gorm:"size:128"`
	ExpiryDate         *time.Time `json:"expiryDate"`
	PostedByAdminID    *uint      `json:"postedByAdminId"`
	ProviderUserID     *uint      `json:"providerUserId" gorm:"index"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (DiscountOffer) TableName() string {
	return "discount_offers"
}

func (d *DiscountOffer) OwnedBy(providerUserID uint) bool {
	return d.ProviderUserID != nil && *d.ProviderUserID == providerUserID
}
