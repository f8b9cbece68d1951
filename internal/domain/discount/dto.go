package discount

type OfferInput struct {
	ProductServiceName string  `json:"productServiceName" binding:"required"`
	ProviderName       string  `json:"providerName"`
	Description        string  `json:"description" binding:"required"`
	DiscountDetails    string  `json:"discountDetails" binding:"required"`
	RedemptionInfo     string  `json:"redemptionInfo" binding:"required"`
	Category           string  `json:"category"`
	ExpiryDate         *string `json:"expiryDate"`
}

type ListQuery struct {
	Page     int    `form:"page"`
	Size     int    `form:"size"`
	Q        string `form:"q"`
	Category string `form:"category"`
}
