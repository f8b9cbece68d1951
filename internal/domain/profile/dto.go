package profile

type NgoProfileInput struct {
	NgoName             string `json:"ngoName" binding:"required"`
	Location            string `json:"location"`
	ContactEmail        string `json:"contactEmail" binding:"omitempty,email"`
	Website             string `json:"website"`
	Mission             string `json:"mission"`
	Vision              string `json:"vision"`
	ImpactAreas         string `json:"impactAreas"`
	RegistrationDetails string `json:"registrationDetails"`
	TeamSize            string `json:"teamSize"`
	BudgetRange         string `json:"budgetRange"`
}

type FunderProfileInput struct {
	OrganizationName      string `json:"organizationName" binding:"required"`
	FunderType            string `json:"funderType"`
	Website               string `json:"website"`
	ContactEmail          string `json:"contactEmail" binding:"omitempty,email"`
	FundingAreas          string `json:"fundingAreas"`
	GrantSizeRange        string `json:"grantSizeRange"`
	EligibilitySummary    string `json:"eligibilitySummary"`
	ApplicationPortalLink string `json:"applicationPortalLink"`
}

type ProviderProfileInput struct {
	CompanyName  string `json:"companyName" binding:"required"`
	ServiceType  string `json:"serviceType"`
	Website      string `json:"website"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	Description  string `json:"description"`
}
