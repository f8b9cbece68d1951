package profile

import "time"

// NgoProfile is the applicant organization's profile. Submissions reference
// it by ID as the snapshot shown to reviewing funders.
type NgoProfile struct {
	ID                  uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID              uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	NgoName             string    `json:"ngoName" gorm:"size:255;not null"`
	Location            string    `json:"location" gorm:"size:255"`
	ContactEmail        string    `json:"contactEmail" gorm:"size:255"`
	Website             string    `json:"website" gorm:"size:255"`
	Mission             string    `json:"mission" gorm:"type:text"`
	Vision              string    `json:"vision" gorm:"type:text"`
	ImpactAreas         string    `json:"impactAreas" gorm:"size:512"`
	RegistrationDetails string    `json:"registrationDetails" gorm:"size:512"`
	TeamSize            string    `json:"teamSize" gorm:"size:64"`
	BudgetRange         string    `json:"budgetRange" gorm:"size:128"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (NgoProfile) TableName() string {
	return "ngo_profiles"
}

type FunderProfile struct {
	ID                    uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID                uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	OrganizationName      string    `json:"organizationName" gorm:"size:255;not null"`
	FunderType            string    `json:"funderType" gorm:"size:128"`
	Website               string    `json:"website" gorm:"size:255"`
	ContactEmail          string    `json:"contactEmail" gorm:"size:255"`
	FundingAreas          string    `json:"fundingAreas" gorm:"size:512"`
	GrantSizeRange        string    `json:"grantSizeRange" gorm:"size:128"`
	EligibilitySummary    string    `json:"eligibilitySummary" gorm:"type:text"`
	ApplicationPortalLink string    `json:"applicationPortalLink" gorm:"size:255"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (FunderProfile) TableName() string {
	return "funder_profiles"
}

type ProviderProfile struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CompanyName  string    `json:"companyName" gorm:"size:255;not null"`
	ServiceType  string    `json:"serviceType" gorm:"size:128"`
	Website      string    `json:"website" gorm:"size:255"`
	ContactEmail string    `json:"contactEmail" gorm:"size:255"`
	Description  string    `json:"description" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ProviderProfile) TableName() string {
	return "provider_profiles"
}
