package opportunity

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type FundingOpportunity struct {
	ID                   uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Title                string         `json:"title" gorm:"size:255;not null"`
	FunderName           string         `json:"funderName" gorm:"size:255"`
	Description          string         `json:"description" gorm:"type:text;not null"`
	FundingAmountRange   string         `json:"fundingAmountRange" gorm:"size:128"`
	EligibilityCriteria  string         `json:"eligibilityCriteria" gorm:"type:text"`
	ApplicationDeadline  *time.Time     `json:"applicationDeadline"`
	ApplicationLink      string         `json:"applicationLink" gorm:"size:512"`
	Tags                 string         `json:"tags" gorm:"size:512"`
	PostedByAdminID      *uint          `json:"postedByAdminId"`
	FunderUserID         *uint          `json:"funderUserId" gorm:"index"`
	AcceptsIntegratedApp bool           `json:"acceptsIntegratedApp" gorm:"default:false;not null"`
	IntegratedAppFields  datatypes.JSON `json:"integratedAppFields"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func (FundingOpportunity) TableName() string {
	return "funding_opportunities"
}

// Fields decodes the stored schema. A null column decodes to nil.
func (o *FundingOpportunity) Fields() ([]FieldDefinition, error) {
	if len(o.IntegratedAppFields) == 0 {
		return nil, nil
	}
	var fields []FieldDefinition
	if err := json.Unmarshal(o.IntegratedAppFields, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// SetFields stores a parsed schema, or clears it when fields is nil.
func (o *FundingOpportunity) SetFields(fields []FieldDefinition) error {
	if fields == nil {
		o.IntegratedAppFields = nil
		return nil
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	o.IntegratedAppFields = datatypes.JSON(raw)
	return nil
}

// OwnedBy reports whether the opportunity was posted by the given funder.
func (o *FundingOpportunity) OwnedBy(funderUserID uint) bool {
	return o.FunderUserID != nil && *o.FunderUserID == funderUserID
}
