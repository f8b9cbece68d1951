package opportunity

import "encoding/json"

type CreateOpportunityInput struct {
	Title                string          `json:"title" binding:"required"`
	FunderName           string          `json:"funderName"`
	Description          string          `json:"description" binding:"required"`
	FundingAmountRange   string          `json:"fundingAmountRange"`
	EligibilityCriteria  string          `json:"eligibilityCriteria"`
	ApplicationDeadline  *string         `json:"applicationDeadline"`
	ApplicationLink      string          `json:"applicationLink" binding:"required"`
	Tags                 string          `json:"tags"`
	AcceptsIntegratedApp bool            `json:"acceptsIntegratedApp"`
	IntegratedAppFields  json.RawMessage `json:"integratedAppFields"`
}

type UpdateOpportunityInput struct {
	Title                string          `json:"title"`
	FunderName           string          `json:"funderName"`
	Description          string          `json:"description"`
	FundingAmountRange   string          `json:"fundingAmountRange"`
	EligibilityCriteria  string          `json:"eligibilityCriteria"`
	ApplicationDeadline  *string         `json:"applicationDeadline"`
	ApplicationLink      string          `json:"applicationLink"`
	Tags                 string          `json:"tags"`
	AcceptsIntegratedApp bool            `json:"acceptsIntegratedApp"`
	IntegratedAppFields  json.RawMessage `json:"integratedAppFields"`
}

// ListQuery carries public listing filters.
type ListQuery struct {
	Page int    `form:"page"`
	Size int    `form:"size"`
	Q    string `form:"q"`
	Tags string `form:"tags"`
}
