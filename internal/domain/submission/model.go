package submission

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// Submission is one NGO's answer set against the field schema of
// one opportunity. The (FundingOpportunityID, NgoUserID) pair is unique: a
// user applies to an opportunity at most once.
type Submission struct {
	ID                   uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	Reference            string            `json:"reference" gorm:"size:36;uniqueIndex"`
	FundingOpportunityID uint              `json:"fundingOpportunityId" gorm:"not null;uniqueIndex:idx_opportunity_applicant"`
	NgoUserID            uint              `json:"ngoUserId" gorm:"not null;uniqueIndex:idx_opportunity_applicant"`
	NgoProfileID         uint              `json:"ngoProfileId"`
	Answers              datatypes.JSONMap `json:"submissionData" gorm:"not null"`
	Status               Status            `json:"status" gorm:"size:32;default:'submitted';not null"`
	SubmittedAt          time.Time         `json:"submittedAt"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func (Submission) TableName() string {
	return "application_submissions"
}
