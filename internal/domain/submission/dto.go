package submission

type SubmitInput struct {
	SubmissionData map[string]interface{} `json:"submissionData" binding:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// ApplicantView is a submission joined with opportunity display fields
// for the applicant's list.
type ApplicantView struct {
	Submission
	OpportunityTitle string `json:"opportunityTitle" gorm:"column:opportunity_title"`
	FunderName       string `json:"funderName" gorm:"column:funder_name"`
}

// ReviewView is a submission joined with applicant identity and profile
// snapshot for the funder's review queue.
type ReviewView struct {
	Submission
	ApplicantEmail string `json:"applicantEmail" gorm:"column:applicant_email"`
	NgoName        string `json:"ngoName" gorm:"column:ngo_name"`
	NgoWebsite     string `json:"ngoWebsite" gorm:"column:ngo_website"`
	NgoLocation    string `json:"ngoLocation" gorm:"column:ngo_location"`
}
