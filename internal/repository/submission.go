package repository

import (
	"github.com/ngobridge/platform-go/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	Create(s *submission.Submission) error
	FindByID(id uint) (submission.Submission, error)
	FindByPair(opportunityID, ngoUserID uint) (submission.Submission, error)
	ListByApplicant(ngoUserID uint) ([]submission.ApplicantView, error)
	ListByOpportunity(opportunityID uint) ([]submission.ReviewView, error)
	CountByOpportunity(opportunityID uint) (int64, error)
	Save(s *submission.Submission) error
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	return &DBSubmissionRepo{db: tx}
}

func (r *DBSubmissionRepo) Create(s *submission.Submission) error {
	return r.db.Create(s).Error
}

func (r *DBSubmissionRepo) FindByID(id uint) (submission.Submission, error) {
	var s submission.Submission
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBSubmissionRepo) FindByPair(opportunityID, ngoUserID uint) (submission.Submission, error) {
	var s submission.Submission
	err := r.db.
		Where("funding_opportunity_id = ? AND ngo_user_id = ?", opportunityID, ngoUserID).
		First(&s).Error
	return s, err
}

// ListByApplicant returns the user's submissions newest-first, joined with
// opportunity display fields.
func (r *DBSubmissionRepo) ListByApplicant(ngoUserID uint) ([]submission.ApplicantView, error) {
	var views []submission.ApplicantView
	err := r.db.Table("application_submissions AS s").
		Select("s.*, o.title AS opportunity_title, o.funder_name AS funder_name").
		Joins("LEFT JOIN funding_opportunities o ON o.id = s.funding_opportunity_id").
		Where("s.ngo_user_id = ?", ngoUserID).
		Order("s.submitted_at DESC").
		Scan(&views).Error
	return views, err
}

// ListByOpportunity returns the review queue oldest-first so earlier
// applicants are reviewed first.
func (r *DBSubmissionRepo) ListByOpportunity(opportunityID uint) ([]submission.ReviewView, error) {
	var views []submission.ReviewView
	err := r.db.Table("application_submissions AS s").
		Select(`s.*,
			u.email AS applicant_email,
			p.ngo_name AS ngo_name,
			p.website AS ngo_website,
			p.location AS ngo_location`).
		Joins("LEFT JOIN users u ON u.id = s.ngo_user_id").
		Joins("LEFT JOIN ngo_profiles p ON p.id = s.ngo_profile_id").
		Where("s.funding_opportunity_id = ?", opportunityID).
		Order("s.submitted_at ASC").
		Scan(&views).Error
	return views, err
}

func (r *DBSubmissionRepo) CountByOpportunity(opportunityID uint) (int64, error) {
	var n int64
	err := r.db.Model(&submission.Submission{}).
		Where("funding_opportunity_id = ?", opportunityID).
		Count(&n).Error
	return n, err
}

func (r *DBSubmissionRepo) Save(s *submission.Submission) error {
	return r.db.Save(s).Error
}
