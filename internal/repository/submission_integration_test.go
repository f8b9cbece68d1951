package repository_test

import (
	"testing"

	"github.com/ngobridge/platform-go/internal/domain/notification"
	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"github.com/ngobridge/platform-go/internal/domain/profile"
	"github.com/ngobridge/platform-go/internal/domain/submission"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/ngobridge/platform-go/internal/repository"
	"github.com/ngobridge/platform-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestSubmissionRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs docker or TEST_DB_DSN")
	}

	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()
	repos := repository.NewRepositories(db)

	funder := user.User{Email: "funder@aqua.org", Password: "x", Role: user.RoleFunder, IsVerified: true}
	ngo := user.User{Email: "ngo@hope.org", Password: "x", Role: user.RoleNgoAdmin}
	assert.NoError(t, repos.User.SaveUser(&funder))
	assert.NoError(t, repos.User.SaveUser(&ngo))

	prof := profile.NgoProfile{UserID: ngo.ID, NgoName: "Hope Org", Location: "Nairobi"}
	assert.NoError(t, repos.Profile.SaveNgoProfile(&prof))

	opp := opportunity.FundingOpportunity{
		Title:                "Clean Water Grant",
		FunderName:           "Aqua Foundation",
		Description:          "Grants for water projects",
		FunderUserID:         &funder.ID,
		AcceptsIntegratedApp: true,
	}
	assert.NoError(t, opp.SetFields([]opportunity.FieldDefinition{
		{Label: "Budget", Type: opportunity.FieldTypeNumber, Required: true},
	}))
	assert.NoError(t, repos.Opportunity.Create(&opp))

	t.Run("unique index blocks duplicate applications", func(t *testing.T) {
		first := submission.Submission{
			Reference:            "ref-1",
			FundingOpportunityID: opp.ID,
			NgoUserID:            ngo.ID,
			NgoProfileID:         prof.ID,
			Answers:              datatypes.JSONMap{"Budget": "5000"},
			Status:               submission.StatusSubmitted,
		}
		assert.NoError(t, repos.Submission.Create(&first))

		dup := submission.Submission{
			Reference:            "ref-2",
			FundingOpportunityID: opp.ID,
			NgoUserID:            ngo.ID,
			NgoProfileID:         prof.ID,
			Answers:              datatypes.JSONMap{"Budget": "9000"},
			Status:               submission.StatusSubmitted,
		}
		err := repos.Submission.Create(&dup)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("applicant view joins opportunity fields", func(t *testing.T) {
		views, err := repos.Submission.ListByApplicant(ngo.ID)
		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, "Clean Water Grant", views[0].OpportunityTitle)
		assert.Equal(t, "Aqua Foundation", views[0].FunderName)
	})

	t.Run("review view joins applicant identity and profile", func(t *testing.T) {
		views, err := repos.Submission.ListByOpportunity(opp.ID)
		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, "ngo@hope.org", views[0].ApplicantEmail)
		assert.Equal(t, "Hope Org", views[0].NgoName)
	})

	t.Run("count by opportunity", func(t *testing.T) {
		n, err := repos.Submission.CountByOpportunity(opp.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("find by pair", func(t *testing.T) {
		found, err := repos.Submission.FindByPair(opp.ID, ngo.ID)
		assert.NoError(t, err)
		assert.Equal(t, "ref-1", found.Reference)

		_, err = repos.Submission.FindByPair(opp.ID, funder.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("public listing filters by keyword", func(t *testing.T) {
		other := opportunity.FundingOpportunity{
			Title:       "Education Fund",
			FunderName:  "Book Trust",
			Description: "School grants",
		}
		assert.NoError(t, repos.Opportunity.Create(&other))

		items, total, err := repos.Opportunity.ListPublic(opportunity.ListQuery{Q: "water"})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, items, 1)
		assert.Equal(t, "Clean Water Grant", items[0].Title)
	})

	t.Run("exec tx rolls back on error", func(t *testing.T) {
		doomed := opportunity.FundingOpportunity{
			Title:       "Rollback Grant",
			FunderName:  "Aqua Foundation",
			Description: "Should survive the failed transaction",
		}
		assert.NoError(t, repos.Opportunity.Create(&doomed))

		err := repos.ExecTx(func(tx *repository.Repos) error {
			if err := tx.Opportunity.Delete(doomed.ID); err != nil {
				return err
			}
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)

		kept, err := repos.Opportunity.FindByID(doomed.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Rollback Grant", kept.Title)
	})

	t.Run("exec tx commits on success", func(t *testing.T) {
		gone := opportunity.FundingOpportunity{
			Title:       "Short Lived Grant",
			FunderName:  "Aqua Foundation",
			Description: "Deleted inside the transaction",
		}
		assert.NoError(t, repos.Opportunity.Create(&gone))

		err := repos.ExecTx(func(tx *repository.Repos) error {
			n, err := tx.Submission.CountByOpportunity(gone.ID)
			if err != nil {
				return err
			}
			assert.Zero(t, n)
			return tx.Opportunity.Delete(gone.ID)
		})
		assert.NoError(t, err)

		_, err = repos.Opportunity.FindByID(gone.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("notifications scoped to owner on mark read", func(t *testing.T) {
		n := notification.Notification{UserID: ngo.ID, Message: "status update"}
		assert.NoError(t, repos.Notification.Create(&n))

		// another user cannot flip it
		updated, err := repos.Notification.MarkRead(funder.ID, []uint{n.ID})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), updated)

		updated, err = repos.Notification.MarkRead(ngo.ID, []uint{n.ID})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), updated)

		unread, err := repos.Notification.ListUnread(ngo.ID, 0)
		assert.NoError(t, err)
		assert.Empty(t, unread)
	})
}
