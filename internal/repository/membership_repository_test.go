package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
)

type MembershipRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo MembershipRepository
}

func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.repo = NewMembershipRepository(testLogger(), suite.db)
}

func (suite *MembershipRepositoryTestSuite) addMember(team, email string, owner bool) {
	err := suite.repo.Add(&models.Membership{TeamName: team, UserEmail: email, IsOwner: owner})
	suite.Require().NoError(err)
}

// Re-adding a (team, user) pair must overwrite the owner flag, never
// duplicate the row.
func (suite *MembershipRepositoryTestSuite) TestAddUpsertsOwnerFlag() {
	suite.addMember("alpha", "a@example.com", false)
	suite.addMember("alpha", "a@example.com", true)

	members, err := suite.repo.List(MembershipFilter{Team: "alpha"})
	suite.Require().NoError(err)
	suite.Require().Len(members, 1)
	assert.Equal(suite.T(), "a@example.com", members[0].UserEmail)
	assert.True(suite.T(), members[0].IsOwner)
}

func (suite *MembershipRepositoryTestSuite) TestListFilters() {
	suite.addMember("alpha", "a@example.com", true)
	suite.addMember("alpha", "b@example.com", false)
	suite.addMember("beta", "a@example.com", false)

	byTeam, err := suite.repo.List(MembershipFilter{Team: "alpha"})
	suite.Require().NoError(err)
	assert.Len(suite.T(), byTeam, 2)

	byEmail, err := suite.repo.List(MembershipFilter{Email: "a@example.com"})
	suite.Require().NoError(err)
	assert.Len(suite.T(), byEmail, 2)

	byBoth, err := suite.repo.List(MembershipFilter{Team: "beta", Email: "a@example.com"})
	suite.Require().NoError(err)
	suite.Require().Len(byBoth, 1)
	assert.False(suite.T(), byBoth[0].IsOwner)

	all, err := suite.repo.List(MembershipFilter{})
	suite.Require().NoError(err)
	assert.Len(suite.T(), all, 3)
}

func (suite *MembershipRepositoryTestSuite) TestSetOwnership() {
	suite.addMember("alpha", "a@example.com", false)

	err := suite.repo.SetOwnership("alpha", "a@example.com", true)
	suite.Require().NoError(err)

	members, err := suite.repo.List(MembershipFilter{Team: "alpha", Email: "a@example.com"})
	suite.Require().NoError(err)
	suite.Require().Len(members, 1)
	assert.True(suite.T(), members[0].IsOwner)
}

func (suite *MembershipRepositoryTestSuite) TestSetOwnershipMissingPair() {
	err := suite.repo.SetOwnership("alpha", "ghost@example.com", true)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

// Removing a member deletes only the membership pair; the member's past
// team tasks and the team's board stay untouched.
func (suite *MembershipRepositoryTestSuite) TestRemoveDoesNotCascade() {
	suite.addMember("alpha", "a@example.com", true)
	suite.Require().NoError(suite.db.Create(&models.Task{
		TeamName: "alpha", Name: "release", State: models.TaskStateTodo, UserEmail: "a@example.com",
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.BoardEntry{
		TeamName: "alpha", BoardName: "doing",
	}).Error)

	suite.Require().NoError(suite.repo.Remove("alpha", "a@example.com"))

	members, err := suite.repo.List(MembershipFilter{Team: "alpha"})
	suite.Require().NoError(err)
	assert.Empty(suite.T(), members)

	var taskCount, boardCount int64
	suite.db.Model(&models.Task{}).Where("team_name = ?", "alpha").Count(&taskCount)
	suite.db.Model(&models.BoardEntry{}).Where("team_name = ?", "alpha").Count(&boardCount)
	assert.EqualValues(suite.T(), 1, taskCount)
	assert.EqualValues(suite.T(), 1, boardCount)
}

func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
