package models_test

import (
	"testing"

	"github.com/pocketplan/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchRuleMatchRequired() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "No match"})

	err := models.DB.Create(&models.MatchRule{
		EnvelopeID: envelope.ID,
		Match:      "   ",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrMatchRuleNoMatch)
}

func (suite *TestSuiteStandard) TestMatchEnvelope() {
	groceries := suite.createTestEnvelope(models.Envelope{Name: "Groceries"})
	rent := suite.createTestEnvelope(models.Envelope{CategoryID: groceries.CategoryID, Name: "Rent"})
	catchAll := suite.createTestEnvelope(models.Envelope{CategoryID: groceries.CategoryID, Name: "Everything else"})

	_ = suite.createTestMatchRule(models.MatchRule{Priority: 1, Match: "Super*", EnvelopeID: groceries.ID})
	_ = suite.createTestMatchRule(models.MatchRule{Priority: 1, Match: "Landlord", EnvelopeID: rent.ID})
	_ = suite.createTestMatchRule(models.MatchRule{Priority: 5, Match: "*", EnvelopeID: catchAll.ID})

	tests := []struct {
		name     string
		account  string
		expected *models.Envelope
	}{
		{"Glob prefix", "Supermarket around the corner", &groceries},
		{"Exact match", "Landlord", &rent},
		{"Catch-all with lower priority", "Gym", &catchAll},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			id, err := models.MatchEnvelope(models.DB, tt.account)
			assert.Nil(t, err)

			if assert.NotNil(t, id) {
				assert.Equal(t, tt.expected.ID, *id)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMatchEnvelopeNoRuleMatches() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Specific"})
	_ = suite.createTestMatchRule(models.MatchRule{Priority: 1, Match: "Bank*", EnvelopeID: envelope.ID})

	id, err := models.MatchEnvelope(models.DB, "Supermarket")
	assert.Nil(suite.T(), err)
	assert.Nil(suite.T(), id)
}
