package models_test

import (
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAllocationMonthNotSet() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "No month"})

	err := models.DB.Create(&models.Allocation{
		EnvelopeID: envelope.ID,
		Amount:     decimal.NewFromFloat(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAllocationMonthNotSet)
}

func (suite *TestSuiteStandard) TestAllocationAmountNegative() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Negative"})

	err := models.DB.Create(&models.Allocation{
		EnvelopeID: envelope.ID,
		Month:      types.NewMonth(2024, 9),
		Amount:     decimal.NewFromFloat(-10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAllocationAmountNegative)
}

func (suite *TestSuiteStandard) TestAllocationAmountZero() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Zero"})

	err := models.DB.Create(&models.Allocation{
		EnvelopeID: envelope.ID,
		Month:      types.NewMonth(2024, 9),
	}).Error

	assert.Nil(suite.T(), err, "Allocations with an amount of zero must be possible")
}

func (suite *TestSuiteStandard) TestAllocationMonthNotUnique() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Duplicate"})
	month := types.NewMonth(2024, 9)

	_ = suite.createTestAllocation(models.Allocation{
		EnvelopeID: envelope.ID,
		Month:      month,
		Amount:     decimal.NewFromFloat(10),
	})

	err := models.DB.Create(&models.Allocation{
		EnvelopeID: envelope.ID,
		Month:      month,
		Amount:     decimal.NewFromFloat(20),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAllocationMonthNotUnique)
}

func (suite *TestSuiteStandard) TestAllocationEnvelopeRequired() {
	err := models.DB.Create(&models.Allocation{
		Month:  types.NewMonth(2024, 9),
		Amount: decimal.NewFromFloat(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
