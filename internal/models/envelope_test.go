package models_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestEnvelopeStatusDefault() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Default status"})
	assert.Equal(suite.T(), models.EnvelopeStatusActive, envelope.Status)
}

func (suite *TestSuiteStandard) TestEnvelopeStatusInvalid() {
	category := suite.createTestCategory(models.Category{Name: "Validation"})

	err := models.DB.Create(&models.Envelope{
		CategoryID: category.ID,
		Name:       "Broken status",
		Status:     "SLEEPING",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeStatusInvalid)
}

func (suite *TestSuiteStandard) TestEnvelopePriorityOutOfRange() {
	category := suite.createTestCategory(models.Category{Name: "Priorities"})

	tests := []uint8{0, 11, 255}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("priority %d", tt), func(t *testing.T) {
			priority := tt
			err := models.DB.Create(&models.Envelope{
				CategoryID: category.ID,
				Name:       uuid.NewString(),
				Priority:   &priority,
			}).Error

			assert.ErrorIs(t, err, models.ErrEnvelopePriorityOutOfRange)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopeNameNotUnique() {
	category := suite.createTestCategory(models.Category{Name: "Unique"})
	_ = suite.createTestEnvelope(models.Envelope{CategoryID: category.ID, Name: "Groceries"})

	err := models.DB.Create(&models.Envelope{CategoryID: category.ID, Name: "Groceries"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeNameNotUnique)
}

func (suite *TestSuiteStandard) TestEnvelopeSpent() {
	budget := suite.createTestBudget(models.Budget{Name: "Spending"})
	category := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Running costs"})
	envelope := suite.createTestEnvelope(models.Envelope{CategoryID: category.ID, Name: "Groceries"})

	internal := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	external := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Supermarket", External: true})

	date := time.Date(2024, 9, 4, 12, 0, 0, 0, time.UTC)
	month := types.NewMonth(2024, 9)

	// Spending lowers the balance
	_ = suite.createTestTransaction(models.Transaction{
		Date:                 date,
		Amount:               decimal.NewFromFloat(17.32),
		SourceAccountID:      internal.ID,
		DestinationAccountID: external.ID,
		EnvelopeID:           &envelope.ID,
	})

	// A refund raises it again
	_ = suite.createTestTransaction(models.Transaction{
		Date:                 date.AddDate(0, 0, 2),
		Amount:               decimal.NewFromFloat(2.32),
		SourceAccountID:      external.ID,
		DestinationAccountID: internal.ID,
		EnvelopeID:           &envelope.ID,
	})

	// A transaction in another month is not counted
	_ = suite.createTestTransaction(models.Transaction{
		Date:                 date.AddDate(0, 1, 0),
		Amount:               decimal.NewFromFloat(100),
		SourceAccountID:      internal.ID,
		DestinationAccountID: external.ID,
		EnvelopeID:           &envelope.ID,
	})

	spent, err := envelope.Spent(models.DB, month)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromFloat(15)), "Spent is wrong: is %s, expected 15", spent)
}

func (suite *TestSuiteStandard) TestEnvelopeAllocated() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Allocated"})
	month := types.NewMonth(2024, 9)

	// No allocation for the month means zero
	allocated, err := envelope.Allocated(models.DB, month)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), allocated.IsZero())

	_ = suite.createTestAllocation(models.Allocation{
		EnvelopeID: envelope.ID,
		Month:      month,
		Amount:     decimal.NewFromFloat(90),
	})

	allocated, err = envelope.Allocated(models.DB, month)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), allocated.Equal(decimal.NewFromFloat(90)), "Allocated is wrong: is %s, expected 90", allocated)
}
