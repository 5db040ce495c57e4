package models_test

import (
	"time"

	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionAmountNotPositive() {
	budget := suite.createTestBudget(models.Budget{Name: "Amounts"})
	source := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	destination := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Supermarket", External: true})

	tests := []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-7.41)}

	for _, tt := range tests {
		err := models.DB.Create(&models.Transaction{
			Amount:               tt,
			SourceAccountID:      source.ID,
			DestinationAccountID: destination.ID,
		}).Error

		assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountNotPositive)
	}
}

func (suite *TestSuiteStandard) TestTransactionSourceDestinationDifferent() {
	account := suite.createTestAccount(models.Account{Name: "Only one"})

	err := models.DB.Create(&models.Transaction{
		Amount:               decimal.NewFromFloat(10),
		SourceAccountID:      account.ID,
		DestinationAccountID: account.ID,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrSourceDoesNotEqualDestination)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaults() {
	budget := suite.createTestBudget(models.Budget{Name: "Dates"})
	source := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})
	destination := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Supermarket", External: true})

	transaction := suite.createTestTransaction(models.Transaction{
		Amount:               decimal.NewFromFloat(10),
		SourceAccountID:      source.ID,
		DestinationAccountID: destination.ID,
	})

	assert.False(suite.T(), transaction.Date.IsZero(), "Transaction date must default to the current time")
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionAccountRequired() {
	account := suite.createTestAccount(models.Account{Name: "Lonely"})

	err := models.DB.Create(&models.Transaction{
		Amount:          decimal.NewFromFloat(10),
		SourceAccountID: account.ID,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
