package models_test

import (
	"testing"

	"github.com/pocketplan/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	name := " Whitespace budget "
	note := " Some whitespace in the notes "

	budget := suite.createTestBudget(models.Budget{
		Name:     name,
		Note:     note,
		Currency: " eur ",
	})

	assert.Equal(suite.T(), "Whitespace budget", budget.Name)
	assert.Equal(suite.T(), "Some whitespace in the notes", budget.Note)
	assert.Equal(suite.T(), "EUR", budget.Currency)
}

func (suite *TestSuiteStandard) TestBudgetCurrencyInvalid() {
	tests := []string{"EURO", "??", "123"}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			err := models.DB.Create(&models.Budget{Name: "Broken money", Currency: tt}).Error
			assert.ErrorIs(t, err, models.ErrBudgetCurrencyInvalid)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetCurrencyEmpty() {
	err := models.DB.Create(&models.Budget{Name: "No currency"}).Error
	assert.Nil(suite.T(), err)
}
