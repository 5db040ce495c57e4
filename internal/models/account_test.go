package models_test

import (
	"github.com/pocketplan/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountNameNotUnique() {
	budget := suite.createTestBudget(models.Budget{Name: "Accounts"})
	_ = suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Checking"})

	err := models.DB.Create(&models.Account{BudgetID: budget.ID, Name: "Checking"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestAccountBudgetRequired() {
	err := models.DB.Create(&models.Account{Name: "Orphaned"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryNameNotUnique() {
	budget := suite.createTestBudget(models.Budget{Name: "Categories"})
	_ = suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Running costs"})

	err := models.DB.Create(&models.Category{BudgetID: budget.ID, Name: "Running costs"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}
