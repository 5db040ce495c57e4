package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestTransaction(t *testing.T, tr v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TransactionEditable{tr}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.TransactionResponse{}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Transactions"})
	source := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	destination := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Supermarket", External: true})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:               decimal.NewFromFloat(17.32),
		SourceAccountID:      source.Data.ID,
		DestinationAccountID: destination.Data.ID,
	})

	assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromFloat(17.32)))
	assert.Nil(suite.T(), transaction.Data.EnvelopeID)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Broken transactions"})
	source := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	destination := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Supermarket", External: true})

	tests := []struct {
		name     string
		editable v1.TransactionEditable
		status   int
	}{
		{
			"Amount zero",
			v1.TransactionEditable{
				SourceAccountID:      source.Data.ID,
				DestinationAccountID: destination.Data.ID,
			},
			http.StatusBadRequest,
		},
		{
			"Unknown destination",
			v1.TransactionEditable{
				Amount:               decimal.NewFromFloat(10),
				SourceAccountID:      source.Data.ID,
				DestinationAccountID: uuid.New(),
			},
			http.StatusNotFound,
		},
		{
			"Same source and destination",
			v1.TransactionEditable{
				Amount:               decimal.NewFromFloat(10),
				SourceAccountID:      source.Data.ID,
				DestinationAccountID: source.Data.ID,
			},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestTransaction(t, tt.editable, tt.status)
		})
	}
}

// TestTransactionsMatchRuleApplied verifies that new transactions without an
// envelope get one assigned when a match rule matches the external account.
func (suite *TestSuiteStandard) TestTransactionsMatchRuleApplied() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Matching"})
	source := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	destination := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Supermarket around the corner", External: true})

	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Running costs"})
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{CategoryID: category.Data.ID, Name: "Groceries"})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Match:      "Supermarket*",
		EnvelopeID: envelope.Data.ID,
	})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:               decimal.NewFromFloat(17.32),
		SourceAccountID:      source.Data.ID,
		DestinationAccountID: destination.Data.ID,
	})

	if assert.NotNil(suite.T(), transaction.Data.EnvelopeID) {
		assert.Equal(suite.T(), envelope.Data.ID, *transaction.Data.EnvelopeID)
	}
}

// TestTransactionsMatchRuleNotAppliedToTransfers verifies that transfers
// between internal accounts never get an envelope from match rules.
func (suite *TestSuiteStandard) TestTransactionsMatchRuleNotAppliedToTransfers() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Transfers"})
	source := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	destination := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Savings"})

	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Catch-all"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Match:      "*",
		EnvelopeID: envelope.Data.ID,
	})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:               decimal.NewFromFloat(100),
		SourceAccountID:      source.Data.ID,
		DestinationAccountID: destination.Data.ID,
	})

	assert.Nil(suite.T(), transaction.Data.EnvelopeID)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilterAccount() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Filtering"})
	checking := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	savings := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Savings"})
	supermarket := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Supermarket", External: true})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:               decimal.NewFromFloat(10),
		SourceAccountID:      checking.Data.ID,
		DestinationAccountID: supermarket.Data.ID,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:               decimal.NewFromFloat(20),
		SourceAccountID:      savings.Data.ID,
		DestinationAccountID: checking.Data.ID,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:               decimal.NewFromFloat(30),
		SourceAccountID:      savings.Data.ID,
		DestinationAccountID: supermarket.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?account="+checking.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Deleting"})
	source := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	destination := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Supermarket", External: true})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:               decimal.NewFromFloat(10),
		SourceAccountID:      source.Data.ID,
		DestinationAccountID: destination.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
