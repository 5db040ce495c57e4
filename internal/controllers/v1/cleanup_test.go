package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCleanup() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "To be deleted"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Doomed"})
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{CategoryID: category.Data.ID, Name: "Doomed"})
	account := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	external := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Supermarket", External: true})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:               decimal.NewFromFloat(17.32),
		SourceAccountID:      account.Data.ID,
		DestinationAccountID: external.Data.ID,
		EnvelopeID:           &envelope.Data.ID,
	})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "Supermarket*", EnvelopeID: envelope.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify that all resources are gone
	for _, url := range []string{
		"http://example.com/v1/budgets",
		"http://example.com/v1/accounts",
		"http://example.com/v1/categories",
		"http://example.com/v1/envelopes",
		"http://example.com/v1/transactions",
		"http://example.com/v1/match-rules",
		"http://example.com/v1/allocations",
	} {
		r := test.Request(suite.T(), http.MethodGet, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response struct {
			Data []any `json:"data"`
		}
		test.DecodeResponse(suite.T(), &r, &response)
		assert.Len(suite.T(), response.Data, 0, "resources left at %s", url)
	}
}

func (suite *TestSuiteStandard) TestCleanupNotConfirmed() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Still here"})

	tests := []struct {
		name string
		url  string
	}{
		{"No confirmation", "http://example.com/v1"},
		{"Wrong confirmation", "http://example.com/v1?confirm=yes-please-delete-my-data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Still here", response.Data.Name)
}
