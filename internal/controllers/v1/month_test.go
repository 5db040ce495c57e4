package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/internal/types"
	"github.com/pocketplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthsGet() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Overview", Currency: "EUR"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Running costs"})
	groceries := createTestEnvelope(suite.T(), v1.EnvelopeEditable{CategoryID: category.Data.ID, Name: "Groceries"})
	rent := createTestEnvelope(suite.T(), v1.EnvelopeEditable{CategoryID: category.Data.ID, Name: "Rent"})

	month := types.NewMonth(2024, 9)
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EnvelopeID: groceries.Data.ID, Month: month, Amount: decimal.NewFromFloat(300)})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{EnvelopeID: rent.Data.ID, Month: month, Amount: decimal.NewFromFloat(900)})

	checking := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	supermarket := createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.Data.ID, Name: "Supermarket", External: true})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:                 time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC),
		Amount:               decimal.NewFromFloat(73.12),
		SourceAccountID:      checking.Data.ID,
		DestinationAccountID: supermarket.Data.ID,
		EnvelopeID:           &groceries.Data.ID,
	})

	// Spending in another month must not show up
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:                 time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC),
		Amount:               decimal.NewFromFloat(50),
		SourceAccountID:      checking.Data.ID,
		DestinationAccountID: supermarket.Data.ID,
		EnvelopeID:           &groceries.Data.ID,
	})

	url := fmt.Sprintf("http://example.com/v1/months?budget=%s&month=2024-09", budget.Data.ID)
	r := test.Request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), budget.Data.ID, response.Data.BudgetID)
	assert.True(suite.T(), response.Data.Allocated.Equal(decimal.NewFromFloat(1200)), "Allocated is %s, expected 1200", response.Data.Allocated)
	assert.True(suite.T(), response.Data.Spent.Equal(decimal.NewFromFloat(73.12)), "Spent is %s, expected 73.12", response.Data.Spent)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromFloat(1126.88)), "Balance is %s, expected 1126.88", response.Data.Balance)

	require.Len(suite.T(), response.Data.Envelopes, 2)

	first := response.Data.Envelopes[0]
	assert.Equal(suite.T(), "Groceries", first.Name)
	assert.Equal(suite.T(), "Running costs", first.CategoryName)
	assert.True(suite.T(), first.Allocation.Equal(decimal.NewFromFloat(300)))
	assert.True(suite.T(), first.Spent.Equal(decimal.NewFromFloat(73.12)))
	assert.True(suite.T(), first.Balance.Equal(decimal.NewFromFloat(226.88)))

	second := response.Data.Envelopes[1]
	assert.Equal(suite.T(), "Rent", second.Name)
	assert.True(suite.T(), second.Balance.Equal(decimal.NewFromFloat(900)))
}

func (suite *TestSuiteStandard) TestMonthsGetInvalid() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Overview"})

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"No budget", "http://example.com/v1/months?month=2024-09", http.StatusBadRequest},
		{"No month", fmt.Sprintf("http://example.com/v1/months?budget=%s", budget.Data.ID), http.StatusBadRequest},
		{"Invalid month", fmt.Sprintf("http://example.com/v1/months?budget=%s&month=September", budget.Data.ID), http.StatusBadRequest},
		{"Unknown budget", fmt.Sprintf("http://example.com/v1/months?budget=%s&month=2024-09", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
