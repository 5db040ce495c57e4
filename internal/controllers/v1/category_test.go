package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.BudgetID == uuid.Nil {
		c.BudgetID = createTestBudget(t, v1.BudgetEditable{Name: "Testing budget"}).Data.ID
	}

	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.CategoryResponse{}
}

func (suite *TestSuiteStandard) TestCategoriesCreateBudgetMissing() {
	createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: uuid.New()}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesEnvelopesComputed() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Savings"})

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{CategoryID: category.Data.ID, Name: "Vacation"})
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{CategoryID: category.Data.ID, Name: "New car"})

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Envelopes, 2)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilterBudget() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Filtering"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "In budget"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Other budget"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?budget="+budget.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "In budget", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"note": "Updated note",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Updated note", response.Data.Note)
	assert.Equal(suite.T(), "Before", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
