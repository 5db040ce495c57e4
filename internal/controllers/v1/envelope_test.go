package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestEnvelope(t *testing.T, e v1.EnvelopeEditable, expectedStatus ...int) v1.EnvelopeResponse {
	if e.CategoryID == uuid.Nil {
		e.CategoryID = createTestCategory(t, v1.CategoryEditable{}).Data.ID
	}

	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.EnvelopeEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/envelopes", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.EnvelopeCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.EnvelopeResponse{}
}

func (suite *TestSuiteStandard) TestEnvelopesCreate() {
	priority := uint8(2)
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:     "Groceries",
		Priority: &priority,
	})

	assert.Equal(suite.T(), "Groceries", envelope.Data.Name)
	assert.Equal(suite.T(), models.EnvelopeStatusActive, envelope.Data.Status)

	if assert.NotNil(suite.T(), envelope.Data.Priority) {
		assert.Equal(suite.T(), uint8(2), *envelope.Data.Priority)
	}
}

func (suite *TestSuiteStandard) TestEnvelopesCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.EnvelopeEditable
		status   int
	}{
		{"Unknown category", v1.EnvelopeEditable{CategoryID: uuid.New(), Name: "Orphan"}, http.StatusNotFound},
		{"Invalid status", v1.EnvelopeEditable{Name: "Status", Status: "SLEEPING"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			if tt.editable.CategoryID == uuid.Nil {
				tt.editable.CategoryID = createTestCategory(t, v1.CategoryEditable{}).Data.ID
			}

			r := test.Request(t, http.MethodPost, "http://example.com/v1/envelopes", []v1.EnvelopeEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesCreatePriorityOutOfRange() {
	priority := uint8(11)
	createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Too low", Priority: &priority}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEnvelopesGetFilterBudget() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Filtering"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Costs"})

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{CategoryID: category.Data.ID, Name: "In budget"})
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Other budget"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes?budget="+budget.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "In budget", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestEnvelopesUpdateStatus() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Pausing"})

	r := test.Request(suite.T(), http.MethodPatch, envelope.Data.Links.Self, map[string]any{
		"status": "PAUSED",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.EnvelopeStatusPaused, response.Data.Status)
}

func (suite *TestSuiteStandard) TestEnvelopesDelete() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	r := test.Request(suite.T(), http.MethodDelete, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
