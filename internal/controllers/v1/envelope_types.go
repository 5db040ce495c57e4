package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	pp_uuid "github.com/pocketplan/backend/internal/uuid"
)

// EnvelopeEditable represents all user configurable parameters
type EnvelopeEditable struct {
	Name          string                `json:"name" example:"Groceries" default:""`                                     // Name of the envelope
	CategoryID    uuid.UUID             `json:"categoryId" example:"878c831f-af99-4a71-b3ca-80deb7d793c1"`               // ID of the category the envelope belongs to
	Note          string                `json:"note" example:"For stuff bought at supermarkets and drugstores" default:""` // Notes about the envelope
	Status        models.EnvelopeStatus `json:"status" example:"ACTIVE" default:"ACTIVE"`                                // Funding status of the envelope
	Priority      *uint8                `json:"priority" example:"1"`                                                    // Allocation priority, 1 (highest) to 10 (lowest). Defaults to 5 when unset
	EmergencyFund bool                  `json:"emergencyFund" example:"true" default:"false"`                            // Is this the emergency fund envelope?
	Archived      bool                  `json:"archived" example:"true" default:"false"`                                 // Is the envelope archived?
}

func (editable EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		CategoryID:    editable.CategoryID,
		Name:          editable.Name,
		Note:          editable.Note,
		Status:        editable.Status,
		Priority:      editable.Priority,
		EmergencyFund: editable.EmergencyFund,
		Archived:      editable.Archived,
	}
}

type EnvelopeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/envelopes/45b6b5b9-f746-4ae9-b77b-7688b91f8166"`                     // The envelope itself
	Allocations  string `json:"allocations" example:"https://example.com/api/v1/allocations?envelope=45b6b5b9-f746-4ae9-b77b-7688b91f8166"`   // Allocations for this envelope
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?envelope=45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // Transactions for this envelope
}

// Envelope is the API representation of an envelope.
type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	Links EnvelopeLinks `json:"links"`
}

func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.DBContextURL))

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			CategoryID:    model.CategoryID,
			Name:          model.Name,
			Note:          model.Note,
			Status:        model.Status,
			Priority:      model.Priority,
			EmergencyFund: model.EmergencyFund,
			Archived:      model.Archived,
		},
		Links: EnvelopeLinks{
			Self:         fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
			Allocations:  fmt.Sprintf("%s/v1/allocations?envelope=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?envelope=%s", url, model.ID),
		},
	}
}

type EnvelopeListResponse struct {
	Data       []Envelope  `json:"data"`                                                          // List of envelopes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EnvelopeCreateResponse struct {
	Data  []EnvelopeResponse `json:"data"`                                                          // List of the created envelopes or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *EnvelopeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, EnvelopeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EnvelopeResponse struct {
	Data  *Envelope `json:"data"`                                                          // Data for the envelope
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnvelopeQueryFilter struct {
	CategoryID    pp_uuid.UUID `form:"category"`                        // By ID of the category
	BudgetID      pp_uuid.UUID `form:"budget" filterField:"false"`      // By ID of the budget the category belongs to
	Name          string       `form:"name" filterField:"false"`        // By name
	Note          string       `form:"note" filterField:"false"`        // By note
	Status        string       `form:"status"`                          // By funding status
	Priority      *uint8       `form:"priority"`                        // By allocation priority
	EmergencyFund bool         `form:"emergencyFund"`                   // Is this the emergency fund envelope?
	Archived      bool         `form:"archived"`                        // Is the envelope archived?
	Search        string       `form:"search" filterField:"false"`      // By string in name or note
	Offset        uint         `form:"offset" filterField:"false"`      // The offset of the first envelope returned. Defaults to 0.
	Limit         int          `form:"limit" filterField:"false"`       // Maximum number of envelopes to return. Defaults to 50.
}

func (f EnvelopeQueryFilter) model() models.Envelope {
	return models.Envelope{
		CategoryID:    f.CategoryID.UUID,
		Status:        models.EnvelopeStatus(f.Status),
		Priority:      f.Priority,
		EmergencyFund: f.EmergencyFund,
		Archived:      f.Archived,
	}
}
