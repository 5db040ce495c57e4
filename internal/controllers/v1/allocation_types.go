package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/allocation"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	pp_uuid "github.com/pocketplan/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// AllocationEditable represents all user configurable parameters
type AllocationEditable struct {
	EnvelopeID uuid.UUID       `json:"envelopeId" example:"2649c965-8999-4873-adab-655f623fdb07"`      // ID of the envelope
	Month      types.Month     `json:"month" example:"2024-09-01T00:00:00.000000Z"`                    // The month the allocation is for
	Amount     decimal.Decimal `json:"amount" example:"22.01" minimum:"0.00000001" multipleOf:"0.00000001"` // The allocated amount
	Note       string          `json:"note" example:"Added some buffer there" default:""`              // A note
}

func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		EnvelopeID: editable.EnvelopeID,
		Month:      editable.Month,
		Amount:     editable.Amount,
		Note:       editable.Note,
	}
}

type AllocationLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/allocations/2649c965-8999-4873-adab-655f623fdb07/2024-09"` // The allocation itself
	Envelope string `json:"envelope" example:"https://example.com/api/v1/envelopes/2649c965-8999-4873-adab-655f623fdb07"`      // The envelope the allocation belongs to
}

// Allocation is the API representation of an allocation.
type Allocation struct {
	models.Timestamps
	AllocationEditable
	Links AllocationLinks `json:"links"`
}

func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		Timestamps: model.Timestamps,
		AllocationEditable: AllocationEditable{
			EnvelopeID: model.EnvelopeID,
			Month:      model.Month,
			Amount:     model.Amount,
			Note:       model.Note,
		},
		Links: AllocationLinks{
			Self:     fmt.Sprintf("%s/v1/allocations/%s/%s", url, model.EnvelopeID, model.Month),
			Envelope: fmt.Sprintf("%s/v1/envelopes/%s", url, model.EnvelopeID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of allocations
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Data  []AllocationResponse `json:"data"`                                                          // List of the created allocations or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (a *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                          // Data for the allocation
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationQueryFilter struct {
	EnvelopeID pp_uuid.UUID `form:"envelope"`                   // By ID of the envelope
	Month      types.Month  `form:"month"`                      // By month in YYYY-MM format
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first allocation returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of allocations to return. Defaults to 50.
}

func (f AllocationQueryFilter) model() models.Allocation {
	return models.Allocation{
		EnvelopeID: f.EnvelopeID.UUID,
		Month:      f.Month,
	}
}

// AllocationURI binds the composite key of an allocation from the URI.
type AllocationURI struct {
	EnvelopeID pp_uuid.UUID `uri:"envelope" binding:"required" format:"UUID"` // ID of the envelope
	Month      types.Month  `uri:"month" binding:"required"`                  // Month in YYYY-MM format
}

// PreviewRequest are the parameters for an allocation preview.
type PreviewRequest struct {
	BudgetID uuid.UUID                       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget the funds are distributed in
	Month    types.Month                     `json:"month" example:"2024-09-01T00:00:00.000000Z"`             // The month to preview allocations for
	Amount   decimal.Decimal                 `json:"amount" example:"500"`                                    // The amount to distribute
	Mode     allocation.Mode                 `json:"mode" example:"PRIORITY"`                                 // The distribution strategy
	Manual   map[uuid.UUID]decimal.Decimal   `json:"manual"`                                                  // Envelope amounts for the MANUAL mode
}

// PreviewResponse wraps the computed preview.
type PreviewResponse struct {
	Data  *allocation.Preview `json:"data"`                                                    // The computed preview
	Error *string             `json:"error" example:"the budgetId parameter must be set"`      // The error, if any occurred
}
