package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	pp_uuid "github.com/pocketplan/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// RegisterMonthRoutes registers the routes for the month overview with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
}

// MonthQuery are the query parameters for the month overview.
type MonthQuery struct {
	BudgetID pp_uuid.UUID `form:"budget"` // ID of the budget
	Month    types.Month  `form:"month"`  // The month in YYYY-MM format
}

// MonthEnvelope is the state of one envelope in the month overview.
type MonthEnvelope struct {
	ID           uuid.UUID             `json:"id" example:"2649c965-8999-4873-adab-655f623fdb07"` // ID of the envelope
	Name         string                `json:"name" example:"Groceries"`                          // Name of the envelope
	CategoryName string                `json:"categoryName" example:"Running costs"`              // Name of the category the envelope belongs to
	Status       models.EnvelopeStatus `json:"status" example:"ACTIVE"`                           // Funding status of the envelope
	Allocation   decimal.Decimal       `json:"allocation" example:"90"`                           // The amount allocated for the month
	Spent        decimal.Decimal       `json:"spent" example:"73.12"`                             // The amount spent in the month
	Balance      decimal.Decimal       `json:"balance" example:"16.88"`                           // Allocation minus spent
}

// Month is the overview over one month of a budget.
type Month struct {
	Month     types.Month     `json:"month" example:"2024-09-01T00:00:00.000000Z"` // The month
	BudgetID  uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Envelopes []MonthEnvelope `json:"envelopes"`                                   // The envelopes of the budget with their monthly amounts
	Allocated decimal.Decimal `json:"allocated" example:"700"`                     // Sum of the allocations of all envelopes
	Spent     decimal.Decimal `json:"spent" example:"286.52"`                      // Sum of the spent amounts of all envelopes
	Balance   decimal.Decimal `json:"balance" example:"413.48"`                    // Allocated minus spent
}

// MonthResponse wraps the month overview.
type MonthResponse struct {
	Data  *Month  `json:"data"`                                               // The month overview
	Error *string `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month overview
// @Description	Returns the envelopes of a budget with their allocated, spent and remaining amounts for a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			budget	query		string	true	"ID of the budget"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query MonthQuery
	err := c.Bind(&query)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	if query.BudgetID.UUID == uuid.Nil {
		s := errBudgetIDParameter.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	if query.Month.IsZero() {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, query.BudgetID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	var envelopes []models.Envelope
	err = models.DB.
		Joins("Category").
		Where(`"Category".budget_id = ?`, budget.ID).
		Order(`"Category".name ASC, envelopes.name ASC`).
		Find(&envelopes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	month := Month{
		Month:     query.Month,
		BudgetID:  budget.ID,
		Envelopes: make([]MonthEnvelope, 0, len(envelopes)),
	}

	for _, envelope := range envelopes {
		allocated, err := envelope.Allocated(models.DB, query.Month)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MonthResponse{
				Error: &s,
			})
			return
		}

		spent, err := envelope.Spent(models.DB, query.Month)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MonthResponse{
				Error: &s,
			})
			return
		}

		month.Envelopes = append(month.Envelopes, MonthEnvelope{
			ID:           envelope.ID,
			Name:         envelope.Name,
			CategoryName: envelope.Category.Name,
			Status:       envelope.Status,
			Allocation:   allocated,
			Spent:        spent,
			Balance:      allocated.Sub(spent),
		})

		month.Allocated = month.Allocated.Add(allocated)
		month.Spent = month.Spent.Add(spent)
	}

	month.Balance = month.Allocated.Sub(month.Spent)

	c.JSON(http.StatusOK, MonthResponse{Data: &month})
}
