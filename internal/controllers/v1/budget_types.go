package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/models"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name     string `json:"name" example:"Groceries and fun" default:""`      // Name of the budget
	Note     string `json:"note" example:"My personal expenses" default:""`   // A longer description
	Currency string `json:"currency" example:"EUR" default:""`                // ISO 4217 currency code for the budget
	Archived bool   `json:"archived" example:"true" default:"false"`          // Is the budget archived?
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
		Archived: editable.Archived,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`               // The budget itself
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // Accounts for this budget
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Categories for this budget
	Envelopes    string `json:"envelopes" example:"https://example.com/api/v1/envelopes?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Envelopes for this budget
	Months       string `json:"months" example:"https://example.com/api/v1/months?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`       // The months overview for this budget
}

// Budget is the API representation of a budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
			Archived: model.Archived,
		},
		Links: BudgetLinks{
			Self:       fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Accounts:   fmt.Sprintf("%s/v1/accounts?budget=%s", url, model.ID),
			Categories: fmt.Sprintf("%s/v1/categories?budget=%s", url, model.ID),
			Envelopes:  fmt.Sprintf("%s/v1/envelopes?budget=%s", url, model.ID),
			Months:     fmt.Sprintf("%s/v1/months?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By the currency code
	Archived bool   `form:"archived"`                   // Is the budget archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Currency: f.Currency,
		Archived: f.Archived,
	}
}
