package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	pp_uuid "github.com/pocketplan/backend/internal/uuid"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	Name     string    `json:"name" example:"Checking account" default:""`              // Name of the account
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget the account belongs to
	Note     string    `json:"note" example:"Main account" default:""`                  // Notes about the account
	External bool      `json:"external" example:"false" default:"false"`                // Does the account belong to the budget owner or not?
	Archived bool      `json:"archived" example:"true" default:"false"`                 // Is the account archived?
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
		Note:     editable.Note,
		External: editable.External,
		Archived: editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88107bbe"`                   // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88107bbe"` // Transactions referencing the account
}

// Account is the API representation of an account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
			Note:     model.Note,
			External: model.External,
			Archived: model.Archived,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Data  []AccountResponse `json:"data"`                                                          // List of the created accounts or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	BudgetID pp_uuid.UUID `form:"budget"`                     // By ID of the budget
	Name     string       `form:"name" filterField:"false"`   // By name
	Note     string       `form:"note" filterField:"false"`   // By note
	External bool         `form:"external"`                   // Does the account belong to the budget owner or not?
	Archived bool         `form:"archived"`                   // Is the account archived?
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first account returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		BudgetID: f.BudgetID.UUID,
		External: f.External,
		Archived: f.Archived,
	}
}
