package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	pp_uuid "github.com/pocketplan/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date                 time.Time       `json:"date" example:"1815-12-10T18:43:00.271152Z"`                                     // Date of the transaction. Defaults to the current time when empty
	Amount               decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" multipleOf:"0.00000001"`            // The amount for the transaction
	Note                 string          `json:"note" example:"Lunch" default:""`                                                // A note
	SourceAccountID      uuid.UUID       `json:"sourceAccountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`                 // ID of the source account
	DestinationAccountID uuid.UUID       `json:"destinationAccountId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`            // ID of the destination account
	EnvelopeID           *uuid.UUID      `json:"envelopeId" example:"2649c965-8999-4873-adab-655f623fdb07"`                      // ID of the envelope. Applied from match rules when unset
	Reconciled           bool            `json:"reconciled" example:"true" default:"false"`                                      // Has the transaction been verified against a bank statement?
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:                 editable.Date,
		Amount:               editable.Amount,
		Note:                 editable.Note,
		SourceAccountID:      editable.SourceAccountID,
		DestinationAccountID: editable.DestinationAccountID,
		EnvelopeID:           editable.EnvelopeID,
		Reconciled:           editable.Reconciled,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:                 model.Date,
			Amount:               model.Amount,
			Note:                 model.Note,
			SourceAccountID:      model.SourceAccountID,
			DestinationAccountID: model.DestinationAccountID,
			EnvelopeID:           model.EnvelopeID,
			Reconciled:           model.Reconciled,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of the created transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	AccountID  pp_uuid.UUID `form:"account" filterField:"false"` // By ID of the source or destination account
	EnvelopeID pp_uuid.UUID `form:"envelope"`                    // By ID of the envelope
	Note       string       `form:"note" filterField:"false"`    // By note
	Reconciled bool         `form:"reconciled"`                  // Has the transaction been verified against a bank statement?
	Search     string       `form:"search" filterField:"false"`  // By string in note
	Offset     uint         `form:"offset" filterField:"false"`  // The offset of the first transaction returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`   // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		EnvelopeID: f.EnvelopeID.Ptr(),
		Reconciled: f.Reconciled,
	}
}
