package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/allocation"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationList)
		r.GET("", GetAllocations)
		r.POST("", CreateAllocations)
	}

	// Preview
	{
		r.OPTIONS("/preview", OptionsAllocationPreview)
		r.POST("/preview", PreviewAllocations)
	}

	// Allocation for a specific envelope and month
	{
		r.OPTIONS("/:envelope/:month", OptionsAllocationDetail)
		r.GET("/:envelope/:month", GetAllocation)
		r.PATCH("/:envelope/:month", UpdateAllocation)
		r.DELETE("/:envelope/:month", DeleteAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations/preview [options]
func OptionsAllocationPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			envelope	path		string	true	"ID of the envelope"
// @Param			month		path		string	true	"The month in YYYY-MM format"
// @Router			/v1/allocations/{envelope}/{month} [options]
func OptionsAllocationDetail(c *gin.Context) {
	var uri AllocationURI
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var a models.Allocation
	err = models.DB.First(&a, "envelope_id = ? AND month = ?", uri.EnvelopeID.UUID, uri.Month).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create allocations
// @Description	Creates new allocations. An existing allocation for the same envelope and month is overwritten, so that applying a preview can be repeated.
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	AllocationCreateResponse
// @Failure		400			{object}	AllocationCreateResponse
// @Failure		404			{object}	AllocationCreateResponse
// @Failure		500			{object}	AllocationCreateResponse
// @Param			allocations	body		[]AllocationEditable	true	"Allocations"
// @Router			/v1/allocations [post]
func CreateAllocations(c *gin.Context) {
	var editables []AllocationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationCreateResponse{}

	for _, editable := range editables {
		a := editable.model()

		err = models.DB.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "envelope_id"}, {Name: "month"}},
				DoUpdates: clause.AssignmentColumns([]string{"amount", "note", "updated_at"}),
			}).
			Create(&a).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAllocation(c, a)
		r.Data = append(r.Data, AllocationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get allocations
// @Description	Returns a list of allocations
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	AllocationListResponse
// @Failure		500	{object}	AllocationListResponse
// @Router			/v1/allocations [get]
// @Param			envelope	query	string	false	"Filter by envelope ID"
// @Param			month		query	string	false	"Filter by month"
// @Param			offset		query	uint	false	"The offset of the first allocation returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of allocations to return. Defaults to 50."
func GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("month ASC").
		Where(filter.model(), queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 allocations and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var allocations []models.Allocation
	err := q.Find(&allocations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Allocation, 0)
	for _, a := range allocations {
		data = append(data, newAllocation(c, a))
	}

	c.JSON(http.StatusOK, AllocationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation
// @Description	Returns the allocation for a specific envelope and month
// @Tags			Allocations
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			envelope	path		string	true	"ID of the envelope"
// @Param			month		path		string	true	"The month in YYYY-MM format"
// @Router			/v1/allocations/{envelope}/{month} [get]
func GetAllocation(c *gin.Context) {
	var uri AllocationURI
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var a models.Allocation
	err = models.DB.First(&a, "envelope_id = ? AND month = ?", uri.EnvelopeID.UUID, uri.Month).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	data := newAllocation(c, a)
	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}

// @Summary		Update allocation
// @Description	Update the allocation for a specific envelope and month. Only values to be updated need to be specified.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			envelope	path		string				true	"ID of the envelope"
// @Param			month		path		string				true	"The month in YYYY-MM format"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations/{envelope}/{month} [patch]
func UpdateAllocation(c *gin.Context) {
	var uri AllocationURI
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var a models.Allocation
	err = models.DB.First(&a, "envelope_id = ? AND month = ?", uri.EnvelopeID.UUID, uri.Month).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var data AllocationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&a).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newAllocation(c, a)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}

// @Summary		Delete allocation
// @Description	Deletes the allocation for a specific envelope and month
// @Tags			Allocations
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			envelope	path		string	true	"ID of the envelope"
// @Param			month		path		string	true	"The month in YYYY-MM format"
// @Router			/v1/allocations/{envelope}/{month} [delete]
func DeleteAllocation(c *gin.Context) {
	var uri AllocationURI
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var a models.Allocation
	err = models.DB.First(&a, "envelope_id = ? AND month = ?", uri.EnvelopeID.UUID, uri.Month).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&a).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Preview allocations
// @Description	Computes a proposal for distributing an amount over the envelopes of a budget. Nothing is persisted, applying the proposal is done by creating allocations.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200		{object}	PreviewResponse
// @Failure		400		{object}	PreviewResponse
// @Failure		404		{object}	PreviewResponse
// @Failure		500		{object}	PreviewResponse
// @Param			preview	body		PreviewRequest	true	"Preview parameters"
// @Router			/v1/allocations/preview [post]
func PreviewAllocations(c *gin.Context) {
	var request PreviewRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreviewResponse{
			Error: &s,
		})
		return
	}

	if request.BudgetID == uuid.Nil {
		s := errBudgetIDParameter.Error()
		c.JSON(http.StatusBadRequest, PreviewResponse{
			Error: &s,
		})
		return
	}

	if request.Month.IsZero() {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, PreviewResponse{
			Error: &s,
		})
		return
	}

	if !request.Mode.Valid() {
		s := errPreviewModeInvalid.Error()
		c.JSON(http.StatusBadRequest, PreviewResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, request.BudgetID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreviewResponse{
			Error: &s,
		})
		return
	}

	envelopes, categoryNames, err := previewSnapshot(budget, request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreviewResponse{
			Error: &s,
		})
		return
	}

	preview := allocation.ComputePreview(envelopes, request.Amount, request.Mode, request.Manual,
		func(id uuid.UUID) string {
			if name, ok := categoryNames[id]; ok {
				return name
			}
			return "Unknown"
		})

	c.JSON(http.StatusOK, PreviewResponse{Data: &preview})
}

// previewSnapshot loads the envelopes of the budget and builds the snapshot
// the calculator works on. Envelopes are ordered by category name, then
// envelope name, which also fixes the order deficits are recovered in.
func previewSnapshot(budget models.Budget, request PreviewRequest) ([]allocation.Envelope, map[uuid.UUID]string, error) {
	var categories []models.Category
	err := models.DB.Where(&models.Category{BudgetID: budget.ID}).Find(&categories).Error
	if err != nil {
		return nil, nil, err
	}

	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	var envelopes []models.Envelope
	err = models.DB.
		Joins("JOIN categories ON categories.id = envelopes.category_id").
		Where("categories.budget_id = ?", budget.ID).
		Where("envelopes.archived = ?", false).
		Order("categories.name ASC, envelopes.name ASC").
		Find(&envelopes).Error
	if err != nil {
		return nil, nil, err
	}

	snapshot := make([]allocation.Envelope, 0, len(envelopes))
	for _, envelope := range envelopes {
		allocated, err := envelope.Allocated(models.DB, request.Month)
		if err != nil {
			return nil, nil, err
		}

		spent, err := envelope.Spent(models.DB, request.Month)
		if err != nil {
			return nil, nil, err
		}

		deficit := spent.Sub(allocated)
		if deficit.IsNegative() {
			deficit = decimal.Zero
		}

		available := allocated.Sub(spent)
		if available.IsNegative() {
			available = decimal.Zero
		}

		snapshot = append(snapshot, allocation.Envelope{
			ID:            envelope.ID,
			CategoryID:    envelope.CategoryID,
			Allocated:     allocated,
			Spent:         spent,
			Deficit:       deficit,
			Available:     available,
			Status:        allocation.Status(envelope.Status),
			Priority:      envelope.Priority,
			EmergencyFund: envelope.EmergencyFund,
		})
	}

	return snapshot, categoryNames, nil
}
