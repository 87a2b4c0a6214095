package jobcard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/application/jobcard/usecases"
	"jobdesk/internal/shared/logger"
	"jobdesk/internal/shared/utils"
)

type JobCardHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	editTicketUC    usecases.EditTicketExecutor
	listJobCardsUC  usecases.ListJobCardsExecutor
	getTicketUC     usecases.GetTicketExecutor
	deleteJobCardUC usecases.DeleteJobCardExecutor
	deleteTicketUC  usecases.DeleteTicketExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	logger          logger.Interface
}

func NewJobCardHandler(
	createTicketUC usecases.CreateTicketExecutor,
	editTicketUC usecases.EditTicketExecutor,
	listJobCardsUC usecases.ListJobCardsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	deleteJobCardUC usecases.DeleteJobCardExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
) *JobCardHandler {
	return &JobCardHandler{
		createTicketUC:  createTicketUC,
		editTicketUC:    editTicketUC,
		listJobCardsUC:  listJobCardsUC,
		getTicketUC:     getTicketUC,
		deleteJobCardUC: deleteJobCardUC,
		deleteTicketUC:  deleteTicketUC,
		changeStatusUC:  changeStatusUC,
		logger:          logger.NewLogger(),
	}
}

// CreateJobCard handles POST /jobcards
func (h *JobCardHandler) CreateJobCard(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.logger.Warnw("invalid multipart form for create job card", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "a multipart form is required")
		return
	}

	decoded := DecodeJobCardForm(form)

	if err := utils.ValidateStruct(customerInfoRequest{
		Customer: decoded.Customer,
		Address:  decoded.Address,
		Phone:    decoded.Phone,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Customer: decoded.Customer,
		Address:  decoded.Address,
		Phone:    decoded.Phone,
		Items:    decoded.Items,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Job card logged successfully")
}

// EditTicket handles POST /jobcards/ticket/:ticket_no
func (h *JobCardHandler) EditTicket(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.logger.Warnw("invalid multipart form for edit ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "a multipart form is required")
		return
	}

	decoded := DecodeJobCardForm(form)

	if err := utils.ValidateStruct(customerInfoRequest{
		Customer: decoded.Customer,
		Address:  decoded.Address,
		Phone:    decoded.Phone,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.editTicketUC.Execute(c.Request.Context(), usecases.EditTicketCommand{
		TicketNo:            c.Param("ticket_no"),
		Customer:            decoded.Customer,
		Address:             decoded.Address,
		Phone:               decoded.Phone,
		Items:               decoded.Items,
		DeleteAttachmentIDs: decoded.DeleteAttachmentIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job card updated successfully", result)
}

// ListJobCards handles GET /jobcards
func (h *JobCardHandler) ListJobCards(c *gin.Context) {
	req := parseListJobCardsRequest(c)

	result, err := h.listJobCardsUC.Execute(c.Request.Context(), req.toQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if req.Grouped {
		utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
		return
	}
	utils.ListSuccessResponse(c, result.Cards, result.Total, req.Page, req.PageSize)
}

// GetTicket handles GET /jobcards/ticket/:ticket_no
func (h *JobCardHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketNo: c.Param("ticket_no"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteJobCard handles DELETE /jobcards/:id
func (h *JobCardHandler) DeleteJobCard(c *gin.Context) {
	jobCardID, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteJobCardUC.Execute(c.Request.Context(), usecases.DeleteJobCardCommand{
		JobCardID: jobCardID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job card deleted successfully", result)
}

// DeleteTicket handles DELETE /jobcards/ticket/:ticket_no
func (h *JobCardHandler) DeleteTicket(c *gin.Context) {
	result, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketNo: c.Param("ticket_no"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job card deleted successfully", result)
}

// UpdateStatus handles PATCH /jobcards/:id/status
func (h *JobCardHandler) UpdateStatus(c *gin.Context) {
	jobCardID, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		JobCardID: jobCardID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}
