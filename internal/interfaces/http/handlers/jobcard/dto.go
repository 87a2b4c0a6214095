package jobcard

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/application/jobcard/usecases"
	"jobdesk/internal/shared/errors"
)

// customerInfoRequest mirrors the scalar form fields. The handler
// rejects obviously incomplete submissions before reaching the use
// case, which validates again.
type customerInfoRequest struct {
	Customer string `json:"customer" validate:"required,max=200"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone" validate:"required,max=50"`
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type listJobCardsRequest struct {
	Grouped  bool
	Status   string
	Customer string
	Page     int
	PageSize int
}

func parseListJobCardsRequest(c *gin.Context) listJobCardsRequest {
	req := listJobCardsRequest{
		Grouped:  c.Query("grouped") == "true",
		Status:   c.Query("status"),
		Customer: c.Query("customer"),
		Page:     1,
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		req.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("page_size")); err == nil && pageSize > 0 && pageSize <= 200 {
		req.PageSize = pageSize
	}
	return req
}

func (r listJobCardsRequest) toQuery() usecases.ListJobCardsQuery {
	return usecases.ListJobCardsQuery{
		Grouped:  r.Grouped,
		Status:   r.Status,
		Customer: r.Customer,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseJobCardID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid job card ID")
	}
	return uint(id), nil
}
