package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "task-tracker/pkg/errors"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := bindBody(c, &req); err != nil {
		h.l.Warnf(c.Request.Context(), "processCreateReq bind: %v", err)
		return req, pkgErrors.NewBadRequestError(msgInvalidBody)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, nil
}

// processListReq binds the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, nil
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := bindBody(c, &req); err != nil {
		h.l.Warnf(c.Request.Context(), "processUpdateReq bind: %v", err)
		return req, pkgErrors.NewBadRequestError(msgInvalidBody)
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewNotFoundError(msgTaskNotFound)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, nil
}

// bindBody decodes a JSON body. A missing body reads as {}.
func bindBody(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
