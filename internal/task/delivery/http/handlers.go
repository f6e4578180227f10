package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. All five fields are required.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} taskResp
// @Failure     400  {object} response.ErrorResp "Missing field"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, msgFailedCreate))
		return
	}

	response.Created(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns every task matching the optional filters, sorted ascending.
// @Tags        Tasks
// @Produce     json
// @Param       priority query string false "Exact priority match"
// @Param       status   query string false "Exact status match"
// @Param       sortBy   query string false "Sort field (default: startTime)" Enums(title, startTime, endTime, priority, status, createdAt, updatedAt)
// @Success     200 {array}  taskResp
// @Failure     400 {object} response.ErrorResp "Invalid sortBy"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, msgFailedList))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Task statistics
// @Description Completion percentages and pending time figures (hours) over all tasks.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err, msgFailedStats))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, msgFailedDetail))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Merges the supplied fields into the task. Omitted fields keep their values.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, msgFailedUpdate))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.MessageResp "Deleted"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err, msgFailedDelete))
		return
	}

	response.Message(c, msgTaskDeleted)
}
