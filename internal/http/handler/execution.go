package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"friendgrid/internal/service"
)

// ListExecutions lists recorded executions with limit & offset.
//
// @Summary  List executions
// @Tags     executions
// @Produce  json
// @Param    limit   query     int  false  "page size"  default(10)
// @Param    offset  query     int  false  "offset"     default(0)
// @Success  200     {object}  service.ExecutionListResult
// @Failure  400     {object}  errorPayload
// @Router   /executions [get]
func ListExecutions(svc service.ExecutionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetExecution returns one execution with a presigned link to its output.
//
// @Summary  Get execution
// @Tags     executions
// @Produce  json
// @Param    id   path      string  true  "execution id"
// @Success  200  {object}  model.Execution
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /executions/{id} [get]
func GetExecution(svc service.ExecutionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		exec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(exec)
	}
}

// ExecutionData streams the archived output of an execution.
//
// @Summary  Execution output
// @Tags     executions
// @Produce  json
// @Param    id   path  string  true  "execution id"
// @Success  200
// @Failure  404  {object}  errorPayload
// @Router   /executions/{id}/data [get]
func ExecutionData(svc service.ExecutionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rc, err := svc.Data(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		c.Type("json")
		return c.SendStream(rc)
	}
}

// serviceError maps service sentinels to HTTP responses without leaking internals.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "execution not found")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrHistoryDisabled):
		return writeError(c, fiber.StatusNotImplemented, "HISTORY_DISABLED", "execution history is disabled")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
