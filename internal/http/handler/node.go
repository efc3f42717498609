package handler

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"friendgrid/internal/node"
	"friendgrid/internal/service"
)

// DescribeNode returns the node metadata.
//
// @Summary  Node description
// @Tags     node
// @Produce  json
// @Success  200  {object}  node.Description
// @Router   /node [get]
func DescribeNode(n *node.FriendGrid) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(n.Description())
	}
}

// RunTest executes the node once through the local harness.
//
// The JSON body may override resource, operation, email and additionalFields;
// an items array adds one input item per element. An empty body runs the defaults.
//
// @Summary  Run the node
// @Tags     node
// @Accept   json
// @Produce  json
// @Param    body  body      map[string]interface{}  false  "parameter overrides"
// @Success  200   {array}   []model.Item
// @Failure  400   {object}  errorPayload
// @Failure  500   {object}  map[string]string
// @Router   /test [post]
func RunTest(svc service.ExecutionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var overrides map[string]any
		if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
			if err := json.Unmarshal(body, &overrides); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
			}
		}

		out, err := svc.Run(c.UserContext(), overrides)
		if err != nil {
			if errors.Is(err, service.ErrInvalidRequest) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", err.Error())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(out)
	}
}
