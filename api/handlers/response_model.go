package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/to-dy/pgapex-builder/api/client"
)

type ApiOkResponse struct {
	Data interface{} `json:"data,omitempty"`
}

type ApiErrorResponse struct {
	Errors client.Errors `json:"errors"`
}

func getBadRequestError(detail string, source *client.ErrorSource) *client.ErrorObject {
	return &client.ErrorObject{
		Status: fiber.StatusBadRequest,
		Title:  "Bad Request",
		Detail: detail,
		Source: source,
	}
}
