package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gookit/goutil/arrutil"

	"github.com/to-dy/pgapex-builder/api/client"
	"github.com/to-dy/pgapex-builder/api/pages/navigationregion"
	"github.com/to-dy/pgapex-builder/api/services"
)

const apiPrefix = "/api"

var supportedModes = []string{string(navigationregion.ModeCreate), string(navigationregion.ModeEdit)}

type RegionHandlers struct {
	deps navigationregion.Deps
}

func NewRegionHandlers(deps navigationregion.Deps) *RegionHandlers {
	return &RegionHandlers{deps: deps}
}

// ShowNavigationRegion answers the view state of the create or edit page:
// dropdown options plus, when editing, the stored region.
func (h *RegionHandlers) ShowNavigationRegion(c *fiber.Ctx) error {
	page, err := h.controller(c)
	if err != nil {
		return err
	}

	if err := page.Init(c.UserContext()); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(&ApiOkResponse{Data: page.State()})
}

// SaveNavigationRegion submits the region in the request body. Rejected
// regions come back with 422 and the view state to render the form again.
func (h *RegionHandlers) SaveNavigationRegion(c *fiber.Ctx) error {
	page, err := h.controller(c)
	if err != nil {
		return err
	}

	var region services.NavigationRegion
	if err := c.BodyParser(&region); err != nil {
		log.Debugw("invalid navigation region body", "error", err)

		return c.Status(fiber.StatusBadRequest).JSON(ApiErrorResponse{
			Errors: client.Errors{getBadRequestError("The request body must be a navigation region.", &client.ErrorSource{Pointer: "/region"})},
		})
	}

	page.SetRegion(region)

	ctx := c.UserContext()

	outcome, err := page.Save(ctx)
	if err != nil {
		return err
	}

	if outcome.Saved() {
		c.Location(outcome.Location)

		return c.Status(fiber.StatusOK).JSON(&ApiOkResponse{
			Data: fiber.Map{"location": outcome.Location},
		})
	}

	// the form is shown again, so it needs its options
	if err := page.LoadOptions(ctx); err != nil {
		return err
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(&ApiOkResponse{Data: page.State()})
}

func (h *RegionHandlers) controller(c *fiber.Ctx) (*navigationregion.Controller, error) {
	path := strings.TrimRight(strings.TrimPrefix(c.Path(), apiPrefix), "/")

	mode := path[strings.LastIndex(path, "/")+1:]
	if !arrutil.Contains(supportedModes, mode) {
		log.Debugw("unsupported page mode", "path", path)
		return nil, fiber.ErrNotFound
	}

	route := navigationregion.RouteParams{
		ApplicationID: c.Params("applicationId"),
		PageID:        c.Params("pageId"),
		DisplayPoint:  c.Params("displayPoint"),
		RegionID:      c.Params("regionId"),
	}

	return navigationregion.New(h.deps, path, route), nil
}

func Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(&ApiOkResponse{Data: fiber.Map{"status": "ok"}})
}
