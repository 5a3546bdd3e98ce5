// Package navigationregion drives the page that creates and edits a
// navigation region: it loads the dropdown options, binds the region being
// edited and saves it.
package navigationregion

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/to-dy/pgapex-builder/api/client"
	"github.com/to-dy/pgapex-builder/api/services"
	"github.com/to-dy/pgapex-builder/api/services/formerror"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

type TemplateSource interface {
	GetRegionTemplates(ctx context.Context) (*client.Response, error)
	GetNavigationTemplates(ctx context.Context) (*client.Response, error)
}

type NavigationSource interface {
	GetNavigations(ctx context.Context, applicationID string) (*client.Response, error)
}

type RegionStore interface {
	GetNavigationRegion(ctx context.Context, regionID string) (*client.Response, error)
	SaveNavigationRegion(ctx context.Context, req services.NavigationRegionRequest) (*client.Response, error)
}

type Deps struct {
	Templates   TemplateSource
	Navigations NavigationSource
	Regions     RegionStore
}

// RouteParams are the identifiers taken from the page URL. Missing values
// are empty strings.
type RouteParams struct {
	ApplicationID string
	PageID        string
	DisplayPoint  string
	RegionID      string
}

type ViewState struct {
	Mode                Mode                      `json:"mode"`
	Region              services.NavigationRegion `json:"region"`
	RegionTemplates     []services.Template       `json:"regionTemplates"`
	NavigationTemplates []services.Template       `json:"navigationTemplates"`
	Navigations         []services.Navigation     `json:"navigations"`
	FormError           *formerror.FormError      `json:"formError"`
}

// SaveOutcome tells the caller where to go after a save. Location is empty
// when the upstream rejected the region; FormError then holds the reasons.
type SaveOutcome struct {
	Location  string
	FormError *formerror.FormError
}

func (o SaveOutcome) Saved() bool {
	return o.Location != ""
}

type Controller struct {
	deps  Deps
	route RouteParams
	path  string
	state ViewState
}

// New builds a controller for the page at path. The mode is fixed here: a
// path ending in /create creates a region, anything else edits one.
func New(deps Deps, path string, route RouteParams) *Controller {
	mode := ModeEdit
	if isCreatePath(path) {
		mode = ModeCreate
	}

	return &Controller{
		deps:  deps,
		route: route,
		path:  path,
		state: ViewState{
			Mode:                mode,
			RegionTemplates:     []services.Template{},
			NavigationTemplates: []services.Template{},
			Navigations:         []services.Navigation{},
			FormError:           formerror.Empty(),
		},
	}
}

func isCreatePath(path string) bool {
	return strings.HasSuffix(path, "/create")
}

func isEditPath(path string) bool {
	return strings.HasSuffix(path, "/edit")
}

func (c *Controller) Mode() Mode {
	return c.state.Mode
}

func (c *Controller) Route() RouteParams {
	return c.route
}

// State returns the view state. It must not be read while Init or
// LoadOptions is running.
func (c *Controller) State() ViewState {
	return c.state
}

func (c *Controller) SetRegion(region services.NavigationRegion) {
	c.state.Region = region
}

// Init loads the dropdown options and, on an edit page, the region itself.
// Loaders run concurrently and each writes only its own part of the view
// state; a failing loader does not stop the others. The first transport
// error is returned once every loader has finished.
func (c *Controller) Init(ctx context.Context) error {
	g := &errgroup.Group{}

	c.goLoadOptions(ctx, g)
	if isEditPath(c.path) {
		g.Go(func() error { return c.loadRegion(ctx) })
	}

	return g.Wait()
}

// LoadOptions loads only the dropdown options, keeping the bound region.
func (c *Controller) LoadOptions(ctx context.Context) error {
	g := &errgroup.Group{}
	c.goLoadOptions(ctx, g)
	return g.Wait()
}

func (c *Controller) goLoadOptions(ctx context.Context, g *errgroup.Group) {
	g.Go(func() error { return c.loadRegionTemplates(ctx) })
	g.Go(func() error { return c.loadNavigationTemplates(ctx) })
	g.Go(func() error { return c.loadNavigations(ctx) })
}

func (c *Controller) loadRegionTemplates(ctx context.Context) error {
	res, err := c.deps.Templates.GetRegionTemplates(ctx)
	if err != nil {
		return errors.Wrap(err, "load region templates")
	}
	if ctx.Err() != nil {
		return nil
	}
	c.state.RegionTemplates = client.DataOrDefault(res, []services.Template{})
	return nil
}

func (c *Controller) loadNavigationTemplates(ctx context.Context) error {
	res, err := c.deps.Templates.GetNavigationTemplates(ctx)
	if err != nil {
		return errors.Wrap(err, "load navigation templates")
	}
	if ctx.Err() != nil {
		return nil
	}
	c.state.NavigationTemplates = client.DataOrDefault(res, []services.Template{})
	return nil
}

func (c *Controller) loadNavigations(ctx context.Context) error {
	res, err := c.deps.Navigations.GetNavigations(ctx, c.route.ApplicationID)
	if err != nil {
		return errors.Wrap(err, "load navigations")
	}
	if ctx.Err() != nil {
		return nil
	}
	c.state.Navigations = client.DataOrDefault(res, []services.Navigation{})
	return nil
}

func (c *Controller) loadRegion(ctx context.Context) error {
	res, err := c.deps.Regions.GetNavigationRegion(ctx, c.route.RegionID)
	if err != nil {
		return errors.Wrapf(err, "load navigation region %s", c.route.RegionID)
	}
	if ctx.Err() != nil {
		return nil
	}
	c.state.Region = client.DataOrDefault(res, services.NavigationRegion{})
	return nil
}

// Save submits the bound region as is. On success the outcome points at the
// region list of the page; otherwise the upstream's validation errors are
// published on the view state.
func (c *Controller) Save(ctx context.Context) (SaveOutcome, error) {
	region := c.state.Region

	res, err := c.deps.Regions.SaveNavigationRegion(ctx, services.NavigationRegionRequest{
		PageID:             optional(c.route.PageID),
		DisplayPoint:       optional(c.route.DisplayPoint),
		RegionID:           optional(c.route.RegionID),
		Name:               region.Name,
		Sequence:           region.Sequence,
		RegionTemplate:     region.RegionTemplate,
		NavigationTemplate: region.NavigationTemplate,
		NavigationType:     region.NavigationType,
		Navigation:         region.Navigation,
		RepeatLastLevel:    region.RepeatLastLevel,
	})
	if err != nil {
		return SaveOutcome{}, errors.Wrap(err, "save navigation region")
	}

	if !res.HasErrors() {
		location := RegionsPath(c.route.ApplicationID, c.route.PageID)
		log.Infow("navigation region saved", "application", c.route.ApplicationID, "page", c.route.PageID, "mode", c.state.Mode)
		return SaveOutcome{Location: location}, nil
	}

	c.state.FormError = formerror.Parse(res)
	log.Debugw("navigation region rejected", "fields", c.state.FormError.Fields())

	return SaveOutcome{FormError: c.state.FormError}, nil
}

// RegionsPath is the region list of a page in the application builder.
func RegionsPath(applicationID, pageID string) string {
	return "/application-builder/app/" + applicationID + "/pages/" + pageID + "/regions"
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
