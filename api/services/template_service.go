package services

import (
	"context"

	"github.com/to-dy/pgapex-builder/api/client"
)

const (
	templatesPath           = "api/template/templates.json"
	pageTemplatesPath       = "api/template/page-templates.json"
	regionTemplatesPath     = "api/template/region-templates.json"
	navigationTemplatesPath = "api/template/navigation-templates.json"
	themesPath              = "api/template/themes.json"
)

type TemplateService struct {
	api Requester
}

func NewTemplateService(api Requester) *TemplateService {
	return &TemplateService{api: api}
}

func (s *TemplateService) GetTemplates(ctx context.Context, themeID string) (*client.Response, error) {
	return s.api.Get(ctx, templatesPath, map[string]string{"themeId": themeID})
}

func (s *TemplateService) GetPageTemplates(ctx context.Context) (*client.Response, error) {
	return s.api.Get(ctx, pageTemplatesPath, nil)
}

func (s *TemplateService) GetRegionTemplates(ctx context.Context) (*client.Response, error) {
	return s.api.Get(ctx, regionTemplatesPath, nil)
}

func (s *TemplateService) GetNavigationTemplates(ctx context.Context) (*client.Response, error) {
	return s.api.Get(ctx, navigationTemplatesPath, nil)
}

func (s *TemplateService) GetThemes(ctx context.Context, applicationID string) (*client.Response, error) {
	return s.api.Get(ctx, themesPath, map[string]string{"applicationId": applicationID})
}
