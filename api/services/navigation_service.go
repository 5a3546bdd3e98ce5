package services

import (
	"context"

	"github.com/to-dy/pgapex-builder/api/client"
)

const navigationsPath = "api/navigation/navigations.json"

type NavigationService struct {
	api Requester
}

func NewNavigationService(api Requester) *NavigationService {
	return &NavigationService{api: api}
}

func (s *NavigationService) GetNavigations(ctx context.Context, applicationID string) (*client.Response, error) {
	return s.api.Get(ctx, navigationsPath, map[string]string{"applicationId": applicationID})
}
