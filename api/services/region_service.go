package services

import (
	"context"

	"github.com/to-dy/pgapex-builder/api/client"
)

const (
	navigationRegionPath     = "api/region/navigation-region.json"
	saveNavigationRegionPath = "api/region/save-navigation-region.json"
)

type RegionService struct {
	api Requester
}

func NewRegionService(api Requester) *RegionService {
	return &RegionService{api: api}
}

func (s *RegionService) GetNavigationRegion(ctx context.Context, regionID string) (*client.Response, error) {
	return s.api.Get(ctx, navigationRegionPath, map[string]string{"regionId": regionID})
}

// SaveNavigationRegion creates the region when req.RegionID is nil and
// updates it otherwise. Validation is left to the upstream.
func (s *RegionService) SaveNavigationRegion(ctx context.Context, req NavigationRegionRequest) (*client.Response, error) {
	return s.api.Post(ctx, saveNavigationRegionPath, req)
}
