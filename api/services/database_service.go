package services

import (
	"context"

	"github.com/to-dy/pgapex-builder/api/client"
)

const schemasPath = "api/database/schemas.json"

type DatabaseService struct {
	api Requester
}

func NewDatabaseService(api Requester) *DatabaseService {
	return &DatabaseService{api: api}
}

func (s *DatabaseService) GetSchemas(ctx context.Context) (*client.Response, error) {
	return s.api.Get(ctx, schemasPath, nil)
}
