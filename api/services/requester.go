package services

import (
	"context"

	"github.com/to-dy/pgapex-builder/api/client"
)

// Requester performs upstream calls. *client.Client satisfies it.
type Requester interface {
	Get(ctx context.Context, path string, params map[string]string) (*client.Response, error)
	Post(ctx context.Context, path string, body any) (*client.Response, error)
}
