package buses

import (
	"context"
	"fmt"

	"duka/internal/shared/schema"
	"duka/pkg/hasura"
)

type Repository interface {
	GetBus(ctx context.Context, id string) (*Bus, error)
}

type repository struct {
	gql hasura.Executor
}

func NewRepository(gql hasura.Executor) Repository {
	return &repository{gql: gql}
}

func (r *repository) GetBus(ctx context.Context, id string) (*Bus, error) {
	resp, err := hasura.Do(ctx, r.gql, schema.GetBus, map[string]interface{}{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get bus %s: %w", id, err)
	}

	var data struct {
		Bus *Bus `json:"bus_by_pk"`
	}
	if err := resp.Decode(&data); err != nil {
		return nil, fmt.Errorf("get bus %s: %w", id, err)
	}
	if data.Bus == nil {
		return nil, &NotFoundError{ID: id}
	}

	return data.Bus, nil
}
