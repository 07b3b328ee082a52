package store

import (
	"context"
	"fmt"
	"time"

	"leasedesk/internal/utils"
	"leasedesk/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyTableName = "leasedesk.properties"

var propertyColumns = utils.StructTagValues(types.Property{})

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

// PropertyByEmail looks up the property registered under a landlord's
// email address.
func (r *PropertyRepository) PropertyByEmail(ctx context.Context, email string) (*types.Property, error) {
	query, args, err := psql().
		Select(propertyColumns...).
		From(propertyTableName).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate property-by-email query: %w", err)
	}

	var property types.Property
	err = pgxscan.Get(ctx, r.pool, &property, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to fetch property: %w", err)
	}

	return &property, nil
}

func (r *PropertyRepository) Create(ctx context.Context, property *types.Property) error {
	if property.ID == "" {
		property.ID = utils.NanoID()
	}

	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	query, args, err := psql().
		Insert(propertyTableName).
		SetMap(utils.StructToMap(property)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create property query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}
