package store

import (
	"context"
	"fmt"
	"time"

	"leasedesk/internal/utils"
	"leasedesk/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

const leaseTableName = "leasedesk.leases"

type LeaseRepository struct {
	pool *pgxpool.Pool
}

func NewLeaseRepository(pool *pgxpool.Pool) *LeaseRepository {
	return &LeaseRepository{pool: pool}
}

// CreateLease inserts a new lease row. Every successful signing pipeline
// run creates exactly one; there is no dedup key, so repeat submissions
// create repeat rows.
func (r *LeaseRepository) CreateLease(ctx context.Context, lease *types.Lease) error {
	if lease.ID == "" {
		lease.ID = utils.NanoID()
	}
	if lease.LeaseStatus == "" {
		lease.LeaseStatus = types.LeaseStatusPending
	}
	lease.CreatedAt = time.Now()

	query, args, err := psql().
		Insert(leaseTableName).
		SetMap(utils.StructToMap(lease)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create lease query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create lease: %w", err)
	}

	return nil
}
