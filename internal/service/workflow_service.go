package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const snapshotCacheKey = "workflow:snapshot"

// recentLimit caps the dashboard's recent-orders and open-deals lists.
const recentLimit = 5

// WorkflowService produces the dashboard snapshot: counts and short recent
// lists composed from independent queries. The snapshot is advisory — there
// is no transaction across the sub-queries and minor staleness between them
// is acceptable.
type WorkflowService interface {
	GetSnapshot(ctx context.Context) (*dto.WorkflowSnapshot, error)
}

type workflowService struct {
	dealRepo     repository.DealRepository
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository

	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewWorkflowService wires the aggregator. rdb may be nil and cacheTTL zero,
// in which case every snapshot hits the store directly.
func NewWorkflowService(
	dealRepo repository.DealRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) WorkflowService {
	return &workflowService{
		dealRepo:     dealRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		rdb:          rdb,
		cacheTTL:     cacheTTL,
	}
}

func (s *workflowService) GetSnapshot(ctx context.Context) (*dto.WorkflowSnapshot, error) {
	// Read-through cache. Cache problems degrade to direct queries — the
	// snapshot must keep working when redis is down.
	if s.rdb != nil && s.cacheTTL > 0 {
		if raw, err := s.rdb.Get(ctx, snapshotCacheKey).Bytes(); err == nil {
			var cached dto.WorkflowSnapshot
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil && s.cacheTTL > 0 {
		if raw, err := json.Marshal(snap); err == nil {
			if err := s.rdb.Set(ctx, snapshotCacheKey, raw, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("workflow snapshot cache write failed")
			}
		}
	}
	return snap, nil
}

func (s *workflowService) buildSnapshot(ctx context.Context) (*dto.WorkflowSnapshot, error) {
	snap := &dto.WorkflowSnapshot{
		RecentOrders:    []dto.OrderResponse{},
		OpenBrokerDeals: []dto.DealResponse{},
	}

	var err error
	if snap.PendingOrdersCount, err = s.orderRepo.CountPending(ctx); err != nil {
		return nil, err
	}
	if snap.OpenDealsCount, err = s.dealRepo.CountOpen(ctx); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListPending(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		snap.RecentOrders = append(snap.RecentOrders, *orderToResponse(&orders[i]))
	}

	deals, err := s.dealRepo.ListOpen(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	for i := range deals {
		d := &deals[i]
		resp := dealToResponse(d)
		if d.Client != nil {
			resp.ClientName = &d.Client.Name
		}
		if d.Supplier != nil {
			resp.SupplierName = &d.Supplier.Name
		}
		snap.OpenBrokerDeals = append(snap.OpenBrokerDeals, *resp)
	}

	if snap.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if snap.TotalClients, err = s.clientRepo.Count(ctx); err != nil {
		return nil, err
	}
	if snap.TotalSuppliers, err = s.supplierRepo.Count(ctx); err != nil {
		return nil, err
	}
	if snap.LowStockCount, err = s.productRepo.CountLowStock(ctx); err != nil {
		return nil, err
	}

	return snap, nil
}
