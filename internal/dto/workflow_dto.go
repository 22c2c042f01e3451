package dto

// WorkflowSnapshot is the on-demand dashboard aggregate. It is assembled from
// independent queries with no transactional guarantee — display only, never
// used for reconciliation.
type WorkflowSnapshot struct {
	PendingOrdersCount int64           `json:"pending_orders_count"`
	OpenDealsCount     int64           `json:"open_deals_count"`
	RecentOrders       []OrderResponse `json:"recent_orders"`
	OpenBrokerDeals    []DealResponse  `json:"open_broker_deals"`
	TotalProducts      int64           `json:"total_products"`
	TotalClients       int64           `json:"total_clients"`
	TotalSuppliers     int64           `json:"total_suppliers"`
	LowStockCount      int64           `json:"low_stock_count"`
}
