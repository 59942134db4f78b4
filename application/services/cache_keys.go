package services

// Cache key vocabulary. Keys are deterministic strings; every cached
// artifact in the system is reachable from these constants and builders,
// which keeps the invalidator's purge sets exact.
const (
	keyLatestProducts  = "latest-products"
	keyCategories      = "categories"
	keyAllProducts     = "all-products"
	keyAllOrders       = "all-orders"
	keyAdminStats      = "admin-stats"
	keyAdminPieCharts  = "admin-pie-charts"
	keyAdminBarCharts  = "admin-bar-charts"
	keyAdminLineCharts = "admin-line-charts"
)

func productKey(id string) string { return "product-" + id }

func orderKey(id string) string { return "order-" + id }

func myOrdersKey(userID string) string { return "my-orders-" + userID }
