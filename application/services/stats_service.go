package services

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	"storefront-backend/pkg/analytics"
)

// Totals are the headline counters of the dashboard.
type Totals struct {
	User    int64   `json:"user"`
	Product int64   `json:"product"`
	Order   int64   `json:"order"`
	Revenue float64 `json:"revenue"`
}

// GrowthRates are current-vs-previous calendar-month percent changes.
type GrowthRates struct {
	Revenue float64 `json:"revenue"`
	Product float64 `json:"product"`
	User    float64 `json:"user"`
	Order   float64 `json:"order"`
}

// DashboardCharts are the six-month order count and revenue series.
type DashboardCharts struct {
	Order   []float64 `json:"order"`
	Revenue []float64 `json:"revenue"`
}

// UserRatio is the male/female split of the user base.
type UserRatio struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
}

// LatestOrder is the trimmed order view shown on the dashboard; the full
// order payload is not exposed there.
type LatestOrder struct {
	ID       string             `json:"_id"`
	Discount float64            `json:"discount"`
	Amount   float64            `json:"amount"`
	Quantity int                `json:"quantity"`
	Status   domain.OrderStatus `json:"status"`
}

// DashboardStats is the composite dashboard summary payload.
type DashboardStats struct {
	Count          Totals          `json:"count"`
	CategoryShares map[string]int  `json:"categoryCount"`
	PercentChange  GrowthRates     `json:"percentChange"`
	Chart          DashboardCharts `json:"chart"`
	UserRatio      UserRatio       `json:"userRatio"`
	LatestOrders   []LatestOrder   `json:"latestTransactions"`
}

// OrderFulfillment counts orders per fulfillment stage.
type OrderFulfillment struct {
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
}

// StockAvailability splits the catalog into in-stock and out-of-stock.
type StockAvailability struct {
	InStock    int64 `json:"inStock"`
	OutOfStock int64 `json:"outOfStock"`
}

// RevenueDistribution breaks gross revenue into its cost components.
type RevenueDistribution struct {
	TotalDiscount float64 `json:"totalDiscount"`
	ShippingCost  float64 `json:"shippingCost"`
	Tax           float64 `json:"tax"`
	MarketingCost float64 `json:"marketingCost"`
	NetMargin     float64 `json:"netMargin"`
}

// AgeGroups is the three-bucket age distribution of users.
type AgeGroups struct {
	Teen  int64 `json:"teen"`  // under 20
	Adult int64 `json:"adult"` // 20 to 39
	Old   int64 `json:"old"`   // 40 and up
}

// AdminCustomer splits users by role.
type AdminCustomer struct {
	Admin    int64 `json:"admin"`
	Customer int64 `json:"customer"`
}

// PieCharts is the composite pie-chart payload.
type PieCharts struct {
	OrderFulfillment    OrderFulfillment    `json:"orderFulfillment"`
	ProductCategories   map[string]int      `json:"productCategories"`
	StockAvailability   StockAvailability   `json:"stockAvailability"`
	RevenueDistribution RevenueDistribution `json:"revenueDistribution"`
	AdminCustomer       AdminCustomer       `json:"adminCustomer"`
	AgeGroups           AgeGroups           `json:"userAgeGroup"`
}

// BarCharts is the composite bar-chart payload: six months of product and
// user creation, twelve months of orders.
type BarCharts struct {
	Users    []float64 `json:"users"`
	Products []float64 `json:"products"`
	Orders   []float64 `json:"orders"`
}

// LineCharts is the composite line-chart payload, all over twelve months.
type LineCharts struct {
	Products []float64 `json:"products"`
	Users    []float64 `json:"users"`
	Discount []float64 `json:"discount"`
	Revenue  []float64 `json:"revenue"`
}

// StatsService composes the four admin read models from store queries and
// the analytics calculators, caching each payload as a unit. The underlying
// queries of one payload have no ordering dependency and fan out
// concurrently; if any of them fails the whole composition fails, partial
// payloads are never cached or returned.
type StatsService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	orders   ports.OrderRepository
	cache    ports.Cache
	logger   *zap.Logger

	// marketingPercent is the share of gross revenue assumed spent on
	// marketing in the revenue breakdown.
	marketingPercent int

	// now is stubbed in tests to pin the calendar windows.
	now func() time.Time
}

// NewStatsService creates a stats service.
func NewStatsService(
	users ports.UserRepository,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	cache ports.Cache,
	marketingPercent int,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		users:            users,
		products:         products,
		orders:           orders,
		cache:            cache,
		logger:           logger,
		marketingPercent: marketingPercent,
		now:              time.Now,
	}
}

// monthWindow is a closed [Start, End] query range.
type monthWindow struct {
	Start time.Time
	End   time.Time
}

// calendarWindows returns the current month so far and the whole previous
// month, anchored at now.
func calendarWindows(now time.Time) (current, previous monthWindow) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	current = monthWindow{Start: monthStart, End: now}
	previous = monthWindow{
		Start: monthStart.AddDate(0, -1, 0),
		End:   monthStart.AddDate(0, 0, -1),
	}
	return current, previous
}

// DashboardSummary returns the cached dashboard payload, recomputing on miss.
func (s *StatsService) DashboardSummary(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if readCached(ctx, s.cache, keyAdminStats, &cached) {
		return &cached, nil
	}

	now := s.now()
	current, previous := calendarWindows(now)
	sixMonthsAgo := now.AddDate(0, -6, 0)

	var (
		curProducts, prevProducts int64
		curUsers, prevUsers       int64
		curOrders, prevOrders     []domain.Order
		productCount, userCount   int64
		femaleUsers               int64
		financials                []ports.OrderFinancials
		sixMonthOrders            []domain.Order
		categories                []string
		latest                    []domain.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		curProducts, err = s.products.CountCreatedBetween(gctx, current.Start, current.End)
		return err
	})
	g.Go(func() (err error) {
		prevProducts, err = s.products.CountCreatedBetween(gctx, previous.Start, previous.End)
		return err
	})
	g.Go(func() (err error) {
		curUsers, err = s.users.CountCreatedBetween(gctx, current.Start, current.End)
		return err
	})
	g.Go(func() (err error) {
		prevUsers, err = s.users.CountCreatedBetween(gctx, previous.Start, previous.End)
		return err
	})
	g.Go(func() (err error) {
		curOrders, err = s.orders.FindBetween(gctx, current.Start, current.End)
		return err
	})
	g.Go(func() (err error) {
		prevOrders, err = s.orders.FindBetween(gctx, previous.Start, previous.End)
		return err
	})
	g.Go(func() (err error) {
		productCount, err = s.products.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		userCount, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		femaleUsers, err = s.users.CountByGender(gctx, "female")
		return err
	})
	g.Go(func() (err error) {
		financials, err = s.orders.Financials(gctx)
		return err
	})
	g.Go(func() (err error) {
		sixMonthOrders, err = s.orders.FindBetween(gctx, sixMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.products.Categories(gctx)
		return err
	})
	g.Go(func() (err error) {
		latest, err = s.orders.Latest(gctx, 4)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	shares, err := s.categoryShares(ctx, categories, productCount)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, f := range financials {
		revenue += f.Total
	}

	curRevenue := orderRevenue(curOrders)
	prevRevenue := orderRevenue(prevOrders)

	samples := make([]analytics.Sample, len(sixMonthOrders))
	times := make([]time.Time, len(sixMonthOrders))
	for i, o := range sixMonthOrders {
		samples[i] = analytics.Sample{At: o.CreatedAt, Value: o.Total}
		times[i] = o.CreatedAt
	}

	latestOrders := make([]LatestOrder, len(latest))
	for i, o := range latest {
		latestOrders[i] = LatestOrder{
			ID:       o.ID,
			Discount: o.Discount,
			Amount:   o.Total,
			Quantity: len(o.Items),
			Status:   o.Status,
		}
	}

	stats := &DashboardStats{
		Count: Totals{
			User:    userCount,
			Product: productCount,
			Order:   int64(len(financials)),
			Revenue: revenue,
		},
		CategoryShares: shares,
		PercentChange: GrowthRates{
			Revenue: analytics.PercentChange(curRevenue, prevRevenue),
			Product: analytics.PercentChange(float64(curProducts), float64(prevProducts)),
			User:    analytics.PercentChange(float64(curUsers), float64(prevUsers)),
			Order:   analytics.PercentChange(float64(len(curOrders)), float64(len(prevOrders))),
		},
		Chart: DashboardCharts{
			Order:   analytics.MonthlyCounts(times, 6, now),
			Revenue: analytics.MonthlySums(samples, 6, now),
		},
		UserRatio: UserRatio{
			Male:   userCount - femaleUsers,
			Female: femaleUsers,
		},
		LatestOrders: latestOrders,
	}

	writeCached(ctx, s.cache, s.logger, keyAdminStats, stats)
	return stats, nil
}

// PieChartData returns the cached pie-chart payload, recomputing on miss.
func (s *StatsService) PieChartData(ctx context.Context) (*PieCharts, error) {
	var cached PieCharts
	if readCached(ctx, s.cache, keyAdminPieCharts, &cached) {
		return &cached, nil
	}

	var (
		processing, shipped, delivered int64
		categories                     []string
		productCount, outOfStock       int64
		financials                     []ports.OrderFinancials
		birthDates                     []time.Time
		adminUsers, customerUsers      int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		processing, err = s.orders.CountByStatus(gctx, domain.StatusProcessing)
		return err
	})
	g.Go(func() (err error) {
		shipped, err = s.orders.CountByStatus(gctx, domain.StatusShipped)
		return err
	})
	g.Go(func() (err error) {
		delivered, err = s.orders.CountByStatus(gctx, domain.StatusDelivered)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.products.Categories(gctx)
		return err
	})
	g.Go(func() (err error) {
		productCount, err = s.products.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		outOfStock, err = s.products.CountOutOfStock(gctx)
		return err
	})
	g.Go(func() (err error) {
		financials, err = s.orders.Financials(gctx)
		return err
	})
	g.Go(func() (err error) {
		birthDates, err = s.users.BirthDates(gctx)
		return err
	})
	g.Go(func() (err error) {
		adminUsers, err = s.users.CountByRole(gctx, domain.RoleAdmin)
		return err
	})
	g.Go(func() (err error) {
		customerUsers, err = s.users.CountByRole(gctx, domain.RoleUser)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	shares, err := s.categoryShares(ctx, categories, productCount)
	if err != nil {
		return nil, err
	}

	var gross, discount, shipping, tax float64
	for _, f := range financials {
		gross += f.Total
		discount += f.Discount
		shipping += f.ShippingCharges
		tax += f.Tax
	}
	marketing := math.Round(gross * float64(s.marketingPercent) / 100)

	now := s.now()
	var ages AgeGroups
	for _, dob := range birthDates {
		switch age := domain.AgeAt(dob, now); {
		case age < 20:
			ages.Teen++
		case age < 40:
			ages.Adult++
		default:
			ages.Old++
		}
	}

	charts := &PieCharts{
		OrderFulfillment: OrderFulfillment{
			Processing: processing,
			Shipped:    shipped,
			Delivered:  delivered,
		},
		ProductCategories: shares,
		StockAvailability: StockAvailability{
			InStock:    productCount - outOfStock,
			OutOfStock: outOfStock,
		},
		RevenueDistribution: RevenueDistribution{
			TotalDiscount: discount,
			ShippingCost:  shipping,
			Tax:           tax,
			MarketingCost: marketing,
			NetMargin:     gross - discount - shipping - tax - marketing,
		},
		AdminCustomer: AdminCustomer{
			Admin:    adminUsers,
			Customer: customerUsers,
		},
		AgeGroups: ages,
	}

	writeCached(ctx, s.cache, s.logger, keyAdminPieCharts, charts)
	return charts, nil
}

// BarChartData returns the cached bar-chart payload, recomputing on miss.
func (s *StatsService) BarChartData(ctx context.Context) (*BarCharts, error) {
	var cached BarCharts
	if readCached(ctx, s.cache, keyAdminBarCharts, &cached) {
		return &cached, nil
	}

	now := s.now()
	sixMonthsAgo := now.AddDate(0, -6, 0)
	twelveMonthsAgo := now.AddDate(0, -12, 0)

	var productTimes, userTimes, orderTimes []time.Time

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		productTimes, err = s.products.CreationTimes(gctx, sixMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		userTimes, err = s.users.CreationTimes(gctx, sixMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		orderTimes, err = s.orders.CreationTimes(gctx, twelveMonthsAgo, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	charts := &BarCharts{
		Users:    analytics.MonthlyCounts(userTimes, 6, now),
		Products: analytics.MonthlyCounts(productTimes, 6, now),
		Orders:   analytics.MonthlyCounts(orderTimes, 12, now),
	}

	writeCached(ctx, s.cache, s.logger, keyAdminBarCharts, charts)
	return charts, nil
}

// LineChartData returns the cached line-chart payload, recomputing on miss.
func (s *StatsService) LineChartData(ctx context.Context) (*LineCharts, error) {
	var cached LineCharts
	if readCached(ctx, s.cache, keyAdminLineCharts, &cached) {
		return &cached, nil
	}

	now := s.now()
	twelveMonthsAgo := now.AddDate(0, -12, 0)

	var (
		productTimes, userTimes []time.Time
		orders                  []domain.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		productTimes, err = s.products.CreationTimes(gctx, twelveMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		userTimes, err = s.users.CreationTimes(gctx, twelveMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.orders.FindBetween(gctx, twelveMonthsAgo, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	discounts := make([]analytics.Sample, len(orders))
	revenues := make([]analytics.Sample, len(orders))
	for i, o := range orders {
		discounts[i] = analytics.Sample{At: o.CreatedAt, Value: o.Discount}
		revenues[i] = analytics.Sample{At: o.CreatedAt, Value: o.Total}
	}

	charts := &LineCharts{
		Products: analytics.MonthlyCounts(productTimes, 12, now),
		Users:    analytics.MonthlyCounts(userTimes, 12, now),
		Discount: analytics.MonthlySums(discounts, 12, now),
		Revenue:  analytics.MonthlySums(revenues, 12, now),
	}

	writeCached(ctx, s.cache, s.logger, keyAdminLineCharts, charts)
	return charts, nil
}

// categoryShares counts products per category concurrently and converts the
// counts into shares of the whole catalog.
func (s *StatsService) categoryShares(ctx context.Context, categories []string, productCount int64) (map[string]int, error) {
	counts := make([]int64, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() (err error) {
			counts[i], err = s.products.CountByCategory(gctx, category)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCategory := make(map[string]int64, len(categories))
	for i, category := range categories {
		byCategory[category] = counts[i]
	}

	return analytics.CategoryShares(byCategory, productCount), nil
}

func orderRevenue(orders []domain.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return total
}
