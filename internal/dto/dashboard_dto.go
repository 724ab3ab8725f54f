package dto

import "github.com/shopspring/decimal"

// IndicatorsResponse carries the four headline dashboard numbers.
// Weight totals are kilogram-normalized and rounded to two decimals;
// the sales value total is the raw sum.
type IndicatorsResponse struct {
	TotalScheduledWeight decimal.Decimal `json:"totalScheduledWeight"`
	TotalCollectedWeight decimal.Decimal `json:"totalCollectedWeight"`
	TotalSoldWeight      decimal.Decimal `json:"totalSoldWeight"`
	TotalSalesValue      decimal.Decimal `json:"totalSalesValue"`
}

// MonthlyMovementEntry aggregates collections and sales for one calendar
// month (YYYY-MM). A month present in only one of the two data sets still
// appears, with zeros on the other side.
type MonthlyMovementEntry struct {
	Month             string          `json:"month"`
	CollectionsWeight decimal.Decimal `json:"collectionsWeight"`
	SalesWeight       decimal.Decimal `json:"salesWeight"`
	CollectionsValue  decimal.Decimal `json:"collectionsValue"`
	SalesValue        decimal.Decimal `json:"salesValue"`
}

type CollectionsBySupplierEntry struct {
	SupplierID       uint            `json:"supplierId"`
	SupplierName     string          `json:"supplierName"`
	TotalCollections int             `json:"totalCollections"`
	TotalWeight      decimal.Decimal `json:"totalWeight"`
	TotalValue       decimal.Decimal `json:"totalValue"`
}

type SalesByProductTypeEntry struct {
	ProductID       uint            `json:"productId"`
	ProductName     string          `json:"productName"`
	Unit            string          `json:"unit"`
	TotalWeight     decimal.Decimal `json:"totalWeight"`
	TotalWeightInKg decimal.Decimal `json:"totalWeightInKg"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	TotalSales      int             `json:"totalSales"`
}

// StatusBreakdown always reports all three statuses, zero-initialized.
type StatusBreakdown struct {
	Scheduled int `json:"Scheduled"`
	Confirmed int `json:"Confirmed"`
	Collected int `json:"Collected"`
}

type DaySummary struct {
	TotalCollections int             `json:"totalCollections"`
	TotalWeight      decimal.Decimal `json:"totalWeight"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	ByStatus         StatusBreakdown `json:"byStatus"`
}

// CollectionsByDateResponse is the calendar-day view: the day's collections
// ascending by timestamp plus summary totals (raw units, no conversion).
type CollectionsByDateResponse struct {
	Date        string               `json:"date"`
	Collections []CollectionResponse `json:"collections"`
	Summary     DaySummary           `json:"summary"`
}
