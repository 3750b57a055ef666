// Package models - Các record đầu vào của engine phân tích.
//
// Record đến từ ERP export đã qua tầng lọc/chuẩn hóa phía trước: đã lọc theo
// tổ chức và khoảng thời gian, số tiền đã quy về đơn vị KRW tương đương.
// Trường Date giữ nguyên format gốc (ISO, slash, compact, serial) — engine
// chuẩn hóa về bucket tháng qua accessor MonthKey() của từng variant.
package models

import (
	"sales_insight/internal/utility"
)

// PlanActual cặp giá trị kế hoạch / thực hiện cho một chỉ tiêu.
type PlanActual struct {
	Plan   float64 `json:"plan"`   // Kế hoạch
	Actual float64 `json:"actual"` // Thực hiện
}

// TimeBucketed là accessor chung để code aggregation không phụ thuộc variant.
// MonthKey trả về bucket "YYYY-MM"; ok = false khi ngày không parse được —
// record bị loại khỏi các aggregation theo tháng nhưng vẫn tính vào tổng.
type TimeBucketed interface {
	MonthKey() (string, bool)
}

// SaleRecord 1 dòng doanh thu bán hàng.
// Amount âm = hàng trả lại / điều chỉnh giảm.
type SaleRecord struct {
	OrgID        string  `json:"orgId"`
	OrgName      string  `json:"orgName,omitempty"`
	PersonID     string  `json:"personId"`
	PersonName   string  `json:"personName,omitempty"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName,omitempty"`
	ProductID    string  `json:"productId,omitempty"`
	ProductName  string  `json:"productName,omitempty"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Quantity     float64 `json:"quantity,omitempty"`
	Currency     string  `json:"currency,omitempty"` // Tag tiền tệ gốc — engine không dùng, giữ cho tầng FX phía ngoài
}

// MonthKey trả về bucket tháng của record.
func (r SaleRecord) MonthKey() (string, bool) { return utility.MonthKey(r.Date) }

// OrderRecord 1 dòng đơn hàng (giá trị đặt hàng, chưa chắc đã xuất hóa đơn).
type OrderRecord struct {
	OrgID        string  `json:"orgId"`
	PersonID     string  `json:"personId"`
	PersonName   string  `json:"personName,omitempty"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName,omitempty"`
	ProductID    string  `json:"productId,omitempty"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Quantity     float64 `json:"quantity,omitempty"`
	Currency     string  `json:"currency,omitempty"`
}

// MonthKey trả về bucket tháng của record.
func (r OrderRecord) MonthKey() (string, bool) { return utility.MonthKey(r.Date) }

// CollectionRecord 1 dòng thu tiền: kế hoạch thu vs thực thu theo người phụ trách.
type CollectionRecord struct {
	OrgID      string     `json:"orgId"`
	PersonID   string     `json:"personId"`
	PersonName string     `json:"personName,omitempty"`
	CustomerID string     `json:"customerId,omitempty"`
	Date       string     `json:"date"`
	Amount     PlanActual `json:"amount"` // Kế hoạch thu / thực thu
}

// MonthKey trả về bucket tháng của record.
func (r CollectionRecord) MonthKey() (string, bool) { return utility.MonthKey(r.Date) }

// TeamContributionRecord đóng góp chi phí/lãi gộp của 1 người theo kỳ.
// MarginRate của người = Margin.Actual / Revenue.Actual.
type TeamContributionRecord struct {
	OrgID      string     `json:"orgId"`
	PersonID   string     `json:"personId"`
	PersonName string     `json:"personName,omitempty"`
	Date       string     `json:"date"`
	Revenue    PlanActual `json:"revenue"` // Doanh thu kế hoạch / thực hiện
	Margin     PlanActual `json:"margin"`  // Lãi gộp kế hoạch / thực hiện
}

// MonthKey trả về bucket tháng của record.
func (r TeamContributionRecord) MonthKey() (string, bool) { return utility.MonthKey(r.Date) }

// OrgProfitRecord P&L của 1 tổ chức theo kỳ — nguồn margin rate cho CLV.
type OrgProfitRecord struct {
	OrgID           string     `json:"orgId"`
	OrgName         string     `json:"orgName,omitempty"`
	Date            string     `json:"date"`
	Revenue         PlanActual `json:"revenue"`         // Doanh thu
	OperatingProfit PlanActual `json:"operatingProfit"` // Lợi nhuận hoạt động
}

// MonthKey trả về bucket tháng của record.
func (r OrgProfitRecord) MonthKey() (string, bool) { return utility.MonthKey(r.Date) }

// ReceivableAgingRecord số dư công nợ của 1 khách theo người phụ trách.
// LongOverdue = phần quá hạn dài (trên 90 ngày) trong TotalOutstanding.
type ReceivableAgingRecord struct {
	OrgID            string  `json:"orgId"`
	PersonID         string  `json:"personId"`
	PersonName       string  `json:"personName,omitempty"`
	CustomerID       string  `json:"customerId,omitempty"`
	CustomerName     string  `json:"customerName,omitempty"`
	Date             string  `json:"date"`
	TotalOutstanding float64 `json:"totalOutstanding"`
	LongOverdue      float64 `json:"longOverdue"`
}

// MonthKey trả về bucket tháng của record.
func (r ReceivableAgingRecord) MonthKey() (string, bool) { return utility.MonthKey(r.Date) }

// PlanActualRecord 1 dòng kế hoạch vs thực hiện theo (tổ chức, khách, sản phẩm)
// — đầu vào của variance decomposition.
type PlanActualRecord struct {
	OrgID        string  `json:"orgId"`
	OrgName      string  `json:"orgName,omitempty"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName,omitempty"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName,omitempty"`
	Date         string  `json:"date,omitempty"`
	PlanQty      float64 `json:"planQty"`
	ActualQty    float64 `json:"actualQty"`
	PlanAmount   float64 `json:"planAmount"`
	ActualAmount float64 `json:"actualAmount"`
}

// MonthKey trả về bucket tháng của record.
func (r PlanActualRecord) MonthKey() (string, bool) { return utility.MonthKey(r.Date) }
