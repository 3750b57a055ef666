// Package models - Các entity dẫn xuất (output) của engine phân tích.
// Mọi entity được tạo, tính xong và trả về trong 1 lần gọi hàm thuần;
// không mutate sau khi dựng.
package models

// TopCustomer 1 khách trong top khách của 1 người bán, kèm share doanh thu.
// Share luôn là phân số trong [0,1]; nhân 100 là việc của tầng hiển thị.
type TopCustomer struct {
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName,omitempty"`
	Amount       float64 `json:"amount"`
	Share        float64 `json:"share"`
}

// PerformanceProfile hồ sơ thành tích đa trục của 1 người bán.
// Điểm mỗi trục chuẩn hóa theo người tốt nhất trong tập đang lọc
// (population-relative), tổng các trục = 0–100.
type PerformanceProfile struct {
	PersonID   string `json:"personId"`
	PersonName string `json:"personName,omitempty"`
	OrgID      string `json:"orgId,omitempty"`

	// Giá trị thô từng trục
	SalesAmount      float64 `json:"salesAmount"`
	OrderAmount      float64 `json:"orderAmount"`
	MarginRate       float64 `json:"marginRate"`
	CollectionRate   float64 `json:"collectionRate"`
	ReceivableHealth float64 `json:"receivableHealth,omitempty"` // 1 − tỷ trọng quá hạn dài; chỉ có khi có dữ liệu aging

	// Điểm từng trục (cap theo AxisMax) và tổng
	SalesScore      float64 `json:"salesScore"`
	OrderScore      float64 `json:"orderScore"`
	MarginScore     float64 `json:"marginScore"`
	CollectionScore float64 `json:"collectionScore"`
	ReceivableScore float64 `json:"receivableScore,omitempty"`
	AxisCount       int     `json:"axisCount"` // 4 hoặc 5
	AxisMax         float64 `json:"axisMax"`   // 25.0 (4 trục) hoặc 20.0 (5 trục)
	TotalScore      float64 `json:"totalScore"`

	Rank       int     `json:"rank"`       // 1 = tốt nhất; ties xếp theo thứ tự input (ordinal)
	Percentile float64 `json:"percentile"` // 100 × (1 − (rank−1)/(N−1)); N=1 → 100

	// Side computations trên phân phối doanh thu khách của chính người này
	CustomerCount int           `json:"customerCount"`
	ProductCount  int           `json:"productCount"`
	HHI           float64       `json:"hhi"`
	RiskTier      string        `json:"riskTier"` // high | medium | low
	TopCustomers  []TopCustomer `json:"topCustomers,omitempty"`
}

// RfmScore điểm RFM và segment của 1 khách hàng.
type RfmScore struct {
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName,omitempty"`
	Recency      int     `json:"recency"`   // Số tháng từ giao dịch cuối đến "now" của dataset
	Frequency    int     `json:"frequency"` // Số giao dịch
	Monetary     float64 `json:"monetary"`  // Tổng doanh thu

	RecencyScore   int    `json:"recencyScore"`   // Quintile 1–5 (5 = gần nhất)
	FrequencyScore int    `json:"frequencyScore"` // Quintile 1–5
	MonetaryScore  int    `json:"monetaryScore"`  // Quintile 1–5
	TotalScore     int    `json:"totalScore"`     // R+F+M (3–15)
	Segment        string `json:"segment"`        // vip | loyal | potential | at_risk | dormant | lost
}

// RfmSummary phân bố segment của toàn tập khách.
type RfmSummary struct {
	Total         int            `json:"total"`
	SegmentCounts map[string]int `json:"segmentCounts"`
	AnalysisMonth string         `json:"analysisMonth"` // Bucket "now" của dataset (tháng giao dịch mới nhất)
}

// ClvResult ước lượng giá trị vòng đời của 1 khách hàng.
// Khách dưới 2 giao dịch bị loại khỏi output (không phải zero).
type ClvResult struct {
	CustomerID       string  `json:"customerId"`
	CustomerName     string  `json:"customerName,omitempty"`
	AvgTransaction   float64 `json:"avgTransaction"`   // Giá trị giao dịch trung bình
	AnnualFrequency  float64 `json:"annualFrequency"`  // Tần suất giao dịch quy năm
	MarginRate       float64 `json:"marginRate"`       // Margin rate từ P&L tổ chức hoặc fallback
	ExpectedYears    float64 `json:"expectedYears"`    // Số năm vòng đời kỳ vọng (policy)
	Clv              float64 `json:"clv"`
	TransactionCount int     `json:"transactionCount"`
}

// ClvSummary tổng hợp CLV của tập khách đủ điều kiện.
type ClvSummary struct {
	Count    int     `json:"count"`
	TotalClv float64 `json:"totalClv"`
	AvgClv   float64 `json:"avgClv"`
}

// GradeFlow 1 ô trong matrix chuyển hạng giữa 2 tháng liên tiếp,
// kèm danh sách khách để drill-down.
type GradeFlow struct {
	From      string   `json:"from"` // Hạng tháng trước (A|B|C|D|N)
	To        string   `json:"to"`   // Hạng tháng sau
	Count     int      `json:"count"`
	Customers []string `json:"customers"`
}

// MigrationFlow matrix chuyển hạng đầy đủ của 1 cặp tháng liên tiếp.
// Chỉ chứa các ô có count > 0; cặp N→N không sinh ô.
type MigrationFlow struct {
	FromMonth string      `json:"fromMonth"`
	ToMonth   string      `json:"toMonth"`
	Flows     []GradeFlow `json:"flows"`
}

// MigrationSummary đếm tổng hợp chuyển hạng của 1 cặp tháng liên tiếp.
// Bất biến: Upgraded + Maintained + Downgraded + Churned + NewCustomers
// đếm đủ mọi khách active ở ít nhất 1 trong 2 tháng.
type MigrationSummary struct {
	FromMonth    string `json:"fromMonth"`
	ToMonth      string `json:"toMonth"`
	Upgraded     int    `json:"upgraded"`     // active→active, hạng cao hơn
	Maintained   int    `json:"maintained"`   // active→active, giữ hạng
	Downgraded   int    `json:"downgraded"`   // active→active, hạng thấp hơn
	Churned      int    `json:"churned"`      // active→N
	NewCustomers int    `json:"newCustomers"` // N→active
	TotalActive  int    `json:"totalActive"`  // Số khách active ở tháng sau
}

// ShareItem 1 phần tử trong phân phối share doanh thu.
type ShareItem struct {
	Key    string  `json:"key"` // customerId hoặc orgId tùy chiều phân tích
	Name   string  `json:"name,omitempty"`
	Amount float64 `json:"amount"`
	Share  float64 `json:"share"` // Phân số trong [0,1]
}

// ConcentrationResult HHI và phân tầng rủi ro tập trung doanh thu.
type ConcentrationResult struct {
	HHI      float64     `json:"hhi"`      // Σ share², share là phân số → HHI ∈ [1/n, 1]
	RiskTier string      `json:"riskTier"` // high (>0.25) | medium (>0.15) | low
	Shares   []ShareItem `json:"shares"`
}

// VarianceItem phân rã chênh lệch kế hoạch–thực hiện của 1 dòng
// (tổ chức, khách, sản phẩm) thành price/volume/mix.
// Bất biến: PriceVariance + VolumeVariance + MixVariance == TotalVariance
// (chính xác tuyệt đối — mix là phần dư, không tính độc lập).
type VarianceItem struct {
	OrgID        string  `json:"orgId"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName,omitempty"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName,omitempty"`
	PlanQty      float64 `json:"planQty"`
	ActualQty    float64 `json:"actualQty"`
	PlanAmount   float64 `json:"planAmount"`
	ActualAmount float64 `json:"actualAmount"`
	PlanPrice    float64 `json:"planPrice"`   // PlanAmount/PlanQty, 0 nếu PlanQty = 0
	ActualPrice  float64 `json:"actualPrice"` // ActualAmount/ActualQty, 0 nếu ActualQty = 0

	TotalVariance  float64 `json:"totalVariance"`
	PriceVariance  float64 `json:"priceVariance"`
	VolumeVariance float64 `json:"volumeVariance"`
	MixVariance    float64 `json:"mixVariance"`
}

// VarianceRollup tổng hợp variance theo tổ chức.
type VarianceRollup struct {
	OrgID          string  `json:"orgId"`
	OrgName        string  `json:"orgName,omitempty"`
	PlanAmount     float64 `json:"planAmount"`
	ActualAmount   float64 `json:"actualAmount"`
	TotalVariance  float64 `json:"totalVariance"`
	PriceVariance  float64 `json:"priceVariance"`
	VolumeVariance float64 `json:"volumeVariance"`
	MixVariance    float64 `json:"mixVariance"`
	ItemCount      int     `json:"itemCount"`
}

// Insight 1 phát hiện ngắn từ rule engine, xếp theo severity giảm dần.
type Insight struct {
	Kind     string  `json:"kind"`     // concentration_risk | churn_spike | vip_at_risk | variance_driver | top_performer | ...
	Severity int     `json:"severity"` // 1 (thấp) – 5 (cao)
	Message  string  `json:"message"`
	Value    float64 `json:"value,omitempty"` // Giá trị số kèm theo (HHI, count, amount... tùy kind)
}
