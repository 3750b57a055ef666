// Package analyticsvc - Phân rã chênh lệch kế hoạch vs thực hiện 3 chiều.
package analyticsvc

import (
	"sales_insight/internal/api/analytics/models"
)

// ComputeVariance phân rã chênh lệch từng dòng kế hoạch–thực hiện thành
// price / volume / mix:
//
//	total  = actualAmount − planAmount
//	price  = (actualPrice − planPrice) × actualQty
//	volume = (actualQty − planQty) × planPrice
//	mix    = total − price − volume
//
// Mix là phần dư nên đẳng thức price + volume + mix == total đúng tuyệt đối
// với mọi input, kể cả các dòng thiếu giá 1 phía (qty = 0 → price coi như 0).
// Dòng planQty = actualQty = 0 bị loại hẳn, kể cả khi amount khác 0 — không có
// sản lượng ở cả 2 phía thì không phân rã được chênh lệch.
// Items giữ nguyên thứ tự input; rollup theo tổ chức theo thứ tự xuất hiện.
func ComputeVariance(rows []models.PlanActualRecord) ([]models.VarianceItem, []models.VarianceRollup) {
	items := make([]models.VarianceItem, 0, len(rows))
	rollups := make(map[string]*models.VarianceRollup)
	orgOrder := newFirstSeenOrder()

	for _, r := range rows {
		if r.PlanQty == 0 && r.ActualQty == 0 {
			continue
		}

		item := models.VarianceItem{
			OrgID:        r.OrgID,
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			PlanQty:      r.PlanQty,
			ActualQty:    r.ActualQty,
			PlanAmount:   r.PlanAmount,
			ActualAmount: r.ActualAmount,
		}
		if r.PlanQty != 0 {
			item.PlanPrice = r.PlanAmount / r.PlanQty
		}
		if r.ActualQty != 0 {
			item.ActualPrice = r.ActualAmount / r.ActualQty
		}

		item.TotalVariance = r.ActualAmount - r.PlanAmount
		item.PriceVariance = (item.ActualPrice - item.PlanPrice) * r.ActualQty
		item.VolumeVariance = (r.ActualQty - r.PlanQty) * item.PlanPrice
		item.MixVariance = item.TotalVariance - item.PriceVariance - item.VolumeVariance
		items = append(items, item)

		orgOrder.add(r.OrgID)
		roll := rollups[r.OrgID]
		if roll == nil {
			roll = &models.VarianceRollup{OrgID: r.OrgID, OrgName: r.OrgName}
			rollups[r.OrgID] = roll
		}
		if roll.OrgName == "" && r.OrgName != "" {
			roll.OrgName = r.OrgName
		}
		roll.PlanAmount += item.PlanAmount
		roll.ActualAmount += item.ActualAmount
		roll.TotalVariance += item.TotalVariance
		roll.PriceVariance += item.PriceVariance
		roll.VolumeVariance += item.VolumeVariance
		roll.MixVariance += item.MixVariance
		roll.ItemCount++
	}

	out := make([]models.VarianceRollup, 0, len(orgOrder.keys))
	for _, org := range orgOrder.keys {
		out = append(out, *rollups[org])
	}
	return items, out
}
