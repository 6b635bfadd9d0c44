package service

import "github.com/shopspring/decimal"

var (
	subtotalDiscountThreshold = decimal.NewFromInt(500)
	subtotalDiscountRate      = decimal.RequireFromString("0.10")
	countDiscountRate         = decimal.RequireFromString("0.05")
)

// 超過5種不同商品折扣門檻
const countDiscountThreshold = 5

/*
ComputeTotal 計算套用折扣後的訂單總金額

折扣規則 (可疊加, 最多15%):
  - 小計 > 500 折扣10%
  - 不同商品數 > 5 額外折扣5%

折扣率加總後一次套用在小計: total = subtotal * (1 - rate)
商品數為0時固定回傳0
結果四捨五入到小數兩位 (round half away from zero)
純函數, 輸入由呼叫端預先驗證
*/
func ComputeTotal(subtotal decimal.Decimal, distinctProductCount int) decimal.Decimal {
	if distinctProductCount == 0 {
		return decimal.Zero
	}

	rate := decimal.Zero
	if subtotal.GreaterThan(subtotalDiscountThreshold) {
		rate = rate.Add(subtotalDiscountRate)
	}
	if distinctProductCount > countDiscountThreshold {
		rate = rate.Add(countDiscountRate)
	}

	total := subtotal
	if rate.IsPositive() {
		total = subtotal.Sub(subtotal.Mul(rate))
	}

	return total.Round(2)
}
