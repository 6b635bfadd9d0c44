package service

/*
ReconcileItems 計算訂單商品集合的最小增刪差異

current: 訂單目前已持久化的商品ID集合
requested: 更新後期望的完整商品ID集合

toRemove = current - requested
toAdd = requested - current
兩邊都有的商品不動, 保留原訂單項目的ID

純集合運算, 不做I/O
前置條件 (重複ID, 商品存在性, 數量上限) 由呼叫端先驗證
*/
func ReconcileItems(current, requested []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	requestedSet := make(map[uint]struct{}, len(requested))
	for _, id := range requested {
		requestedSet[id] = struct{}{}
	}

	toAdd = make([]uint, 0)
	for _, id := range requested {
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}

	toRemove = make([]uint, 0)
	for _, id := range current {
		if _, ok := requestedSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	return toAdd, toRemove
}
