package cart

import (
	"encoding/json"
	"errors"
	"testing"
)

func sampleItem(bookID string, price int64, stock int) Item {
	return Item{
		BookID:        bookID,
		Title:         "Go语言实战",
		Price:         price,
		CoverImageURL: "https://example.com/cover.jpg",
		StockQuantity: stock,
	}
}

// TestCart_AddNeverExceedsStock 反复加购不会超过库存上限
func TestCart_AddNeverExceedsStock(t *testing.T) {
	c := New()
	item := sampleItem("b-1", 59000, 5)

	// 库存5,连续加购6次,数量应停在5
	var lastErr error
	for i := 0; i < 6; i++ {
		lastErr = c.Add(item)
	}

	if got := c.Items()[0].Quantity; got != 5 {
		t.Errorf("期望数量为5,实际%d", got)
	}
	if !errors.Is(lastErr, ErrStockLimited) {
		t.Errorf("第6次加购期望返回ErrStockLimited,实际%v", lastErr)
	}
}

// TestCart_AddExistingIncrements 已有商品加购数量+1
func TestCart_AddExistingIncrements(t *testing.T) {
	c := New()
	item := sampleItem("b-1", 100, 10)

	if err := c.Add(item); err != nil {
		t.Fatalf("首次加购失败: %v", err)
	}
	if err := c.Add(item); err != nil {
		t.Fatalf("二次加购失败: %v", err)
	}

	if got := c.Items()[0].Quantity; got != 2 {
		t.Errorf("期望数量为2,实际%d", got)
	}
	if c.Len() != 1 {
		t.Errorf("同一图书应只有一行,实际%d行", c.Len())
	}
}

// TestCart_AddZeroStock 零库存商品不能加入购物车
func TestCart_AddZeroStock(t *testing.T) {
	c := New()
	if err := c.Add(sampleItem("b-1", 100, 0)); !errors.Is(err, ErrStockLimited) {
		t.Errorf("期望返回ErrStockLimited,实际%v", err)
	}
	if !c.IsEmpty() {
		t.Error("零库存商品不应进入购物车")
	}
}

// TestCart_SetQuantity 数量设置的钳制与删除语义
func TestCart_SetQuantity(t *testing.T) {
	t.Run("正常设置", func(t *testing.T) {
		c := New()
		_ = c.Add(sampleItem("b-1", 100, 10))

		if err := c.SetQuantity("b-1", 7); err != nil {
			t.Fatalf("设置数量失败: %v", err)
		}
		if got := c.Items()[0].Quantity; got != 7 {
			t.Errorf("期望数量为7,实际%d", got)
		}
	})

	t.Run("超过库存钳制到上限", func(t *testing.T) {
		c := New()
		_ = c.Add(sampleItem("b-1", 100, 5))

		err := c.SetQuantity("b-1", 9)
		if !errors.Is(err, ErrStockLimited) {
			t.Errorf("期望返回ErrStockLimited,实际%v", err)
		}
		if got := c.Items()[0].Quantity; got != 5 {
			t.Errorf("期望钳制到5,实际%d", got)
		}
	})

	t.Run("数量小于1时整行移除", func(t *testing.T) {
		c := New()
		_ = c.Add(sampleItem("b-1", 100, 5))

		if err := c.SetQuantity("b-1", 0); err != nil {
			t.Fatalf("期望移除成功,实际%v", err)
		}
		if c.IsInCart("b-1") {
			t.Error("数量置0后商品不应还在购物车中")
		}
	})

	t.Run("不在购物车中的商品", func(t *testing.T) {
		c := New()
		if err := c.SetQuantity("missing", 3); !errors.Is(err, ErrNotInCart) {
			t.Errorf("期望返回ErrNotInCart,实际%v", err)
		}
	})
}

// TestCart_RemoveThenIsInCart 移除后IsInCart返回false
func TestCart_RemoveThenIsInCart(t *testing.T) {
	c := New()
	_ = c.Add(sampleItem("b-1", 100, 5))
	_ = c.Add(sampleItem("b-2", 200, 5))

	if err := c.Remove("b-1"); err != nil {
		t.Fatalf("移除失败: %v", err)
	}
	if c.IsInCart("b-1") {
		t.Error("移除后IsInCart应返回false")
	}
	if !c.IsInCart("b-2") {
		t.Error("未移除的商品应仍在购物车中")
	}
}

// TestCart_DerivedValues 派生值每次按当前行项目重新计算
func TestCart_DerivedValues(t *testing.T) {
	c := New()
	_ = c.Add(sampleItem("b-1", 59000, 10)) // 1件
	_ = c.Add(sampleItem("b-1", 59000, 10)) // 2件
	_ = c.Add(sampleItem("b-2", 120000, 3)) // 1件

	if got := c.ItemCount(); got != 3 {
		t.Errorf("期望总件数3,实际%d", got)
	}
	want := int64(59000*2 + 120000)
	if got := c.TotalAmount(); got != want {
		t.Errorf("期望总金额%d,实际%d", want, got)
	}

	// 变更后重新计算
	_ = c.SetQuantity("b-2", 3)
	want = int64(59000*2 + 120000*3)
	if got := c.TotalAmount(); got != want {
		t.Errorf("变更后期望总金额%d,实际%d", want, got)
	}
	if got := c.ItemCount(); got != 5 {
		t.Errorf("变更后期望总件数5,实际%d", got)
	}
}

// TestCart_Clear 清空购物车
func TestCart_Clear(t *testing.T) {
	c := New()
	_ = c.Add(sampleItem("b-1", 100, 5))
	_ = c.Add(sampleItem("b-2", 200, 5))

	c.Clear()

	if !c.IsEmpty() {
		t.Error("清空后购物车应为空")
	}
	if c.ItemCount() != 0 || c.TotalAmount() != 0 {
		t.Error("清空后派生值应为0")
	}
}

// TestCart_SerializeRoundTrip 行项目经过序列化/反序列化后完全一致
func TestCart_SerializeRoundTrip(t *testing.T) {
	c := New()
	_ = c.Add(sampleItem("b-1", 59000, 10))
	_ = c.Add(sampleItem("b-1", 59000, 10))
	_ = c.Add(sampleItem("b-2", 120000, 3))

	data, err := json.Marshal(c.Items())
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}

	restored := FromItems(items)
	if restored.Len() != c.Len() {
		t.Fatalf("期望%d行,实际%d行", c.Len(), restored.Len())
	}
	for i, it := range restored.Items() {
		if it != c.Items()[i] {
			t.Errorf("第%d行不一致: %+v != %+v", i, it, c.Items()[i])
		}
	}
}

// TestCart_FromItemsSanitizes 恢复时重建不变式
func TestCart_FromItemsSanitizes(t *testing.T) {
	items := []Item{
		{BookID: "b-1", Price: 100, Quantity: 9, StockQuantity: 5}, // 超库存,钳制
		{BookID: "b-2", Price: 100, Quantity: 0, StockQuantity: 5}, // 非法数量,丢弃
		{BookID: "b-3", Price: 100, Quantity: 2, StockQuantity: 5}, // 合法,保留
		{BookID: "b-4", Price: 100, Quantity: 2, StockQuantity: 0}, // 零库存,丢弃
	}

	c := FromItems(items)

	if c.Len() != 2 {
		t.Fatalf("期望保留2行,实际%d行", c.Len())
	}
	if got := c.Items()[0].Quantity; got != 5 {
		t.Errorf("期望钳制到5,实际%d", got)
	}
	if c.IsInCart("b-4") {
		t.Error("零库存的行不应被恢复")
	}
}

// TestCart_Merge 游客购物车并入用户购物车
func TestCart_Merge(t *testing.T) {
	c := New()
	if err := c.Add(Item{BookID: "b-1", Price: 100, StockQuantity: 3}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	c.Merge([]Item{
		{BookID: "b-1", Price: 100, Quantity: 5, StockQuantity: 3}, // 同款,相加后钳制到3
		{BookID: "b-2", Price: 200, Quantity: 2, StockQuantity: 5}, // 新行,原样并入
		{BookID: "b-3", Price: 300, Quantity: 1, StockQuantity: 0}, // 零库存,丢弃
	})

	if c.Len() != 2 {
		t.Fatalf("期望2行,实际%d行", c.Len())
	}
	if got := c.Items()[0].Quantity; got != 3 {
		t.Errorf("同款图书合并后期望钳制到3,实际%d", got)
	}
	if got := c.Items()[1].Quantity; got != 2 {
		t.Errorf("新行期望数量2,实际%d", got)
	}
	if c.IsInCart("b-3") {
		t.Error("零库存的行不应被并入")
	}
}
