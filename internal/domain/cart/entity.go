package cart

// Item 购物车行项目
// 设计说明:
// 1. 同一BookID在购物车内只有一行,数量通过Quantity表达
// 2. 价格使用int64存储最小货币单位(避免浮点数精度问题)
// 3. StockQuantity是加入购物车时快照的库存上限,数量变更时按它钳制
type Item struct {
	BookID        string `json:"book_id"`
	Title         string `json:"title"`
	Price         int64  `json:"price"`
	Quantity      int    `json:"quantity"`
	CoverImageURL string `json:"cover_image_url"`
	StockQuantity int    `json:"stock_quantity"`
}

// Subtotal 行小计 = 单价 × 数量
func (it Item) Subtotal() int64 {
	return it.Price * int64(it.Quantity)
}

// Cart 购物车聚合
// 不变式: 每个BookID唯一; 1 <= Quantity <= StockQuantity
type Cart struct {
	items []Item
}

// New 创建空购物车
func New() *Cart {
	return &Cart{}
}

// FromItems 从已有行项目恢复购物车(持久化反序列化后使用)
// 恢复时重新钳制数量,保证不变式在任何来源的数据上都成立
func FromItems(items []Item) *Cart {
	c := &Cart{}
	for _, it := range items {
		// 数量或库存不足1的行直接丢弃,与Add对零库存商品的拒绝保持一致
		if it.Quantity < 1 || it.StockQuantity < 1 {
			continue
		}
		if it.Quantity > it.StockQuantity {
			it.Quantity = it.StockQuantity
		}
		c.items = append(c.items, it)
	}
	return c
}

// Add 加入购物车
// 行为(统一的钳制策略):
// - 不在购物车: 以数量1插入新行
// - 已在购物车: 数量+1,超过库存上限时钳制到上限并返回ErrStockLimited
// 返回ErrStockLimited时购物车仍保持钳制后的合法状态,调用方据此提示用户
func (c *Cart) Add(newItem Item) error {
	for i := range c.items {
		if c.items[i].BookID == newItem.BookID {
			next := c.items[i].Quantity + 1
			if next > c.items[i].StockQuantity {
				c.items[i].Quantity = c.items[i].StockQuantity
				return ErrStockLimited
			}
			c.items[i].Quantity = next
			return nil
		}
	}

	if newItem.StockQuantity < 1 {
		return ErrStockLimited
	}
	newItem.Quantity = 1
	c.items = append(c.items, newItem)
	return nil
}

// SetQuantity 设置指定图书的数量
// 行为:
// - quantity < 1: 整行移除
// - 超过库存上限: 钳制到上限并返回ErrStockLimited
func (c *Cart) SetQuantity(bookID string, quantity int) error {
	if quantity < 1 {
		return c.Remove(bookID)
	}

	for i := range c.items {
		if c.items[i].BookID == bookID {
			if quantity > c.items[i].StockQuantity {
				c.items[i].Quantity = c.items[i].StockQuantity
				return ErrStockLimited
			}
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrNotInCart
}

// Merge 吸收另一份行项目(登录时游客购物车并入用户购物车)
// 同一图书数量相加,全程钳制到库存上限;无效行按FromItems的规则丢弃
func (c *Cart) Merge(items []Item) {
	for _, it := range items {
		if it.Quantity < 1 || it.StockQuantity < 1 {
			continue
		}
		merged := false
		for i := range c.items {
			if c.items[i].BookID == it.BookID {
				next := c.items[i].Quantity + it.Quantity
				if next > c.items[i].StockQuantity {
					next = c.items[i].StockQuantity
				}
				c.items[i].Quantity = next
				merged = true
				break
			}
		}
		if merged {
			continue
		}
		if it.Quantity > it.StockQuantity {
			it.Quantity = it.StockQuantity
		}
		c.items = append(c.items, it)
	}
}

// Remove 无条件移除指定图书
func (c *Cart) Remove(bookID string) error {
	for i := range c.items {
		if c.items[i].BookID == bookID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotInCart
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.items = nil
}

// IsInCart 判断图书是否已在购物车
func (c *Cart) IsInCart(bookID string) bool {
	for _, it := range c.items {
		if it.BookID == bookID {
			return true
		}
	}
	return false
}

// Items 返回行项目副本(防止外部绕过不变式修改)
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Len 行项目数
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty 是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount 商品总件数 = Σ数量
// 每次读取时重新计算,不做缓存
func (c *Cart) ItemCount() int {
	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// TotalAmount 商品总金额 = Σ(单价×数量)
// 每次读取时重新计算,不做缓存
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}
