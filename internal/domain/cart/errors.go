package cart

import (
	apperrors "github.com/ute/bookshop/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrStockLimited 数量已被钳制到库存上限
	ErrStockLimited = apperrors.ErrStockLimited

	// ErrNotInCart 购物车中没有该商品
	ErrNotInCart = apperrors.ErrNotInCart

	// ErrEmptyCart 购物车为空
	ErrEmptyCart = apperrors.ErrEmptyCart
)
