package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/ute/bookshop/internal/application/cart"
	domaincart "github.com/ute/bookshop/internal/domain/cart"
	"github.com/ute/bookshop/internal/infrastructure/backend"
	"github.com/ute/bookshop/internal/infrastructure/persistence/store"
	apperrors "github.com/ute/bookshop/pkg/errors"
)

// fakeOrders 可编程的下单桩,记录请求次数
type fakeOrders struct {
	calls   int
	lastReq backend.OrderCreate
	err     error
}

func (f *fakeOrders) CreateOrder(_ context.Context, _ string, req backend.OrderCreate) (*backend.Order, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &backend.Order{OrderID: "o-1", OrderStatus: "processing", TotalAmount: 999}, nil
}

const shippingFee = 30000

func newFixture(t *testing.T) (*UseCase, *cartapp.Store, *fakeOrders) {
	t.Helper()
	carts := cartapp.NewStore(store.NewMemStore(), time.Hour)
	orders := &fakeOrders{}
	return NewUseCase(orders, carts, shippingFee), carts, orders
}

func fill(t *testing.T, carts *cartapp.Store, owner string) {
	t.Helper()
	ctx := context.Background()
	_, err := carts.Add(ctx, owner, domaincart.Item{BookID: "b-1", Price: 100000, StockQuantity: 10})
	require.NoError(t, err)
	_, err = carts.SetQuantity(ctx, owner, "b-1", 2)
	require.NoError(t, err)
	_, err = carts.Add(ctx, owner, domaincart.Item{BookID: "b-2", Price: 50000, StockQuantity: 5})
	require.NoError(t, err)
	// 小计 = 100000*2 + 50000 = 250000
}

// TestCheckout_EmptyAddressRejectedLocally 地址为空本地拒绝,零网络请求
func TestCheckout_EmptyAddressRejectedLocally(t *testing.T) {
	uc, carts, orders := newFixture(t)
	fill(t, carts, "u-1")

	_, err := uc.Execute(context.Background(), "tok", "u-1", Request{
		ShippingAddress: "   ",
		PaymentMethodID: "cod",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmptyAddress)
	assert.Equal(t, 0, orders.calls)
}

// TestCheckout_EmptyCartRejectedLocally 空购物车本地拒绝
func TestCheckout_EmptyCartRejectedLocally(t *testing.T) {
	uc, _, orders := newFixture(t)

	_, err := uc.Execute(context.Background(), "tok", "u-1", Request{
		ShippingAddress: "1 Vo Van Ngan",
		PaymentMethodID: "cod",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	assert.Equal(t, 0, orders.calls)
}

// TestCheckout_CouponMath SALE10打9折,运费固定
func TestCheckout_CouponMath(t *testing.T) {
	uc, carts, _ := newFixture(t)
	fill(t, carts, "u-1")

	c := carts.Get(context.Background(), "u-1")

	t.Run("匹配的优惠码", func(t *testing.T) {
		p, err := uc.BuildPreview(c, "SALE10")
		require.NoError(t, err)
		assert.Equal(t, int64(250000), p.Subtotal)
		assert.Equal(t, int64(25000), p.Discount)
		assert.Equal(t, int64(shippingFee), p.ShippingFee)
		assert.Equal(t, int64(250000-25000+shippingFee), p.Total)
	})

	t.Run("不匹配的优惠码", func(t *testing.T) {
		p, err := uc.BuildPreview(c, "SALE99")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCoupon)
		// 金额保持未打折
		assert.Equal(t, int64(0), p.Discount)
		assert.Equal(t, int64(250000+shippingFee), p.Total)
	})

	t.Run("不填优惠码", func(t *testing.T) {
		p, err := uc.BuildPreview(c, "")
		require.NoError(t, err)
		assert.Equal(t, int64(0), p.Discount)
		assert.Equal(t, int64(250000+shippingFee), p.Total)
	})
}

// TestCheckout_InvalidCouponBlocksSubmission 无效优惠码本地失败,不发请求
func TestCheckout_InvalidCouponBlocksSubmission(t *testing.T) {
	uc, carts, orders := newFixture(t)
	fill(t, carts, "u-1")

	_, err := uc.Execute(context.Background(), "tok", "u-1", Request{
		ShippingAddress: "1 Vo Van Ngan",
		PaymentMethodID: "cod",
		CouponCode:      "WRONG",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCoupon)
	assert.Equal(t, 0, orders.calls)
}

// TestCheckout_SuccessClearsCart 下单成功清空购物车
func TestCheckout_SuccessClearsCart(t *testing.T) {
	ctx := context.Background()
	uc, carts, orders := newFixture(t)
	fill(t, carts, "u-1")

	result, err := uc.Execute(ctx, "tok", "u-1", Request{
		ShippingAddress: "1 Vo Van Ngan",
		PaymentMethodID: "cod",
		CouponCode:      "SALE10",
	})
	require.NoError(t, err)

	assert.Equal(t, "o-1", result.Order.OrderID)
	assert.Equal(t, 1, orders.calls)
	assert.True(t, carts.Get(ctx, "u-1").IsEmpty())

	// 请求体只带book_id和数量,优惠码透传
	require.Len(t, orders.lastReq.Items, 2)
	assert.Equal(t, "SALE10", orders.lastReq.VoucherCode)
	assert.Equal(t, backend.OrderItem{BookID: "b-1", Quantity: 2}, orders.lastReq.Items[0])
}

// TestCheckout_FailureKeepsCart 后端拒绝时购物车保持原样
func TestCheckout_FailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	uc, carts, orders := newFixture(t)
	fill(t, carts, "u-1")
	orders.err = apperrors.NewWithDetail(apperrors.ErrCodeBackendError, "库存不足")

	_, err := uc.Execute(ctx, "tok", "u-1", Request{
		ShippingAddress: "1 Vo Van Ngan",
		PaymentMethodID: "cod",
	})

	require.Error(t, err)
	assert.Equal(t, "库存不足", apperrors.GetAppError(err).Message)
	assert.Equal(t, 3, carts.Get(ctx, "u-1").ItemCount())
}
