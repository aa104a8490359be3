package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ute/bookshop/pkg/errors"
)

func record(t *testing.T, handle func(c *gin.Context)) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/books", nil)
	handle(c)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应体应为合法JSON: %v", err)
	}
	return w, resp
}

func TestSuccess(t *testing.T) {
	w, resp := record(t, func(c *gin.Context) {
		Success(c, gin.H{"id": "b-1"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("HTTP状态码应为200, 实际 %d", w.Code)
	}
	if resp.Code != 0 {
		t.Errorf("成功响应业务码应为0, 实际 %d", resp.Code)
	}
	if resp.Message != "success" {
		t.Errorf("成功响应消息不符: %q", resp.Message)
	}
}

func TestErrorWithAppError(t *testing.T) {
	_, resp := record(t, func(c *gin.Context) {
		Error(c, apperrors.ErrEmptyCart)
	})

	if resp.Code != apperrors.ErrCodeEmptyCart {
		t.Errorf("业务码应透传, 期望 %d 实际 %d", apperrors.ErrCodeEmptyCart, resp.Code)
	}
	if resp.Data != nil {
		t.Errorf("错误响应不应携带data")
	}
}

// 被包装的内部错误：细节进日志，客户端只看到统一提示
func TestErrorWithWrappedInternalError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:6379: connection refused")
	_, resp := record(t, func(c *gin.Context) {
		Error(c, apperrors.Wrap(cause, "保存购物车失败"))
	})

	if resp.Code != apperrors.ErrCodeInternal {
		t.Errorf("包装错误应归为内部错误码, 实际 %d", resp.Code)
	}
	if resp.Message != "保存购物车失败" {
		t.Errorf("消息不符: %q", resp.Message)
	}
}

func TestNewPageDataHasMore(t *testing.T) {
	cases := []struct {
		name    string
		total   int64
		skip    int
		ret     int
		hasMore bool
	}{
		{"还有下一页", 25, 0, 10, true},
		{"刚好取完", 20, 10, 10, false},
		{"空结果", 0, 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pd := NewPageData(nil, tc.total, tc.skip, 10, tc.ret)
			if pd.HasMore != tc.hasMore {
				t.Errorf("has_more 期望 %v 实际 %v", tc.hasMore, pd.HasMore)
			}
		})
	}
}
