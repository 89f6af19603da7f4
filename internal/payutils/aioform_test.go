package payutils

import (
	"strings"
	"testing"
	"time"

	"github.com/auralens/ecpay_gateway/internal/types"
)

func TestCalculateOrderAmount(t *testing.T) {
	tests := []struct {
		name  string
		items []types.CartItem
		want  int64
	}{
		{
			name:  "single item with tax",
			items: []types.CartItem{{Name: "Widget", Price: 500, Quantity: 2}},
			want:  1050,
		},
		{
			name: "multiple items",
			items: []types.CartItem{
				{Name: "Widget", Price: 100, Quantity: 1},
				{Name: "Gadget", Price: 300, Quantity: 3},
			},
			want: 1050,
		},
		{
			name:  "half rounds away from zero",
			items: []types.CartItem{{Name: "Widget", Price: 10, Quantity: 1}},
			want:  11, // 10 * 1.05 = 10.5
		},
		{
			name:  "another half case",
			items: []types.CartItem{{Name: "Widget", Price: 990, Quantity: 1}},
			want:  1040, // 990 * 1.05 = 1039.5
		},
		{
			name:  "fraction above half rounds up",
			items: []types.CartItem{{Name: "Widget", Price: 10.4, Quantity: 1}},
			want:  11, // 10.92
		},
		{
			name:  "fraction below half rounds down",
			items: []types.CartItem{{Name: "Widget", Price: 0.1, Quantity: 3}},
			want:  0, // 0.315
		},
		{
			name:  "empty cart",
			items: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateOrderAmount(tt.items); got != tt.want {
				t.Errorf("CalculateOrderAmount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestJoinItemNames(t *testing.T) {
	items := []types.CartItem{
		{Name: "Widget", Price: 100, Quantity: 1},
		{Name: "Gadget", Price: 300, Quantity: 3},
	}
	if got, want := JoinItemNames(items), "Widget x1#Gadget x3"; got != want {
		t.Errorf("JoinItemNames = %q, want %q", got, want)
	}
}

func TestBuildAioParams(t *testing.T) {
	tradeDate := time.Date(2026, 8, 29, 15, 4, 5, 0, TradeLocation)
	params := BuildAioParams(AioOrder{
		MerchantID:     "2000132",
		TradeNo:        "AL17000000001234",
		TradeDate:      tradeDate,
		TotalAmount:    1050,
		TradeDesc:      "ecpay-gateway",
		ItemName:       "Widget x2",
		ReturnURL:      "https://pay.example.com/gateway-notify",
		OrderResultURL: "https://pay.example.com/gateway-return",
		ClientBackURL:  "https://shop.example.com/",
		CustomerName:   "Lin",
		CustomerEmail:  "lin@example.com",
	})

	checks := map[string]string{
		"MerchantID":        "2000132",
		"MerchantTradeNo":   "AL17000000001234",
		"MerchantTradeDate": "2026/08/29 15:04:05",
		"PaymentType":       "aio",
		"TotalAmount":       "1050",
		"ChoosePayment":     "ALL",
		"EncryptType":       "1",
		"CustomField2":      "lin@example.com",
	}
	for k, want := range checks {
		if got := params[k]; got != want {
			t.Errorf("params[%s] = %q, want %q", k, got, want)
		}
	}
	if _, ok := params[CheckMacField]; ok {
		t.Error("BuildAioParams must not sign")
	}
}

func TestRenderAutoSubmitForm(t *testing.T) {
	params := map[string]string{
		"MerchantID":    "2000132",
		"TotalAmount":   "1050",
		"CheckMacValue": "ABCDEF",
	}
	html, err := RenderAutoSubmitForm("https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5", params)
	if err != nil {
		t.Fatalf("RenderAutoSubmitForm error: %s", err)
	}

	for _, want := range []string{
		`action="https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5"`,
		`name="TotalAmount" value="1050"`,
		`name="CheckMacValue" value="ABCDEF"`,
		`document.getElementById("ecpay-form").submit()`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered form missing %q", want)
		}
	}
}
