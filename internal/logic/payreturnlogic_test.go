package logic

import (
	"context"
	"testing"

	"github.com/auralens/ecpay_gateway/internal/types"
)

func TestPayReturnAlwaysRedirectsToStorefront(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		fields  map[string]string
	}{
		{
			name:    "successful payment fields",
			baseURL: "https://shop.example.com",
			fields:  map[string]string{"MerchantTradeNo": "AL123", "RtnCode": "1"},
		},
		{
			name:    "failed payment fields",
			baseURL: "https://shop.example.com",
			fields:  map[string]string{"MerchantTradeNo": "AL123", "RtnCode": "10300066"},
		},
		{
			name:    "trailing slash on base url",
			baseURL: "https://shop.example.com/",
			fields:  map[string]string{},
		},
		{
			name:    "empty body",
			baseURL: "https://shop.example.com",
			fields:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcCtx := newTestSvcCtx("")
			svcCtx.Config.Site.BaseURL = tt.baseURL
			l := NewPayReturnLogic(context.Background(), svcCtx)

			got := l.PayReturn(&types.PayReturnRequest{Fields: tt.fields})
			if want := "https://shop.example.com/?from_ecpay=1"; got != want {
				t.Errorf("PayReturn = %q, want %q", got, want)
			}
		})
	}
}
