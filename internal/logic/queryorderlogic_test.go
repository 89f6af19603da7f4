package logic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/auralens/ecpay_gateway/common/responsex"
	"github.com/auralens/ecpay_gateway/internal/payutils"
	"github.com/auralens/ecpay_gateway/internal/types"
)

func queryReplyBody(tamper bool) string {
	fields := map[string]string{
		"MerchantID":      "2000132",
		"MerchantTradeNo": "AL17000000001234",
		"TradeNo":         "2308291234567890",
		"TradeStatus":     "1",
		"TradeAmt":        "1050",
		"PaymentDate":     "2026/08/29 15:10:22",
		"PaymentType":     "Credit_CreditCard",
		"HandlingCharge":  "21",
	}
	fields[payutils.CheckMacField] = payutils.GenerateCheckMac(fields, tHashKey, tHashIV)
	if tamper {
		fields["TradeAmt"] = "9999"
	}

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	return values.Encode()
}

func TestQueryOrderDecodesVerifiedReply(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("gateway got unparsable form: %s", err)
		}
		sent := payutils.CovertUrlValuesToMap(r.PostForm)
		if !payutils.VerifyCheckMac(r.Context(), sent, tHashKey, tHashIV) {
			t.Error("query request is not properly signed")
		}
		if sent["MerchantTradeNo"] != "AL17000000001234" {
			t.Errorf("MerchantTradeNo = %q", sent["MerchantTradeNo"])
		}
		w.Write([]byte(queryReplyBody(false)))
	}))
	defer gateway.Close()

	svcCtx := newTestSvcCtx("")
	svcCtx.Config.Ecpay.QueryURL = gateway.URL
	l := NewQueryOrderLogic(context.Background(), svcCtx)

	resp, err := l.QueryOrder(&types.QueryOrderRequest{TradeNo: "AL17000000001234"})
	if err != nil {
		t.Fatalf("QueryOrder error: %s", err)
	}
	if resp.TradeNo != "AL17000000001234" {
		t.Errorf("TradeNo = %q", resp.TradeNo)
	}
	if resp.GatewayNo != "2308291234567890" {
		t.Errorf("GatewayNo = %q", resp.GatewayNo)
	}
	if resp.TradeStatus != "1" || resp.TradeAmt != "1050" {
		t.Errorf("unexpected status/amount: %q/%q", resp.TradeStatus, resp.TradeAmt)
	}
}

func TestQueryOrderRejectsTamperedReply(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(queryReplyBody(true)))
	}))
	defer gateway.Close()

	svcCtx := newTestSvcCtx("")
	svcCtx.Config.Ecpay.QueryURL = gateway.URL
	l := NewQueryOrderLogic(context.Background(), svcCtx)

	_, err := l.QueryOrder(&types.QueryOrderRequest{TradeNo: "AL17000000001234"})
	if err == nil || err.Error() != responsex.INVALID_SIGN {
		t.Errorf("err = %v, want code %s", err, responsex.INVALID_SIGN)
	}
}

func TestQueryOrderRequiresConfiguration(t *testing.T) {
	svcCtx := newTestSvcCtx("")
	svcCtx.Config.Ecpay.QueryURL = ""
	l := NewQueryOrderLogic(context.Background(), svcCtx)

	_, err := l.QueryOrder(&types.QueryOrderRequest{TradeNo: "AL17000000001234"})
	if err == nil || err.Error() != responsex.CONFIGURATION_ERROR {
		t.Errorf("err = %v, want code %s", err, responsex.CONFIGURATION_ERROR)
	}
}
