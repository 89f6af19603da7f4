package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/auralens/ecpay_gateway/common/errorx"
	"github.com/auralens/ecpay_gateway/common/responsex"
	"github.com/auralens/ecpay_gateway/common/utils"
	"github.com/auralens/ecpay_gateway/internal/payutils"
	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/gioco-play/gozzle"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

// CallSimulatedNotify 模拟模式下代替渠道发出付款成功回調。
// 回調打到本服务的公开地址并带正式簽章, 让驗簽与转发流程照常跑完。
func CallSimulatedNotify(ctx context.Context, svcCtx *svc.ServiceContext, tradeNo string, orderParams map[string]string) {
	go func() {
		DoCallSimulatedNotify(ctx, svcCtx, tradeNo, orderParams)
	}()
}

func DoCallSimulatedNotify(ctx context.Context, svcCtx *svc.ServiceContext, tradeNo string, orderParams map[string]string) error {
	span := trace.SpanFromContext(ctx)
	now := time.Now().In(payutils.TradeLocation).Format(payutils.TradeDateFormat)

	fields := map[string]string{
		"MerchantID":           svcCtx.Config.Ecpay.MerchantID,
		"MerchantTradeNo":      tradeNo,
		"StoreID":              "",
		"RtnCode":              "1",
		"RtnMsg":               "交易成功",
		"TradeNo":              "SIM" + utils.GetRandomString(12, utils.NUMBER, utils.MIX),
		"TradeAmt":             orderParams["TotalAmount"],
		"PaymentDate":          now,
		"PaymentType":          "Credit_CreditCard",
		"PaymentTypeChargeFee": "0",
		"TradeDate":            orderParams["MerchantTradeDate"],
		"SimulatePaid":         "1",
		"CustomField1":         orderParams["CustomField1"],
		"CustomField2":         orderParams["CustomField2"],
		"CustomField3":         orderParams["CustomField3"],
		"CustomField4":         "",
	}
	fields[payutils.CheckMacField] = payutils.GenerateCheckMac(fields, svcCtx.Config.Ecpay.HashKey, svcCtx.Config.Ecpay.HashIV)

	data := url.Values{}
	for k, v := range fields {
		data.Set(k, v)
	}

	notifyUrl := strings.TrimSuffix(svcCtx.Config.PublicBaseURL, "/") + "/gateway-notify"
	logx.WithContext(ctx).Infof("模拟回調: %s, tradeNo: %s", notifyUrl, tradeNo)

	res, errx := gozzle.Post(notifyUrl).Timeout(20).Trace(span).Form(data)
	if res != nil {
		logx.WithContext(ctx).Info("response Status:", res.Status())
		logx.WithContext(ctx).Info("response Body:", string(res.Body()))
	}
	if errx != nil {
		logx.WithContext(ctx).Errorf("模拟回調失敗:%s", errx.Error())
		return errorx.New(responsex.GENERAL_EXCEPTION, errx.Error())
	} else if res.Status() != 200 {
		return errorx.New(responsex.INVALID_STATUS_CODE, fmt.Sprintf("simulated notify httpStatus:%d", res.Status()))
	}

	return nil
}
