package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/auralens/ecpay_gateway/common/constants"
	"github.com/auralens/ecpay_gateway/common/constants/redisKey"
	"github.com/auralens/ecpay_gateway/common/errorx"
	"github.com/auralens/ecpay_gateway/common/responsex"
	"github.com/auralens/ecpay_gateway/common/typesX"
	"github.com/auralens/ecpay_gateway/common/utils"
	"github.com/auralens/ecpay_gateway/internal/payutils"
	"github.com/auralens/ecpay_gateway/internal/service"
	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/auralens/ecpay_gateway/internal/types"
	"github.com/gioco-play/gozzle"
	"github.com/mitchellh/mapstructure"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

// ackBody 渠道要求的固定回应, 任何结果都要回, 否则渠道会重送
const ackBody = "1|OK"

// rtnCodePaid 渠道付款成功代码
const rtnCodePaid = "1"

type PayCallBackLogic struct {
	logx.Logger
	ctx     context.Context
	svcCtx  *svc.ServiceContext
	traceID string
}

func NewPayCallBackLogic(ctx context.Context, svcCtx *svc.ServiceContext) PayCallBackLogic {
	return PayCallBackLogic{
		Logger:  logx.WithContext(ctx),
		ctx:     ctx,
		svcCtx:  svcCtx,
		traceID: trace.SpanContextFromContext(ctx).TraceID().String(),
	}
}

// PayCallBack 处理渠道付款结果回調: 驗簽 -> 判读结果 -> 成功时转发帐务系统。
// 除回应体外不对渠道暴露任何处理结果。
func (l *PayCallBackLogic) PayCallBack(req *types.PayCallBackRequest) (resp string, err error) {

	logx.WithContext(l.ctx).Infof("Enter PayCallBack. projectName: %s, fields: %+v",
		l.svcCtx.Config.ProjectName, req.Fields)

	//寫入交易日志
	if err := utils.CreateTransactionLog(l.svcCtx.MyDB, &typesX.TransactionLogData{
		MerchantNo: req.Fields["MerchantID"],
		OrderNo:    req.Fields["MerchantTradeNo"],
		LogType:    constants.CALLBACK_FROM_GATEWAY,
		LogSource:  constants.API_NOTIFY,
		Content:    req.Fields,
		TraceId:    l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	// 檢查白名單
	if isWhite := utils.IPChecker(req.MyIp, l.svcCtx.Config.Ecpay.WhiteList); !isWhite {
		logx.WithContext(l.ctx).Errorf("notify from non-whitelisted IP: %s", req.MyIp)
		return ackBody, nil
	}

	if !l.svcCtx.Config.HasMerchantCredentials() {
		logx.WithContext(l.ctx).Errorf("merchant credentials not configured, notify cannot be authenticated")
		return ackBody, nil
	}

	// 檢查驗簽
	if isSameSign := payutils.VerifyCheckMac(l.ctx, req.Fields, l.svcCtx.Config.Ecpay.HashKey, l.svcCtx.Config.Ecpay.HashIV); !isSameSign {
		logx.WithContext(l.ctx).Errorf("CheckMacValue mismatch, tradeNo: %s", req.Fields["MerchantTradeNo"])
		return ackBody, nil
	}

	var notification types.PayCallBackNotification
	if err := mapstructure.Decode(req.Fields, &notification); err != nil {
		logx.WithContext(l.ctx).Errorf("decode notification error: %s", err.Error())
		return ackBody, nil
	}

	if notification.RtnCode != rtnCodePaid {
		logx.WithContext(l.ctx).Infof("trade not paid, tradeNo: %s, rtnCode: %s, rtnMsg: %s",
			notification.MerchantTradeNo, notification.RtnCode, notification.RtnMsg)
		return ackBody, nil
	}

	// 去重: 渠道可能重送已处理的回調
	if l.isDuplicate(notification.MerchantTradeNo) {
		logx.WithContext(l.ctx).Infof("duplicate notify skipped, tradeNo: %s", notification.MerchantTradeNo)
		return ackBody, nil
	}

	/** 转发至帐务系统 **/
	if err := l.forwardToLedger(req.Fields, notification); err != nil {
		logx.WithContext(l.ctx).Errorf("forward to ledger error, tradeNo: %s, err: %s",
			notification.MerchantTradeNo, err.Error())
		msg := fmt.Sprintf("帐务转发失败, 订单号: '%s', 金額: '%s', 错误: '%s'",
			notification.MerchantTradeNo, notification.TradeAmt, err.Error())
		service.CallAlertSendURL(l.ctx, l.svcCtx, msg)
	}

	return ackBody, nil
}

// isDuplicate 以商户订单号做SETNX去重, Redis不可用时宁可重复转发也不可漏单
func (l *PayCallBackLogic) isDuplicate(tradeNo string) bool {
	if l.svcCtx.RedisClient == nil {
		return false
	}
	key := redisKey.CACHE_NOTIFY_DEDUP + tradeNo
	ok, err := l.svcCtx.RedisClient.SetNX(l.ctx, key, time.Now().UTC().String(), 24*time.Hour).Result()
	if err != nil {
		logx.WithContext(l.ctx).Errorf("dedup check error, forwarding anyway: %s", err.Error())
		return false
	}
	return !ok
}

func (l *PayCallBackLogic) forwardToLedger(fields map[string]string, notification types.PayCallBackNotification) error {
	if l.svcCtx.Config.Ledger.WebhookURL == "" {
		return errorx.New(responsex.CONFIGURATION_ERROR, "ledger webhook url not configured")
	}

	timeout := l.svcCtx.Config.Ledger.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	span := trace.SpanFromContext(l.ctx)
	res, errx := gozzle.Post(l.svcCtx.Config.Ledger.WebhookURL).Timeout(timeout).Trace(span).JSON(fields)
	if errx != nil {
		return errorx.New(responsex.SERVICE_RESPONSE_ERROR, errx.Error())
	} else if res.Status() < 200 || res.Status() >= 300 {
		return errorx.New(responsex.INVALID_STATUS_CODE, fmt.Sprintf("status:%d", res.Status()))
	}
	logx.WithContext(l.ctx).Infof("ledger forwarded, tradeNo: %s, status: %d", notification.MerchantTradeNo, res.Status())

	//寫入交易日志
	if err := utils.CreateTransactionLog(l.svcCtx.MyDB, &typesX.TransactionLogData{
		MerchantNo: notification.MerchantID,
		OrderNo:    notification.MerchantTradeNo,
		LogType:    constants.FORWARD_TO_LEDGER,
		LogSource:  constants.API_NOTIFY,
		Content:    fields,
		TraceId:    l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	return nil
}
