package logic

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/auralens/ecpay_gateway/common/constants"
	"github.com/auralens/ecpay_gateway/common/errorx"
	"github.com/auralens/ecpay_gateway/common/responsex"
	"github.com/auralens/ecpay_gateway/common/typesX"
	"github.com/auralens/ecpay_gateway/common/utils"
	"github.com/auralens/ecpay_gateway/internal/payutils"
	"github.com/auralens/ecpay_gateway/internal/service"
	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/auralens/ecpay_gateway/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

// 商户订单号前缀
const tradeNoPrefix = "AL"

type CreateOrderLogic struct {
	logx.Logger
	ctx     context.Context
	svcCtx  *svc.ServiceContext
	traceID string
}

func NewCreateOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) CreateOrderLogic {
	return CreateOrderLogic{
		Logger:  logx.WithContext(ctx),
		ctx:     ctx,
		svcCtx:  svcCtx,
		traceID: trace.SpanContextFromContext(ctx).TraceID().String(),
	}
}

func (l *CreateOrderLogic) CreateOrder(req *types.CreateOrderRequest) (resp *types.CreateOrderResponse, err error) {

	logx.WithContext(l.ctx).Infof("Enter CreateOrder. projectName: %s, customer: %s, itemName: %s",
		l.svcCtx.Config.ProjectName, req.CustomerEmail, req.ItemName)

	// 凭证缺漏一律不可动单
	if !l.svcCtx.Config.HasMerchantCredentials() {
		return nil, errorx.New(responsex.CONFIGURATION_ERROR, "merchant credentials not configured")
	}

	// 取值: 有带购物车品项时金額以本服务计算为准, 前台传入值不采用
	amount := req.Amount
	itemName := req.ItemName
	if len(req.Items) > 0 {
		amount = payutils.CalculateOrderAmount(req.Items)
		if itemName == "" {
			itemName = payutils.JoinItemNames(req.Items)
		}
	}
	if amount <= 0 {
		return nil, errorx.New(responsex.INVALID_AMOUNT)
	}

	tradeNo := utils.GenerateTradeNo(tradeNoPrefix)
	publicBase := strings.TrimSuffix(l.svcCtx.Config.PublicBaseURL, "/")
	siteBase := strings.TrimSuffix(l.svcCtx.Config.Site.BaseURL, "/")

	// 組請求參數
	params := payutils.BuildAioParams(payutils.AioOrder{
		MerchantID:     l.svcCtx.Config.Ecpay.MerchantID,
		TradeNo:        tradeNo,
		TradeDate:      time.Now().In(payutils.TradeLocation),
		TotalAmount:    amount,
		TradeDesc:      l.svcCtx.Config.ProjectName,
		ItemName:       itemName,
		ReturnURL:      publicBase + "/gateway-notify",
		OrderResultURL: publicBase + "/gateway-return",
		ClientBackURL:  siteBase + "/",
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
	})

	// 加簽
	params[payutils.CheckMacField] = payutils.GenerateCheckMac(params, l.svcCtx.Config.Ecpay.HashKey, l.svcCtx.Config.Ecpay.HashIV)

	//寫入交易日志
	if err := utils.CreateTransactionLog(l.svcCtx.MyDB, &typesX.TransactionLogData{
		MerchantNo: l.svcCtx.Config.Ecpay.MerchantID,
		OrderNo:    tradeNo,
		LogType:    constants.DATA_REQUEST_GATEWAY,
		LogSource:  constants.API_CHECKOUT,
		Content:    params,
		TraceId:    l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	// 模拟模式: 不导向渠道, 回执后自触发模拟回調走正式驗簽流程
	if l.svcCtx.Config.Ecpay.Simulate {
		service.CallSimulatedNotify(l.ctx, l.svcCtx, tradeNo, params)

		detailsJson, err3 := json.Marshal(types.OrderDetailsVO{
			OrderID: tradeNo,
			Message: "order received, simulated notification scheduled",
		})
		if err3 != nil {
			return nil, errorx.New(responsex.GENERAL_EXCEPTION, err3.Error())
		}
		return &types.CreateOrderResponse{
			PayPageType: "json",
			PayPageInfo: string(detailsJson),
			OrderNo:     tradeNo,
		}, nil
	}

	html, err := payutils.RenderAutoSubmitForm(l.svcCtx.Config.Ecpay.AioURL, params)
	if err != nil {
		return nil, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}

	resp = &types.CreateOrderResponse{
		PayPageType: "html",
		PayPageInfo: html,
		OrderNo:     tradeNo,
	}

	return
}
