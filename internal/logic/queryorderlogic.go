package logic

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/auralens/ecpay_gateway/common/errorx"
	"github.com/auralens/ecpay_gateway/common/responsex"
	"github.com/auralens/ecpay_gateway/internal/payutils"
	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/auralens/ecpay_gateway/internal/types"
	"github.com/gioco-play/gozzle"
	"github.com/mitchellh/mapstructure"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

type QueryOrderLogic struct {
	logx.Logger
	ctx     context.Context
	svcCtx  *svc.ServiceContext
	traceID string
}

func NewQueryOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) QueryOrderLogic {
	return QueryOrderLogic{
		Logger:  logx.WithContext(ctx),
		ctx:     ctx,
		svcCtx:  svcCtx,
		traceID: trace.SpanContextFromContext(ctx).TraceID().String(),
	}
}

// QueryOrder 向渠道查询订单状态, 渠道回应同样需要驗簽
func (l *QueryOrderLogic) QueryOrder(req *types.QueryOrderRequest) (resp *types.QueryOrderResponse, err error) {

	logx.WithContext(l.ctx).Infof("Enter QueryOrder. projectName: %s, tradeNo: %s",
		l.svcCtx.Config.ProjectName, req.TradeNo)

	if !l.svcCtx.Config.HasMerchantCredentials() || l.svcCtx.Config.Ecpay.QueryURL == "" {
		return nil, errorx.New(responsex.CONFIGURATION_ERROR, "merchant credentials or query url not configured")
	}

	// 組請求參數
	params := map[string]string{
		"MerchantID":      l.svcCtx.Config.Ecpay.MerchantID,
		"MerchantTradeNo": req.TradeNo,
		"TimeStamp":       strconv.FormatInt(time.Now().Unix(), 10),
	}

	// 加簽
	params[payutils.CheckMacField] = payutils.GenerateCheckMac(params, l.svcCtx.Config.Ecpay.HashKey, l.svcCtx.Config.Ecpay.HashIV)

	data := url.Values{}
	for k, v := range params {
		data.Set(k, v)
	}

	// 請求渠道
	logx.WithContext(l.ctx).Infof("订单查询请求地址:%s, 查询參數:%+v", l.svcCtx.Config.Ecpay.QueryURL, data)
	span := trace.SpanFromContext(l.ctx)
	res, chnErr := gozzle.Post(l.svcCtx.Config.Ecpay.QueryURL).Timeout(20).Trace(span).Form(data)

	if chnErr != nil {
		logx.WithContext(l.ctx).Error("呼叫渠道返回錯誤: ", chnErr.Error())
		return nil, errorx.New(responsex.SERVICE_RESPONSE_ERROR, chnErr.Error())
	} else if res.Status() != 200 {
		logx.WithContext(l.ctx).Infof("Status: %d  Body: %s", res.Status(), string(res.Body()))
		return nil, errorx.New(responsex.INVALID_STATUS_CODE, fmt.Sprintf("Error HTTP Status: %d", res.Status()))
	}
	logx.WithContext(l.ctx).Infof("Status: %d  Body: %s", res.Status(), string(res.Body()))

	// 渠道回覆為 k=v&... 格式
	values, parseErr := url.ParseQuery(string(res.Body()))
	if parseErr != nil {
		return nil, errorx.New(responsex.CHANNEL_REPLY_ERROR, parseErr.Error())
	}
	replyFields := payutils.CovertUrlValuesToMap(values)

	if isSameSign := payutils.VerifyCheckMac(l.ctx, replyFields, l.svcCtx.Config.Ecpay.HashKey, l.svcCtx.Config.Ecpay.HashIV); !isSameSign {
		return nil, errorx.New(responsex.INVALID_SIGN)
	}

	resp = &types.QueryOrderResponse{}
	if err = mapstructure.Decode(replyFields, resp); err != nil {
		return nil, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}

	return resp, nil
}
