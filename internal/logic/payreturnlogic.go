package logic

import (
	"context"
	"strings"

	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/auralens/ecpay_gateway/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type PayReturnLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPayReturnLogic(ctx context.Context, svcCtx *svc.ServiceContext) PayReturnLogic {
	return PayReturnLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// PayReturn 把渠道的浏览器侧POST转成前台可显示的GET导向。
// 不信任POST内容, 结果以服务器对服务器回調为准。
func (l *PayReturnLogic) PayReturn(req *types.PayReturnRequest) string {
	logx.WithContext(l.ctx).Infof("Enter PayReturn. tradeNo: %s, rtnCode: %s",
		req.Fields["MerchantTradeNo"], req.Fields["RtnCode"])

	siteBase := strings.TrimSuffix(l.svcCtx.Config.Site.BaseURL, "/")
	return siteBase + "/?from_ecpay=1"
}
