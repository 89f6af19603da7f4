package service

import (
	"context"
	"fmt"

	"github.com/auralens/ecpay_gateway/common/errorx"
	"github.com/auralens/ecpay_gateway/common/responsex"
	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/gioco-play/gozzle"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

func CallAlertSendURL(ctx context.Context, svcCtx *svc.ServiceContext, message string) {
	go func() {
		DoCallAlertSendURL(ctx, svcCtx, message)
	}()
}

func DoCallAlertSendURL(ctx context.Context, svcCtx *svc.ServiceContext, message string) error {
	if svcCtx.Config.AlertSend.Host == "" {
		logx.WithContext(ctx).Infof("alert service not configured, message dropped: %s", message)
		return nil
	}

	span := trace.SpanFromContext(ctx)
	notifyUrl := fmt.Sprintf("%s:%d/alert/send", svcCtx.Config.AlertSend.Host, svcCtx.Config.AlertSend.Port)
	data := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}

	res, errx := gozzle.Post(notifyUrl).Timeout(20).Trace(span).JSON(data)
	if res != nil {
		logx.WithContext(ctx).Info("response Status:", res.Status())
		logx.WithContext(ctx).Info("response Body:", string(res.Body()))
	}
	if errx != nil {
		logx.WithContext(ctx).Errorf("报警通知失敗:%s", errx.Error())
		return errorx.New(responsex.GENERAL_EXCEPTION, errx.Error())
	} else if res.Status() != 200 {
		return errorx.New(responsex.INVALID_STATUS_CODE, fmt.Sprintf("call alertService httpStatus:%d", res.Status()))
	}

	return nil
}
