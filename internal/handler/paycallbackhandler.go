package handler

import (
	"encoding/json"
	"net/http"

	"github.com/auralens/ecpay_gateway/common/responsex"
	"github.com/auralens/ecpay_gateway/internal/logic"
	"github.com/auralens/ecpay_gateway/internal/payutils"
	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/auralens/ecpay_gateway/internal/types"
	"github.com/thinkeridea/go-extend/exnet"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func PayCallBackHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		span := trace.SpanFromContext(r.Context())
		defer span.End()

		// 渠道以form post回調, 驗簽需覆盖所有送来的栏位
		if err := r.ParseForm(); err != nil {
			responsex.Text(w, http.StatusOK, "1|OK")
			return
		}

		req := types.PayCallBackRequest{
			MyIp:   exnet.ClientIP(r),
			Fields: payutils.CovertUrlValuesToMap(r.PostForm),
		}

		if requestBytes, err := json.Marshal(req); err == nil {
			span.SetAttributes(attribute.KeyValue{
				Key:   "request",
				Value: attribute.StringValue(string(requestBytes)),
			})
		}

		l := logic.NewPayCallBackLogic(r.Context(), ctx)
		resp, _ := l.PayCallBack(&req)
		responsex.Text(w, http.StatusOK, resp)
	}
}
