package handler

import (
	"encoding/json"
	"net/http"

	"github.com/auralens/ecpay_gateway/common/errorx"
	"github.com/auralens/ecpay_gateway/common/responsex"
	"github.com/auralens/ecpay_gateway/common/vaildx"
	"github.com/auralens/ecpay_gateway/internal/logic"
	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/auralens/ecpay_gateway/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func CreateOrderHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		span := trace.SpanFromContext(r.Context())
		defer span.End()

		var req types.CreateOrderRequest

		if err := httpx.ParseJsonBody(r, &req); err != nil {
			responsex.Text(w, http.StatusBadRequest, responsex.Message(responsex.DECODE_JSON_ERROR))
			return
		}

		if err := vaildx.Validator.Struct(req); err != nil {
			responsex.Text(w, http.StatusBadRequest, responsex.Message(responsex.INVALID_PARAMETER))
			return
		}

		if requestBytes, err := json.Marshal(req); err == nil {
			span.SetAttributes(attribute.KeyValue{
				Key:   "request",
				Value: attribute.StringValue(string(requestBytes)),
			})
		}

		l := logic.NewCreateOrderLogic(r.Context(), ctx)
		resp, err := l.CreateOrder(&req)
		if err != nil {
			// 错误详情只进日志, 对前台一律回笼统讯息
			if codeErr, ok := err.(*errorx.CodeError); ok && codeErr.Error() == responsex.INVALID_AMOUNT {
				responsex.Text(w, http.StatusBadRequest, responsex.Message(responsex.INVALID_AMOUNT))
				return
			}
			responsex.Text(w, http.StatusInternalServerError, responsex.Message(responsex.GENERAL_EXCEPTION))
			return
		}

		if resp.PayPageType == "html" {
			responsex.Html(w, resp.PayPageInfo)
			return
		}
		responsex.Json(w, r, responsex.SUCCESS, resp, err)
	}
}
