package handler

import (
	"net/http"

	"github.com/auralens/ecpay_gateway/internal/logic"
	"github.com/auralens/ecpay_gateway/internal/payutils"
	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/auralens/ecpay_gateway/internal/types"
	"go.opentelemetry.io/otel/trace"
)

func PayReturnHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		span := trace.SpanFromContext(r.Context())
		defer span.End()

		// 浏览器侧POST, 内容仅供记录, 解析失败也照样导回前台
		_ = r.ParseForm()

		req := types.PayReturnRequest{
			Fields: payutils.CovertUrlValuesToMap(r.PostForm),
		}

		l := logic.NewPayReturnLogic(r.Context(), ctx)
		location := l.PayReturn(&req)
		http.Redirect(w, r, location, http.StatusFound)
	}
}
