package handler

import (
	"net/http"

	"github.com/auralens/ecpay_gateway/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/create-order",
				Handler: CreateOrderHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/gateway-notify",
				Handler: PayCallBackHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/gateway-return",
				Handler: PayReturnHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/query-order",
				Handler: QueryOrderHandler(serverCtx),
			},
		},
	)
}
