package main

import (
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/auralens/ecpay_gateway/internal/config"
	"github.com/auralens/ecpay_gateway/internal/handler"
	"github.com/auralens/ecpay_gateway/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var (
	configFile = flag.String("f", "etc/ecpaygateway.yaml", "the config file")
	envFile    = flag.String("env", "etc/.env", "the env file")
)

func main() {
	flag.Parse()

	// 环境变数也可由部署平台注入, .env缺漏不视为错误
	if err := godotenv.Load(*envFile); err != nil {
		logx.Infof("no env file loaded: %s", err.Error())
	}

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	ctx := svc.NewServiceContext(c)
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
