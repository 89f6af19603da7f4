package svc

import (
	"fmt"
	"strings"

	"github.com/auralens/ecpay_gateway/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/neccoys/go-driver/mysqlx"
	"gorm.io/gorm"
)

type ServiceContext struct {
	Config      config.Config
	RedisClient *redis.Client
	MyDB        *gorm.DB
}

func NewServiceContext(c config.Config) *ServiceContext {
	svcCtx := &ServiceContext{
		Config: c,
	}

	// Redis: 回調去重用, 未設定时跳过 (去重降级为尽力而为)
	if len(c.RedisCache.RedisSentinelNode) > 0 {
		svcCtx.RedisClient = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    c.RedisCache.RedisMasterName,
			SentinelAddrs: strings.Split(c.RedisCache.RedisSentinelNode, ";"),
			DB:            c.RedisCache.RedisDB,
		})
	}

	// DB: 交易日志用, 未設定时跳过
	if len(c.Mysql.Host) > 0 {
		db, err := mysqlx.New(c.Mysql.Host, fmt.Sprintf("%d", c.Mysql.Port), c.Mysql.UserName, c.Mysql.Password, c.Mysql.DBName).
			SetCharset("utf8mb4").
			SetLoc("UTC").
			Connect(mysqlx.Pool(50, 100, 180))

		if err != nil {
			panic(err)
		}
		svcCtx.MyDB = db
	}

	return svcCtx
}
