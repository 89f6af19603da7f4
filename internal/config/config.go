package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	ProjectName   string
	PublicBaseURL string // 本服务对外网址, 渠道回調用
	Site          struct {
		BaseURL string // 商店前台网址
	}
	Ecpay struct {
		MerchantID string `json:",optional"`
		HashKey    string `json:",optional"`
		HashIV     string `json:",optional"`
		AioURL     string
		QueryURL   string `json:",optional"`
		Simulate   bool   `json:",optional"` // POC模式: 不导向渠道, 自触发模拟回調
		WhiteList  string `json:",optional"` // 渠道回調来源IP白名单, 空值不限制
	}
	Ledger struct {
		WebhookURL     string `json:",optional"`
		TimeoutSeconds int    `json:",default=10"`
	}
	Mysql struct {
		Host       string `json:",optional"`
		Port       int    `json:",optional"`
		DBName     string `json:",optional"`
		UserName   string `json:",optional"`
		Password   string `json:",optional"`
		DebugLevel string `json:",optional"`
	} `json:",optional"`
	RedisCache struct {
		RedisSentinelNode string `json:",optional"`
		RedisMasterName   string `json:",optional"`
		RedisDB           int    `json:",optional"`
	} `json:",optional"`
	AlertSend struct {
		Host string `json:",optional"`
		Port int    `json:",optional"`
	} `json:",optional"`
}

// HasMerchantCredentials 检查渠道凭证是否齐全, 任一缺漏即不可加簽
func (c Config) HasMerchantCredentials() bool {
	return c.Ecpay.MerchantID != "" && c.Ecpay.HashKey != "" && c.Ecpay.HashIV != ""
}
