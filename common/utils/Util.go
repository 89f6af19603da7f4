package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

type RandomType int8
type UppLowType int8

const (
	ALL    RandomType = 0
	NUMBER RandomType = 1
	STRING RandomType = 2
)

const (
	MIX   UppLowType = 0
	UPPER UppLowType = 1
	LOWER UppLowType = 2
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

//生成随机字符串
func GetRandomString(length int, randomType RandomType, uppLowType UppLowType) string {
	var str string

	switch randomType {
	case NUMBER:
		str = "0123456789"
	case STRING:
		str = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	default:
		str = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	}

	bytes := []byte(str)
	result := []byte{}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < length; i++ {
		result = append(result, bytes[r.Intn(len(bytes))])
	}

	switch uppLowType {
	case UPPER:
		str = strings.ToUpper(str)
	case LOWER:
		str = strings.ToLower(str)
	}

	return string(result)
}

// GenerateTradeNo 产生商户订单号: 前缀+秒级时间戳+4位随机数字, 长度不可超过20码英数
func GenerateTradeNo(prefix string) string {
	return fmt.Sprintf("%s%d%s", prefix, time.Now().Unix(), GetRandomString(4, NUMBER, MIX))
}

// IPChecker 检查来源IP是否在白名单内, 白名单为空时不限制
func IPChecker(ip string, whiteList string) bool {
	if len(strings.TrimSpace(whiteList)) == 0 {
		return true
	}
	for _, white := range strings.FieldsFunc(whiteList, func(r rune) bool {
		return r == ';' || r == ','
	}) {
		if strings.TrimSpace(white) == ip {
			return true
		}
	}
	return false
}
