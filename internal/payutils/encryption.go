package payutils

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// CheckMacField 渠道檢查碼栏位, 不参与加簽
const CheckMacField = "CheckMacValue"

/*
BuildCheckString 依渠道规则组出待杂凑字串:
 1. 排除檢查碼栏位, 参数名转小写后按ASCII升幂排序
 2. HashKey=<key>&K1=V1&...&HashIV=<iv>
 3. 整串URL编码(encodeURIComponent保留字元集)后转小写
 4. 补转 ' => %27, ~ => %7e, %20 => +
*/
func BuildCheckString(params map[string]string, hashKey, hashIV string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == CheckMacField {
			continue
		}
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})

	var sb strings.Builder
	sb.WriteString("HashKey=")
	sb.WriteString(hashKey)
	for _, k := range keys {
		sb.WriteString("&")
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(params[k])
	}
	sb.WriteString("&HashIV=")
	sb.WriteString(hashIV)

	encoded := strings.ToLower(urlEncode(sb.String()))
	encoded = strings.ReplaceAll(encoded, "'", "%27")
	encoded = strings.ReplaceAll(encoded, "~", "%7e")
	encoded = strings.ReplaceAll(encoded, "%20", "+")
	return encoded
}

// GenerateCheckMac 加簽: SHA256后转大写十六进位
func GenerateCheckMac(params map[string]string, hashKey, hashIV string) string {
	sum := sha256.Sum256([]byte(BuildCheckString(params, hashKey, hashIV)))
	return strings.ToUpper(fmt.Sprintf("%x", sum))
}

// VerifyCheckMac 验签: 以收到的所有栏位重算檢查碼并比对
func VerifyCheckMac(ctx context.Context, params map[string]string, hashKey, hashIV string) bool {
	reqSign := strings.ToUpper(params[CheckMacField])
	source := BuildCheckString(params, hashKey, hashIV)
	sum := sha256.Sum256([]byte(source))
	sign := strings.ToUpper(fmt.Sprintf("%x", sum))
	logx.WithContext(ctx).Info("verifySource: ", source)
	logx.WithContext(ctx).Info("verifySign: ", sign)
	logx.WithContext(ctx).Info("reqSign: ", reqSign)

	return hmac.Equal([]byte(sign), []byte(reqSign))
}

// urlEncode 等价 encodeURIComponent: 保留 A-Za-z0-9 -_.!~*'() 其余以UTF-8逐字节百分号编码
func urlEncode(s string) string {
	var sb strings.Builder
	for _, b := range []byte(s) {
		if isUnreserved(b) {
			sb.WriteByte(b)
		} else {
			sb.WriteString(fmt.Sprintf("%%%02X", b))
		}
	}
	return sb.String()
}

func isUnreserved(b byte) bool {
	if b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' {
		return true
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func CovertUrlValuesToMap(values url.Values) map[string]string {
	m := make(map[string]string)
	for k := range values {
		m[k] = values.Get(k)
	}
	return m
}
