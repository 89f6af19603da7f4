package payutils

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/auralens/ecpay_gateway/internal/types"
	"github.com/shopspring/decimal"
)

// TaxRate 固定营业税率
var TaxRate = decimal.NewFromFloat(0.05)

// TradeDateFormat 渠道要求的交易时间格式
const TradeDateFormat = "2006/01/02 15:04:05"

// TradeLocation 渠道要求的交易时区
var TradeLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}()

type AioOrder struct {
	MerchantID     string
	TradeNo        string
	TradeDate      time.Time
	TotalAmount    int64
	TradeDesc      string
	ItemName       string
	ReturnURL      string
	OrderResultURL string
	ClientBackURL  string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
}

// BuildAioParams 组出渠道AIO下单参数, 不含檢查碼
func BuildAioParams(order AioOrder) map[string]string {
	return map[string]string{
		"MerchantID":        order.MerchantID,
		"MerchantTradeNo":   order.TradeNo,
		"MerchantTradeDate": order.TradeDate.Format(TradeDateFormat),
		"PaymentType":       "aio",
		"TotalAmount":       strconv.FormatInt(order.TotalAmount, 10),
		"TradeDesc":         order.TradeDesc,
		"ItemName":          order.ItemName,
		"ReturnURL":         order.ReturnURL,
		"OrderResultURL":    order.OrderResultURL,
		"ClientBackURL":     order.ClientBackURL,
		"ChoosePayment":     "ALL",
		"EncryptType":       "1",
		"NeedExtraPaidInfo": "N",
		"CustomField1":      order.CustomerName,
		"CustomField2":      order.CustomerEmail,
		"CustomField3":      order.CustomerPhone,
	}
}

// CalculateOrderAmount 小计*(1+税率)后四舍五入取整(half away from zero)
// 前台顯示金額需采用相同规则, 否则顯示值与加簽值会不一致
func CalculateOrderAmount(items []types.CartItem) int64 {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(item.Quantity)))
	}
	total := subtotal.Mul(decimal.NewFromInt(1).Add(TaxRate))
	return total.Round(0).IntPart()
}

// JoinItemNames 渠道ItemName格式: 品名 x数量, 多品项以#分隔
func JoinItemNames(items []types.CartItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}
	return strings.Join(names, "#")
}

var autoSubmitTpl = template.Must(template.New("aioform").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Redirecting to payment...</title>
</head>
<body>
<form id="ecpay-form" method="post" action="{{.Action}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
</form>
<script>document.getElementById("ecpay-form").submit();</script>
</body>
</html>
`))

type formField struct {
	Name  string
	Value string
}

// RenderAutoSubmitForm 渲染自动送出表单, 浏览器载入即以POST导向渠道
func RenderAutoSubmitForm(action string, params map[string]string) (string, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]formField, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, formField{Name: k, Value: params[k]})
	}

	var buf bytes.Buffer
	err := autoSubmitTpl.Execute(&buf, struct {
		Action string
		Fields []formField
	}{
		Action: action,
		Fields: fields,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
