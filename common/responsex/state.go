package responsex

var (
	SUCCESS           = "0"     //"操作成功"
	FAIL              = "EX000" //"Fail"
	INVALID_PARAMETER = "EX001" //"参数不合法"

	GENERAL_EXCEPTION      = "003" // 系統錯誤
	SERVICE_RESPONSE_ERROR = "005" // 服務回傳失敗
	IP_DENIED              = "007" // IP非白名單
	DECODE_JSON_ERROR      = "009" // JSON格式錯誤
	INVALID_SIGN           = "102" // 驗簽失敗
	INVALID_AMOUNT         = "112" // 金額錯誤
	CONFIGURATION_ERROR    = "400" // 設定缺漏

	// 渠道
	CHANNEL_REPLY_ERROR    = "210" // "渠道返回错误"
	INVALID_STATUS_CODE    = "211" // "Http状态码错误"
	ORDER_NUMBER_NOT_EXIST = "501" // "商户订单号不存在"
)
