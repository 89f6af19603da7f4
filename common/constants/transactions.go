package constants

const (
	//交易日志类型
	ERROR_MSG             = "1" //1:錯誤訊息
	STOREFRONT_REQUEST    = "2" //2:商店前台请求
	DATA_REQUEST_GATEWAY  = "3" //3:打给金流闸道资料
	RESPONSE_FROM_GATEWAY = "4" //4:金流闸道返回资料
	CALLBACK_FROM_GATEWAY = "5" //5:金流闸道回调资料
	FORWARD_TO_LEDGER     = "6" //6:转发至帐务系统

	//日誌來源
	API_CHECKOUT = "1" //結帳API
	API_NOTIFY   = "2" //回調API
)
