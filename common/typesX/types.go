package typesX

type TransactionLogData struct {
	MerchantNo      string
	MerchantOrderNo string
	OrderNo         string
	LogType         string
	LogSource       string
	Content         interface{}
	TraceId         string
	ErrorCode       string
	ErrorMsg        string
}

type TxLog struct {
	MerchantCode    string `gorm:"column:merchant_code"`
	MerchantOrderNo string `gorm:"column:merchant_order_no"`
	OrderNo         string `gorm:"column:order_no"`
	LogType         string `gorm:"column:log_type"`
	LogSource       string `gorm:"column:log_source"`
	Content         string `gorm:"column:content"`
	TraceId         string `gorm:"column:trace_id"`
	ErrorCode       string `gorm:"column:error_code"`
	ErrorMsg        string `gorm:"column:error_msg"`
	CreatedAt       string `gorm:"column:created_at"`
}
