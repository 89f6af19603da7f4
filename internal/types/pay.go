package types

type CartItem struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int64   `json:"quantity" validate:"gt=0"`
}

type CreateOrderRequest struct {
	Amount        int64      `json:"amount,optional" validate:"required_without=Items,omitempty,gt=0"`
	ItemName      string     `json:"itemName,optional" validate:"required_without=Items"`
	CustomerEmail string     `json:"customerEmail" validate:"required,email"`
	CustomerName  string     `json:"customerName" validate:"required"`
	CustomerPhone string     `json:"customerPhone,optional"`
	InvoiceType   string     `json:"invoiceType,optional" validate:"omitempty,oneof=two-part three-part"`
	CompanyName   string     `json:"companyName,optional" validate:"required_if=InvoiceType three-part"`
	TaxID         string     `json:"taxId,optional" validate:"omitempty,numeric,len=8"`
	Items         []CartItem `json:"items,optional" validate:"omitempty,dive"`
}

type CreateOrderResponse struct {
	PayPageType string `json:"payPageType"` // html: 自动导向表单 / json: 模拟模式回执
	PayPageInfo string `json:"payPageInfo"`
	OrderNo     string `json:"orderNo"`
}

type OrderDetailsVO struct {
	OrderID string `json:"orderId"`
	Message string `json:"message,omitempty"`
}

// PayCallBackRequest 渠道回調原始栏位, 驗簽需涵盖所有POST栏位故以map承载
type PayCallBackRequest struct {
	MyIp   string
	Fields map[string]string
}

// PayCallBackNotification 驗簽通过后的具型检视
type PayCallBackNotification struct {
	MerchantID           string `mapstructure:"MerchantID"`
	MerchantTradeNo      string `mapstructure:"MerchantTradeNo"`
	StoreID              string `mapstructure:"StoreID"`
	RtnCode              string `mapstructure:"RtnCode"`
	RtnMsg               string `mapstructure:"RtnMsg"`
	TradeNo              string `mapstructure:"TradeNo"`
	TradeAmt             string `mapstructure:"TradeAmt"`
	PaymentDate          string `mapstructure:"PaymentDate"`
	PaymentType          string `mapstructure:"PaymentType"`
	PaymentTypeChargeFee string `mapstructure:"PaymentTypeChargeFee"`
	TradeDate            string `mapstructure:"TradeDate"`
	SimulatePaid         string `mapstructure:"SimulatePaid"`
	CustomField1         string `mapstructure:"CustomField1"`
	CustomField2         string `mapstructure:"CustomField2"`
	CustomField3         string `mapstructure:"CustomField3"`
	CustomField4         string `mapstructure:"CustomField4"`
	CheckMacValue        string `mapstructure:"CheckMacValue"`
}

type PayReturnRequest struct {
	Fields map[string]string
}

type QueryOrderRequest struct {
	TradeNo string `json:"tradeNo" validate:"required"`
}

type QueryOrderResponse struct {
	TradeNo     string `json:"tradeNo" mapstructure:"MerchantTradeNo"`
	GatewayNo   string `json:"gatewayNo" mapstructure:"TradeNo"`
	TradeStatus string `json:"tradeStatus" mapstructure:"TradeStatus"`
	TradeAmt    string `json:"tradeAmt" mapstructure:"TradeAmt"`
	PaymentDate string `json:"paymentDate" mapstructure:"PaymentDate"`
	PaymentType string `json:"paymentType" mapstructure:"PaymentType"`
}
