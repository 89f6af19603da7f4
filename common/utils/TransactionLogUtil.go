package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/auralens/ecpay_gateway/common/typesX"
	"gorm.io/gorm"
)

//寫入交易日志, 失敗時由呼叫端記log, 不可中斷主流程
func CreateTransactionLog(db *gorm.DB, data *typesX.TransactionLogData) (err error) {
	if db == nil {
		return errors.New("transaction log database not configured")
	}

	var content string
	switch c := data.Content.(type) {
	case string:
		content = c
	default:
		if contentBytes, jsonErr := json.Marshal(data.Content); jsonErr == nil {
			content = string(contentBytes)
		} else {
			content = fmt.Sprintf("%+v", data.Content)
		}
	}

	txLog := typesX.TxLog{
		MerchantCode:    data.MerchantNo,
		MerchantOrderNo: data.MerchantOrderNo,
		OrderNo:         data.OrderNo,
		LogType:         data.LogType,
		LogSource:       data.LogSource,
		Content:         content,
		TraceId:         data.TraceId,
		ErrorCode:       data.ErrorCode,
		ErrorMsg:        data.ErrorMsg,
		CreatedAt:       time.Now().UTC().String(),
	}

	if err = db.Table("tx_log").Create(&txLog).Error; err != nil {
		return
	}

	return nil
}
