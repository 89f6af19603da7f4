package locales

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// init
func init() {
	initEn(language.Make("en"))
}

// initEn will init en support.
func initEn(tag language.Tag) {
	message.SetString(tag, "0", "Success")
	message.SetString(tag, "003", "System error, please try again later")
	message.SetString(tag, "005", "Upstream service response failed")
	message.SetString(tag, "007", "IP not in the allow list")
	message.SetString(tag, "009", "Invalid JSON format or parameter type")
	message.SetString(tag, "102", "Signature verification failed")
	message.SetString(tag, "112", "Invalid amount")
	message.SetString(tag, "400", "Service is not configured for payments")
	message.SetString(tag, "210", "Gateway returned an error")
	message.SetString(tag, "211", "Unexpected HTTP status code")
	message.SetString(tag, "501", "Merchant trade number not found")
	message.SetString(tag, "EX000", "Fail")
	message.SetString(tag, "EX001", "Invalid parameter")
}
