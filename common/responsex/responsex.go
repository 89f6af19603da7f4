package responsex

import (
	"net/http"

	"github.com/auralens/ecpay_gateway/common/errorx"
	_ "github.com/auralens/ecpay_gateway/locales"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type RespVO struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Trace   string      `json:"trace"`
}

var printer = message.NewPrinter(language.Make("en"))

// Json writes the standard JSON envelope. The human message is resolved from the
// locales catalog by state code; detail from a CodeError is logged, never returned.
func Json(w http.ResponseWriter, r *http.Request, code string, data interface{}, err error) {
	if codeErr, ok := err.(*errorx.CodeError); ok && codeErr.GetMessage() != "" {
		logx.WithContext(r.Context()).Errorf("code: %s, detail: %s", code, codeErr.GetMessage())
	}

	resp := RespVO{
		Code:    code,
		Message: printer.Sprintf(code),
		Data:    data,
		Trace:   trace.SpanContextFromContext(r.Context()).TraceID().String(),
	}
	httpx.OkJson(w, resp)
}

// Message resolves the human message for a state code.
func Message(code string) string {
	return printer.Sprintf(code)
}

// Html writes a self-contained HTML document.
func Html(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// Text writes a plain-text body with the given status code.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
