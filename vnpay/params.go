package vnpay

import (
	"net/url"
	"sort"
	"strings"
)

// SortParams trả về danh sách key theo thứ tự từ điển (byte order)
func SortParams(params map[string]string) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EncodeQuery chuỗi query chuẩn hóa: key sắp xếp tăng dần, encode từng
// thành phần, khoảng trắng là %20 (không dùng dấu +). Giá trị rỗng vẫn
// được giữ lại dưới dạng "key=" vì phía cổng cũng tính chữ ký trên chúng.
func EncodeQuery(params map[string]string) string {
	var b strings.Builder
	for i, k := range SortParams(params) {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(encodeComponent(k))
		b.WriteByte('=')
		b.WriteString(encodeComponent(params[k]))
	}
	return b.String()
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ValuesToParams lấy giá trị đầu tiên của mỗi key, bỏ key không có giá trị
func ValuesToParams(values url.Values) map[string]string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) == 0 {
			continue
		}
		params[k] = v[0]
	}
	return params
}
