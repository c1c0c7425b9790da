package util

import (
	"strconv"
)

// FormatBadgeCount chuyển số lượng thông báo chưa đọc thành chuỗi hiển thị trên badge.
// Ví dụ: 150 -> "99+".
func FormatBadgeCount(count int) string {
	if count < 0 {
		count = 0
	}
	if count > 99 {
		return "99+"
	}
	
	return strconv.Itoa(count)
}

// Hàm helper để rút gọn tiêu đề
func TruncateContent(title string, maxLength int) string {
	if len(title) <= maxLength {
		return title
	}
	return title[:maxLength] + "..."
}
