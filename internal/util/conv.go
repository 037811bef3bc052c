package util

import (
	"strconv"
)

// ParsePositiveInt 将字符串转换为正整数，解析失败或非正数时返回默认值
func ParsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
