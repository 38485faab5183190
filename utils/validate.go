package utils

import (
	"strings"
)

// SanitizeName 去除尖括号字符并裁剪首尾空白
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, "<", "")
	name = strings.ReplaceAll(name, ">", "")
	return strings.TrimSpace(name)
}
