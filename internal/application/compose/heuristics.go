package compose

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// extractName 从自由文本中提取角色名：
// 取第一个长度 ≥3 且首字母大写的空白分隔词，否则返回兜底词
func extractName(text, fallback string) string {
	for _, token := range strings.Fields(text) {
		token = trimTokenPunct(token)
		if utf8.RuneCountInString(token) < 3 {
			continue
		}
		first, _ := utf8.DecodeRuneInString(token)
		if unicode.IsUpper(first) {
			return token
		}
	}
	return fallback
}

// extractClass 从自由文本中提取职业名：
// 取第一个长度 ≥4 且不在停用词表中的空白分隔词，否则返回兜底词
func extractClass(text, fallback string) string {
	for _, token := range strings.Fields(text) {
		token = trimTokenPunct(token)
		if utf8.RuneCountInString(token) < 4 {
			continue
		}
		if _, stop := frenchStopWords[strings.ToLower(token)]; stop {
			continue
		}
		return token
	}
	return fallback
}

func trimTokenPunct(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}
