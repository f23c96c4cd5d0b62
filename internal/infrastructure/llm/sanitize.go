// Package llm 提供多后端文本生成适配层
package llm

import (
	"regexp"
	"strings"
)

// 清洗顺序固定：后面的通用规则假定前面的字面量模式已被移除
var (
	thinkSpanRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

	// 指令泄漏片段：匹配到下一个空行或文本结尾
	instructionLabelRe = regexp.MustCompile(`(?is)response instructions?\s*:?.*?(\n[ \t]*\n|\z)`)
	noEmojiRe          = regexp.MustCompile(`(?is)(?:do not use|no)\s+emojis?[^\n]*bold[^\n]*.*?(\n[ \t]*\n|\z)`)
	plainTextRe        = regexp.MustCompile(`(?is)plain text only[^\n]*.*?(\n[ \t]*\n|\z)`)

	// 调用唯一性标记 #<digits>，以及与之配对的前置裸数字
	pairedSuffixRe = regexp.MustCompile(`\b\d+\s*#\d+`)
	callSuffixRe   = regexp.MustCompile(`#\d+`)

	// 仅由行首数字构成的行（编号列表泄漏残留）
	bareNumberLineRe = regexp.MustCompile(`(?m)^[0-9]+[ \t]*$\n?`)

	// Markdown 装饰
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe  = regexp.MustCompile(`\*(.*?)\*`)
	codeRe    = regexp.MustCompile("`([^`]*)`")
	headingRe = regexp.MustCompile(`(?m)^#{1,6}[ \t]*`)
	linkRe    = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

	// 空白折叠
	hspaceRunRe    = regexp.MustCompile(`[ \t]{2,}`)
	blankLinesRe   = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)
	danglingDashRe = regexp.MustCompile(`(?m)^[ \t]*-[ \t]*$\n?`)
)

// Sanitize 清洗模型原始输出：移除推理标签、指令泄漏、调用标记与 Markdown 装饰。
// 纯函数且幂等，输出长度不会超过输入；输入全为样板时可能返回空串。
func Sanitize(raw string) string {
	s := raw

	// 1. 移除 <think>...</think> 推理片段（含内容，跨行）
	s = thinkSpanRe.ReplaceAllString(s, "")

	// 2. 移除已知的指令泄漏片段
	s = instructionLabelRe.ReplaceAllString(s, "")
	s = noEmojiRe.ReplaceAllString(s, "")
	s = plainTextRe.ReplaceAllString(s, "")

	// 3. 移除调用唯一性标记及配对数字
	s = pairedSuffixRe.ReplaceAllString(s, "")
	s = callSuffixRe.ReplaceAllString(s, "")

	// 4. 移除纯数字行
	s = bareNumberLineRe.ReplaceAllString(s, "")

	// 5. 去除 Markdown 装饰，保留内部文本
	s = boldRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	s = codeRe.ReplaceAllString(s, "$1")
	s = headingRe.ReplaceAllString(s, "")
	s = linkRe.ReplaceAllString(s, "$1")

	// 6. 折叠空白：行内空白缩为单个空格，连续空行缩为一个空行
	s = hspaceRunRe.ReplaceAllString(s, " ")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")

	// 7. 移除孤立的列表短横线行，并收敛移除后产生的连续空行
	s = danglingDashRe.ReplaceAllString(s, "")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")

	// 8. 去除首尾空白
	return strings.TrimSpace(s)
}
