package compose

import (
	"fmt"
	"strings"

	"gameforge-api/internal/domain/entity"
)

// promptContext 所有字段提示词共享的游戏上下文
type promptContext struct {
	Title      string
	Genre      entity.GameGenre
	Ambiance   entity.GameAmbiance
	Keywords   string
	References string
}

// preamble 构造提示词前导：游戏上下文 + 纯文本输出指令。
// 指令行的措辞与清洗规则配套，泄漏回输出时会被完整移除。
func (p promptContext) preamble() string {
	var b strings.Builder
	b.WriteString("You are writing content for a video game design document.\n")
	if p.Title != "" {
		fmt.Fprintf(&b, "Game: %s\n", p.Title)
	}
	if p.Genre != "" {
		fmt.Fprintf(&b, "Genre: %s\n", humanize(string(p.Genre)))
	}
	if p.Ambiance != "" {
		fmt.Fprintf(&b, "Ambiance: %s\n", humanize(string(p.Ambiance)))
	}
	if p.Keywords != "" {
		fmt.Fprintf(&b, "Keywords: %s\n", p.Keywords)
	}
	if p.References != "" {
		fmt.Fprintf(&b, "References: %s\n", p.References)
	}
	b.WriteString("Response instructions: plain text only, no emojis or bold text.\n\n")
	return b.String()
}

func (p promptContext) field(brief string) string {
	return p.preamble() + brief
}

func (p promptContext) titlePrompt() string {
	return p.field("Propose a single evocative game title. Answer with the title only.")
}

func (p promptContext) premisePrompt() string {
	return p.field("Write a 3-5 sentence synopsis covering the world, the core gameplay concept, the opening situation and what sets this game apart within its genre.")
}

func (p promptContext) act1Prompt() string {
	return p.field("Describe act 1 of the story: the hero's starting point, the inciting incident and the early stakes, in 3-4 sentences.")
}

func (p promptContext) act2Prompt() string {
	return p.field("Describe act 2 of the story: escalating challenges, shifting alliances and the truths the hero uncovers, in 3-4 sentences.")
}

func (p promptContext) act3Prompt() string {
	return p.field("Describe act 3 of the story: the final confrontation and its resolution, in 3-4 sentences.")
}

func (p promptContext) twistPrompt() string {
	return p.field("Invent an unexpected narrative twist that recontextualizes the whole story, in 2-3 sentences.")
}

func (p promptContext) characterNamePrompt(role string) string {
	return p.field(fmt.Sprintf("Give one fitting character name for the %s of this game. Answer with the name only.", role))
}

func (p promptContext) characterClassPrompt(role string) string {
	return p.field(fmt.Sprintf("Give one fitting character class for the %s of this game. Answer with the class only.", role))
}

func (p promptContext) characterBackgroundPrompt(role, name string) string {
	return p.field(fmt.Sprintf("Write a 2-3 sentence background for %s, the %s of this game.", name, role))
}

func (p promptContext) characterGameplayPrompt(role, name string) string {
	return p.field(fmt.Sprintf("Describe in 2 sentences how %s, the %s, plays: abilities, strengths and weaknesses.", name, role))
}

func (p promptContext) locationNamePrompt() string {
	return p.field(fmt.Sprintf("Give one evocative location name fitting a %s world. Answer with the name only.", humanize(string(p.Ambiance))))
}

func (p promptContext) locationDescriptionPrompt(name string) string {
	return p.field(fmt.Sprintf("Describe the location %q in 2-3 sentences: its atmosphere, its dangers and what the player does there.", name))
}

// humanize 将 POST_APOCALYPTIC 形式的枚举值转为可读小写文本
func humanize(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, "_", " "))
}

// titleize 将枚举值转为标题格式（用于回退标题）
func titleize(v string) string {
	words := strings.Fields(humanize(v))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
