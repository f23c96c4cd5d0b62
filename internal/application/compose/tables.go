// Package compose 负责游戏叙事内容的组装：
// 构造各字段的结构化提示词、驱动文本生成并在降级时回落到静态模板
package compose

// 模板路径使用的静态内容表，离线且不可失败

var gameTitles = []string{
	"Echoes of Eternity", "Crimson Horizon", "Nebula Nexus", "Forgotten Realms",
	"Shadow's Edge", "Crystal Chronicles", "Astral Odyssey", "Mystic Legends",
	"Quantum Quest", "Celestial Siege", "Void Voyagers", "Arcane Ascendancy",
}

var characterNames = []string{
	"Aria", "Thorne", "Zephyr", "Luna", "Orion", "Nova", "Caspian", "Seraphina",
	"Atlas", "Lyra", "Phoenix", "Ember", "Sage", "Raven", "Cyrus", "Elara",
}

var characterClasses = []string{
	"Warrior", "Mage", "Rogue", "Cleric", "Paladin", "Ranger", "Druid", "Bard",
	"Necromancer", "Monk", "Sorcerer", "Alchemist", "Summoner", "Assassin",
}

var characterRoles = []string{
	"Protagonist", "Antagonist", "Mentor", "Ally", "Rival", "Guardian", "Trickster",
	"Sidekick", "Anti-hero", "Villain", "Love Interest", "Sage",
}

var locationNames = []string{
	"The Whispering Woods", "Crystal Caverns", "Forgotten Citadel", "Misty Mountains",
	"Sunken Temple", "Celestial Sanctum", "Neon Metropolis", "Ancient Ruins",
	"Ethereal Plains", "Volcanic Forge", "Frozen Tundra", "Enchanted Garden",
}

// 角色固定字段
const (
	roleProtagonist = "Protagonist"
	roleAntagonist  = "Antagonist"
)

// 启发式提取失败时的兜底词
const (
	fallbackCharacterName  = "Aria"
	fallbackCharacterClass = "Warrior"
	fallbackLocationName   = "Ancient Ruins"
)

// 类名提取时跳过的法语停用词（模型输出偶带法语引导词）
var frenchStopWords = map[string]struct{}{
	"dans":  {},
	"avec":  {},
	"pour":  {},
	"cette": {},
	"votre": {},
	"leur":  {},
	"elle":  {},
	"nous":  {},
	"vous":  {},
	"mais":  {},
	"donc":  {},
	"comme": {},
	"alors": {},
	"ainsi": {},
	"entre": {},
	"sans":  {},
	"voici": {},
	"c'est": {},
}
