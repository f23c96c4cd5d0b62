package compose

import (
	"fmt"
	"math/rand"

	"gameforge-api/internal/domain/entity"
)

// 模板路径：完全离线的确定性内容，仅以类型/氛围参数化

func templateTitle(useRandom bool, genre entity.GameGenre, ambiance entity.GameAmbiance) string {
	if useRandom {
		return gameTitles[rand.Intn(len(gameTitles))]
	}
	return titleize(string(ambiance)) + " " + titleize(string(genre))
}

func templatePremise(genre entity.GameGenre, ambiance entity.GameAmbiance) string {
	return fmt.Sprintf("In a %s world, a hero embarks on an epic %s adventure to save their realm from an ancient evil.",
		humanize(string(ambiance)), humanize(string(genre)))
}

func templateAct1() string {
	return "The hero discovers their destiny and sets out from their humble beginnings, gathering allies and resources for the journey ahead."
}

func templateAct2() string {
	return "Facing increasingly difficult challenges, the hero's resolve is tested. They discover hidden truths about the world and themselves."
}

func templateAct3() string {
	return "After overcoming their inner demons, the hero confronts the ultimate evil in an epic showdown that determines the fate of the world."
}

func templateTwist() string {
	return "The ancient evil is revealed to be a manifestation of the hero's own fears and doubts, forcing them to confront their true self."
}

func templateBackground(role string) string {
	switch role {
	case roleProtagonist:
		return "A determined individual with a mysterious past, seeking to find their place in the world."
	case roleAntagonist:
		return "Once a respected figure who became corrupted by power and now seeks to reshape the world according to their vision."
	default:
		return "A unique individual with their own motivations and history, whose path crosses with the protagonist."
	}
}

func templateGameplay(role string) string {
	switch role {
	case roleProtagonist:
		return "Balanced abilities with potential for growth in multiple directions based on player choices."
	case roleAntagonist:
		return "Powerful abilities that challenge the player, with unique mechanics that must be understood to defeat."
	default:
		return "Specialized abilities that complement the team and provide strategic options in various situations."
	}
}

func templateCharacterName() string {
	return characterNames[rand.Intn(len(characterNames))]
}

func templateCharacterClass() string {
	return characterClasses[rand.Intn(len(characterClasses))]
}

func templateLocationName() string {
	return locationNames[rand.Intn(len(locationNames))]
}

func templateLocationDescription(ambiance entity.GameAmbiance) string {
	return fmt.Sprintf("A %s location with unique challenges and secrets to discover. The atmosphere here reflects the overall tone of the world while providing distinct gameplay opportunities.",
		humanize(string(ambiance)))
}

// randomSupportingRole 从角色表中随机取一个非主角/反派的角色定位
func randomSupportingRole() string {
	for {
		role := characterRoles[rand.Intn(len(characterRoles))]
		if role != roleProtagonist && role != roleAntagonist {
			return role
		}
	}
}
