package entity

import (
	"errors"
	"fmt"
)

// Level-up rules. Each level costs Level*ExperiencePerLevel accumulated
// experience and grants fixed stat increments.
const (
	ExperiencePerLevel = 100

	LevelUpHealth   = 20
	LevelUpMana     = 10
	LevelUpStrength = 2
	LevelUpAgility  = 1
	LevelUpCharisma = 1
)

// ErrNegativeExperience is returned when a negative experience grant is attempted.
var ErrNegativeExperience = errors.New("experience grant must not be negative")

// GainExperience adds amount to the player's experience, then levels up
// while the total reaches Level*ExperiencePerLevel, checking the same total
// against each higher threshold. Experience resets to 0 only once, after
// the last level-up, so one large grant climbs further than the same amount
// split into smaller grants.
func (p *Player) GainExperience(amount int) ([]string, error) {
	if amount < 0 {
		return nil, fmt.Errorf("gain %d: %w", amount, ErrNegativeExperience)
	}

	p.Experience += amount
	lines := []string{fmt.Sprintf("You gained %d experience points.", amount)}

	levelled := false
	for p.Experience >= p.Level*ExperiencePerLevel {
		p.levelUp()
		levelled = true
		lines = append(lines, fmt.Sprintf("Congratulations! You reached level %d.", p.Level))
	}
	if levelled {
		p.Experience = 0
	}

	return lines, nil
}

// NextLevelAt returns the experience total that triggers the next level-up.
func (p *Player) NextLevelAt() int {
	return p.Level * ExperiencePerLevel
}

func (p *Player) levelUp() {
	p.Level++
	p.Health += LevelUpHealth
	p.Mana += LevelUpMana
	p.Strength += LevelUpStrength
	p.Agility += LevelUpAgility
	p.Charisma += LevelUpCharisma
}
