package game

// Defaults for Config fields left at zero.
const (
	DefaultLogCapacity    = 8
	DefaultKillExperience = 10
)

// Config holds game rule options.
type Config struct {
	// LogCapacity is how many recent log lines the snapshot keeps.
	LogCapacity int
	// KillExperience is granted for each NPC defeated in a fight.
	KillExperience int
}

// withDefaults fills zero fields with their defaults.
func (c Config) withDefaults() Config {
	if c.LogCapacity <= 0 {
		c.LogCapacity = DefaultLogCapacity
	}
	if c.KillExperience <= 0 {
		c.KillExperience = DefaultKillExperience
	}
	return c
}
