package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundError  SoundType = iota // Locked panel entry pressed
	SoundBell                    // New element discovered
	SoundWhoosh                  // Element discarded into the trash
	SoundCoin                    // Two elements combined
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"error", "bell", "whoosh", "coin"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config key to its sound type
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
