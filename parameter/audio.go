package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, latency vs underrun
	AudioBufferDuration = 100 * time.Millisecond
)

// Error Sound (locked element pressed)
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
)

// Bell Sound (new element discovered)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond

	// BellArpeggioStep is the spacing between arpeggio notes
	BellArpeggioStep = 90 * time.Millisecond
)

// Whoosh Sound (element discarded)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Coin Sound (two elements combined)
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 200 * time.Millisecond
	CoinSoundAttack        = 2 * time.Millisecond
	CoinSoundNote1Release  = 20 * time.Millisecond
	CoinSoundNote2Release  = 150 * time.Millisecond
)
