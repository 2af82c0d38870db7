package core

// Cue names understood by the audio layer
const (
	// CuePewPew is played once per successful projectile launch
	CuePewPew = "pew-pew-lei"
)
