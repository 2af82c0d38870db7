package parameter

import "time"

// Encounter rules
const (
	// SpawnInterval is the delay between monster spawns
	SpawnInterval = 1 * time.Second

	// MonsterTraversalMin and MonsterTraversalMax bound the right-to-left crossing time
	MonsterTraversalMin = 2 * time.Second
	MonsterTraversalMax = 4 * time.Second

	// ShootDistance is how far a projectile travels; large enough to leave any field
	ShootDistance = 1000.0

	// ProjectileFlight is the time a projectile takes to cover ShootDistance
	ProjectileFlight = 2 * time.Second

	// PlayerAnchorX and PlayerAnchorY place the player as a fraction of the field
	PlayerAnchorX = 0.1
	PlayerAnchorY = 0.5

	// WinThreshold is exceeded (not reached) to win: the 11th kill wins
	WinThreshold = 10
)

// Terminal screen
const (
	// GameOverDelay is how long the win/lose message stays before restart
	GameOverDelay = 3 * time.Second

	// FlipDuration is the horizontal flip transition length
	FlipDuration = 500 * time.Millisecond

	MessageWon  = "You won!"
	MessageLost = "You Lose :["
)
