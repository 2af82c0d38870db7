package core

// Entity is a unique identifier for an entity
// Zero is never allocated and doubles as "no owner" for scheduled work
type Entity uint64

// Kind classifies the sprites the encounter spawns
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindMonster
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	case KindProjectile:
		return "projectile"
	default:
		return "none"
	}
}
