package core

// Category is a collision class bitmask
// Contact events are filtered by AND-ing one body's category with the other's contact mask
type Category uint32

const (
	CategoryNone       Category = 0
	CategoryMonster    Category = 1 << 0
	CategoryProjectile Category = 1 << 1
	CategoryPlayer     Category = 1 << 2
	CategoryAll        Category = ^Category(0)
)

// Has reports whether any bit of other is set in c
func (c Category) Has(other Category) bool {
	return c&other != 0
}
