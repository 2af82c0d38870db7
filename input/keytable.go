package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	Runes map[rune]IntentType
	Keys  map[tcell.Key]IntentType
}

// DefaultKeyTable returns the standard bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
			'm': IntentToggleMute,
			' ': IntentFire,
		},
		Keys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEnter:  IntentFire,
		},
	}
}

// Lookup resolves a key event; unbound keys yield IntentNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
