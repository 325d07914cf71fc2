package card

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownKind is returned when creating a card of an unregistered kind.
var ErrUnknownKind = errors.New("unknown card type")

// Constructor builds a card of one kind.
type Constructor func(name string, value int) Card

// Factory creates cards by kind from a registry of constructors.
type Factory struct {
	constructors map[Kind]Constructor
}

// NewFactory returns a factory with no kinds registered.
func NewFactory() *Factory {
	return &Factory{constructors: make(map[Kind]Constructor)}
}

// DefaultFactory returns a factory with the attack, heal and shield kinds.
func DefaultFactory() *Factory {
	f := NewFactory()
	f.Register(KindAttack, func(name string, value int) Card { return NewAttack(name, value) })
	f.Register(KindHeal, func(name string, value int) Card { return NewHeal(name, value) })
	f.Register(KindShield, func(name string, value int) Card { return NewShield(name, value) })
	return f
}

// Register adds or replaces the constructor for kind. It panics on an
// empty kind or a nil constructor.
func (f *Factory) Register(kind Kind, ctor Constructor) {
	if kind == "" {
		panic("card kind cannot be empty")
	}
	if ctor == nil {
		panic("nil constructor for card kind " + string(kind))
	}
	f.constructors[kind] = ctor
}

// Create builds a card of the given kind.
func (f *Factory) Create(kind Kind, name string, value int) (Card, error) {
	ctor, ok := f.constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(name, value), nil
}

// MustCreate is Create for static card tables; it panics on unknown kinds.
func (f *Factory) MustCreate(kind Kind, name string, value int) Card {
	c, err := f.Create(kind, name, value)
	if err != nil {
		panic(err)
	}
	return c
}

// Kinds returns the registered kinds in sorted order.
func (f *Factory) Kinds() []Kind {
	kinds := make([]Kind, 0, len(f.constructors))
	for k := range f.constructors {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
