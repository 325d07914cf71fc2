package enemy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

// ErrUnknownCode is returned when creating an enemy from an unregistered code.
var ErrUnknownCode = errors.New("unknown enemy type")

// Codes of the built-in enemies.
const (
	CodeSpearGoblin    = 1
	CodeGoblin         = 2
	CodeLittleSkeleton = 3
	CodeSkeletonDragon = 4
)

// Kinds is the built-in stat table.
var Kinds = []Kind{
	{Code: CodeSpearGoblin, Name: "Spear Goblin", Sprite: "goblin_koplje.png", Size: Size{200, 270}, Health: 10, Attack: 2},
	{Code: CodeGoblin, Name: "Goblin", Sprite: "goblin.png", Size: Size{200, 270}, Health: 10, Attack: 1},
	{Code: CodeLittleSkeleton, Name: "Little Skeleton", Sprite: "mali_skeleton.png", Size: Size{200, 270}, Health: 10, Attack: 2},
	{Code: CodeSkeletonDragon, Name: "Skeleton Dragon", Sprite: "skeleton_dragon.png", Size: Size{300, 300}, Health: 20, Attack: 3, Boss: true},
}

// Factory maps enemy codes to their stat table rows.
type Factory struct {
	kinds *intmap.Map[int, Kind]
	codes []int
}

// NewFactory builds a factory over the given kinds. Later duplicates of a
// code replace earlier ones.
func NewFactory(kinds []Kind) *Factory {
	f := &Factory{kinds: intmap.New[int, Kind](len(kinds))}
	for _, k := range kinds {
		f.Register(k)
	}
	return f
}

// DefaultFactory returns a factory over the built-in stat table.
func DefaultFactory() *Factory {
	return NewFactory(Kinds)
}

// Register adds or replaces a kind.
func (f *Factory) Register(k Kind) {
	if !f.kinds.Has(k.Code) {
		f.codes = append(f.codes, k.Code)
		slices.Sort(f.codes)
	}
	f.kinds.Put(k.Code, k)
}

// Lookup returns the kind for code.
func (f *Factory) Lookup(code int) (Kind, bool) {
	return f.kinds.Get(code)
}

// Create builds an enemy of the given code at (x, y).
func (f *Factory) Create(code int, x, y, speed float64) (*Enemy, error) {
	k, ok := f.kinds.Get(code)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}

	return &Enemy{
		Kind:      k,
		X:         x,
		Y:         y,
		Speed:     speed,
		Health:    k.Health,
		MaxHealth: k.Health,
		Attack:    k.Attack,
	}, nil
}

// RegularCodes returns the codes of every non-boss kind, ascending.
func (f *Factory) RegularCodes() []int {
	return f.filter(false)
}

// BossCodes returns the codes of every boss kind, ascending.
func (f *Factory) BossCodes() []int {
	return f.filter(true)
}

func (f *Factory) filter(boss bool) []int {
	var codes []int
	for _, code := range f.codes {
		if k, _ := f.kinds.Get(code); k.Boss == boss {
			codes = append(codes, code)
		}
	}
	return codes
}
