package layouts

import (
	"github.com/sahilm/fuzzy"

	"github.com/1broseidon/stacktile/geometry"
)

// Built-in layout names.
const (
	EvenHorizontal         = "EvenHorizontal"
	EvenVertical           = "EvenVertical"
	Monocle                = "Monocle"
	Grid                   = "Grid"
	MainAndVertStack       = "MainAndVertStack"
	MainAndHorizontalStack = "MainAndHorizontalStack"
	RightMainAndVertStack  = "RightMainAndVertStack"
	Fibonacci              = "Fibonacci"
	Dwindle                = "Dwindle"
	MainAndDeck            = "MainAndDeck"
	CenterMain             = "CenterMain"
	CenterMainBalanced     = "CenterMainBalanced"
	CenterMainFluid        = "CenterMainFluid"
)

func preset(name string) Definition {
	def := Fallback()
	def.Name = name
	return def
}

// BuiltinDefinitions returns the built-in layout library in cycling
// order. These are always available without being defined in YAML; users
// can define additional custom layouts on top.
func BuiltinDefinitions() []Definition {
	evenHorizontal := preset(EvenHorizontal)
	evenHorizontal.ColumnType = ColumnTypeStack
	evenHorizontal.StackSplit = geometry.SplitVertical

	evenVertical := preset(EvenVertical)
	evenVertical.ColumnType = ColumnTypeStack

	monocle := preset(Monocle)
	monocle.ColumnType = ColumnTypeStack
	monocle.StackSplit = geometry.SplitNone

	grid := preset(Grid)
	grid.ColumnType = ColumnTypeStack
	grid.StackSplit = geometry.SplitGrid

	mainAndVertStack := preset(MainAndVertStack)

	mainAndHorizontalStack := preset(MainAndHorizontalStack)
	mainAndHorizontalStack.StackSplit = geometry.SplitVertical

	rightMainAndVertStack := preset(RightMainAndVertStack)
	rightMainAndVertStack.Rotation = geometry.RotationSouth

	fibonacci := preset(Fibonacci)
	fibonacci.StackSplit = geometry.SplitFibonacci

	dwindle := preset(Dwindle)
	dwindle.StackSplit = geometry.SplitDwindle

	mainAndDeck := preset(MainAndDeck)
	mainAndDeck.MainSplit = geometry.SplitNone
	mainAndDeck.StackSplit = geometry.SplitNone

	centerMain := preset(CenterMain)
	centerMain.ColumnType = ColumnTypeCenterMain
	centerMain.BalanceStacks = false

	centerMainBalanced := preset(CenterMainBalanced)
	centerMainBalanced.ColumnType = ColumnTypeCenterMain
	centerMainBalanced.StackSplit = geometry.SplitDwindle

	centerMainFluid := preset(CenterMainFluid)
	centerMainFluid.ColumnType = ColumnTypeCenterMain
	centerMainFluid.BalanceStacks = false
	centerMainFluid.ReserveColumnSpace = geometry.Reserve

	return []Definition{
		evenHorizontal,
		evenVertical,
		monocle,
		grid,
		mainAndVertStack,
		mainAndHorizontalStack,
		rightMainAndVertStack,
		fibonacci,
		dwindle,
		mainAndDeck,
		centerMain,
		centerMainBalanced,
		centerMainFluid,
	}
}

// Registry holds an ordered set of layout definitions, unique by name.
// The order is the order layouts are cycled through.
type Registry struct {
	defs []Definition
}

// NewRegistry returns a registry holding the given definitions.
func NewRegistry(defs []Definition) *Registry {
	return &Registry{defs: defs}
}

// DefaultRegistry returns a registry of the built-in layouts.
func DefaultRegistry() *Registry {
	return NewRegistry(BuiltinDefinitions())
}

// Get returns a pointer to the definition with the given name, so the
// mutating accessors can be used on the registry's copy directly.
func (r *Registry) Get(name string) (*Definition, bool) {
	for i := range r.defs {
		if r.defs[i].Name == name {
			return &r.defs[i], true
		}
	}
	return nil, false
}

// Index returns the cycling position of the named layout.
func (r *Registry) Index(name string) (int, bool) {
	for i := range r.defs {
		if r.defs[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// Names returns the layout names in cycling order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i := range r.defs {
		names[i] = r.defs[i].Name
	}
	return names
}

// Len returns the number of definitions in the registry.
func (r *Registry) Len() int {
	return len(r.defs)
}

// At returns a pointer to the definition at the given cycling position.
func (r *Registry) At(i int) *Definition {
	return &r.defs[i]
}

// Next returns the layout after the named one in cycling order,
// wrapping around at the end. An unknown name starts at the beginning.
func (r *Registry) Next(name string) *Definition {
	if len(r.defs) == 0 {
		return nil
	}
	i, ok := r.Index(name)
	if !ok {
		return &r.defs[0]
	}
	return &r.defs[(i+1)%len(r.defs)]
}

// Prev returns the layout before the named one in cycling order,
// wrapping around at the beginning.
func (r *Registry) Prev(name string) *Definition {
	if len(r.defs) == 0 {
		return nil
	}
	i, ok := r.Index(name)
	if !ok {
		return &r.defs[0]
	}
	return &r.defs[(i-1+len(r.defs))%len(r.defs)]
}

// Put inserts the definition, overwriting any existing definition with
// the same name while keeping its cycling position. New definitions are
// prepended so user layouts come before the built-ins.
func (r *Registry) Put(def Definition) {
	for i := range r.defs {
		if r.defs[i].Name == def.Name {
			r.defs[i] = def
			return
		}
	}
	r.defs = append([]Definition{def}, r.defs...)
}

// Search fuzzy-matches the query against the layout names and returns
// the matching names, best match first. An empty query returns all
// names in cycling order.
func (r *Registry) Search(query string) []string {
	names := r.Names()
	if query == "" {
		return names
	}
	matches := fuzzy.Find(query, names)
	found := make([]string, len(matches))
	for i, m := range matches {
		found[i] = m.Str
	}
	return found
}
