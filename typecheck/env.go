package typecheck

// Environment resolves identifier names to types. The built-in environment
// covers only the literal vocabulary below; a richer symbol table (for host
// object chains like thisComp.layer(n)) can be layered in by supplying a
// different implementation without touching the checker.
type Environment interface {
	Lookup(name string) (Type, bool)
}

// MapEnvironment is a map-backed Environment.
type MapEnvironment map[string]Type

// Lookup implements Environment.
func (m MapEnvironment) Lookup(name string) (Type, bool) {
	t, ok := m[name]
	return t, ok
}

// ChainEnvironment tries each environment in order and returns the first
// hit. It lets callers extend the builtins without copying them.
type ChainEnvironment []Environment

// Lookup implements Environment.
func (c ChainEnvironment) Lookup(name string) (Type, bool) {
	for _, env := range c {
		if t, ok := env.Lookup(name); ok {
			return t, true
		}
	}
	return Type{}, false
}

// Builtins returns the fixed built-in environment. It is freshly allocated
// per call; checkers treat it as read-only after construction, so separate
// checker instances share no mutable state and are safe to use in parallel.
func Builtins() MapEnvironment {
	return MapEnvironment{
		// Layer and composition values
		"time":  Number(),
		"index": Number(),
		"name":  String(),
		"value": Any(),

		// Common animatable properties
		"position": Vector(2),
		"scale":    Vector(2),
		"rotation": Number(),
		"opacity":  Number(),
		"color":    Color(),
		"fill":     Color(),
		"stroke":   Color(),

		// Temporal sampling methods
		"valueAtTime":    Method([]Type{Number()}, Temporal(Any())),
		"velocityAtTime": Method([]Type{Number()}, Temporal(Vector(2))),

		// Color methods
		"rgbToHsl": Method([]Type{Color()}, Color()),
		"hslToRgb": Method([]Type{Color()}, Color()),

		// Interpolation methods
		"linear": Method([]Type{Number(), Number(), Number(), Number()}, Number()),
		"ease":   Method([]Type{Number(), Number(), Number(), Number()}, Number()),
	}
}
