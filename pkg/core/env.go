package core

// Environment is a lexical frame: bindings in the current frame plus a
// parent chain, namespace state, and an alias table. The parent chain
// itself is linked by reference (closures capture *Environment by
// pointer, and letrec's "update visible through the live chain"
// invariant depends on that), but the loaded-namespace set and alias
// table are cloned into each child frame by WithParent, so mutating
// them in one frame never affects a sibling or the parent.
type Environment struct {
	bindings         map[Symbol]Value
	parent           *Environment
	currentNamespace string
	loadedNamespaces map[string]bool
	aliases          map[string]string
}

// NewEnvironment creates a fresh root frame: empty bindings, namespace
// "user", empty loaded-set and aliases.
func NewEnvironment() *Environment {
	return &Environment{
		bindings:         make(map[Symbol]Value),
		currentNamespace: "user",
		loadedNamespaces: make(map[string]bool),
		aliases:          make(map[string]string),
	}
}

// WithParent creates a new frame inheriting the parent's namespace,
// loaded-set, and aliases, with empty bindings of its own. The
// loaded-set and aliases are cloned, not shared, so that a require or
// alias recorded inside one call/let/letrec frame never leaks into a
// sibling frame or back into the parent, matching the Rust original's
// clone-on-with_parent semantics (env.rs).
func WithParent(parent *Environment) *Environment {
	loadedNamespaces := make(map[string]bool, len(parent.loadedNamespaces))
	for k, v := range parent.loadedNamespaces {
		loadedNamespaces[k] = v
	}
	aliases := make(map[string]string, len(parent.aliases))
	for k, v := range parent.aliases {
		aliases[k] = v
	}
	return &Environment{
		bindings:         make(map[Symbol]Value),
		parent:           parent,
		currentNamespace: parent.currentNamespace,
		loadedNamespaces: loadedNamespaces,
		aliases:          aliases,
	}
}

// Set inserts a binding into the current frame only.
func (e *Environment) Set(name Symbol, v Value) {
	e.bindings[name] = v
}

// SetNamespaced stores name qualified by the current namespace unless it
// already contains a "/".
func (e *Environment) SetNamespaced(name Symbol, v Value) {
	if _, _, ok := name.Qualified(); ok {
		e.Set(name, v)
		return
	}
	e.Set(Symbol(e.currentNamespace+"/"+string(name)), v)
}

// Get walks the frame chain and returns the first match.
func (e *Environment) Get(name Symbol) (Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Update rebinds name in the first frame of the chain where it already
// exists. Used only by letrec. Returns false if name is unbound anywhere.
func (e *Environment) Update(name Symbol, v Value) bool {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.bindings[name]; ok {
			frame.bindings[name] = v
			return true
		}
	}
	return false
}

// GetWithNamespaces resolves a bare or qualified name by trying, in
// order: the name as given (if already qualified); else
// "{current}/name", "core/name", "user/name", bare name.
func (e *Environment) GetWithNamespaces(name Symbol) (Value, bool) {
	if _, _, ok := name.Qualified(); ok {
		return e.Get(name)
	}
	candidates := []Symbol{
		Symbol(e.currentNamespace + "/" + string(name)),
		Symbol("core/" + string(name)),
		Symbol("user/" + string(name)),
		name,
	}
	for _, c := range candidates {
		if v, ok := e.Get(c); ok {
			return v, true
		}
	}
	return nil, false
}

// GetWithAliases rewrites an aliased namespace prefix to its target
// before resolving, else delegates to GetWithNamespaces.
func (e *Environment) GetWithAliases(name Symbol) (Value, bool) {
	if ns, bare, ok := name.Qualified(); ok {
		if target, aliased := e.ResolveAlias(ns); aliased {
			return e.Get(Symbol(target + "/" + bare))
		}
	}
	return e.GetWithNamespaces(name)
}

// SetNamespace sets the current namespace for this frame (and any child
// frame created afterward).
func (e *Environment) SetNamespace(ns string) { e.currentNamespace = ns }

// GetNamespace returns the current namespace.
func (e *Environment) GetNamespace() string { return e.currentNamespace }

// AddLoadedNamespace records ns as loaded.
func (e *Environment) AddLoadedNamespace(ns string) { e.loadedNamespaces[ns] = true }

// IsNamespaceLoaded reports whether ns has already been loaded.
func (e *Environment) IsNamespaceLoaded(ns string) bool { return e.loadedNamespaces[ns] }

// AddAlias installs a local alias for a target namespace.
func (e *Environment) AddAlias(alias, target string) { e.aliases[alias] = target }

// ResolveAlias walks the frame chain looking up alias.
func (e *Environment) ResolveAlias(alias string) (string, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if target, ok := frame.aliases[alias]; ok {
			return target, true
		}
	}
	return "", false
}
