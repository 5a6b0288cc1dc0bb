package asn1pkix

/*
compose.go contains the module composer, which applies the registry
contributions of schema modules in a defined order.
*/

import (
	"log/slog"
)

/*
Delta holds the entries one module contributes to one registry
[Domain].
*/
type Delta struct {
	Domain  Domain
	Mapping Mapping
}

/*
Module describes the registry contribution of one schema module.

Owns lists the domains the module introduces. Requires names the
modules whose domains or schemas the module depends upon; each must
appear earlier in the input to [Compose]. Deltas hold exactly the
entries the module itself owns.
*/
type Module struct {
	Name     string
	Owns     []Domain
	Requires []string
	Deltas   []Delta
}

/*
ConflictPolicy controls the handling of an OID which is bound again,
to a different [Schema], by a later module.
*/
type ConflictPolicy int

const (
	ConflictOverwrite ConflictPolicy = iota // last writer wins, silently
	ConflictWarn                            // last writer wins, and a warning is logged
	ConflictFail                            // composition fails with ErrRegistryConflict
)

/*
String returns the string representation of the receiver instance.
*/
func (r ConflictPolicy) String() string {
	switch r {
	case ConflictWarn:
		return "warn"
	case ConflictFail:
		return "fail"
	}
	return "overwrite"
}

/*
ComposeOption implements a closure which alters the behavior of
[Compose].
*/
type ComposeOption func(*composeConfig)

type composeConfig struct {
	policy ConflictPolicy
	logger *slog.Logger
}

/*
WithConflictPolicy returns a [ComposeOption] which sets the
[ConflictPolicy]. The default is [ConflictOverwrite].
*/
func WithConflictPolicy(p ConflictPolicy) ComposeOption {
	return func(cfg *composeConfig) { cfg.policy = p }
}

/*
WithComposeLogger returns a [ComposeOption] which routes composition
records to l instead of the package logger.
*/
func WithComposeLogger(l *slog.Logger) ComposeOption {
	return func(cfg *composeConfig) { cfg.logger = l }
}

/*
Compose applies the deltas of mods, in slice order, to a new [Registry]
and returns the frozen [Catalog].

Compose fails with:

  - [ErrDuplicateModule] when a module name appears twice
  - [ErrLoadOrder] when a module precedes one it requires
  - [ErrUnknownDomain] when a delta targets a domain owned neither by
    its module nor by an earlier one
  - [ErrRegistryConflict] when two modules claim one domain, or, under
    [ConflictFail], when an OID is re-bound to a different schema

Binding an OID again to the identical schema is never a conflict.
*/
func Compose(mods []Module, opts ...ComposeOption) (*Catalog, error) {
	cfg := &composeConfig{policy: ConflictOverwrite}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = Logger()
	}

	reg := NewRegistry()
	reg.logger = cfg.logger

	seen := make(map[string]bool, len(mods))
	owners := make(map[Domain]string)

	for _, mod := range mods {
		if err := checkModule(mod, seen, owners); err != nil {
			return nil, err
		}
		seen[mod.Name] = true
		for _, d := range mod.Owns {
			owners[d] = mod.Name
			reg.declare(d)
		}

		for _, delta := range mod.Deltas {
			if err := applyDelta(reg, mod.Name, delta, cfg); err != nil {
				return nil, err
			}
		}

		debugEvent(cfg.logger, EventCompose, "module composed",
			slog.String("module", mod.Name),
			slog.Int("deltas", len(mod.Deltas)))
	}

	return reg.Freeze(), nil
}

func checkModule(mod Module, seen map[string]bool, owners map[Domain]string) error {
	if mod.Name == "" {
		return schemaErrorf("module without a name")
	} else if seen[mod.Name] {
		return composeErrorf(ErrDuplicateModule, mod.Name)
	}

	for _, req := range mod.Requires {
		if !seen[req] {
			return composeErrorf(ErrLoadOrder, mod.Name, " requires ", req,
				", which was not composed before it")
		}
	}

	for _, d := range mod.Owns {
		if prev, ok := owners[d]; ok {
			return composeErrorf(ErrRegistryConflict, mod.Name, " claims domain ",
				d, ", already owned by ", prev)
		}
	}

	for _, delta := range mod.Deltas {
		if _, ok := owners[delta.Domain]; ok {
			continue
		}
		var own bool
		for _, d := range mod.Owns {
			own = own || d == delta.Domain
		}
		if !own {
			return composeErrorf(ErrUnknownDomain, mod.Name, " targets ", delta.Domain)
		}
	}

	return nil
}

func applyDelta(reg *Registry, owner string, delta Delta, cfg *composeConfig) error {
	for _, e := range delta.Mapping {
		if e.OID.IsZero() || e.Schema == nil {
			return schemaErrorf(owner, ": empty entry in ", delta.Domain)
		}

		prev, found := reg.entries.get(delta.Domain, e.OID)
		if found && prev.owner != owner && prev.schema != e.Schema {
			switch cfg.policy {
			case ConflictFail:
				return composeErrorf(ErrRegistryConflict, owner, " rebinds ",
					e.OID, " in ", delta.Domain, ", bound by ", prev.owner)
			case ConflictWarn:
				warnEvent(cfg.logger, EventCompose, "registry entry overwritten",
					slog.String("domain", string(delta.Domain)),
					slog.String("oid", e.OID.String()),
					slog.String("previous", prev.owner),
					slog.String("module", owner))
			}
		}

		reg.register(delta.Domain, e.OID, e.Schema, owner)
	}

	return nil
}
