package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// Minimum provider version the translation contract requires.
const (
	minVersionMajor = 1
	minVersionMinor = 3
)

// Translator is a provider whose version gate has already passed. It
// holds the validated factory as immutable state, so repeated
// translations skip the per-call dependency check. Safe for concurrent
// use.
type Translator struct {
	provider Provider
}

// Bind validates the covariance-model provider once and returns a
// Translator bound to it.
//
// Errors:
//   - ErrMissingDependency  — provider is nil.
//   - ErrUnsupportedVersion — provider version below 1.3 or unparseable.
func Bind(provider Provider) (*Translator, error) {
	if provider == nil {
		return nil, ErrMissingDependency
	}
	if err := checkVersion(provider.Version()); err != nil {
		return nil, err
	}

	return &Translator{provider: provider}, nil
}

// Translate is the one-shot form of Translator.Translate: it gates the
// provider and performs a single translation, re-checking the
// dependency on every call.
func Translate(provider Provider, d Describe, overrides Params) (any, error) {
	tr, err := Bind(provider)
	if err != nil {
		return nil, err
	}

	return tr.Translate(d, overrides)
}

// Translate converts a fitted variogram's describe record into the
// bound provider's model instance.
//
// Derivation order (later steps win on key collisions):
//  1. dim defaults from the describe record
//  2. var = sill − nugget, len_scale = effective_range, nugget
//  3. rescale from the family's registry rule
//  4. renamed shape parameters per the family's rename table
//  5. caller overrides, merged last with highest precedence
//
// The final keyword set instantiates the registry's class on the
// provider. Translation is single-pass and idempotent: identical
// input yields an equivalent model. No partial results are returned.
//
// Errors:
//   - ErrUnsupportedModel — d.Name is not in the registry.
//   - ErrBadDescribe      — a required shape key is absent.
//   - any error the provider's constructor reports.
func (t *Translator) Translate(d Describe, overrides Params) (any, error) {
	ent, ok := modelMap[d.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, d.Name)
	}

	kw := Params{
		KeyDim:      float64(d.Dim),
		KeyVar:      d.Sill - d.Nugget,
		KeyLenScale: d.EffectiveRange,
		KeyNugget:   d.Nugget,
	}

	factor, err := ent.rescale.factor(d)
	if err != nil {
		return nil, err
	}
	kw[KeyRescale] = factor

	for arg, key := range ent.argMap {
		v, present := d.value(key)
		if !present {
			return nil, fmt.Errorf("%w: %s model needs %q", ErrBadDescribe, d.Name, key)
		}
		kw[arg] = v
	}

	for k, v := range overrides {
		kw[k] = v
	}

	return t.provider.NewModel(ent.class, kw)
}

// checkVersion enforces the ≥1.3 gate on a "major.minor[.patch…]"
// version string. Anything that fails to parse is classified as
// unsupported rather than waved through.
func checkVersion(version string) error {
	fail := func() error {
		return fmt.Errorf("%w: provider reports %q", ErrUnsupportedVersion, version)
	}

	parts := strings.Split(version, ".")
	if len(parts) == 0 || parts[0] == "" {
		return fail()
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return fail()
	}
	minor := 0
	if len(parts) > 1 {
		if minor, err = strconv.Atoi(parts[1]); err != nil {
			return fail()
		}
	}

	if major > minVersionMajor {
		return nil
	}
	if major == minVersionMajor && minor >= minVersionMinor {
		return nil
	}

	return fail()
}
