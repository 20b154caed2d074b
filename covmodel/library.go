package covmodel

// Version is the translation-contract revision the library reports to
// adapters; 1.3 is the first revision with the rescale keyword, which
// the contract's version gate requires.
const Version = "1.3.0"

// Library exposes the package as a covariance-model provider: it
// satisfies convert.Provider without importing it. The zero value is
// ready to use.
type Library struct{}

// Version reports the contract revision for the adapter's version gate.
func (Library) Version() string { return Version }

// NewModel instantiates a model class from its keyword set; it is New
// behind the provider calling convention.
func (Library) NewModel(class string, kw map[string]float64) (any, error) {
	return New(class, kw)
}
