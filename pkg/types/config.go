package types

// Config holds storage parameters for Store.Open.
type Config struct {
	// DataDir is the directory holding agripos.db. Created if absent.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure (prd001-store-core R1.2).
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrInvalidData
	}
	return nil
}
