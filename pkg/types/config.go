package types

// Config holds backend selection and parameters for opening a Store.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
//
// BackendFile keeps the database in a single SQLite file; writes are durable
// per statement. BackendKV keeps the database in memory and snapshots the
// whole image into a BadgerDB blob after every mutation, which makes each
// write O(database size). That cost is acceptable for a single-user,
// locally-small dataset and is a documented scalability ceiling of the kv
// strategy, not something the store tries to optimize away.
const (
	BackendFile = "file"
	BackendKV   = "kv"
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile: true,
	BackendKV:   true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
