package driver

// KeyValueDB define a key-value storage interface
type KeyValueDB interface {
	Set(key string, value string) error
	Get(key string) (string, error)
	Ping() error
}
