// Package conf loads the configuration of the cdf-settings command.
//
// # Usage
//
//	cs := conf.NewConfigSource("/etc/cdf-settings/config.toml")
//	config, err := cs.Read()
//
// # Load Order
//
// Config is loaded and applied in three layers:
//
//  1. Embedded defaults (config.toml in this package)
//  2. Main config file: /etc/cdf-settings/config.toml
//  3. Drop-in files: /etc/cdf-settings/config.toml.d/*.toml, in lexicographic order
//
// configDTO holds pointer fields so a key that is absent from a layer can be
// told apart from one set to its zero value; Config.Update only applies the
// keys a layer sets.
package conf
