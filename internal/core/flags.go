package core

// EnvPrefix namespaces every environment variable the CLI reads.
const EnvPrefix = "THEMECFG_"

// Flags are the global CLI flags shared by every command.
type Flags struct {
	LogLevel       string
	ConfigFilePath string // empty selects the embedded record
	IdentityFile   string
	Lenient        bool // duplicate keys keep the last value instead of failing
	Opaque         bool // skip color and length checks
}

// LoadOptions turns the global flags into record load options.
func (f Flags) LoadOptions() []Option {
	opts := []Option{WithValueChecks(!f.Opaque)}
	if f.Lenient {
		opts = append(opts, WithDuplicateKeys(DuplicateLastWins))
	}

	return opts
}
