package domain

// Command is one external tool invocation: the package manager, the freeze
// script, or the platform packaging toolchain. Name labels the invocation in
// logs and telemetry.
type Command struct {
	Name        string
	Args        []string
	WorkingDir  string
	Environment map[string]string
}
