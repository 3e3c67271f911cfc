package config

// Template returns a starter configuration file with commented defaults.
func Template() []byte {
	return []byte(`# logsweep configuration
# See https://github.com/yaklabco/logsweep for documentation.

# Identifier whose member calls are removed or commented out.
target_name: console

# Convert matched statements to comments instead of removing them.
comment: false

# File extensions treated as source files.
extensions:
  - .js
  - .jsx
  - .mjs
  - .cjs
  - .ts
  - .tsx

# Glob patterns to skip.
ignore:
  - node_modules/**
  - dist/**

backups:
  enabled: true
  mode: sidecar
`)
}
