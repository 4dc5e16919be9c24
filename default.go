package tlog

// Default creates a logger with all defaults: stdout output, the standard
// formatter, a local-file sink (closed until OpenFile), no level ceiling,
// debug messages hidden, decimal base.
func Default() *Logger {
	return newLogger(Config{MaxLevel: LevelAll})
}

// New creates a default logger and sets it as global. It returns the global
// logger for convenience. Call Close on it on every exit path.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// Use builds a Logger from cfg, installs it as the global logger, and
// returns it. Single line, explicit, no envs.
func Use(cfg Config) *Logger {
	l := newLogger(cfg)
	SetGlobal(l)
	return l
}
