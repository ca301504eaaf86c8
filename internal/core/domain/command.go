package domain

// Command is an external process invocation.
type Command struct {
	// Name is the executable, looked up on the PATH of the merged environment.
	Name string
	Args []string
	// Env overrides the inherited environment. A PATH entry is prepended to the inherited PATH.
	Env map[string]string
	// Dir is the working directory; empty means the current one.
	Dir string
}
