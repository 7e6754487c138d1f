package cli

// Context carries the global flags shared by all commands.
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}
