package cli

import "fmt"

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/shibukawa/treegram/cli.Version=...".
var Version = "0.1.0"

// VersionCmd prints the application version.
type VersionCmd struct{}

// Run executes the version command.
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Printf("treegram v%s\n", Version)

	return nil
}
