package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra command metadata a controller is bound to.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is an entry point reachable from the command line.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
