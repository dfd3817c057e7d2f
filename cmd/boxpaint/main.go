/*
Command boxpaint renders an HTML document, styled with CSS, to a display
list.

	boxpaint render page.html --css page.css --width 1024

Settings may be read from a TOML configuration file (see flag --config):

	[viewport]
	width = 800
	height = 600

	[layout]
	default_display = "block"
	user_agent_display = false

Flags given on the command line override configuration settings.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracingKeys are the trace keys of the rendering pipeline.
var tracingKeys = []string{
	"boxpaint", "boxpaint.dom", "boxpaint.style", "boxpaint.cssom",
	"boxpaint.layout", "boxpaint.display",
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "boxpaint",
		Short:        "boxpaint renders styled HTML into display lists",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := tracing.LevelError
			if verbose {
				level = tracing.LevelDebug
			}
			for _, key := range tracingKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace the rendering pipeline")
	root.AddCommand(renderCommand())
	return root
}
