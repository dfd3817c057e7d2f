package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/boxpaint"
	"github.com/npillmayer/boxpaint/dom/domdbg"
	"github.com/npillmayer/boxpaint/layout"
	"github.com/spf13/cobra"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	cssFile    string  // stylesheet path
	configFile string  // TOML configuration path
	width      float64 // viewport width in px
	height     float64 // viewport height in px
	boxes      bool    // print the box tree
	dotFile    string  // write the styled tree as GraphViz DOT
}

func renderCommand() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "render [page.html]",
		Short: "Render an HTML document to a display list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.Viewport.Width = opts.width
			}
			if cmd.Flags().Changed("height") {
				cfg.Viewport.Height = opts.height
			}
			return runRender(cmd.OutOrStdout(), args[0], opts, cfg)
		},
	}
	cmd.Flags().StringVar(&opts.cssFile, "css", "", "stylesheet file")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "TOML configuration file")
	cmd.Flags().Float64Var(&opts.width, "width", defaultWidth, "viewport width in px")
	cmd.Flags().Float64Var(&opts.height, "height", defaultHeight, "viewport height in px")
	cmd.Flags().BoolVar(&opts.boxes, "boxes", false, "print the box tree")
	cmd.Flags().StringVar(&opts.dotFile, "dot", "", "write the styled tree as GraphViz DOT to file")
	return cmd
}

func runRender(w io.Writer, htmlFile string, opts renderOpts, cfg config) error {
	layoutOpts, err := cfg.layoutOptions()
	if err != nil {
		return err
	}
	var cssSource string
	if opts.cssFile != "" {
		b, err := os.ReadFile(opts.cssFile)
		if err != nil {
			return fmt.Errorf("reading stylesheet: %w", err)
		}
		cssSource = string(b)
	}
	f, err := os.Open(htmlFile)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	defer f.Close()
	result, err := boxpaint.RenderSource(f, cssSource, cfg.viewport(), layoutOpts)
	if err != nil {
		return err
	}
	if opts.dotFile != "" {
		if err := writeDot(opts.dotFile, result); err != nil {
			return err
		}
	}
	if opts.boxes {
		fmt.Fprintln(w, layout.Dump(result.Boxes))
	}
	_, err = io.WriteString(w, result.Display.String())
	return err
}

func writeDot(path string, result boxpaint.Result) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing DOT: %w", err)
	}
	if err := domdbg.ToGraphViz(result.Styled, out); err != nil {
		out.Close()
		return fmt.Errorf("writing DOT: %w", err)
	}
	return out.Close()
}
