// Command parallaxview opens TOML parallax layouts in a window, or inspects
// them headlessly at a given scroll offset.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/parallax"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "parallaxview",
		Short:        "Preview scroll-driven parallax layouts",
		Long:         `parallaxview loads a TOML layout describing a parallax container and its children, then either runs it in a window or prints the state the engine computes at a scroll offset.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			// SetDebugMode adjusts the current logger's level, so it runs
			// before the command's own logger is installed.
			parallax.SetDebugMode(verbose)
			parallax.SetLogger(newLogger(level))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging and checks")

	root.AddCommand(newViewCmd())
	root.AddCommand(newInspectCmd())
	return root
}

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "parallaxview",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func newViewCmd() *cobra.Command {
	var (
		scriptPath string
		showFPS    bool
		exitOnDone bool
		title      string
	)

	cmd := &cobra.Command{
		Use:   "view <layout.toml>",
		Short: "Open a layout in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := parallax.LoadLayoutFile(args[0])
			if err != nil {
				return err
			}
			c := layout.Build()
			logger := parallax.Logger()
			logger.Info("loaded layout", "path", args[0], "mode", c.Mode(), "orientation", c.Orientation(), "children", len(c.Children()))

			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				script, err := parallax.LoadScrollScript(data)
				if err != nil {
					return err
				}
				c.SetScrollScript(script)
			}
			c.SetEventSink(logSink{logger: logger})

			if title == "" {
				title = "parallaxview — " + args[0]
			}
			vp := c.Root().Bounds()
			return parallax.Run(c, parallax.RunConfig{
				Title:            title,
				Width:            int(vp.X + vp.Width),
				Height:           int(vp.Y + vp.Height),
				ShowFPS:          showFPS,
				ExitOnScriptDone: exitOnDone,
			})
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "JSON scroll script to play")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS and scroll overlay")
	cmd.Flags().BoolVar(&exitOnDone, "exit-on-done", false, "exit when the scroll script finishes")
	cmd.Flags().StringVar(&title, "title", "", "window title")
	return cmd
}

// logSink logs threshold-mode reveals.
type logSink struct {
	logger *log.Logger
}

func (s logSink) EmitTrigger(e parallax.TriggerEvent) {
	s.logger.Info("reveal", "node", e.Name, "visible", fmt.Sprintf("%.2f", e.Fraction))
}
