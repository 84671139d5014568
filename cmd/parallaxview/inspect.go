package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/parallax"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber   = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel    = lipgloss.NewStyle().Foreground(colorGray)
	styleRevealed = lipgloss.NewStyle().Foreground(colorGreen)
)

func newInspectCmd() *cobra.Command {
	var offsets []float64

	cmd := &cobra.Command{
		Use:   "inspect <layout.toml>",
		Short: "Print child transforms at one or more scroll offsets",
		Long:  `inspect builds the layout without opening a window, scrolls to each offset in turn, and prints every child's transform. In threshold mode it reports which children have been revealed so far.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := parallax.LoadLayoutFile(args[0])
			if err != nil {
				return err
			}
			c := layout.Build()
			settle := c.Config().RevealDuration
			c.UpdateDT(settle)

			w := cmd.OutOrStdout()
			printHeader(w, args[0], c)
			printState(w, c)
			for _, off := range offsets {
				c.ScrollTo(off)
				c.UpdateDT(settle) // finish any reveal the scroll started
				printState(w, c)
			}
			return nil
		},
	}

	cmd.Flags().Float64SliceVarP(&offsets, "offset", "o", nil, "scroll offsets to inspect, in order")
	return cmd
}

func printHeader(w io.Writer, path string, c *parallax.Container) {
	s := c.ScrollState()
	fmt.Fprintln(w, styleTitle.Render(path))
	fmt.Fprintf(w, "%s %s  %s %s  %s %s\n",
		styleLabel.Render("mode"), c.Mode(),
		styleLabel.Render("orientation"), c.Orientation(),
		styleLabel.Render("scrollable"), styleNumber.Render(fmt.Sprintf("%.0f", s.MaxScroll())))
}

// printState prints the scroll position and one line per child.
func printState(w io.Writer, c *parallax.Container) {
	s := c.ScrollState()
	fmt.Fprintf(w, "\n%s %s %s\n",
		styleLabel.Render("offset"),
		styleNumber.Render(fmt.Sprintf("%.0f", s.Offset)),
		styleDim.Render(fmt.Sprintf("(progress %.2f)", s.Fraction())))

	for _, n := range c.Children() {
		t := n.Transform()
		line := fmt.Sprintf("  %-16s t=(%.1f, %.1f) s=(%.2f, %.2f) a=%.2f r=%.1f",
			n.Name, t.TranslationX, t.TranslationY, t.ScaleX, t.ScaleY, t.Alpha, t.Rotation)
		switch {
		case n.Params == nil:
			line = styleDim.Render(line + "  no params")
		case c.Mode() == parallax.ModeThreshold && n.Params.Triggered():
			line += "  " + styleRevealed.Render("revealed")
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
