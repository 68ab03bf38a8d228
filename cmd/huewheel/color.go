// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strconv"

	"github.com/huewheel/huewheel/internal/render"
	"github.com/huewheel/huewheel/pkg/hexcolor"

	"github.com/spf13/cobra"
)

// demoColor is the color shown by 'huewheel demo' when no argument is given.
const demoColor = "#19021e"

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <hex>...",
		Short: "Check whether values are valid color codes",
		Long: `Check whether each value is a '#' followed by exactly 3 or 6 hex digits.

Exits with status 1 if any value is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, args)
		},
	}
}

func runValidate(cmd *cobra.Command, app *App, args []string) error {
	out, err := app.renderer(cmd)
	if err != nil {
		return err
	}

	results := make([]render.Validation, 0, len(args))
	allValid := true
	for _, arg := range args {
		v := render.Validation{Value: arg}
		if code, err := hexcolor.Normalize(arg); err == nil {
			v.Valid = true
			v.Normalized = code
		} else {
			allValid = false
			app.logger.Debug("rejected color code", "value", arg, "error", err)
		}
		results = append(results, v)
	}

	if err := out.Validations(results); err != nil {
		return err
	}
	if !allValid {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}

func newNormalizeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <hex>",
		Short: "Expand a 3-digit color code to 6 digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := hexcolor.Normalize(args[0])
			if err != nil {
				return colorCodeError(args[0], err)
			}
			app.logger.Debug("normalized color code", "input", args[0], "code", code)

			out, err := app.renderer(cmd)
			if err != nil {
				return err
			}
			return out.Code(code)
		},
	}
}

func newRGBCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rgb <hex>",
		Short: "Convert a color code to red, green and blue channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := hexcolor.ToRGB(args[0])
			if err != nil {
				return colorCodeError(args[0], err)
			}

			out, err := app.renderer(cmd)
			if err != nil {
				return err
			}
			return out.RGB(c)
		},
	}
}

func newHexCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hex <r> <g> <b>",
		Short: "Encode red, green and blue channels (0-255) as a color code",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ch [3]int
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return channelError(arg, err)
				}
				ch[i] = n
			}

			code, err := hexcolor.RGBToHex(ch[0], ch[1], ch[2])
			if err != nil {
				return channelError(args[0]+" "+args[1]+" "+args[2], err)
			}

			out, err := app.renderer(cmd)
			if err != nil {
				return err
			}
			return out.Code(code)
		},
	}
}

func newDescribeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <hex>",
		Short: "Show the hex, RGB and HSL representations of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := hexcolor.Describe(args[0])
			if err != nil {
				return colorCodeError(args[0], err)
			}

			out, err := app.renderer(cmd)
			if err != nil {
				return err
			}
			return out.Descriptor(d)
		},
	}
}

func newComplementCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complement <hex>",
		Short: "Print the complementary color (hue rotated by 180°)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := hexcolor.Normalize(args[0])
			if err != nil {
				return colorCodeError(args[0], err)
			}
			comp, err := hexcolor.Complementary(string(code))
			if err != nil {
				return colorCodeError(args[0], err)
			}
			app.logger.Debug("computed complement", "color", code, "complement", comp)

			out, err := app.renderer(cmd)
			if err != nil {
				return err
			}
			return out.Complement(render.Complement{Color: code, Complement: comp})
		},
	}
}

func newDemoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [hex]",
		Short: "Describe a sample color and its complement",
		Long: `Describe a sample color and its complement.

Uses ` + demoColor + ` when no color is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := demoColor
			if len(args) == 1 {
				value = args[0]
			}

			d, err := hexcolor.Describe(value)
			if err != nil {
				return colorCodeError(value, err)
			}
			comp, err := hexcolor.Complementary(value)
			if err != nil {
				return colorCodeError(value, err)
			}

			out, err := app.renderer(cmd)
			if err != nil {
				return err
			}
			return out.Demo(render.Demo{Descriptor: d, Complement: comp})
		},
	}
}
