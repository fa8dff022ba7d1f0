package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/propconv/internal/commands"
	"github.com/arthur-debert/propconv/pkg/convert"
	"github.com/arthur-debert/propconv/pkg/types"
	"github.com/arthur-debert/propconv/pkg/ui"
)

func newHandlersCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "handlers",
		Short: commands.MsgHandlersShort,
		Long:  commands.MsgHandlersLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(output)
			if err != nil {
				return err
			}
			return ui.NewRenderer(cmd.OutOrStdout(), format).Handlers(handlersReport(a.rt.Registry))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "auto", commands.MsgFlagOutput)
	return cmd
}

func handlersReport(reg *convert.HandlerRegistry) ui.HandlersReport {
	var rep ui.HandlersReport
	for _, info := range reg.Handlers() {
		rep.Handlers = append(rep.Handlers, ui.HandlerRow{
			Type:    info.Type.String(),
			Handler: types.HandlerName(info.Handler),
			Source:  info.Source,
		})
	}
	for _, rej := range reg.Rejections() {
		rep.Rejections = append(rep.Rejections, ui.RejectionRow{
			Type:             rej.Type.String(),
			Rejected:         rej.Rejected,
			RejectedSource:   rej.RejectedSource,
			Registered:       rej.Registered,
			RegisteredSource: rej.RegisteredSource,
		})
	}
	return rep
}
