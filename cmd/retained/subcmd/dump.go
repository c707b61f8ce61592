package subcmd

import (
	"github.com/chunga-ict/retained/kernel/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(NewDumpCommand())
}

func NewDumpCommand() *cobra.Command {
	dumpCmd := &DumpCommand{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Show the retained tag state from the save file",
		RunE:  dumpCmd.dump,
	}

	cmd.Flags().StringVarP(&dumpCmd.SaveFile, "savefile", "s", "", "path to the save file")
	cmd.Flags().StringVarP(&dumpCmd.ConfigPath, "config", "c", "", "path to YAML configuration file")

	return cmd
}

type DumpCommand struct {
	SaveFile   string
	ConfigPath string
}

func (d *DumpCommand) dump(cmd *cobra.Command, args []string) error {
	st, _, err := openStore(d.SaveFile, d.ConfigPath)
	if err != nil {
		return err
	}

	screens := st.Screens()
	if len(screens) == 0 {
		logrus.Info("no retained state")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Screen", "Position", "Tag", "Layout"})

	for _, id := range screens {
		screen := &model.StaticScreen{Id: id}
		names := st.Names(screen)
		layouts := st.Layouts(screen)
		for i, name := range names {
			layoutName := "-"
			if i < len(layouts) && layouts[i] != nil {
				layoutName = layouts[i].Name()
			}
			t.AppendRow(table.Row{id, i + 1, name, layoutName})
		}
	}

	t.Render()
	return nil
}
