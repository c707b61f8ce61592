/*
	(c) Copyright NetFoundry Inc. Inc.

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

	https://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package subcmd

import (
	"fmt"

	"github.com/chunga-ict/retained/kernel/engine"
	"github.com/chunga-ict/retained/kernel/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(NewRestoreCommand())
}

func NewRestoreCommand() *cobra.Command {
	restoreCmd := &RestoreCommand{}

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Preview the tag sets that would be recreated from the save file",
		RunE:  restoreCmd.restore,
	}

	cmd.Flags().StringVarP(&restoreCmd.SaveFile, "savefile", "s", "", "path to the save file")
	cmd.Flags().StringVarP(&restoreCmd.ConfigPath, "config", "c", "", "path to YAML configuration file")
	cmd.Flags().BoolVar(&restoreCmd.DryRun, "dry-run", true, "plan only; never touches the save file")

	return cmd
}

type RestoreCommand struct {
	SaveFile   string
	ConfigPath string
	DryRun     bool
}

func (r *RestoreCommand) restore(cmd *cobra.Command, args []string) error {
	if !r.DryRun {
		return fmt.Errorf("a live restore is driven by the window manager host; only --dry-run is available here")
	}

	st, defaults, err := openStore(r.SaveFile, r.ConfigPath)
	if err != nil {
		return err
	}

	screens := make([]model.Screen, 0)
	for _, id := range st.Screens() {
		screens = append(screens, &model.StaticScreen{Id: id})
	}

	restorer := engine.NewRestorer(st, defaults)
	result, plans := restorer.Restore(screens)

	for _, screen := range screens {
		id := screen.ID()
		logrus.Infof("screen %d: %d tag(s)", id, len(plans[id]))
		for i, plan := range plans[id] {
			layoutName := "-"
			if plan.Layout != nil {
				layoutName = plan.Layout.Name()
			}
			logrus.Infof("  %d: '%s' (%s)", i+1, plan.Name, layoutName)
		}
	}

	logrus.Infof("restore plan: %d screen(s), %d tag(s), %d layout substitution(s)",
		result.Screens, result.Tags, result.Substituted)

	return nil
}
