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
	"github.com/chunga-ict/retained/kernel/loader"
	"github.com/chunga-ict/retained/kernel/mcp"
	"github.com/chunga-ict/retained/kernel/model"
	"github.com/chunga-ict/retained/kernel/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(NewMCPServerCommand())
}

func NewMCPServerCommand() *cobra.Command {
	mcpCmd := &MCPServerCommand{}

	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Start an MCP server exposing the retained tag state",
		Long: `Start an MCP (Model Context Protocol) server on stdio that lets AI
assistants inspect the retained per-screen tag state.

Tools:
  - list_screens: list the screen identifiers with retained state
  - get_tags: get the retained tag names and layouts for a screen

Resources:
  - retained://status: screens with retained tag state`,
		RunE: mcpCmd.run,
	}

	cmd.Flags().BoolVar(&mcpCmd.UseMemoryStore, "memory", false, "use in-memory store (for testing)")
	cmd.Flags().StringVarP(&mcpCmd.SaveFile, "savefile", "s", "", "path to the save file")

	return cmd
}

type MCPServerCommand struct {
	UseMemoryStore bool
	SaveFile       string
}

func (m *MCPServerCommand) run(cmd *cobra.Command, args []string) error {
	var stateStore store.StateStore

	if m.UseMemoryStore {
		logrus.Info("using in-memory store")
		cfg := loader.TryLoadConfig()
		registry := model.DefaultRegistry()
		stateStore = store.NewMemoryStore(registry, cfg.ResolveDefaults(registry))
	} else {
		st, _, err := openStore(m.SaveFile, "")
		if err != nil {
			return err
		}
		stateStore = st
	}

	logrus.Info("starting MCP server on stdio...")
	server := mcp.NewRetainedMCPServer(stateStore)
	return server.ServeStdio()
}
