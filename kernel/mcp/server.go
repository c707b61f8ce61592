package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/chunga-ict/retained/kernel/model"
	"github.com/chunga-ict/retained/kernel/store"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RetainedMCPServer exposes the retained tag state over stdio for
// inspection. Read-only: no tool mutates the store.
type RetainedMCPServer struct {
	server *server.MCPServer
	store  store.StateStore
}

func NewRetainedMCPServer(s store.StateStore) *RetainedMCPServer {
	srv := server.NewMCPServer(
		"Retained Tag State",
		"v1.0.0",
		server.WithResourceCapabilities(true, true),
		server.WithToolCapabilities(true),
	)

	rs := &RetainedMCPServer{
		server: srv,
		store:  s,
	}

	rs.registerTools()
	rs.registerResources()

	return rs
}

func (rs *RetainedMCPServer) ServeStdio() error {
	return server.ServeStdio(rs.server)
}

func (rs *RetainedMCPServer) registerTools() {
	listTool := mcp.NewTool("list_screens",
		mcp.WithDescription("List the screen identifiers with retained tag state"),
	)
	rs.server.AddTool(listTool, rs.listScreensHandler)

	getTool := mcp.NewTool("get_tags",
		mcp.WithDescription("Get the retained tag names and layouts for a screen"),
		mcp.WithString("screen",
			mcp.Description("Stable screen identifier"),
			mcp.Required(),
		),
	)
	rs.server.AddTool(getTool, rs.getTagsHandler)
}

func (rs *RetainedMCPServer) registerResources() {
	resource := mcp.NewResource("retained://status", "Retained Status",
		mcp.WithResourceDescription("Screens with retained tag state"),
		mcp.WithMIMEType("application/json"),
	)
	rs.server.AddResource(resource, rs.statusHandler)
}

func (rs *RetainedMCPServer) listScreensHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	screens := rs.store.Screens()

	response := map[string]any{
		"count":   len(screens),
		"screens": screens,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal screen list: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (rs *RetainedMCPServer) getTagsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	screenArg, err := request.RequireString("screen")
	if err != nil {
		return mcp.NewToolResultError("screen argument is required"), nil
	}
	id, err := strconv.Atoi(screenArg)
	if err != nil {
		return mcp.NewToolResultError("screen must be a decimal identifier"), nil
	}

	screen := &model.StaticScreen{Id: id}
	names := rs.store.Names(screen)
	layouts := rs.store.Layouts(screen)

	tags := make([]map[string]string, 0, len(names))
	for i, name := range names {
		layoutName := ""
		if i < len(layouts) && layouts[i] != nil {
			layoutName = layouts[i].Name()
		}
		tags = append(tags, map[string]string{
			"name":   name,
			"layout": layoutName,
		})
	}

	data, err := json.Marshal(map[string]any{"screen": id, "tags": tags})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (rs *RetainedMCPServer) statusHandler(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	screens := rs.store.Screens()

	result := fmt.Sprintf(`{"count": %d, "screens": %v}`, len(screens), screens)

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "retained://status",
			MIMEType: "application/json",
			Text:     result,
		},
	}, nil
}
