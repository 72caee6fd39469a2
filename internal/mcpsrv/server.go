// Package mcpsrv exposes the dashboard controller as MCP tools so an agent
// can pull jokes and read session stats over stdio.
package mcpsrv

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/five82/jester/internal/dashboard"
	"github.com/five82/jester/internal/jokeapi"
)

type jokeGetArgs struct {
	Category string `json:"category,omitempty" jsonschema:"Optional category: Any, Programming, Misc, Pun, Spooky, Christmas. Defaults to the selected category."`
}

type jokeOutput struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	Setup    string `json:"setup,omitempty"`
	Delivery string `json:"delivery,omitempty"`
}

type jokeGetOutput struct {
	Requested string     `json:"requested_category"`
	Joke      jokeOutput `json:"joke"`
}

type categoryListOutput struct {
	Selected string   `json:"selected"`
	Items    []string `json:"items"`
}

type sessionStatsOutput struct {
	JokesViewed      int    `json:"jokes_viewed"`
	LaughsToday      int    `json:"laughs_today"`
	FavoriteCategory string `json:"favorite_category"`
	SelectedCategory string `json:"selected_category"`
	Display          string `json:"display"`
	Error            string `json:"error,omitempty"`
	DarkMode         bool   `json:"dark_mode"`
}

// NewServer registers the jester tools against ctrl.
func NewServer(ctrl *dashboard.Controller, version string) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "jester", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "joke_get",
		Description: "Fetch a fresh joke from JokeAPI, optionally switching category.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args jokeGetArgs) (*mcp.CallToolResult, jokeGetOutput, error) {
		return jokeGetHandler(ctx, req, args, ctrl)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "category_list",
		Description: "List joke categories and the currently selected one.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, categoryListOutput, error) {
		return categoryListHandler(ctx, req, ctrl)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "session_stats",
		Description: "Report session statistics: jokes viewed, laughs today, favorite category.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, sessionStatsOutput, error) {
		return sessionStatsHandler(ctx, req, ctrl)
	})

	return server
}

func jokeGetHandler(ctx context.Context, _ *mcp.CallToolRequest, args jokeGetArgs, ctrl *dashboard.Controller) (*mcp.CallToolResult, jokeGetOutput, error) {
	var fetch *dashboard.Fetch
	if raw := strings.TrimSpace(args.Category); raw != "" {
		category, err := jokeapi.ParseCategory(raw)
		if err != nil {
			return errorToolResult(err.Error()), jokeGetOutput{}, nil
		}
		fetch = ctrl.SelectCategory(category)
	} else {
		fetch = ctrl.Refresh()
	}

	if err := fetch.Run(ctx); err != nil {
		return errorToolResult(jokeapi.UserMessage(err)), jokeGetOutput{}, nil
	}

	snap := ctrl.Snapshot()
	if snap.Joke == nil {
		return errorToolResult(jokeapi.GenericMessage), jokeGetOutput{}, nil
	}
	return nil, jokeGetOutput{
		Requested: fetch.Category().String(),
		Joke:      fromJoke(*snap.Joke),
	}, nil
}

func categoryListHandler(_ context.Context, _ *mcp.CallToolRequest, ctrl *dashboard.Controller) (*mcp.CallToolResult, categoryListOutput, error) {
	categories := jokeapi.Categories()
	items := make([]string, 0, len(categories))
	for _, c := range categories {
		items = append(items, c.String())
	}
	return nil, categoryListOutput{
		Selected: ctrl.Snapshot().SelectedCategory.String(),
		Items:    items,
	}, nil
}

func sessionStatsHandler(_ context.Context, _ *mcp.CallToolRequest, ctrl *dashboard.Controller) (*mcp.CallToolResult, sessionStatsOutput, error) {
	snap := ctrl.Snapshot()
	return nil, sessionStatsOutput{
		JokesViewed:      snap.Stats.JokesViewed,
		LaughsToday:      snap.Stats.LaughsToday,
		FavoriteCategory: snap.Stats.FavoriteCategory,
		SelectedCategory: snap.SelectedCategory.String(),
		Display:          snap.Display().String(),
		Error:            snap.Error,
		DarkMode:         snap.DarkMode,
	}, nil
}

func fromJoke(j jokeapi.Joke) jokeOutput {
	return jokeOutput{
		ID:       j.ID,
		Category: j.Category,
		Type:     j.Type,
		Text:     j.Text(),
		Setup:    j.Setup,
		Delivery: j.Delivery,
	}
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
