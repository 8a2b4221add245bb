package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTasksTool(srv, svc)
	registerGetTaskTool(srv, svc)
	registerAddTaskTool(srv, svc)
	registerToggleTaskTool(srv, svc)
	registerDeleteTaskTool(srv, svc)
	registerMoveTaskTool(srv, svc)
	registerListCategoriesTool(srv, svc)
	registerAddCategoryTool(srv, svc)
}

func registerListTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List tasks filtered and sorted the way the planner displays them."),
		mcp.WithString("category",
			mcp.Description("Category id, or \"all\"."),
		),
		mcp.WithString("filter",
			mcp.Description("Date or completion filter. \"all\" shows the tasks of the selected date."),
			mcp.Enum("all", "today", "upcoming", "completed", "incomplete"),
		),
		mcp.WithString("date",
			mcp.Description("Selected date (YYYY-MM-DD or RFC3339) used by the \"all\" filter. Defaults to today."),
		),
		mcp.WithString("search",
			mcp.Description("Case-insensitive text matched against title, description and tags."),
		),
		mcp.WithString("sort",
			mcp.Enum("priority", "date", "alphabetical", "category"),
		),
		mcp.WithString("direction",
			mcp.Enum("asc", "desc"),
		),
		mcp.WithBoolean("hide_completed",
			mcp.Description("Hide completed tasks."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Category      string `json:"category"`
			Filter        string `json:"filter"`
			Date          string `json:"date"`
			Search        string `json:"search"`
			Sort          string `json:"sort"`
			Direction     string `json:"direction"`
			HideCompleted bool   `json:"hide_completed"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		tasks, err := svc.ListTasks(ctx, ListOptions{
			Category:      args.Category,
			Filter:        args.Filter,
			Date:          args.Date,
			Search:        args.Search,
			Sort:          args.Sort,
			Direction:     args.Direction,
			HideCompleted: args.HideCompleted,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"tasks": tasks,
			"count": len(tasks),
		})
	})
}

func registerGetTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_task",
		mcp.WithDescription("Fetch a single task by id."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.GetTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Create a new task."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title."),
		),
		mcp.WithString("description"),
		mcp.WithString("category",
			mcp.Description("Category id. Defaults to the first category."),
		),
		mcp.WithString("priority",
			mcp.Enum("low", "medium", "high"),
		),
		mcp.WithString("date",
			mcp.Description("Due date (YYYY-MM-DD or RFC3339). Defaults to now."),
		),
		mcp.WithString("time",
			mcp.Description("Optional 24h clock time, HH:MM."),
		),
		mcp.WithArray("tags",
			mcp.Description("Free text labels."),
			mcp.WithStringItems(),
		),
		mcp.WithNumber("estimated_minutes",
			mcp.Description("Optional positive estimate in minutes."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title            string   `json:"title"`
			Description      string   `json:"description"`
			Category         string   `json:"category"`
			Priority         string   `json:"priority"`
			Date             string   `json:"date"`
			Time             string   `json:"time"`
			Tags             []string `json:"tags"`
			EstimatedMinutes int      `json:"estimated_minutes"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddTask(ctx, AddTaskOptions{
			Title:       args.Title,
			Description: args.Description,
			Category:    args.Category,
			Priority:    args.Priority,
			Date:        args.Date,
			Time:        args.Time,
			Tags:        args.Tags,
			Estimate:    args.EstimatedMinutes,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Toggle a task between completed and incomplete."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ToggleTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteTask(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]string{"deleted": id})
	})
}

func registerMoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_task",
		mcp.WithDescription("Change a task's manual order. The manual order breaks ties between tasks with equal sort keys."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to move."),
		),
		mcp.WithString("target_id",
			mcp.Description("Task whose position the moved task takes."),
		),
		mcp.WithString("direction",
			mcp.Description("Used when no target is given."),
			mcp.Enum("up", "down"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		tasks, err := svc.MoveTask(ctx, id, request.GetString("target_id", ""), request.GetString("direction", "down"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"tasks": tasks})
	})
}

func registerListCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_categories",
		mcp.WithDescription("List task categories."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cats := svc.ListCategories(ctx)
		return toJSONResult(map[string]any{
			"categories": cats,
			"count":      len(cats),
		})
	})
}

func registerAddCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_category",
		mcp.WithDescription("Create a task category."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Display name. The id is derived from it."),
		),
		mcp.WithString("color",
			mcp.Description("Hex color such as #3b82f6."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		c, err := svc.AddCategory(ctx, name, request.GetString("color", "#64748b"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(c)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
