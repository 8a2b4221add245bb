// Package categories contains runners for category management commands.
package categories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/task"
)

// Categories lists categories, or adds one when Name is set.
type Categories struct {
	Name    string
	Color   string
	Planner *planner.Planner
	Out     io.Writer
}

// Do executes the listing or the addition.
func (c *Categories) Do(ctx context.Context) error {
	if c.Planner == nil {
		return errors.New("can not manage categories, no planner")
	}

	pp := printers.PrettyPrint{Out: c.Out}
	if name := strings.TrimSpace(c.Name); name != "" {
		color := strings.TrimSpace(c.Color)
		if color == "" {
			color = nextColor(len(c.Planner.Categories()))
		} else if _, err := colorful.Hex(color); err != nil {
			return fmt.Errorf("invalid color %q: %w", c.Color, err)
		}
		id := task.CategoryID(name)
		if _, ok := c.Planner.Category(id); ok {
			return fmt.Errorf("category %q already exists", id)
		}
		if _, err := c.Planner.AddCategory(task.Category{Name: name, Color: color}); err != nil {
			return err
		}
	}

	pp.NewLine()
	pp.CategoryTable(c.Planner.Categories()...)
	return nil
}

// nextColor spreads category hues around the color wheel.
func nextColor(n int) string {
	hue := float64((n*137)%360)
	return colorful.Hsv(hue, 0.65, 0.9).Hex()
}
