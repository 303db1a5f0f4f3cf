// Package nodes collects resource paths from hierarchical site-content exports.
package nodes

import (
	"context"
	"crawlfilter/internal/domain/consts"
	"crawlfilter/internal/jsonl"
	"crawlfilter/internal/logging"
	"crawlfilter/internal/models"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// Collector prints every "path" of a node tree in pre-order.
type Collector struct {
	rewrite  Rewrite
	maxDepth int
	stats    models.RunStats
}

// NewCollector returns a Collector. A maxDepth below 1 uses the default limit.
func NewCollector(rw Rewrite, maxDepth int) *Collector {
	if maxDepth < 1 {
		maxDepth = consts.DefaultMaxDepth
	}
	return &Collector{rewrite: rw, maxDepth: maxDepth}
}

// Stats returns the counters accumulated so far.
func (c *Collector) Stats() models.RunStats {
	return c.stats
}

// Run reads node trees from src, one per line, and writes their paths to w.
func (c *Collector) Run(ctx context.Context, input string, src io.Reader, w io.Writer) error {
	c.stats.Inputs++
	return jsonl.Each(ctx, input, src, func(root gjson.Result) error {
		c.stats.Lines++
		return c.Collect(root, func(path string) error {
			_, err := io.WriteString(w, path+"\n")
			return err
		})
	})
}

// Collect calls emit for every path in the tree rooted at root.
func (c *Collector) Collect(root gjson.Result, emit func(string) error) error {
	return c.walk(root, 1, emit)
}

// walk visits node, then each of its children in order.
func (c *Collector) walk(node gjson.Result, depth int, emit func(string) error) error {
	if depth > c.maxDepth {
		return fmt.Errorf("%w of %d", jsonl.ErrRecursionLimit, c.maxDepth)
	}
	if !node.IsObject() {
		return fmt.Errorf("%w: expected an object, got %s", jsonl.ErrMalformedNode, node.Type)
	}

	if p := jsonl.Field(node, consts.NodePath); p.Exists() {
		if p.Type != gjson.String {
			return jsonl.FieldType(consts.NodePath, "a string")
		}
		path, rewritten := c.rewrite.Apply(p.Str)
		if rewritten {
			c.stats.Rewritten++
			logging.D(3, "Rewrote %q to %q", p.Str, path)
		}
		if err := emit(path); err != nil {
			return err
		}
		c.stats.Emitted++
	}

	children := jsonl.Field(node, consts.NodeChildren)
	if !children.Exists() {
		return nil
	}
	if !children.IsArray() {
		return fmt.Errorf("%w: %q must be an array", jsonl.ErrMalformedNode, consts.NodeChildren)
	}

	var err error
	children.ForEach(func(_, child gjson.Result) bool {
		err = c.walk(child, depth+1, emit)
		return err == nil
	})
	return err
}
