// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package buildfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclBuildFile represents the top-level structure of a buildfile for decoding.
type hclBuildFile struct {
	Tasks []*hclBlock `hcl:"task,block"`
	Files []*hclBlock `hcl:"file,block"`
	Rules []*hclBlock `hcl:"rule,block"`
}

// hclBlock is the initial shape of any labeled declaration block; the body is
// decoded in a second pass against the schema for its block type.
type hclBlock struct {
	Label string   `hcl:"name,label"`
	Body  hcl.Body `hcl:",remain"`
}

// taskBodySchema covers `task` and `file` blocks.
var taskBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "deps"},
		{Name: "commands"},
	},
}

// ruleBodySchema covers `rule` blocks.
var ruleBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "source"},
		{Name: "commands"},
	},
}

// taskDecl is the decoded form of a task or file block. Commands stays a raw
// expression; Deps is resolved immediately because prerequisite names must be
// static.
type taskDecl struct {
	Name     string
	Deps     any
	Commands hcl.Expression
}

// ruleDecl is the decoded form of a rule block.
type ruleDecl struct {
	Pattern  string
	Source   string
	Commands hcl.Expression
}

func parseFile(body hcl.Body) (*hclBuildFile, error) {
	var parsed hclBuildFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, diags
	}
	return &parsed, nil
}

func decodeTask(block *hclBlock) (*taskDecl, error) {
	content, diags := block.Body.Content(taskBodySchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("block %q: %w", block.Label, diags)
	}

	decl := &taskDecl{Name: block.Label}

	if attr, ok := content.Attributes["deps"]; ok {
		deps, err := decodeDeps(attr)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", block.Label, err)
		}
		decl.Deps = deps
	}
	if attr, ok := content.Attributes["commands"]; ok {
		decl.Commands = attr.Expr
	}

	return decl, nil
}

func decodeRule(block *hclBlock) (*ruleDecl, error) {
	content, diags := block.Body.Content(ruleBodySchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("rule %q: %w", block.Label, diags)
	}

	decl := &ruleDecl{Pattern: block.Label}

	attr, ok := content.Attributes["source"]
	if !ok {
		return nil, fmt.Errorf("rule %q: missing required attribute 'source'", block.Label)
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("rule %q: %w", block.Label, diags)
	}
	if err := gocty.FromCtyValue(val, &decl.Source); err != nil {
		return nil, fmt.Errorf("rule %q: source must be a string: %w", block.Label, err)
	}

	if attr, ok := content.Attributes["commands"]; ok {
		decl.Commands = attr.Expr
	}

	return decl, nil
}

// decodeDeps evaluates a deps attribute, which may be a single string or a
// list of strings. The loose shape is forwarded to the registry's descriptor
// normalization rather than flattened here, so both layers agree on what a
// declaration may look like.
func decodeDeps(attr *hcl.Attribute) (any, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	if val.Type() == cty.String {
		return val.AsString(), nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("deps must be a string or list of strings: %w", err)
	}
	var deps []string
	if err := gocty.FromCtyValue(listVal, &deps); err != nil {
		return nil, fmt.Errorf("deps must be a string or list of strings: %w", err)
	}
	return deps, nil
}
