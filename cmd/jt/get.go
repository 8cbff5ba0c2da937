package main

import (
	"fmt"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := getFile(cfg, cc, src, file); err != nil {
			return fmt.Errorf("error querying %s with %q: %w", file, src, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, src, file string) error {
	node, err := getObjFile(cc, file)
	if err != nil {
		return err
	}
	// a query starting with '/' (or the empty query) is an RFC 6901
	// pointer; anything else compiles as an expression over "doc"
	if src == "" || src[0] == '/' {
		res, err := node.GetPointer(src)
		if err != nil {
			return err
		}
		return putNode(cfg, cc, res)
	}
	env := map[string]any{"doc": ir.ToAny(node)}
	prg, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return fmt.Errorf("error compiling expression: %w", err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return fmt.Errorf("error evaluating expression: %w", err)
	}
	res, err := ir.FromAny(out)
	if err != nil {
		return fmt.Errorf("expression result not representable: %w", err)
	}
	return putNode(cfg, cc, res)
}

func putNode(cfg *GetConfig, cc *cli.Context, node *ir.Node) error {
	w := cc.Out
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}
