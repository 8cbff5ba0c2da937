package main

import (
	"fmt"
	"os"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.File == "" {
		return fmt.Errorf("%w: patch requires -p with an RFC 6902 patch file", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: patch takes one target document, got %v", cli.ErrUsage, args)
	}
	pd, err := os.ReadFile(cfg.File)
	if err != nil {
		return fmt.Errorf("error reading patch %q: %w", cfg.File, err)
	}
	// validate the patch document before handing it to jsonpatch
	if _, err := parse.Parse(pd); err != nil {
		return fmt.Errorf("error decoding patch %q: %w", cfg.File, err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch %q: %w", cfg.File, err)
	}
	target, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	out, err := ops.Apply([]byte(encode.String(target)))
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[0], err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return fmt.Errorf("error decoding patched document: %w", err)
	}
	w := cc.Out
	if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
