package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsontree/encode"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := dumpFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, cc *cli.Context, w io.Writer, file string) error {
	node, err := getObjFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
