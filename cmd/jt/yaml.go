package main

import (
	"fmt"

	"github.com/signadot/jsontree/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func yamlOut(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		node, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		d, err := yaml.Marshal(ir.ToAny(node))
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
