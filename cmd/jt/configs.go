package main

import (
	"io"
	"os"

	"github.com/signadot/jsontree/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='compact output, no whitespace'"`
	Indent  int  `cli:"name=i aliases=indent desc='spaces per indent level'"`
	Color   bool `cli:"name=color desc='encode with color'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
	}
	if cfg.Compact {
		res = append(res, encode.Compact())
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File string `cli:"name=p desc='RFC 6902 patch file'"`

	Patch *cli.Command
}

type YAMLConfig struct {
	*MainConfig

	YAML *cli.Command
}
