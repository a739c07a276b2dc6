// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/alecthomas/kong"

var cli struct {
	Init     cmdInit     `cmd:"" help:"Write a starter configuration file."`
	Schema   cmdSchema   `cmd:"" help:"Write the JSON Schema of the configuration file."`
	Generate cmdGenerate `cmd:"" help:"Generate TypeScript declarations."`
	Version  cmdVersion  `cmd:"" help:"Print version information."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("jtt"),
		kong.Description("Generate TypeScript declarations from Joi schema descriptions"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
