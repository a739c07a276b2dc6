// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"runtime/debug"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/jtt-go/cmd/jtt/internal"
)

type cmdVersion struct {
	JSON bool `help:"Print build information as JSON."`
}

type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"revision"`
	Time      string `json:"time"`
	Modified  bool   `json:"modified"`
}

func readVersionInfo() (versionInfo, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionInfo{}, errors.New("build info not found")
	}
	v := versionInfo{
		Version:   info.Main.Version,
		GoVersion: info.GoVersion,
		Revision:  "unknown",
		Time:      "unknown",
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.Revision = setting.Value[:min(8, len(setting.Value))]
		case "vcs.time":
			v.Time = setting.Value
		case "vcs.modified":
			v.Modified = setting.Value == "true"
		}
	}
	return v, nil
}

func (c cmdVersion) Run(ctx *kong.Context) error {
	v, err := readVersionInfo()
	if err != nil {
		return err
	}
	if c.JSON {
		return internal.EncodeJSON(ctx.Stdout, v)
	}

	dirty := ""
	if v.Modified {
		dirty = " (modified)"
	}
	ctx.Printf("jtt %s built with %s from %s%s on %s", v.Version, v.GoVersion, v.Revision, dirty, v.Time)
	return nil
}
