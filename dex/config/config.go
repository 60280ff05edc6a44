// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

// Package config reads the key=value configuration files used by monerod and
// monero-wallet-rpc.
package config

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/ini.v1"
)

// loadOptions match the monero config file dialect: no sections, bare flags
// like "no-igd" are allowed, and '#' only begins a comment at line start.
var loadOptions = ini.LoadOptions{
	AllowBooleanKeys:    true,
	AllowShadows:        true,
	IgnoreInlineComment: true,
}

// OptionsMapToINIData generates a config []byte data from settings. Keys are
// written in sorted order.
func OptionsMapToINIData(options map[string]string) []byte {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var buffer bytes.Buffer
	for _, key := range keys {
		buffer.WriteString(fmt.Sprintf("%s=%s\n", key, options[key]))
	}
	return buffer.Bytes()
}

// Options returns a collection of all key-value options in provided config
// file path or []byte data. For repeated keys, the last value wins.
func Options(cfgPathOrData any) (map[string]string, error) {
	cfgFile, err := ini.LoadSources(loadOptions, cfgPathOrData)
	if err != nil {
		return nil, err
	}
	return options(cfgFile), nil
}

func options(cfgFile *ini.File) map[string]string {
	options := make(map[string]string)
	for _, section := range cfgFile.Sections() {
		for _, key := range section.Keys() {
			vals := key.ValueWithShadows()
			if len(vals) == 0 {
				options[key.Name()] = key.String()
				continue
			}
			options[key.Name()] = vals[len(vals)-1]
		}
	}
	return options
}

// Parse parses config options from the provided config file path or []byte
// data into the specified struct object, which should tag its fields with
// `ini:"key-name"`. Section headers, if any, are flattened first, and the last
// of any repeated keys wins, as with Options.
func Parse(cfgPathOrData, obj any) error {
	cfgFile, err := ini.LoadSources(loadOptions, cfgPathOrData)
	if err != nil {
		return err
	}
	flat, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys:    true,
		IgnoreInlineComment: true,
	}, OptionsMapToINIData(options(cfgFile)))
	if err != nil {
		return err
	}
	return flat.MapTo(obj)
}
