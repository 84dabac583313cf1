package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/soypat/sdfparts/form3/obj3/extrusion"
	"github.com/spf13/viper"
)

const (
	cfgKeyLength   = "length"
	cfgKeyQuality  = "quality"
	cfgKeyMaterial = "material"
	cfgKeyWorkers  = "workers"
	cfgKeyProfiles = "profiles"

	defaultLength   = 100.0
	defaultQuality  = 200
	defaultMaterial = "none"

	envPrefix = "PARTGEN"
)

// loadConfig returns the partgen configuration. Defaults are overridden
// by PARTGEN_* environment variables (dashes become underscores) and
// the file at path, if given.
// The file format is taken from its extension (yaml, toml, json).
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLength, defaultLength)
	v.SetDefault(cfgKeyQuality, defaultQuality)
	v.SetDefault(cfgKeyMaterial, defaultMaterial)
	v.SetDefault(cfgKeyWorkers, 0)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// loadCatalog returns the built-in catalog extended with the profiles
// declared under the profiles key of v. Config keys are case insensitive
// so a profile without an explicit name is named after its upper-cased key.
func loadCatalog(v *viper.Viper) (*extrusion.Catalog, error) {
	var raw map[string]extrusion.Params
	if err := v.UnmarshalKey(cfgKeyProfiles, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfgKeyProfiles, err)
	}
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	ks := make([]extrusion.Params, 0, len(keys))
	for _, key := range keys {
		k := raw[key]
		if k.Name == "" {
			k.Name = strings.ToUpper(key)
		}
		ks = append(ks, k)
	}
	c, err := extrusion.NewCatalog(extrusion.Builtin(), ks...)
	if err != nil {
		return nil, fmt.Errorf("config profiles: %w", err)
	}
	return c, nil
}

// lookupProfile finds name in c, retrying upper-cased.
func lookupProfile(c *extrusion.Catalog, name string) (extrusion.Profile, error) {
	if p, ok := c.Lookup(name); ok {
		return p, nil
	}
	if p, ok := c.Lookup(strings.ToUpper(name)); ok {
		return p, nil
	}
	return extrusion.Profile{}, fmt.Errorf("unknown profile %q (available: %s)", name, strings.Join(c.Names(), ", "))
}
