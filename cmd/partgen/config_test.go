package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/sdfparts/form3/obj3/extrusion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `length: 250
quality: 64
material: petg
profiles:
  e2525:
    width: 25
    height: 50
    center_hole: -5
    center_motif: 9
    channel_width: 7
    internal_channel_width: 14
    tab_thickness: 2
    spar_thickness: 1.8
    fillet_radius: 1
  custom:
    name: E2020
    width: 20
    height: 20
    center_hole: 5
    center_motif: 7.5
    channel_width: 6.2
    internal_channel_width: 12
    tab_thickness: 2
    spar_thickness: 1.5
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	v, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultLength, v.GetFloat64(cfgKeyLength))
	assert.Equal(t, defaultQuality, v.GetInt(cfgKeyQuality))
	assert.Equal(t, defaultMaterial, v.GetString(cfgKeyMaterial))

	c, err := loadCatalog(v)
	require.NoError(t, err)
	assert.Equal(t, extrusion.Names(), c.Names())
}

func TestLoadConfigFile(t *testing.T) {
	v, err := loadConfig(writeConfig(t, "partgen.yaml", testConfig))
	require.NoError(t, err)
	assert.Equal(t, 250.0, v.GetFloat64(cfgKeyLength))
	assert.Equal(t, 64, v.GetInt(cfgKeyQuality))
	assert.Equal(t, "petg", v.GetString(cfgKeyMaterial))

	c, err := loadCatalog(v)
	require.NoError(t, err)
	p, err := lookupProfile(c, "e2525")
	require.NoError(t, err)
	assert.Equal(t, "E2525", p.Name)
	assert.Equal(t, 2, p.Cells())
	assert.Equal(t, extrusion.HoleCircle, p.CenterHole.Kind)

	// Explicit names replace built-in profiles.
	p, err = lookupProfile(c, "E2020")
	require.NoError(t, err)
	assert.Equal(t, extrusion.HoleSquare, p.CenterHole.Kind)
	assert.True(t, p.CornerHole.None())
	assert.Len(t, c.Names(), len(extrusion.Names())+1)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	v, err := loadConfig(writeConfig(t, "bad.yaml", `profiles:
  bad:
    width: 20
    height: 20
    internal_channel_width: 25
    channel_width: 6
`))
	require.NoError(t, err)
	_, err = loadCatalog(v)
	assert.ErrorIs(t, err, extrusion.ErrConfiguration)

	v, err = loadConfig(writeConfig(t, "nan.yaml", `profiles:
  nan:
    width: 20
    height: 20
    center_hole: .nan
    channel_width: 6.2
    internal_channel_width: 12
`))
	require.NoError(t, err)
	_, err = loadCatalog(v)
	assert.ErrorIs(t, err, extrusion.ErrConfiguration)

	_, err = lookupProfile(extrusion.Builtin(), "E9090")
	assert.ErrorContains(t, err, "E2020")
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("PARTGEN_QUALITY", "64")
	t.Setenv("PARTGEN_CORNER_HOLES", "true")
	v, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 64, v.GetInt(cfgKeyQuality))
	assert.True(t, v.GetBool("corner-holes"))
}

func TestLogger(t *testing.T) {
	var b bytes.Buffer
	l := newLogger(&b, false)
	l.Infof("hidden %d", 1)
	assert.Zero(t, b.Len())
	l.Warnf("shown %d", 2)
	assert.Contains(t, b.String(), "shown 2")
	newLogger(&b, true).Infof("verbose %s", "info")
	assert.Contains(t, b.String(), "verbose info")
}

func TestListCommand(t *testing.T) {
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetArgs([]string{"list"})
	require.NoError(t, rootCmd.Execute())
	for _, name := range extrusion.Names() {
		assert.Contains(t, b.String(), name)
	}
}

func TestBuildCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "E2020.stl")
	rootCmd.SetArgs([]string{"build", "E2020", "--length", "20", "--quality", "24", "--material", "pla", "-o", output})
	require.NoError(t, rootCmd.Execute())
	info, err := os.Stat(output)
	require.NoError(t, err)
	// 84 byte header followed by 50 byte triangles.
	assert.Zero(t, (info.Size()-84)%50)
	assert.Greater(t, info.Size(), int64(84))
}

func TestInfoCommand(t *testing.T) {
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetArgs([]string{"info", "E2020T", "--resolution", "200"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, b.String(), "recess")
	assert.Contains(t, b.String(), "g/m")
}
