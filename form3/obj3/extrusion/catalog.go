package extrusion

import (
	"fmt"
	"sort"
)

// catalogParams holds the built-in profiles. Hole fields are sign
// encoded: negative is a circle, positive a square.
var catalogParams = []Params{
	{Name: "E1515", Width: 15, Height: 15, CenterHole: -2.5, CenterMotif: 5.5, ChannelWidth: 3.4, InternalChannelWidth: 9.0, TabThickness: 1.0, SparThickness: 1.0, FilletRadius: 0.5},
	e20("E2020", 20),
	{Name: "E2020T", Width: 20, Height: 20, CenterHole: -5.0, CornerHole: -2.5, CenterMotif: 8.0, ChannelWidth: 6.2, InternalChannelWidth: 11.0, TabThickness: 1.8, SparThickness: 1.5, FilletRadius: 1.5, RecessWidth: 7.2, RecessDepth: 0.5},
	e20("E2040", 40),
	e20("E2060", 60),
	e20("E2080", 80),
	e30("E3030", 30),
	e30("E3060", 60),
	e40("E4040", 40),
	e40("E4080", 80),
}

func e20(name string, height float64) Params {
	return Params{Name: name, Width: 20, Height: height, CenterHole: -4.2, CornerHole: -3.0, CenterMotif: 7.5, ChannelWidth: 6.2, InternalChannelWidth: 12.0, TabThickness: 2.0, SparThickness: 1.5, FilletRadius: 1.5}
}

func e30(name string, height float64) Params {
	return Params{Name: name, Width: 30, Height: height, CenterHole: -6.8, CenterMotif: 11.0, ChannelWidth: 8.2, InternalChannelWidth: 16.5, TabThickness: 2.2, SparThickness: 2.0, FilletRadius: 2.0}
}

func e40(name string, height float64) Params {
	return Params{Name: name, Width: 40, Height: height, CenterHole: -10.5, CenterMotif: 15, ChannelWidth: 10.3, InternalChannelWidth: 20.5, TabThickness: 4.5, SparThickness: 3.0, FilletRadius: 2.0}
}

// Catalog is an immutable set of named profiles.
type Catalog struct {
	profiles map[string]Profile
	names    []string
}

var builtin = mustCatalog(catalogParams)

func mustCatalog(ks []Params) *Catalog {
	c, err := NewCatalog(nil, ks...)
	if err != nil {
		panic(err)
	}
	return c
}

// Builtin returns the catalog of built-in profiles.
func Builtin() *Catalog { return builtin }

// NewCatalog returns a catalog containing the profiles of base, if
// non-nil, with ks validated and added over them. A profile in ks
// replaces a base profile of the same name.
func NewCatalog(base *Catalog, ks ...Params) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]Profile)}
	if base != nil {
		for name, p := range base.profiles {
			c.profiles[name] = p
		}
	}
	for _, k := range ks {
		if k.Name == "" {
			return nil, fmt.Errorf("%w: catalog profile requires a name", ErrConfiguration)
		}
		p, err := NewProfile(k)
		if err != nil {
			return nil, err
		}
		c.profiles[k.Name] = p
	}
	c.names = make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c, nil
}

// Lookup returns the profile named name.
func (c *Catalog) Lookup(name string) (Profile, bool) {
	p, ok := c.profiles[name]
	return p, ok
}

// Names returns the sorted profile names of the catalog.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Lookup returns the built-in profile named name.
func Lookup(name string) (Profile, bool) { return builtin.Lookup(name) }

// Names returns the sorted names of the built-in profiles.
func Names() []string { return builtin.Names() }
