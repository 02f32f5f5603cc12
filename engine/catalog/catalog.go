// Package catalog holds the read-only game configuration: resource types,
// buildings and humans with their costs, capacities and production, and the
// grant a land receives with its first settlement.
package catalog

import (
	_ "embed"
	"io/ioutil"
	"sort"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/resource"
	"gopkg.in/yaml.v3"
)

//go:embed classic.yaml
var classic []byte

// Volumes is a plain resource vector as written in catalog files
type Volumes map[string]common.Volume

// Building describes one building type
type Building struct {
	Class        string  `yaml:"class"`
	ID           string  `yaml:"id"`
	Capacity     uint64  `yaml:"capacity"`
	Costs        Volumes `yaml:"costs"`
	DestroyCosts Volumes `yaml:"destroy_costs"`
}

// Key returns the ledger key of the building
func (b *Building) Key() building.Key {
	return building.Key{Class: b.Class, ID: b.ID}
}

// Human describes one human type
type Human struct {
	Class        string  `yaml:"class"`
	ID           string  `yaml:"id"`
	Experience   string  `yaml:"experience"`
	Engageable   bool    `yaml:"engageable"`
	Dismissable  bool    `yaml:"dismissable"`
	Costs        Volumes `yaml:"costs"`
	DismissCosts Volumes `yaml:"dismiss_costs"`
	Housing      string  `yaml:"housing"`
	Production   Volumes `yaml:"production"`
}

// Key returns the ledger key of the human
func (h *Human) Key() human.Key {
	return human.Key{Class: h.Class, ID: h.ID, Experience: h.Experience}
}

// Grant is given to a land together with its first settlement
type Grant struct {
	Resources Volumes                  `yaml:"resources"`
	Humans    map[string]common.Volume `yaml:"humans"`
}

// Catalog is the loaded game configuration
type Catalog struct {
	Name      string     `yaml:"name"`
	Resources []string   `yaml:"resources"`
	Buildings []Building `yaml:"buildings"`
	Humans    []Human    `yaml:"humans"`
	Grant     Grant      `yaml:"grant"`

	resources   map[resource.Key]bool
	buildings   map[building.Key]*Building
	humans      map[human.Key]*Human
	grantHumans human.Set
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(classic)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog file
func Load(path string) (*Catalog, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse catalog")
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) index() error {
	if c.Name == "" {
		return errors.New("catalog has no name")
	}
	c.resources = map[resource.Key]bool{}
	for _, r := range c.Resources {
		c.resources[resource.Key(r)] = true
	}
	checkVolumes := func(owner string, v Volumes) error {
		for r := range v {
			if !c.resources[resource.Key(r)] {
				return errors.Errorf("%s: unknown resource %q", owner, r)
			}
		}
		return nil
	}

	c.buildings = map[building.Key]*Building{}
	buildingClasses := map[string]bool{}
	for i := range c.Buildings {
		b := &c.Buildings[i]
		if b.Class == "" || b.ID == "" {
			return errors.Errorf("building #%d: class and id required", i)
		}
		if _, ok := c.buildings[b.Key()]; ok {
			return errors.Errorf("building %s: duplicated", b.Key())
		}
		if err := checkVolumes("building "+b.Key().String(), b.Costs); err != nil {
			return err
		}
		if err := checkVolumes("building "+b.Key().String(), b.DestroyCosts); err != nil {
			return err
		}
		c.buildings[b.Key()] = b
		buildingClasses[b.Class] = true
	}

	c.humans = map[human.Key]*Human{}
	for i := range c.Humans {
		h := &c.Humans[i]
		if h.Class == "" || h.ID == "" || h.Experience == "" {
			return errors.Errorf("human #%d: class, id and experience required", i)
		}
		if _, ok := c.humans[h.Key()]; ok {
			return errors.Errorf("human %s: duplicated", h.Key())
		}
		if h.Housing != "" && !buildingClasses[h.Housing] {
			return errors.Errorf("human %s: unknown housing %q", h.Key(), h.Housing)
		}
		for _, v := range []Volumes{h.Costs, h.DismissCosts, h.Production} {
			if err := checkVolumes("human "+h.Key().String(), v); err != nil {
				return err
			}
		}
		c.humans[h.Key()] = h
	}
	if _, ok := c.humans[human.Jobless]; !ok {
		return errors.Errorf("human %s is required", human.Jobless)
	}

	if err := checkVolumes("grant", c.Grant.Resources); err != nil {
		return err
	}
	c.grantHumans = human.Set{}
	for s, volume := range c.Grant.Humans {
		key, err := human.ParseKey(s)
		if err != nil {
			return errors.Wrap(err, "grant")
		}
		if _, ok := c.humans[key]; !ok {
			return errors.Errorf("grant: unknown human %s", key)
		}
		c.grantHumans[key] = human.Record{Key: key, Volume: volume}
	}
	return nil
}

func (v Volumes) set(factor common.Volume) resource.Set {
	set := make(resource.Set, len(v))
	for r, volume := range v {
		if volume == 0 {
			continue
		}
		key := resource.Key(r)
		set[key] = resource.Record{Key: key, Volume: common.MulVolume(volume, factor)}
	}
	return set
}

// IsResource tells whether key is a resource of the catalog
func (c *Catalog) IsResource(key resource.Key) bool {
	return c.resources[key]
}

// Building looks up a building type
func (c *Catalog) Building(key building.Key) (*Building, bool) {
	b, ok := c.buildings[key]
	return b, ok
}

// Human looks up a human type
func (c *Catalog) Human(key human.Key) (*Human, bool) {
	h, ok := c.humans[key]
	return h, ok
}

// BuildingCost returns the resources needed to build volume buildings of key
func (c *Catalog) BuildingCost(key building.Key, volume common.Volume) resource.Set {
	b, ok := c.buildings[key]
	if !ok {
		return resource.Set{}
	}
	return b.Costs.set(volume)
}

// BuildingDestroyCost returns the resources needed to destroy volume buildings of key
func (c *Catalog) BuildingDestroyCost(key building.Key, volume common.Volume) resource.Set {
	b, ok := c.buildings[key]
	if !ok {
		return resource.Set{}
	}
	return b.DestroyCosts.set(volume)
}

// HumanCost returns the resources needed to engage volume humans of key
func (c *Catalog) HumanCost(key human.Key, volume common.Volume) resource.Set {
	h, ok := c.humans[key]
	if !ok {
		return resource.Set{}
	}
	return h.Costs.set(volume)
}

// HumanDismissCost returns the resources needed to dismiss volume humans of key
func (c *Catalog) HumanDismissCost(key human.Key, volume common.Volume) resource.Set {
	h, ok := c.humans[key]
	if !ok {
		return resource.Set{}
	}
	return h.DismissCosts.set(volume)
}

// Production returns what volume humans of key produce in one tick
func (c *Catalog) Production(key human.Key, volume common.Volume) resource.Set {
	h, ok := c.humans[key]
	if !ok {
		return resource.Set{}
	}
	return h.Production.set(volume)
}

// IsEngageable tells whether key may be engaged from jobless humans
func (c *Catalog) IsEngageable(key human.Key) bool {
	h, ok := c.humans[key]
	return ok && h.Engageable
}

// IsDismissable tells whether key may be dismissed back to jobless
func (c *Catalog) IsDismissable(key human.Key) bool {
	h, ok := c.humans[key]
	return ok && h.Dismissable
}

// Housing returns the building class housing key, if any
func (c *Catalog) Housing(key human.Key) (string, bool) {
	h, ok := c.humans[key]
	if !ok || h.Housing == "" {
		return "", false
	}
	return h.Housing, true
}

// Capacity returns how many humans volume buildings of key can house
func (c *Catalog) Capacity(key building.Key, volume common.Volume) common.Volume {
	b, ok := c.buildings[key]
	if !ok {
		return 0
	}
	return common.MulVolume(common.Volume(b.Capacity), volume)
}

// HousedBy returns the keys of every human housed by buildings of class
func (c *Catalog) HousedBy(class string) []human.Key {
	var keys []human.Key
	for key, h := range c.humans {
		if h.Housing == class {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// GrantResources returns the resources a land receives with its first settlement
func (c *Catalog) GrantResources() resource.Set {
	return c.Grant.Resources.set(1)
}

// GrantHumans returns the humans a land receives with its first settlement
func (c *Catalog) GrantHumans() human.Set {
	set := make(human.Set, len(c.grantHumans))
	for key, rec := range c.grantHumans {
		set[key] = rec
	}
	return set
}
