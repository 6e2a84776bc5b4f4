package region

// Registry is the ordered collection of authored regions
type Registry struct {
	regions  []Region
	defaults Defaults
}

// NewRegistry creates an empty registry that builds new regions from defaults
func NewRegistry(defaults Defaults) *Registry {
	return &Registry{
		regions:  []Region{},
		defaults: defaults,
	}
}

// Defaults returns the creation settings in use
func (r *Registry) Defaults() Defaults {
	return r.defaults
}

// SetDefaults changes the settings applied to future creations
func (r *Registry) SetDefaults(d Defaults) {
	r.defaults = d
}

// List returns the regions in order. The slice is shared; callers must not
// hold on to it across mutations.
func (r *Registry) List() []Region {
	return r.regions
}

// Len returns the number of regions
func (r *Registry) Len() int {
	return len(r.regions)
}

// Create appends a new region built from points and the registry defaults
func (r *Registry) Create(points []Point) Region {
	reg := r.defaults.New(points)
	r.regions = append(r.regions, reg)
	return reg.Clone()
}

// Get returns a region by ID
func (r *Registry) Get(id string) (Region, bool) {
	for i := range r.regions {
		if r.regions[i].ID == id {
			return r.regions[i].Clone(), true
		}
	}
	return Region{}, false
}

// Update replaces the region with the same ID
func (r *Registry) Update(reg Region) bool {
	for i := range r.regions {
		if r.regions[i].ID == reg.ID {
			r.regions[i] = reg.Clone()
			return true
		}
	}
	return false
}

// UpdatePoint moves a single vertex of a region in place
func (r *Registry) UpdatePoint(id string, index int, p Point) bool {
	for i := range r.regions {
		if r.regions[i].ID != id {
			continue
		}
		if index < 0 || index >= len(r.regions[i].Points) {
			return false
		}
		r.regions[i].Points[index] = p
		return true
	}
	return false
}

// Delete removes a region by ID
func (r *Registry) Delete(id string) bool {
	for i := range r.regions {
		if r.regions[i].ID == id {
			r.regions = append(r.regions[:i], r.regions[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the whole collection, e.g. after loading from disk.
// Regions are taken as-is without validation.
func (r *Registry) Replace(regions []Region) {
	r.regions = make([]Region, 0, len(regions))
	for _, reg := range regions {
		r.regions = append(r.regions, reg.Clone())
	}
}

// Snapshot returns a deep copy of the regions, safe to keep
func (r *Registry) Snapshot() []Region {
	out := make([]Region, len(r.regions))
	for i, reg := range r.regions {
		out[i] = reg.Clone()
	}
	return out
}

// HitBody returns the topmost region whose polygon contains p
func (r *Registry) HitBody(p Point) (Region, bool) {
	for i := len(r.regions) - 1; i >= 0; i-- {
		if Contains(r.regions[i].Points, p) {
			return r.regions[i].Clone(), true
		}
	}
	return Region{}, false
}
