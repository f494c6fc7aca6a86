package analysis

// Connectivity groups nets that are electrically joined, using a union-find
// keyed by net name.
type Connectivity struct {
	parent map[string]string // Maps net name to parent net name
	rank   map[string]int    // Rank for union-by-rank
	order  []string          // Net names in insertion order
}

// NewConnectivity creates a structure where every net is its own group.
func NewConnectivity(names []string) *Connectivity {
	c := &Connectivity{
		parent: make(map[string]string, len(names)),
		rank:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		c.add(name)
	}
	return c
}

func (c *Connectivity) add(name string) {
	if _, ok := c.parent[name]; ok {
		return
	}
	c.parent[name] = name
	c.rank[name] = 0
	c.order = append(c.order, name)
}

// Connect merges the groups of nets a and b. Unknown names are added first.
func (c *Connectivity) Connect(a, b string) {
	c.add(a)
	c.add(b)

	rootA := c.Find(a)
	rootB := c.Find(b)
	if rootA == rootB {
		return
	}

	// Union by rank
	if c.rank[rootA] < c.rank[rootB] {
		c.parent[rootA] = rootB
	} else if c.rank[rootA] > c.rank[rootB] {
		c.parent[rootB] = rootA
	} else {
		c.parent[rootB] = rootA
		c.rank[rootA]++
	}
}

// Find returns the representative net of the group containing name, or
// name itself if it is unknown.
func (c *Connectivity) Find(name string) string {
	if _, ok := c.parent[name]; !ok {
		return name
	}

	root := name
	for c.parent[root] != root {
		root = c.parent[root]
	}

	// Path compression
	current := name
	for current != root {
		next := c.parent[current]
		c.parent[current] = root
		current = next
	}

	return root
}

// Groups returns every group with two or more nets. Groups and the nets in
// them follow insertion order.
func (c *Connectivity) Groups() [][]string {
	byRoot := make(map[string][]string)
	var roots []string
	for _, name := range c.order {
		root := c.Find(name)
		if _, seen := byRoot[root]; !seen {
			roots = append(roots, root)
		}
		byRoot[root] = append(byRoot[root], name)
	}

	var groups [][]string
	for _, root := range roots {
		if len(byRoot[root]) > 1 {
			groups = append(groups, byRoot[root])
		}
	}
	return groups
}
