package vertical

import (
	"strings"
)

// pathAliases maps public URL slugs to vertical ids where the two differ
var pathAliases = map[string]string{
	"professional-services": "professional",
	"hvac-services":         "hvac",
	"roofing-services":      "roofing",
	"plumbing-services":     "plumbing",
	"painting-services":     "painting",
	"flooring-services":     "flooring",
	"carpentry-services":    "carpentry",
	"lawn":                  "lawn-care",
	"pool":                  "pool-spa",
	"pool-and-spa":          "pool-spa",
	"window":                "window-cleaning",
	"carpet":                "carpet-cleaning",
	"junk":                  "junk-removal",
	"chimney":               "chimney-sweep",
	"appliance":             "appliance-repair",
	"garage":                "garage-services",
	"locksmith":             "locksmith-services",
	"pet":                   "pet-services",
	"tree":                  "tree-services",
	"handyman":              "handyman-services",
	"landscaping":           "landscaping-services",
	"electrical":            "electrical-services",
}

// ResolvePath maps a page path such as "/industry/hvac-services" to a
// registered vertical id. Anything it cannot resolve yields fallback.
func (r *Registry) ResolvePath(path, fallback string) string {
	path = strings.ToLower(strings.TrimSpace(path))
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] != "industry" || parts[1] == "" {
		return fallback
	}

	slug := parts[1]
	if _, ok := r.Get(slug); ok {
		return slug
	}
	if id, ok := pathAliases[slug]; ok {
		if _, ok := r.Get(id); ok {
			return id
		}
	}
	return fallback
}
