package router

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRoutes reads a route table from a YAML file of the form
//
//	routes:
//	  - name: faq
//	    examples: [...]
//
// Names are trimmed and the table is validated before it is returned.
func LoadRoutes(path string) ([]Route, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read routes file: %w", err)
	}

	var f routesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse routes file %s: %w", path, err)
	}
	for i := range f.Routes {
		f.Routes[i].Name = strings.TrimSpace(f.Routes[i].Name)
	}
	if err := ValidateRoutes(f.Routes); err != nil {
		return nil, fmt.Errorf("routes file %s: %w", path, err)
	}
	return f.Routes, nil
}

// ValidateRoutes checks that the table has at least one route, that names are
// unique, non-empty and unpadded, and that every route has non-blank examples.
func ValidateRoutes(routes []Route) error {
	if len(routes) == 0 {
		return ErrNoRoutes
	}
	seen := make(map[string]struct{}, len(routes))
	for i, route := range routes {
		name := strings.TrimSpace(route.Name)
		if name == "" {
			return fmt.Errorf("route %d: %w", i, ErrEmptyRouteName)
		}
		if name != route.Name {
			return fmt.Errorf("route %d: %w: %q", i, ErrPaddedRouteName, route.Name)
		}
		if name == RouteUnknown {
			return fmt.Errorf("route %d: %w: %s", i, ErrReservedRouteName, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, name)
		}
		seen[name] = struct{}{}

		if len(route.Examples) == 0 {
			return fmt.Errorf("route %s: %w", name, ErrNoExamples)
		}
		for j, ex := range route.Examples {
			if strings.TrimSpace(ex) == "" {
				return fmt.Errorf("route %s example %d: %w", name, j, ErrBlankExample)
			}
		}
	}
	return nil
}
