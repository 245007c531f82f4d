package router

// Route is a named intent with example utterances.
type Route struct {
	Name     string   `yaml:"name" json:"name"`
	Examples []string `yaml:"examples" json:"examples"`
}

// Result is the outcome of a classification. Route is a configured route name
// or RouteUnknown; Score is the winning cosine similarity in [-1, 1].
type Result struct {
	Route string  `json:"route"`
	Score float64 `json:"score"`
}

// routeEmbeddings holds one document-mode vector per example, in example order.
type routeEmbeddings struct {
	name    string
	vectors [][]float32
}

// routesFile is the on-disk layout read by LoadRoutes.
type routesFile struct {
	Routes []Route `yaml:"routes"`
}
