package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var spec struct {
		Info  struct{ Title string }    `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if spec.Info.Title != "Shop Assistant API" {
		t.Errorf("unexpected title %q", spec.Info.Title)
	}
	for _, path := range []string{"/api/v1/chat/messages", "/health"} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
}
