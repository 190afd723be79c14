package toggl

import (
	"encoding/json"
	"fmt"
	"os"

	"trackport/internal/domain"
)

// LoadProjects reads a Toggl projects JSON export ([{"name": ...,
// "client_name": ...}, ...]) into a ProjectMap. Projects without a name are
// ignored; a missing client_name maps to the empty string.
func LoadProjects(path string) (domain.ProjectMap, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("toggl: %w", err)
	}
	var projects []struct {
		Name       string `json:"name"`
		ClientName string `json:"client_name"`
	}
	if err := json.Unmarshal(b, &projects); err != nil {
		return nil, fmt.Errorf("toggl: decoding projects %s: %w", path, err)
	}
	m := make(domain.ProjectMap, len(projects))
	for _, p := range projects {
		if p.Name != "" {
			m[p.Name] = p.ClientName
		}
	}
	return m, nil
}
