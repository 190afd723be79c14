package domain

// ProjectMap resolves a project name to its client name. It is built either
// from a Toggl projects JSON file or from the owner hierarchy of a Jiffy
// export, and is read-only after construction.
type ProjectMap map[string]string

// Client returns the client for a project, or "" when the project is
// unmapped. A nil map is a valid empty map.
func (m ProjectMap) Client(project string) string {
	if m == nil {
		return ""
	}
	return m[project]
}

// Export is what loading a source file yields: the entries it contained plus
// whatever project-to-client knowledge the format carries.
type Export struct {
	Entries  []TimeEntry
	Projects ProjectMap
}
