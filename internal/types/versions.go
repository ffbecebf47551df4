package types

// VersionInfo records one immutable generation event for a project.
type VersionInfo struct {
	Version   int    `json:"version"`
	FileName  string `json:"fileName"`
	Timestamp string `json:"timestamp"`
	Summary   string `json:"summary"`
}

// ProjectMetadata is the append-only version history for one project,
// persisted as out/<projectId>/metadata.json.
type ProjectMetadata struct {
	Versions []VersionInfo `json:"versions"`
}
