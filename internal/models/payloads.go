package models

// AllProjectsData is the success payload of an all-projects response.
type AllProjectsData struct {
	Projects []Project `json:"projects"`
}

// AllScriptsData is the success payload of an all-scripts response.
type AllScriptsData struct {
	Scripts []Script `json:"scripts"`
}
