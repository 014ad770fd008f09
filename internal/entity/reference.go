package entity

// DocMetadata mirrors the cmetadata JSON stored next to each embedded chunk.
type DocMetadata struct {
	Title      string `json:"title"`
	Source     string `json:"source"`
	StartIndex int    `json:"start_index"`
}

type SourceAndTitle struct {
	Source string `json:"source"`
	Title  string `json:"title"`
}
