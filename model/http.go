package model

type ParseRequestBody struct {
	Source string `json:"source"`
	Offset int    `json:"offset"`
}

// Point is a JSON friendly point keyed by attribute name.
type Point = map[string]any

type ParseResponse struct {
	Points     []Point  `json:"points"`
	NextOffset int      `json:"next_offset"`
	Warnings   []string `json:"warnings"`
}

type MidiRequestBody struct {
	Tracks []string `json:"tracks"`
	Title  string   `json:"title"`
	Tempo  int      `json:"tempo"`
}

type MidiResponse struct {
	Id string `json:"id"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
