package model

// Passage is the stored metadata of a compiled MIDI file.
type Passage struct {
	Id         string   `json:"id" dynamodbav:"PK"`
	Title      string   `json:"title" dynamodbav:"Title"`
	Tempo      int      `json:"tempo" dynamodbav:"Tempo"`
	Tracks     []string `json:"tracks" dynamodbav:"Tracks"`
	Notes      int      `json:"notes" dynamodbav:"Notes"`
	NextOffset int      `json:"next_offset" dynamodbav:"NextOffset"`
	CreatedAt  int64    `json:"created_at" dynamodbav:"CreatedAt"`
}
