package tournament

import "sort"

// Input is the body of a create request. Pointer fields tell a missing key apart from a zero value.
type Input struct {
	Title     *string `json:"title"`
	GameName  *string `json:"game_name"`
	StreamURL *string `json:"stream_url"`
	ImageURL  *string `json:"image_url"`
	Status    *Status `json:"status"`
	StartTime *string `json:"start_time"`
}

// Patch is the body of an update request. A nil field is not part of the update,
// whether the key was missing or explicitly null.
type Patch struct {
	Title     *string `json:"title"`
	GameName  *string `json:"game_name"`
	StreamURL *string `json:"stream_url"`
	ImageURL  *string `json:"image_url"`
	Status    *Status `json:"status"`
	StartTime *string `json:"start_time"`
}

// Changes holds an already validated update, keyed by column.
type Changes map[string]any

// Columns returns the changed columns in a stable order.
func (c Changes) Columns() []string {
	cols := make([]string, 0, len(c))
	for col := range c {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
