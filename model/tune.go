package model

// SettingRecord mirrors one entry of the tunes.json dump. Ids stay strings
// so they can be used as map keys directly without parsing back and forth
// between int and string.
type SettingRecord struct {
	TuneID    string `json:"tune_id"`
	SettingID string `json:"setting_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Meter     string `json:"meter"`
	Mode      string `json:"mode"`
	Abc       string `json:"abc"`
	Date      string `json:"date"`
	Username  string `json:"username"`
}

// AliasRecord mirrors one entry of the aliases.json dump.
type AliasRecord struct {
	TuneID string `json:"tune_id"`
	Alias  string `json:"alias"`
}

// Setting is the cleaned form kept in the index. The name lives with the
// aliases (it is identical for every setting of a tune) and "type" becomes
// "dance" because it collides with a keyword in half the languages that
// consume this file. Contour is absent when the setting never rendered.
type Setting struct {
	TuneID  string `json:"tune_id"`
	Dance   string `json:"dance"`
	Meter   string `json:"meter"`
	Mode    string `json:"mode"`
	Abc     string `json:"abc"`
	Contour string `json:"contour,omitempty"`
}

// IndexData is the payload the search engine downloads: every setting keyed
// by setting id plus one alias group per tune id.
type IndexData struct {
	Settings map[string]Setting  `json:"settings"`
	Aliases  map[string][]string `json:"aliases"`
}

// Meta lets the app decide whether its cached payload is stale without
// downloading the whole thing.
type Meta struct {
	V     int    `json:"v"`
	Size  int64  `json:"size"`
	Build string `json:"build"`
}
