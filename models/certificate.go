package models

// Layout is where the name landed on the page, in points.
type Layout struct {
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
	TextWidth  float64 `json:"text_width"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// Artifact is one generated certificate. It is handed to the client and
// not retained, except for a TTL-bounded cache copy.
type Artifact struct {
	FileName    string `json:"file_name"`    // "<submitted-name>-certificate.pdf"
	DisplayName string `json:"display_name"` // raw submission, drawn on the page
	Event       string `json:"event,omitempty"`
	Layout      Layout `json:"layout"`
	Data        []byte `json:"data"` // PDF bytes (base64 in JSON)
}
