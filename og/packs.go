package og

// PackSize is one named export dimension in a multi-size pack.
type PackSize struct {
	Name   string `json:"name"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
}

// PackSizes lists the standard social canvases. Declaration order is the
// batch output order and must stay stable.
var PackSizes = []PackSize{
	{Name: "instagram-square", Width: 1080, Height: 1080},
	{Name: "instagram-portrait", Width: 1080, Height: 1350},
	{Name: "story-9x16", Width: 1080, Height: 1920},
	{Name: "og-1200x630", Width: 1200, Height: 630},
	{Name: "youtube-1280x720", Width: 1280, Height: 720},
	{Name: "linkedin-1200x1200", Width: 1200, Height: 1200},
}
