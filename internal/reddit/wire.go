package reddit

const kindSubreddit = "t5"

// thing is Reddit's {kind, data} envelope.
type thing[T any] struct {
	Kind string `json:"kind"`
	Data T      `json:"data"`
}

type subredditData struct {
	DisplayName string `json:"display_name"`
}

type listingData struct {
	After    string            `json:"after"`
	Children []thing[linkData] `json:"children"`
}

type linkData struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Permalink string `json:"permalink"`
}
