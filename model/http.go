package model

// Request/response bodies for the HTTP API.

type ParseRequest struct {
	Name string `json:"name"`
	Wire string `json:"wire"`
}

type RenderRequest struct {
	Playlist Playlist `json:"playlist"`
}

type RenderResponse struct {
	Wire string `json:"wire"`
}

type LibraryEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
