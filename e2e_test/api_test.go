//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chordwire/chordwire/cmd"
	"github.com/chordwire/chordwire/model"
)

const playlistWire = "irealb://" +
	"Autumn Leaves=Kosma Joseph==Medium Swing=G-==T44{C-7|F7|Bb^7|Eb^7}Z=Jazz-Swing=120=0" +
	"===" +
	"Blue Line=Hweid Joseph==Waltz=D==T34{F#-7|B7}N1C#-7ZN2<Fine>Z=Jazz-Waltz=90=0"

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	assert.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(data))
	assert.NoError(t, err)
	return resp
}

func TestParseThenRenderRoundTrip(t *testing.T) {
	assert := assert.New(t)
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	resp := postJSON(t, srv, "/parse", model.ParseRequest{Name: "standards", Wire: playlistWire})
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	var pl model.Playlist
	assert.NoError(json.NewDecoder(resp.Body).Decode(&pl))
	assert.Equal("standards", pl.Name)
	assert.Len(pl.Songs, 2)
	assert.Equal("Autumn Leaves", pl.Songs[0].Title)
	assert.Equal("Blue Line", pl.Songs[1].Title)
	assert.Equal(120, pl.Songs[0].BPM)

	resp2 := postJSON(t, srv, "/render", model.RenderRequest{Playlist: pl})
	defer resp2.Body.Close()
	assert.Equal(http.StatusOK, resp2.StatusCode)

	var rendered model.RenderResponse
	assert.NoError(json.NewDecoder(resp2.Body).Decode(&rendered))
	assert.Equal(playlistWire, rendered.Wire)
}

func TestParseRejectsBadWire(t *testing.T) {
	assert := assert.New(t)
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	resp := postJSON(t, srv, "/parse", model.ParseRequest{Name: "broken", Wire: "irealb://only=three=fields"})
	defer resp.Body.Close()
	assert.Equal(http.StatusBadRequest, resp.StatusCode)

	var e model.ErrorResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&e))
	assert.NotEmpty(e.Error)
}

func TestLibraryAddListGet(t *testing.T) {
	assert := assert.New(t)
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	resp := postJSON(t, srv, "/library", model.ParseRequest{Name: "standards", Wire: playlistWire})
	defer resp.Body.Close()
	assert.Equal(http.StatusCreated, resp.StatusCode)

	var entry model.LibraryEntry
	assert.NoError(json.NewDecoder(resp.Body).Decode(&entry))
	assert.NotEmpty(entry.ID)
	assert.Equal("standards", entry.Name)

	listResp, err := http.Get(srv.URL + "/library")
	assert.NoError(err)
	defer listResp.Body.Close()
	var entries []model.LibraryEntry
	assert.NoError(json.NewDecoder(listResp.Body).Decode(&entries))
	assert.NotEmpty(entries)

	getResp, err := http.Get(srv.URL + "/library/" + entry.ID)
	assert.NoError(err)
	defer getResp.Body.Close()
	assert.Equal(http.StatusOK, getResp.StatusCode)
	var pl model.Playlist
	assert.NoError(json.NewDecoder(getResp.Body).Decode(&pl))
	assert.Len(pl.Songs, 2)
}
