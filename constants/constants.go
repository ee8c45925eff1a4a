package constants

import "os"

// PlaylistExt is the file extension for saved playlist wire strings.
const PlaylistExt = ".irealb"

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetLibraryDir() string {
	return getEnvOrDefault("LIBRARY_PATH", "./library")
}

func GetDynamoEndpoint() string {
	return getEnvOrDefault("DYNAMO_ENDPOINT", "http://localhost:8000")
}

func GetDynamoTable() string {
	return getEnvOrDefault("DYNAMO_TABLE", "chordwire-playlists")
}

func GetServeAddr() string {
	return getEnvOrDefault("CHORDWIRE_ADDR", ":8080")
}
