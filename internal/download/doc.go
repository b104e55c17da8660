// Package download implements the download orchestrator: it runs an
// extraction library inside a scoped temporary directory, relays its
// progress callbacks, and hands back the produced file as an in-memory
// result. Two extractors are provided: yt-dlp (via
// github.com/lrstanley/go-ytdlp) and a pure-Go YouTube engine (via
// github.com/ytget/ytdlp/v2).
package download
