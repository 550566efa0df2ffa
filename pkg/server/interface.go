/*
Package server implements msgpack IPC over stdin/stdout for a grid word finder.

The server owns one finder, built once from the configured grid at startup.
Clients stream msgpack maps on stdin and read one msgpack map per request on stdout.

# IPC

Find requests carry the query stream under "q":

	{"id": "req_001", "q": ["TEST", "TWOR", "TEST", "NOPE"]}

The server responds with at most 10 grid words, most frequent first:

	{"id": "req_001", "m": [{"w": "TEST", "n": 2, "r": 1}, {"w": "TWOR", "n": 1, "r": 2}], "c": 2, "t": 12}

"n" is the number of times the word was queried, "r" its 1-based rank and "t" the
time taken in microseconds. An absent "q" is rejected; an empty one yields no matches.

Info requests describe the loaded grid:

	{"id": "info_001", "action": "info"}

Errors use a compact shape with an HTTP-like code:

	{"id": "req_002", "e": "invalid argument: query stream must be non-optional", "c": 400}

Requests without an id get a generated UUID so replies can still be correlated.
*/
package server

// Request is any client message. Action is empty for find requests.
type Request struct {
	ID      string   `msgpack:"id"`
	Action  string   `msgpack:"action,omitempty"`
	Queries []string `msgpack:"q"`
}

// FindMatch - one ranked grid word
type FindMatch struct {
	Word  string `msgpack:"w"`
	Count int    `msgpack:"n"`
	Rank  uint16 `msgpack:"r"`
}

// FindResponse - find response
type FindResponse struct {
	ID        string      `msgpack:"id"`
	Matches   []FindMatch `msgpack:"m"`
	Count     int         `msgpack:"c"`
	TimeTaken int64       `msgpack:"t"`
}

// InfoResponse - grid and index information
type InfoResponse struct {
	ID            string `msgpack:"id"`
	Status        string `msgpack:"status"`
	Strategy      string `msgpack:"strategy"`
	Rows          int    `msgpack:"rows"`
	Cols          int    `msgpack:"cols"`
	Words         int    `msgpack:"words"`
	CaseSensitive bool   `msgpack:"case_sensitive"`
	Requests      int    `msgpack:"requests"`
}

// StatusResponse - sent once when the server is ready
type StatusResponse struct {
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
