// Package http serves the development backend over the remote wire
// contract.
//
// GET / answers with a callback script, `callback(<envelope>);`, built from
// the path, callback and remaining query parameters. POST / accepts the
// opaque upload body. Request tracing, access logging and response
// compression are handled by middleware before requests reach the backend.
package http
