/*
Package server exposes the generators over HTTP using fasthttp.

Every generator kind is a route. Parameters are read from the query string, and list based kinds
(shuffle, pick and single) read their items from the request body, one item per line.

	GET  /number?min=1&max=6
	GET  /string?length=12&lower&numbers&require_all
	GET  /otp?length=8
	GET  /letters  /token  /password?require_all
	GET  /dashed?delimiter=.&chunk=4&mixed_case=false
	POST /shuffle  /pick?count=2  /single

Successful responses are JSON objects holding either "value" or "values", plus the "id" and the
estimated "entropy" of the value. Invalid parameters are reported with a 400 status and an "error" field
	{"error":"invalid length [-1]: invalid configuration: must not be negative"}
*/
package server
