// Package dogapi implements breed.Fetcher against the dog.ceo HTTP API.
//
// The client issues GET <base>/api/breed/<breed>/list, where <breed> is the
// input trimmed, lower-cased and with spaces replaced by hyphens, and expects:
//
//	{"status":"success","message":["afghan","basset"]}
//
// Every failure mode (empty input, transport error, non-2xx status, unparsable
// body, a status other than "success", a non-string element) is reported as a
// *breed.NotFoundError. The underlying cause is wrapped so it stays visible to
// errors.Is and to logs. A missing message field yields an empty list.
//
// The default HTTP client comes from go-cleanhttp with a 10 second timeout.
// Retries are not attempted.
package dogapi
