package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName carries a caller-supplied request id. The server
// generates one when it is absent.
const RequestIDHeaderName = "x-request-id"
