package apidocs

// Names under which the convenience security schemes are registered.
const (
	SchemeJWT    = "jwt_token"
	SchemeAPIKey = "api_key"
)

// JWTLocation describes where a request carries its JWT: the Authorization
// header (bearer), a query parameter, or a cookie.
type JWTLocation struct {
	in   string
	name string
}

// JWTBearer is the default location: Authorization header, bearer format.
var JWTBearer = JWTLocation{in: "header"}

// JWTQuery locates the token in the named query parameter.
func JWTQuery(name string) JWTLocation {
	return JWTLocation{in: "query", name: name}
}

// JWTCookie locates the token in the named cookie.
func JWTCookie(name string) JWTLocation {
	return JWTLocation{in: "cookie", name: name}
}

// SecurityScheme renders the location as an OpenAPI security scheme.
func (l JWTLocation) SecurityScheme() SecurityScheme {
	switch l.in {
	case "query", "cookie":
		return SecurityScheme{Type: "apiKey", In: l.in, Name: l.name}
	default:
		return SecurityScheme{Type: "http", Scheme: "bearer", BearerFormat: "JWT"}
	}
}

// WithJWTSecurity registers the scheme "jwt_token" for the given location.
func WithJWTSecurity(loc JWTLocation) DocumentOption {
	return WithSecurityScheme(SchemeJWT, loc.SecurityScheme())
}

// WithAPIKeySecurity registers the scheme "api_key" reading the given
// header. An empty header name defaults to "apikey".
func WithAPIKeySecurity(header string) DocumentOption {
	if header == "" {
		header = "apikey"
	}
	return WithSecurityScheme(SchemeAPIKey, SecurityScheme{Type: "apiKey", In: "header", Name: header})
}
