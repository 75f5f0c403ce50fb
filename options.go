package jsmn

// options holds the parser's dialect and feature choices. Upstream
// jsmn selects these at compile time via build flags (JSMN_STRICT,
// JSMN_PARENT_LINKS); this port promotes them to runtime configuration
// so a single binary can handle both dialects. The zero value is
// strict mode with no sibling links, matching the upstream default
// build.
type options struct {
	permissive   bool
	siblingLinks bool
}

// Option configures a Parser at construction time.
type Option func(*options)

// WithPermissive selects the permissive dialect: unquoted keys, any
// unquoted value run, tolerated missing commas, and multiple
// top-level values.
func WithPermissive() Option {
	return func(o *options) { o.permissive = true }
}

// WithSiblingLinks enables maintaining Token.NextSibling on every
// insert. Costs O(children) per insert; off by default since most
// callers navigate via Parent alone.
func WithSiblingLinks() Option {
	return func(o *options) { o.siblingLinks = true }
}
